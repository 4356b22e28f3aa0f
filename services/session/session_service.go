package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long an abandoned journey keeps its markers around.
const sessionTTL = time.Hour * 720

// KV is the slice of the redis service this package needs. Tests swap in an
// in-memory implementation.
type KV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Service holds the client-side journey's transient state server-side: the
// current stage per session key, the bearer token per identity, and the
// single current-application slot written once after KYC submission.
type Service struct {
	kv KV
}

func NewService(kv KV) *Service {
	return &Service{kv: kv}
}

func (s *Service) Stage(ctx context.Context, key string) (string, error) {
	value, err := s.kv.Get(ctx, fmt.Sprintf("session:stage:%s", key))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (s *Service) SetStage(ctx context.Context, key string, stage string) error {
	return s.kv.Set(ctx, fmt.Sprintf("session:stage:%s", key), stage, sessionTTL)
}

func (s *Service) ClearStage(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, fmt.Sprintf("session:stage:%s", key))
}

func (s *Service) SetToken(ctx context.Context, identityID string, token string) error {
	return s.kv.Set(ctx, fmt.Sprintf("session:token:%s", identityID), token, sessionTTL)
}

// ApplicationID reads the cached current-application slot. An empty id with
// nil error means no application has been created in this session.
func (s *Service) ApplicationID(ctx context.Context, identityID string) (string, error) {
	value, err := s.kv.Get(ctx, fmt.Sprintf("session:application:%s", identityID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (s *Service) SetApplicationID(ctx context.Context, identityID string, applicationID string) error {
	return s.kv.Set(ctx, fmt.Sprintf("session:application:%s", identityID), applicationID, sessionTTL)
}

// Clear wipes a signed-out identity's session: token, application slot and
// stage marker.
func (s *Service) Clear(ctx context.Context, identityID string) error {
	for _, key := range []string{
		fmt.Sprintf("session:token:%s", identityID),
		fmt.Sprintf("session:application:%s", identityID),
		fmt.Sprintf("session:stage:%s", identityID),
	} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
