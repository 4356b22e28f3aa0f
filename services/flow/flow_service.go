package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/CreditPe/CreditPe-Backend/services/monitoring/logging"
)

var ErrIllegalTransition = errors.New("requested stage is not reachable from the current stage")

// StageStore persists the current stage per session key. The redis-backed
// session service implements it in production.
type StageStore interface {
	Stage(ctx context.Context, key string) (string, error)
	SetStage(ctx context.Context, key string, stage string) error
	ClearStage(ctx context.Context, key string) error
}

// Service enforces stage ordering centrally so an illegal jump (e.g.
// payment without a completed e-sign) is rejected no matter which handler
// the request hits.
type Service struct {
	stages StageStore
	logger *logging.Logger
}

func NewService(stages StageStore, logger *logging.Logger) *Service {
	return &Service{
		stages: stages,
		logger: logger,
	}
}

// Current returns the stored stage for a session key, or home for a fresh
// session.
func (s *Service) Current(ctx context.Context, key string) (Stage, error) {
	stored, err := s.stages.Stage(ctx, key)
	if err != nil {
		return "", err
	}
	if stored == "" {
		return StageHome, nil
	}
	return Stage(stored), nil
}

// Advance moves the session to the requested stage if the transition table
// allows it. On any error the stored stage is unchanged.
func (s *Service) Advance(ctx context.Context, key string, to Stage) error {
	current, err := s.Current(ctx, key)
	if err != nil {
		return err
	}

	if !Can(current, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, to)
	}

	if err := s.stages.SetStage(ctx, key, string(to)); err != nil {
		return err
	}

	s.logger.WithField("session", key).Debugf("stage %s -> %s", current, to)
	return nil
}

// Require rejects the request unless the session is currently at the given
// stage. Stage handlers call this before doing any work.
func (s *Service) Require(ctx context.Context, key string, at Stage) error {
	current, err := s.Current(ctx, key)
	if err != nil {
		return err
	}
	if current != at {
		return fmt.Errorf("%w: at %s, need %s", ErrIllegalTransition, current, at)
	}
	return nil
}

// Migrate moves a session's stage marker to a new key. Used once, when a
// phone-keyed pre-auth session becomes an identity-keyed session after OTP
// verification.
func (s *Service) Migrate(ctx context.Context, fromKey string, toKey string, to Stage) error {
	current, err := s.Current(ctx, fromKey)
	if err != nil {
		return err
	}

	if !Can(current, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, to)
	}

	if err := s.stages.SetStage(ctx, toKey, string(to)); err != nil {
		return err
	}

	return s.stages.ClearStage(ctx, fromKey)
}
