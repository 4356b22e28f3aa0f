package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type memoryKV struct {
	values map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string]string)}
}

func (m *memoryKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.values[key] = value.(string)
	return nil
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	value, found := m.values[key]
	if !found {
		return "", redis.Nil
	}
	return value, nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func TestStageMissReadsAsEmpty(t *testing.T) {
	svc := NewService(newMemoryKV())

	stage, err := svc.Stage(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Stage on missing key returned error: %v", err)
	}
	if stage != "" {
		t.Errorf("Stage on missing key = %q, want empty", stage)
	}
}

func TestStageRoundTrip(t *testing.T) {
	svc := NewService(newMemoryKV())
	ctx := context.Background()

	if err := svc.SetStage(ctx, "identity-1", "kyc"); err != nil {
		t.Fatalf("SetStage returned error: %v", err)
	}

	stage, err := svc.Stage(ctx, "identity-1")
	if err != nil {
		t.Fatalf("Stage returned error: %v", err)
	}
	if stage != "kyc" {
		t.Errorf("Stage = %q, want %q", stage, "kyc")
	}

	if err := svc.ClearStage(ctx, "identity-1"); err != nil {
		t.Fatalf("ClearStage returned error: %v", err)
	}

	stage, err = svc.Stage(ctx, "identity-1")
	if err != nil {
		t.Fatalf("Stage after clear returned error: %v", err)
	}
	if stage != "" {
		t.Errorf("Stage after clear = %q, want empty", stage)
	}
}

func TestApplicationIDSlot(t *testing.T) {
	svc := NewService(newMemoryKV())
	ctx := context.Background()

	id, err := svc.ApplicationID(ctx, "identity-1")
	if err != nil {
		t.Fatalf("ApplicationID on empty slot returned error: %v", err)
	}
	if id != "" {
		t.Errorf("ApplicationID on empty slot = %q, want empty", id)
	}

	if err := svc.SetApplicationID(ctx, "identity-1", "app-1"); err != nil {
		t.Fatalf("SetApplicationID returned error: %v", err)
	}

	id, err = svc.ApplicationID(ctx, "identity-1")
	if err != nil {
		t.Fatalf("ApplicationID returned error: %v", err)
	}
	if id != "app-1" {
		t.Errorf("ApplicationID = %q, want %q", id, "app-1")
	}
}

func TestClearWipesAllSlots(t *testing.T) {
	kv := newMemoryKV()
	svc := NewService(kv)
	ctx := context.Background()

	if err := svc.SetStage(ctx, "identity-1", "dashboard"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetToken(ctx, "identity-1", "a.b.c"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetApplicationID(ctx, "identity-1", "app-1"); err != nil {
		t.Fatal(err)
	}

	if err := svc.Clear(ctx, "identity-1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	if len(kv.values) != 0 {
		t.Errorf("Clear left %d keys behind: %v", len(kv.values), kv.values)
	}
}
