package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_FailSets(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	quota := errors.New("quota exceeded")
	store.FailSets(quota)
	if err := store.Set(ctx, "k", "v2"); !errors.Is(err, quota) {
		t.Fatalf("expected injected error, got %v", err)
	}

	got, _, _ := store.Get(ctx, "k")
	if got != "v1" {
		t.Errorf("failed Set should not change the value, got %q", got)
	}

	store.FailSets(nil)
	if err := store.Set(ctx, "k", "v3"); err != nil {
		t.Fatalf("Set failed after clearing fault: %v", err)
	}
	if store.SetCount() != 2 {
		t.Errorf("expected 2 successful sets, got %d", store.SetCount())
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		path    string
		wantErr error
	}{
		{name: "memory", driver: DriverMemory},
		{name: "sqlite", driver: DriverSQLite, path: ":memory:"},
		{name: "file", driver: DriverFile, path: t.TempDir() + "/tasks.json"},
		{name: "unknown", driver: "redis", wantErr: ErrUnknownDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.driver, tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer s.Close()

			ctx := context.Background()
			if err := s.Set(ctx, "k", "v"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if got, ok, _ := s.Get(ctx, "k"); !ok || got != "v" {
				t.Errorf("expected round trip, got %q ok=%v", got, ok)
			}
		})
	}
}
