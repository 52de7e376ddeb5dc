package theme

import (
	"context"
	"testing"

	"github.com/abhisek/studiz/internal/store"
)

func TestLoadDefaultsToDark(t *testing.T) {
	s := NewService(store.NewMemKV())

	m, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m != ModeDark {
		t.Errorf("mode = %q, want dark", m)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := NewService(store.NewMemKV())
	ctx := context.Background()

	if err := s.Save(ctx, ModeLight); err != nil {
		t.Fatalf("save: %v", err)
	}
	m, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m != ModeLight {
		t.Errorf("mode = %q, want light", m)
	}
}

func TestUnknownValueReadsAsDark(t *testing.T) {
	kv := store.NewMemKV()
	s := NewService(kv)
	ctx := context.Background()

	if err := kv.Set(ctx, store.KeyTheme, "solarized"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	m, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m != ModeDark {
		t.Errorf("mode = %q, want dark for unknown value", m)
	}
}
