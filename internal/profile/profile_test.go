package profile

import (
	"context"
	"testing"

	"github.com/abhisek/studiz/internal/store"
)

func TestCurrentWhenLoggedOut(t *testing.T) {
	s := New(store.NewMemKV())

	u, err := s.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if u != nil {
		t.Fatal("expected nil user when logged out")
	}
}

func TestLoginAndCurrent(t *testing.T) {
	s := New(store.NewMemKV())
	ctx := context.Background()

	u, err := s.Login(ctx, "  Ada ", "ada@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Name != "Ada" {
		t.Errorf("name = %q, want Ada", u.Name)
	}
	if u.Joined.IsZero() {
		t.Error("expected join time")
	}

	got, err := s.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got == nil || got.Name != "Ada" || got.Email != "ada@example.com" {
		t.Errorf("current = %+v", got)
	}
}

func TestLoginEmptyName(t *testing.T) {
	s := New(store.NewMemKV())

	if _, err := s.Login(context.Background(), "   ", ""); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestLogout(t *testing.T) {
	s := New(store.NewMemKV())
	ctx := context.Background()

	if _, err := s.Login(ctx, "Ada", ""); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	u, err := s.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if u != nil {
		t.Error("expected nil user after logout")
	}
}

func TestCorruptRecordReadsAsLoggedOut(t *testing.T) {
	kv := store.NewMemKV()
	s := New(kv)
	ctx := context.Background()

	if err := kv.Set(ctx, store.KeyUser, "{broken"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	u, err := s.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if u != nil {
		t.Error("expected nil user for corrupt record")
	}
}
