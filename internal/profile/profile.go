// Package profile stores the local user identity.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/studiz/internal/store"
)

// User is the locally stored identity shown in the header and on the
// profile screen. There is no authentication; this is a display name.
type User struct {
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Joined time.Time `json:"joinedAt"`
}

// Service persists the user under a single KV key.
type Service struct {
	kv store.KV
}

// New creates a profile service over the given KV.
func New(kv store.KV) *Service {
	return &Service{kv: kv}
}

// Current returns the stored user, or nil when nobody is logged in.
// A corrupt record reads as logged out.
func (s *Service) Current(ctx context.Context) (*User, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

// Login stores a new user, stamping the join time.
func (s *Service) Login(ctx context.Context, name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("empty name")
	}

	u := User{
		Name:   name,
		Email:  strings.TrimSpace(email),
		Joined: time.Now().UTC(),
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyUser, string(raw)); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return &u, nil
}

// Logout removes the stored user.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, store.KeyUser); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
