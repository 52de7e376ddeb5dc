// Package history keeps a bounded record of past study sessions.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studiz/internal/store"
	"github.com/abhisek/studiz/internal/studygen"
)

// MaxEntries is the capacity of the history; the oldest entries are
// evicted when a new one would exceed it.
const MaxEntries = 50

// Entry is one recorded study session. Immutable once created.
type Entry struct {
	ID      string            `json:"id"`
	Kind    studygen.TaskKind `json:"kind"`
	Topic   string            `json:"topic"`
	Summary string            `json:"summary"`
	Created time.Time         `json:"createdAt"`
}

// Store persists history entries newest-first under a single KV key.
type Store struct {
	kv store.KV
}

// New creates a history store over the given KV.
func New(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Append records a new entry at the head of the history, evicting the
// oldest entries past MaxEntries. ID and Created are assigned here.
func (s *Store) Append(ctx context.Context, kind studygen.TaskKind, topic, summary string) (*Entry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	entry := Entry{
		ID:      uuid.NewString(),
		Kind:    kind,
		Topic:   topic,
		Summary: summary,
		Created: time.Now().UTC(),
	}

	entries = append([]Entry{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := s.save(ctx, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns all entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	return s.load(ctx)
}

// Clear removes all history.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, store.KeyHistory); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// load reads the stored history. Missing or unreadable data yields an
// empty history rather than an error: history is a convenience record
// and a corrupt blob should not wedge the app.
func (s *Store) load(ctx context.Context) ([]Entry, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyHistory)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

func (s *Store) save(ctx context.Context, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyHistory, string(raw)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
