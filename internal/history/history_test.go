package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/abhisek/studiz/internal/store"
	"github.com/abhisek/studiz/internal/studygen"
)

func newTestStore() (*Store, *store.MemKV) {
	kv := store.NewMemKV()
	return New(kv), kv
}

func TestAppendAndList(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	entry, err := s.Append(ctx, studygen.TaskExplain, "Photosynthesis", "## Photosynthesis...")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected assigned ID")
	}
	if entry.Created.IsZero() {
		t.Error("expected assigned timestamp")
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	if entries[0].Topic != "Photosynthesis" {
		t.Errorf("topic = %q", entries[0].Topic)
	}
	if entries[0].Kind != studygen.TaskExplain {
		t.Errorf("kind = %q", entries[0].Kind)
	}
}

func TestListNewestFirst(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := s.Append(ctx, studygen.TaskQuiz, fmt.Sprintf("topic-%d", i), ""); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	for i, want := range []string{"topic-2", "topic-1", "topic-0"} {
		if entries[i].Topic != want {
			t.Errorf("entries[%d].Topic = %q, want %q", i, entries[i].Topic, want)
		}
	}
}

func TestCapacityEviction(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	for i := 0; i < MaxEntries+10; i++ {
		if _, err := s.Append(ctx, studygen.TaskFlashcard, fmt.Sprintf("topic-%d", i), ""); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(entries), MaxEntries)
	}
	// Newest survives, the 10 oldest are gone.
	if entries[0].Topic != fmt.Sprintf("topic-%d", MaxEntries+9) {
		t.Errorf("head = %q", entries[0].Topic)
	}
	if entries[len(entries)-1].Topic != "topic-10" {
		t.Errorf("tail = %q, want topic-10", entries[len(entries)-1].Topic)
	}
}

func TestClear(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	if _, err := s.Append(ctx, studygen.TaskSummarize, "t", ""); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len = %d, want 0 after clear", len(entries))
	}
}

func TestCorruptBlobTreatedAsEmpty(t *testing.T) {
	s, kv := newTestStore()
	ctx := context.Background()

	if err := kv.Set(ctx, store.KeyHistory, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len = %d, want 0 for corrupt data", len(entries))
	}

	// Appending over corrupt data starts a fresh history.
	if _, err := s.Append(ctx, studygen.TaskExplain, "fresh", ""); err != nil {
		t.Fatalf("append: %v", err)
	}
	entries, _ = s.List(ctx)
	if len(entries) != 1 || entries[0].Topic != "fresh" {
		t.Error("expected fresh history after corruption")
	}
}
