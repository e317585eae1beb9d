package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/zhouzirui/interview-coach/backend/internal/service/session"
)

func TestHistoryUnknownSessionIsEmpty(t *testing.T) {
	store := session.NewMemoryStore()

	got := store.History(context.Background(), "never-used")
	if got == nil {
		t.Fatal("expected non-nil empty history")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %v", got)
	}
	if store.Count() != 0 {
		t.Fatalf("reading must not create a session, count=%d", store.Count())
	}
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	store.Append(ctx, "abc", "first")
	store.Append(ctx, "abc", "second")
	store.Append(ctx, "abc", "second")

	got := store.History(ctx, "abc")
	want := []string{"first", "second", "second"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %q want %q", i, got[i], want[i])
		}
	}
	if store.Len(ctx, "abc") != 3 {
		t.Fatalf("unexpected Len: %d", store.Len(ctx, "abc"))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	store.Append(ctx, "a", "one")
	store.Append(ctx, "b", "two")

	if got := store.History(ctx, "a"); len(got) != 1 || got[0] != "one" {
		t.Fatalf("unexpected history for a: %v", got)
	}
	if store.Count() != 2 {
		t.Fatalf("expected 2 sessions, got %d", store.Count())
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	store.Append(ctx, "abc", "original")

	got := store.History(ctx, "abc")
	got[0] = "mutated"

	if store.History(ctx, "abc")[0] != "original" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestConcurrentAppendsAllLand(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Append(ctx, "shared", fmt.Sprintf("entry-%d", i))
		}(i)
	}
	wg.Wait()

	if n := store.Len(ctx, "shared"); n != 50 {
		t.Fatalf("expected 50 entries, got %d", n)
	}
}
