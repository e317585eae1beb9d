package option

import "testing"

func TestListKindFilters(t *testing.T) {
	store := NewMemoryStore(Seed())

	personalities := store.ListKind(CoachPersonality)
	if len(personalities) != 4 {
		t.Fatalf("expected 4 coach personalities, got %d", len(personalities))
	}
	for _, p := range personalities {
		if p.Kind != CoachPersonality {
			t.Fatalf("unexpected kind %s", p.Kind)
		}
	}
	if got := store.ListKind("unknown"); len(got) != 0 {
		t.Fatalf("expected no options, got %d", len(got))
	}
}

func TestListReturnsCopy(t *testing.T) {
	store := NewMemoryStore(Seed())
	items := store.List()
	items[0].Label = "changed"

	if store.List()[0].Label == "changed" {
		t.Fatal("caller mutation leaked into the store")
	}
}
