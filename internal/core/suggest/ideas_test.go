package suggest

import (
	"strings"
	"testing"
)

func TestPantryIdeas(t *testing.T) {
	today := date(2026, 9, 1)

	out := PantryIdeas([]Pair{
		{Name: " Egg "},
		{Name: "tomato", Expiry: "2026-12-01"},
	}, today)

	if !strings.Contains(out, "Combine egg with pantry basics") {
		t.Errorf("missing lead line:\n%s", out)
	}
	if !strings.Contains(out, "Toss with egg, tomato") {
		t.Errorf("missing joined list:\n%s", out)
	}
	for _, heading := range []string{"• Quick Ideas", "• Pantry Pasta", "• Skillet Toss"} {
		if !strings.Contains(out, heading) {
			t.Errorf("missing heading %q", heading)
		}
	}
}

func TestPantryIdeasOutdatedExcluded(t *testing.T) {
	today := date(2026, 9, 1)

	out := PantryIdeas([]Pair{
		{Name: "milk", Expiry: "2020-01-01"},
		{Name: "rice"},
	}, today)
	if strings.Contains(out, "milk") {
		t.Errorf("outdated ingredient leaked into ideas:\n%s", out)
	}
	if !strings.Contains(out, "rice") {
		t.Errorf("valid ingredient missing:\n%s", out)
	}
}

func TestPantryIdeasAllOutdated(t *testing.T) {
	today := date(2026, 9, 1)

	tests := [][]Pair{
		nil,
		{{Name: "milk", Expiry: "2000-01-01"}},
		{{Name: "   "}},
	}
	for _, raw := range tests {
		if got := PantryIdeas(raw, today); got != IdeasUnavailableMessage {
			t.Errorf("PantryIdeas(%v) = %q, want unavailable message", raw, got)
		}
	}
}

func TestPantryIdeasDeterministic(t *testing.T) {
	today := date(2026, 9, 1)
	in := []Pair{{Name: "egg"}, {Name: "spinach"}}
	if PantryIdeas(in, today) != PantryIdeas(in, today) {
		t.Error("same input produced different ideas text")
	}
}
