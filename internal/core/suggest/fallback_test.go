package suggest

import (
	"reflect"
	"strings"
	"testing"
)

func TestFallbackSuggest(t *testing.T) {
	tests := []struct {
		name       string
		in         []string
		wantTitles []string
	}{
		{
			name:       "egg triggers omelette",
			in:         []string{"egg"},
			wantTitles: []string{"Simple Omelette"},
		},
		{
			name:       "plural form also matches",
			in:         []string{"eggs"},
			wantTitles: []string{"Simple Omelette"},
		},
		{
			name:       "empty input yields nothing",
			in:         nil,
			wantTitles: nil,
		},
		{
			name:       "blank-only input yields nothing",
			in:         []string{"", "  "},
			wantTitles: nil,
		},
		{
			name:       "unmatched input gets catch-all",
			in:         []string{"dragonfruit"},
			wantTitles: []string{"Zero-waste Salad"},
		},
		{
			name:       "multiple triggers keep table order",
			in:         []string{"rice", "tomato", "egg"},
			wantTitles: []string{"Simple Omelette", "Tomato & Egg Shakshuka", "Veggie Fried Rice"},
		},
		{
			name: "full pantry capped at five",
			in:   []string{"egg", "tomato", "rice", "bread", "garlic"},
			wantTitles: []string{
				"Simple Omelette",
				"Tomato & Egg Shakshuka",
				"Veggie Fried Rice",
				"Panzanella Salad",
				"Garlic Olive Oil Pasta (Aglio e Olio)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackSuggest(tt.in)
			titles := make([]string, 0, len(got))
			for _, r := range got {
				titles = append(titles, r.Title)
			}
			if len(titles) == 0 {
				titles = nil
			}
			if !reflect.DeepEqual(titles, tt.wantTitles) {
				t.Errorf("FallbackSuggest(%v) titles = %v, want %v", tt.in, titles, tt.wantTitles)
			}
			if len(got) > DefaultTopN {
				t.Errorf("returned %d results, cap is %d", len(got), DefaultTopN)
			}
		})
	}
}

func TestFallbackSuggestDeterministic(t *testing.T) {
	in := []string{"garlic", "pasta", "egg"}
	first := FallbackSuggest(in)
	second := FallbackSuggest(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input produced different output:\n%v\n%v", first, second)
	}
}

func TestFallbackScoresAreStatic(t *testing.T) {
	// 分數來自表格，不隨輸入集合大小改變
	alone := FallbackSuggest([]string{"rice"})
	crowded := FallbackSuggest([]string{"rice", "egg", "tomato"})

	var riceAlone, riceCrowded float64
	for _, r := range alone {
		if r.ID == FallbackIDPrefix+"fried-rice" {
			riceAlone = r.Score
		}
	}
	for _, r := range crowded {
		if r.ID == FallbackIDPrefix+"fried-rice" {
			riceCrowded = r.Score
		}
	}
	if riceAlone == 0 || riceAlone != riceCrowded {
		t.Errorf("fried rice score changed with input: %f vs %f", riceAlone, riceCrowded)
	}
}

func TestFallbackIDs(t *testing.T) {
	for _, r := range FallbackSuggest([]string{"egg", "bread"}) {
		if !IsFallbackID(r.ID) {
			t.Errorf("fallback result %s missing %q prefix", r.ID, FallbackIDPrefix)
		}
		if !strings.HasPrefix(r.ID, FallbackIDPrefix) {
			t.Errorf("IsFallbackID inconsistent for %s", r.ID)
		}
	}
	if IsFallbackID("store-recipe-1") {
		t.Error("IsFallbackID matched a store id")
	}
}

func TestFallbackRecipeLookup(t *testing.T) {
	rec, keywords, ok := FallbackRecipe(FallbackIDPrefix + "omelette")
	if !ok {
		t.Fatal("omelette not found")
	}
	if rec.Title != "Simple Omelette" {
		t.Errorf("title = %s", rec.Title)
	}
	if len(keywords) == 0 {
		t.Error("expected trigger keywords as ingredient list")
	}

	if _, _, ok := FallbackRecipe(FallbackIDPrefix + "unknown"); ok {
		t.Error("unknown id reported found")
	}
}
