package suggest

import (
	"math"
	"testing"
)

func TestRankOrderingAndCap(t *testing.T) {
	recipes := make([]Recipe, 8)
	stats := make(map[string]MatchStats, 8)
	for i := range recipes {
		id := string(rune('a' + i))
		recipes[i] = Recipe{ID: id, Title: "recipe " + id}
		stats[id] = MatchStats{MatchedWeight: float64(i), TotalCount: 8}
	}

	got := Rank(recipes, stats, DefaultEaseBonus, DefaultTopN)

	if len(got) != DefaultTopN {
		t.Fatalf("len = %d, want %d", len(got), DefaultTopN)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not non-increasing at %d: %f > %f", i, got[i].Score, got[i-1].Score)
		}
	}
	if got[0].ID != "h" {
		t.Errorf("best recipe = %s, want h (highest matched weight)", got[0].ID)
	}
}

func TestRankStableTies(t *testing.T) {
	// 同分時維持抓取順序
	recipes := []Recipe{{ID: "first"}, {ID: "second"}, {ID: "third"}}
	stats := map[string]MatchStats{
		"first":  {MatchedWeight: 1, TotalCount: 2},
		"second": {MatchedWeight: 1, TotalCount: 2},
		"third":  {MatchedWeight: 1, TotalCount: 2},
	}

	got := Rank(recipes, stats, DefaultEaseBonus, DefaultTopN)
	for i, want := range []string{"first", "second", "third"} {
		if got[i].ID != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestRankScoreFormula(t *testing.T) {
	recipes := []Recipe{{ID: "r"}}
	stats := map[string]MatchStats{"r": {MatchedWeight: 1.6, TotalCount: 4}}

	got := Rank(recipes, stats, 0.12, 5)
	want := 1.6/4.0 + 0.12*(1.0/4.0)
	if math.Abs(got[0].Score-want) > 1e-9 {
		t.Errorf("score = %f, want %f", got[0].Score, want)
	}
}

func TestRankZeroTotalCount(t *testing.T) {
	// 統計缺漏時以 1 為下限，不得除以零
	recipes := []Recipe{{ID: "r"}}
	got := Rank(recipes, map[string]MatchStats{}, DefaultEaseBonus, DefaultTopN)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Score != DefaultEaseBonus {
		t.Errorf("score = %f, want bare ease bonus %f", got[0].Score, DefaultEaseBonus)
	}
}

func TestRankEaseBonusFavorsSimplerRecipe(t *testing.T) {
	// 覆蓋率相同時，總食材較少的食譜要排前面
	recipes := []Recipe{{ID: "complex"}, {ID: "simple"}}
	stats := map[string]MatchStats{
		"complex": {MatchedWeight: 4, TotalCount: 8},
		"simple":  {MatchedWeight: 1, TotalCount: 2},
	}

	got := Rank(recipes, stats, DefaultEaseBonus, DefaultTopN)
	if got[0].ID != "simple" {
		t.Errorf("got[0] = %s, want simple", got[0].ID)
	}
}

func TestRankBaseWithinRange(t *testing.T) {
	// 權重上限 1.6 時 base 不超過 1.6，一般權重下落在 [0, 1]
	recipes := []Recipe{{ID: "r"}}
	stats := map[string]MatchStats{"r": {MatchedWeight: 3, TotalCount: 3}}

	got := Rank(recipes, stats, 0, 5)
	if got[0].Score < 0 || got[0].Score > 1 {
		t.Errorf("base = %f outside [0, 1] for unit weights", got[0].Score)
	}
}
