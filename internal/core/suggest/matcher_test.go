package suggest

import (
	"reflect"
	"testing"
)

func TestBuildWanted(t *testing.T) {
	today := date(2026, 9, 1)

	pairs := []Pair{
		{Name: "egg", Expiry: ""},           // 權重 1.0
		{Name: "egg", Expiry: "2026-09-01"}, // 權重 1.6，同名取最大
		{Name: "rice", Expiry: "2099-01-01"},
	}

	wanted := BuildWanted(pairs, today)
	if len(wanted) != 2 {
		t.Fatalf("len(wanted) = %d, want 2", len(wanted))
	}
	if wanted["egg"] != 1.6 {
		t.Errorf("wanted[egg] = %f, want 1.6 (max of observed weights)", wanted["egg"])
	}
	if wanted["rice"] != 1.0 {
		t.Errorf("wanted[rice] = %f, want 1.0", wanted["rice"])
	}
}

func TestMatch(t *testing.T) {
	links := []IngredientLink{
		{RecipeID: "r1", Name: "Egg"},
		{RecipeID: "r1", Name: "cheese"},
		{RecipeID: "r2", Name: "rice"},
		{RecipeID: "r2", Name: "egg"},
		{RecipeID: "r2", Name: "soy sauce"},
		{RecipeID: "", Name: "egg"},   // 缺 id，忽略
		{RecipeID: "r3", Name: "   "}, // 空名稱，忽略
	}
	wanted := map[string]float64{"egg": 1.6, "rice": 1.0}

	stats, order := Match(links, wanted)

	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2 (got %v)", len(stats), stats)
	}
	if st := stats["r1"]; st.TotalCount != 2 || st.MatchedWeight != 1.6 {
		t.Errorf("stats[r1] = %+v, want total 2, matched 1.6", st)
	}
	if st := stats["r2"]; st.TotalCount != 3 || st.MatchedWeight != 2.6 {
		t.Errorf("stats[r2] = %+v, want total 3, matched 2.6", st)
	}
	if want := []string{"r1", "r2"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestMatchEmptyWanted(t *testing.T) {
	// 空的查詢集合仍回傳統計，壓制與否由協調器決定
	links := []IngredientLink{
		{RecipeID: "r1", Name: "egg"},
		{RecipeID: "r1", Name: "milk"},
	}

	stats, order := Match(links, map[string]float64{})
	if len(order) != 1 {
		t.Fatalf("order = %v, want one recipe", order)
	}
	if st := stats["r1"]; st.TotalCount != 2 || st.MatchedWeight != 0 {
		t.Errorf("stats[r1] = %+v, want total 2, matched 0", st)
	}
}

func TestMatchNoLinks(t *testing.T) {
	stats, order := Match(nil, map[string]float64{"egg": 1.0})
	if len(stats) != 0 || len(order) != 0 {
		t.Errorf("Match(nil) = %v, %v, want empty", stats, order)
	}
}
