package suggest

// FallbackIDPrefix 後備食譜 id 的保留前綴
// 詳情頁與購物清單靠這個前綴辨識來源，不需要再查資料庫
const FallbackIDPrefix = "fallback-"

// IsFallbackID 判斷 id 是否屬於靜態後備表
func IsFallbackID(id string) bool {
	return len(id) >= len(FallbackIDPrefix) && id[:len(FallbackIDPrefix)] == FallbackIDPrefix
}

// fallbackRecipe 靜態後備表的一筆項目
// 觸發關鍵字與分數都是手工指定，不做動態計算
type fallbackRecipe struct {
	Recipe
	keywords []string
	score    float64
}

// fallbackTable 靜態後備規則表，依展示優先序排列
// 這是唯一一份權威資料，避免多處硬編碼漂移
var fallbackTable = []fallbackRecipe{
	{
		Recipe: Recipe{
			ID:         FallbackIDPrefix + "omelette",
			Title:      "Simple Omelette",
			Directions: "Beat eggs with salt and pepper, cook in a pan; optionally add chopped veggies or cheese.",
			Minutes:    10,
			Tags:       []string{"breakfast", "quick"},
		},
		keywords: []string{"egg", "eggs"},
		score:    0.6,
	},
	{
		Recipe: Recipe{
			ID:         FallbackIDPrefix + "shakshuka",
			Title:      "Tomato & Egg Shakshuka",
			Directions: "Sauté onion and garlic, add tomatoes and spices, simmer, crack eggs and cook until set.",
			Minutes:    25,
			Tags:       []string{"eggs", "tomato"},
		},
		keywords: []string{"tomato", "tomatoes"},
		score:    0.55,
	},
	{
		Recipe: Recipe{
			ID:         FallbackIDPrefix + "fried-rice",
			Title:      "Veggie Fried Rice",
			Directions: "Cook or use day-old rice. Stir-fry veggies, add rice and soy sauce; push aside and scramble an egg; mix.",
			Minutes:    20,
			Tags:       []string{"rice"},
		},
		keywords: []string{"rice"},
		score:    0.5,
	},
	{
		Recipe: Recipe{
			ID:         FallbackIDPrefix + "panzanella",
			Title:      "Panzanella Salad",
			Directions: "Toast stale bread, toss with tomatoes, cucumber, onion, olive oil, vinegar, and herbs.",
			Minutes:    15,
			Tags:       []string{"salad", "zero-waste"},
		},
		keywords: []string{"bread"},
		score:    0.45,
	},
	{
		Recipe: Recipe{
			ID:         FallbackIDPrefix + "aglio-olio",
			Title:      "Garlic Olive Oil Pasta (Aglio e Olio)",
			Directions: "Cook pasta. Sauté sliced garlic in oil, add chili flakes, toss pasta and finish with parsley.",
			Minutes:    15,
			Tags:       []string{"pasta"},
		},
		keywords: []string{"garlic", "pasta"},
		score:    0.4,
	},
}

// fallbackCatchAll 沒有任何規則命中時的通用建議
var fallbackCatchAll = fallbackRecipe{
	Recipe: Recipe{
		ID:         FallbackIDPrefix + "salad",
		Title:      "Zero-waste Salad",
		Directions: "Chop available vegetables, add olive oil or vinegar, salt, pepper, and herbs.",
		Minutes:    10,
		Tags:       []string{"salad"},
	},
	keywords: []string{},
	score:    0.3,
}

// FallbackSuggest 以靜態規則表產生建議
// 純函數：不碰資料庫，相同輸入永遠得到相同的有序輸出
// 空的名單回傳空結果；沒有規則命中但名單非空時回傳單筆通用建議
func FallbackSuggest(names []string) []ScoredRecipe {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if s := Normalize(n); s != "" {
			wanted[s] = true
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	out := make([]ScoredRecipe, 0, DefaultTopN)
	for _, fb := range fallbackTable {
		for _, kw := range fb.keywords {
			if wanted[kw] {
				out = append(out, ScoredRecipe{Recipe: fb.Recipe, Score: fb.score})
				break
			}
		}
	}
	if len(out) == 0 {
		out = append(out, ScoredRecipe{Recipe: fallbackCatchAll.Recipe, Score: fallbackCatchAll.score})
	}
	if len(out) > DefaultTopN {
		out = out[:DefaultTopN]
	}
	return out
}

// FallbackRecipe 以 id 查詢後備食譜，並附上其關鍵字清單（充當所需食材）
func FallbackRecipe(id string) (Recipe, []string, bool) {
	for _, fb := range fallbackTable {
		if fb.ID == id {
			return fb.Recipe, fb.keywords, true
		}
	}
	if fallbackCatchAll.ID == id {
		return fallbackCatchAll.Recipe, fallbackCatchAll.keywords, true
	}
	return Recipe{}, nil, false
}
