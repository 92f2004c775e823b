package suggest

import "sort"

const (
	// DefaultEaseBonus 簡易度加成係數
	// 設計常數：獎勵總食材數較少的食譜，縮放到不會蓋過匹配度明顯更好的結果
	DefaultEaseBonus = 0.12

	// DefaultTopN 預設回傳的建議數量上限
	DefaultTopN = 5
)

// Rank 依匹配統計為候選食譜打分並排序
// recipes 的傳入順序即同分時的次序（穩定排序），回傳最多 limit 筆
//
// 每道食譜：base = matched_weight / max(total, 1)，ease = 1 / max(total, 1)，
// score = base + easeBonus * ease。base 獎勵的是食材覆蓋率而非命中數，
// 小而簡單的食譜不會因為食材少而吃虧
func Rank(recipes []Recipe, stats map[string]MatchStats, easeBonus float64, limit int) []ScoredRecipe {
	scored := make([]ScoredRecipe, 0, len(recipes))
	for _, rec := range recipes {
		st := stats[rec.ID]
		// 防禦性下限，避免除以零
		total := st.TotalCount
		if total < 1 {
			total = 1
		}
		base := st.MatchedWeight / float64(total)
		ease := 1.0 / float64(total)
		scored = append(scored, ScoredRecipe{
			Recipe: rec,
			Score:  base + easeBonus*ease,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
