package suggest

import "time"

// BuildWanted 將有效配對轉成名稱→急迫度權重的查詢集合
// 同名食材出現多次時保留觀察到的最大權重
func BuildWanted(pairs []Pair, today time.Time) map[string]float64 {
	wanted := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		w := PairWeight(p, today)
		if prev, ok := wanted[p.Name]; !ok || w > prev {
			wanted[p.Name] = w
		}
	}
	return wanted
}

// Match 掃描完整關聯表，累計每道食譜的匹配統計
// 回傳統計映射與食譜 id 的首次出現順序；順序決定同分時的展示序
// 沒有任何關聯列的食譜不會出現在結果中
func Match(links []IngredientLink, wanted map[string]float64) (map[string]MatchStats, []string) {
	stats := make(map[string]MatchStats)
	order := make([]string, 0)

	for _, link := range links {
		name := Normalize(link.Name)
		if link.RecipeID == "" || name == "" {
			continue
		}

		st, seen := stats[link.RecipeID]
		if !seen {
			order = append(order, link.RecipeID)
		}
		st.TotalCount++
		if w, ok := wanted[name]; ok {
			st.MatchedWeight += w
		}
		stats[link.RecipeID] = st
	}

	return stats, order
}
