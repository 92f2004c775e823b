package suggest

// Pair 使用者輸入的一筆食材（名稱 + 原始效期文字）
// 效期留空字串表示未填寫
type Pair struct {
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
}

// Recipe 食譜
// Minutes 為 0 表示未提供烹調時間
type Recipe struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Directions string   `json:"directions"`
	Minutes    int      `json:"minutes,omitempty"`
	Tags       []string `json:"tags"`
}

// ScoredRecipe 帶評分的食譜
type ScoredRecipe struct {
	Recipe
	Score float64 `json:"score"`
}

// IngredientLink 食譜與食材的關聯（join table 的一列）
type IngredientLink struct {
	RecipeID string
	Name     string
}

// MatchStats 單一食譜的匹配統計
type MatchStats struct {
	MatchedWeight float64 // 命中食材的急迫度權重總和
	TotalCount    int     // 食譜需要的食材總數
}

// Source 標記建議結果來自哪條路徑，供 UI 顯示提示文字
type Source string

const (
	// SourceStore 結果來自資料庫評分
	SourceStore Source = "store"
	// SourceFallback 結果來自靜態後備規則表
	SourceFallback Source = "fallback"
)

// UseFirstEntry 「優先使用」清單的一筆項目
type UseFirstEntry struct {
	Pair
	DaysLeft  int  `json:"days_left"`
	HasExpiry bool `json:"has_expiry"`
}

// PlanResult 一次建議計算的完整輸出
// Recipes 與 Outdated 是兩份獨立輸出，呼叫端不得合併
type PlanResult struct {
	Recipes  []ScoredRecipe  `json:"recipes"`
	Outdated []Pair          `json:"outdated"`
	UseFirst []UseFirstEntry `json:"use_first"`
	Source   Source          `json:"source"`
}
