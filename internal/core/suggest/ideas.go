package suggest

import (
	"fmt"
	"strings"
	"time"
)

// IdeasUnavailableMessage 所有食材都過期或缺漏時回覆的固定文字
const IdeasUnavailableMessage = "All ingredients are outdated or missing. Update dates to get AI suggestions."

// PantryIdeas 以固定模板產生料理靈感文字
// 套用與建議引擎相同的過期分割規則，只使用有效配對；
// 完全確定性，不呼叫任何外部服務
func PantryIdeas(raw []Pair, today time.Time) string {
	valid, _ := partition(NormalizePairs(raw), today)
	if len(valid) == 0 {
		return IdeasUnavailableMessage
	}

	names := make([]string, 0, len(valid))
	for _, p := range valid {
		names = append(names, p.Name)
	}

	lead := names[0]
	all := strings.Join(names, ", ")

	return fmt.Sprintf(`• Quick Ideas
  - Combine %s with pantry basics
  - Sear in oil, season with salt and pepper
  - Add acidity with vinegar or soy sauce
• Pantry Pasta
  - Boil pasta
  - Sizzle garlic in oil
  - Toss with %s and a splash of cooking water
• Skillet Toss
  - Chop ingredients evenly
  - High heat sauté
  - Finish with butter and black pepper`, lead, all)
}
