package suggest

import "strings"

// Normalize 清理單一食材名稱：去除前後空白並轉小寫
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeAll 清理一批食材名稱
// 保留輸入順序與重複項（呼叫端可能為每筆配不同效期），丟棄清理後為空的項目
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if s := Normalize(r); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NormalizePairs 清理一批 (名稱, 效期文字) 配對
// 名稱清理後為空的配對整筆丟棄，效期文字只去除前後空白
func NormalizePairs(pairs []Pair) []Pair {
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		name := Normalize(p.Name)
		if name == "" {
			continue
		}
		out = append(out, Pair{Name: name, Expiry: strings.TrimSpace(p.Expiry)})
	}
	return out
}
