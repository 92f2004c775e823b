package suggest

import (
	"time"
)

const (
	// urgencyMax 過期或今天到期時的最大急迫度乘數
	urgencyMax = 1.6
	// urgencyWindowDays 急迫度開始爬升的剩餘天數
	urgencyWindowDays = 30

	// noExpiryDays 「優先使用」排序中無效期項目的哨兵天數，永遠排在最後
	noExpiryDays = 1 << 30
)

// 支援的效期日期格式，依序嘗試
var expiryLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
}

// ParseExpiry 寬鬆解析效期文字
// 解析失敗一律視為未填效期，不回傳錯誤
func ParseExpiry(text string) (time.Time, bool) {
	s := text
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil 計算效期距今天數（以日曆日為單位，忽略時分秒）
// 過期為負數，今天到期為 0
func DaysUntil(expiry, today time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// ExpiryWeight 依剩餘天數計算急迫度乘數
// daysLeft <= 0 時為最大值 1.6，>= 30 天時為 1.0，之間線性遞減
func ExpiryWeight(daysLeft int) float64 {
	switch {
	case daysLeft <= 0:
		return urgencyMax
	case daysLeft >= urgencyWindowDays:
		return 1.0
	default:
		return 1.0 + (urgencyMax-1.0)*float64(urgencyWindowDays-daysLeft)/float64(urgencyWindowDays)
	}
}

// PairWeight 計算單筆配對的急迫度乘數
// 未填或無法解析的效期一律視為無急迫度訊號（1.0）
func PairWeight(p Pair, today time.Time) float64 {
	expiry, ok := ParseExpiry(p.Expiry)
	if !ok {
		return 1.0
	}
	return ExpiryWeight(DaysUntil(expiry, today))
}
