package suggest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"leftover-chef/internal/infrastructure/config"
	"leftover-chef/internal/pkg/common"

	"go.uber.org/zap"
)

// 資料庫路徑的三種不可用狀態，對應不同的記錄方式
// 三者都會讓建議改走靜態後備表，絕不向使用者回報錯誤
var (
	// ErrStoreNotConfigured 未設定資料庫（預期情況，不記為錯誤）
	ErrStoreNotConfigured = errors.New("recipe store not configured")
	// ErrStoreUnavailable 資料庫查詢失敗
	ErrStoreUnavailable = errors.New("recipe store unavailable")
	// ErrStoreEmpty 資料庫可達但沒有可用的關聯資料
	ErrStoreEmpty = errors.New("recipe store returned no usable rows")
)

// RecipeSource 建議引擎對資料庫的最小查詢介面
type RecipeSource interface {
	// ListLinks 取得完整的食譜—食材關聯表（全表掃描，過濾在本地進行）
	ListLinks(ctx context.Context) ([]IngredientLink, error)
	// RecipesByID 取得指定 id 集合的食譜，並依傳入順序回傳
	RecipesByID(ctx context.Context, ids []string) ([]Recipe, error)
}

// AuditSink 提交紀錄的寫入端（盡力而為，失敗必須被吞掉）
type AuditSink interface {
	RecordSubmission(ctx context.Context, batchID string, pairs []Pair) error
}

// Service 建議引擎的進入點
// 單一請求即單次同步計算，每次都重新抓取、重新計分，沒有快取
type Service struct {
	source    RecipeSource // nil 表示未設定資料庫
	audit     AuditSink    // nil 表示不記錄提交
	easeBonus float64
	topN      int
	now       func() time.Time
}

// NewService 創建建議引擎
// source 與 audit 都允許為 nil，引擎會自動降級
func NewService(cfg *config.SuggestConfig, source RecipeSource, audit AuditSink) *Service {
	easeBonus := DefaultEaseBonus
	topN := DefaultTopN
	if cfg != nil {
		if cfg.EaseBonus > 0 {
			easeBonus = cfg.EaseBonus
		}
		if cfg.TopN > 0 {
			topN = cfg.TopN
		}
	}
	return &Service{
		source:    source,
		audit:     audit,
		easeBonus: easeBonus,
		topN:      topN,
		now:       time.Now,
	}
}

// SetClock 注入「今天」的來源，測試用
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Plan 對一批表單配對執行完整的建議計算
// 回傳值永遠可用：任何資料庫問題都會降級到後備規則表
func (s *Service) Plan(ctx context.Context, raw []Pair) *PlanResult {
	today := s.now()
	pairs := NormalizePairs(raw)

	// 分割有效與過期：效期嚴格早於今天的配對不參與權重計算，
	// 但要回報給呼叫端提醒使用者
	valid, outdated := partition(pairs, today)

	// 提交紀錄：盡力而為，任何失敗都不影響建議結果
	s.recordSubmission(ctx, pairs)

	result := &PlanResult{
		Outdated: outdated,
		UseFirst: UseFirstOrder(pairs, today),
	}

	names := make([]string, 0, len(valid))
	for _, p := range valid {
		names = append(names, p.Name)
	}

	// 空的有效集合：兩條路徑都約定回傳空清單
	if len(valid) == 0 {
		result.Source = SourceFallback
		return result
	}

	ranked, err := s.storeSuggest(ctx, valid, today)
	if err == nil && len(ranked) > 0 {
		result.Recipes = ranked
		result.Source = SourceStore
		return result
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrStoreNotConfigured):
			// 預期情況，不記為錯誤
			common.LogDebug("Recipe store not configured, using fallback rules")
		case errors.Is(err, ErrStoreEmpty):
			common.LogInfo("Recipe store returned nothing usable, using fallback rules")
		default:
			common.LogWarn("Recipe store query failed, using fallback rules",
				zap.Error(err),
			)
		}
	}

	result.Recipes = FallbackSuggest(names)
	result.Source = SourceFallback
	return result
}

// storeSuggest 資料庫評分路徑
// 兩次循序讀取：先全表掃描關聯，再抓取候選食譜
func (s *Service) storeSuggest(ctx context.Context, valid []Pair, today time.Time) ([]ScoredRecipe, error) {
	if s.source == nil {
		return nil, ErrStoreNotConfigured
	}

	links, err := s.source.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(links) == 0 {
		return nil, ErrStoreEmpty
	}

	wanted := BuildWanted(valid, today)
	stats, order := Match(links, wanted)
	if len(stats) == 0 {
		return nil, ErrStoreEmpty
	}

	recipes, err := s.source.RecipesByID(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(recipes) == 0 {
		return nil, ErrStoreEmpty
	}

	return Rank(recipes, stats, s.easeBonus, s.topN), nil
}

// recordSubmission 寫入提交紀錄，錯誤一律吞掉只留警告
func (s *Service) recordSubmission(ctx context.Context, pairs []Pair) {
	if s.audit == nil || len(pairs) == 0 {
		return
	}
	batchID := common.GenerateUUID()
	if err := s.audit.RecordSubmission(ctx, batchID, pairs); err != nil {
		common.LogWarn("Submission audit write failed",
			zap.Error(err),
			zap.String("batch_id", batchID),
		)
	}
}

// partition 分割有效與過期配對
// 無法解析的效期視為未填，歸入有效
func partition(pairs []Pair, today time.Time) (valid, outdated []Pair) {
	for _, p := range pairs {
		expiry, ok := ParseExpiry(p.Expiry)
		if ok && DaysUntil(expiry, today) < 0 {
			outdated = append(outdated, p)
			continue
		}
		valid = append(valid, p)
	}
	return valid, outdated
}

// UseFirstOrder 產生「優先使用」排序：全部配對（含過期）依剩餘天數遞增，
// 無效期的排最後，同天數依名稱字母序保證結果確定
func UseFirstOrder(pairs []Pair, today time.Time) []UseFirstEntry {
	entries := make([]UseFirstEntry, 0, len(pairs))
	for _, p := range pairs {
		e := UseFirstEntry{Pair: p, DaysLeft: noExpiryDays}
		if expiry, ok := ParseExpiry(p.Expiry); ok {
			e.DaysLeft = DaysUntil(expiry, today)
			e.HasExpiry = true
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DaysLeft != entries[j].DaysLeft {
			return entries[i].DaysLeft < entries[j].DaysLeft
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}
