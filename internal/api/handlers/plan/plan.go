// Package plan 處理首頁表單流程：輸入食材、產生建議、保存會話
package plan

import (
	"net/http"

	"leftover-chef/internal/core/session"
	"leftover-chef/internal/core/suggest"
	"leftover-chef/internal/infrastructure/config"
	"leftover-chef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionCookieMaxAge 會話 cookie 的存活秒數
const sessionCookieMaxAge = 72 * 60 * 60

// Handler 表單流程處理器
type Handler struct {
	service  *suggest.Service
	sessions session.Store
	config   *config.Config
}

// NewHandler 創建表單流程處理器
func NewHandler(service *suggest.Service, sessions session.Store, cfg *config.Config) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		config:   cfg,
	}
}

// viewData index.html 的渲染資料
type viewData struct {
	Suggestions []string
	Recipes     []suggest.ScoredRecipe
	Ingredients []suggest.Pair
	Outdated    []suggest.Pair
	UseFirst    []suggest.UseFirstEntry
	FromStore   bool
	AIEnabled   bool
}

// Index 首頁：從會話預填上次輸入的食材
func (h *Handler) Index(c *gin.Context) {
	pairs := h.loadSession(c)

	c.HTML(http.StatusOK, "index.html", viewData{
		Ingredients: pairs,
		AIEnabled:   h.config.AI.Enabled,
	})
}

// Plan 提交表單並產生建議
func (h *Handler) Plan(c *gin.Context) {
	pairs := formPairs(c)

	result := h.service.Plan(c.Request.Context(), pairs)

	// 保存這次輸入，失敗不影響回應
	h.saveSession(c, suggest.NormalizePairs(pairs))

	suggestions := make([]string, 0, len(result.Recipes))
	for _, r := range result.Recipes {
		suggestions = append(suggestions, r.Title)
	}
	if len(suggestions) == 0 && len(suggest.NormalizePairs(pairs)) == 0 {
		suggestions = append(suggestions, "Add ingredients to get suggestions.")
	}

	c.HTML(http.StatusOK, "index.html", viewData{
		Suggestions: suggestions,
		Recipes:     result.Recipes,
		Ingredients: suggest.NormalizePairs(pairs),
		Outdated:    result.Outdated,
		UseFirst:    result.UseFirst,
		FromStore:   result.Source == suggest.SourceStore,
		AIEnabled:   h.config.AI.Enabled,
	})
}

// Save 靜默保存目前的表單內容（前端欄位變動時呼叫）
func (h *Handler) Save(c *gin.Context) {
	h.saveSession(c, suggest.NormalizePairs(formPairs(c)))
	c.Status(http.StatusNoContent)
}

// Row 回傳一列空白的食材輸入列
func (h *Handler) Row(c *gin.Context) {
	c.HTML(http.StatusOK, "ingredient_row.html", gin.H{})
}

// formPairs 將表單的 ingredient/expiry 欄位按列配對
func formPairs(c *gin.Context) []suggest.Pair {
	names := c.PostFormArray("ingredient")
	expiries := c.PostFormArray("expiry")

	pairs := make([]suggest.Pair, 0, len(names))
	for i, name := range names {
		expiry := ""
		if i < len(expiries) {
			expiry = expiries[i]
		}
		pairs = append(pairs, suggest.Pair{Name: name, Expiry: expiry})
	}
	return pairs
}

// loadSession 讀取會話中的食材清單，沒有 cookie 或讀取失敗都回傳空
func (h *Handler) loadSession(c *gin.Context) []suggest.Pair {
	sid, err := c.Cookie(h.config.Session.CookieName)
	if err != nil || sid == "" {
		return nil
	}

	pairs, err := h.sessions.Get(c.Request.Context(), sid)
	if err != nil {
		common.LogWarn("Session read failed",
			zap.Error(err),
		)
		return nil
	}
	return pairs
}

// saveSession 覆寫會話中的食材清單，必要時先發 cookie
func (h *Handler) saveSession(c *gin.Context, pairs []suggest.Pair) {
	sid, err := c.Cookie(h.config.Session.CookieName)
	if err != nil || sid == "" {
		sid = common.GenerateUUID()
		c.SetCookie(h.config.Session.CookieName, sid, sessionCookieMaxAge, "/", "", false, true)
	}

	if err := h.sessions.Set(c.Request.Context(), sid, pairs); err != nil {
		common.LogWarn("Session write failed",
			zap.Error(err),
		)
	}
}
