// Package ai 提供料理靈感與文章擷取的 JSON 端點
// 兩個端點的任何失敗都以 200 回應帶原因，不產生使用者可見的錯誤頁
package ai

import (
	"net/http"
	"time"

	"leftover-chef/internal/core/extract"
	"leftover-chef/internal/core/suggest"
	"leftover-chef/internal/infrastructure/config"
	"leftover-chef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 靈感與擷取端點處理器
type Handler struct {
	config    *config.Config
	extractor *extract.Extractor
}

// NewHandler 創建處理器
func NewHandler(cfg *config.Config, extractor *extract.Extractor) *Handler {
	return &Handler{
		config:    cfg,
		extractor: extractor,
	}
}

// ideasRequest 料理靈感請求
type ideasRequest struct {
	Ingredients []string `json:"ingredients"`
	Expiries    []string `json:"expiries"`
}

// SuggestAI 依目前食材產生固定模板的料理靈感文字
func (h *Handler) SuggestAI(c *gin.Context) {
	if !h.config.AI.Enabled {
		c.JSON(http.StatusOK, gin.H{"disabled": true})
		return
	}

	var req ideasRequest
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		// 格式錯誤視同空輸入
		req = ideasRequest{}
	}

	pairs := make([]suggest.Pair, 0, len(req.Ingredients))
	for i, name := range req.Ingredients {
		expiry := ""
		if i < len(req.Expiries) {
			expiry = req.Expiries[i]
		}
		pairs = append(pairs, suggest.Pair{Name: name, Expiry: expiry})
	}

	text := suggest.PantryIdeas(pairs, time.Now())
	c.JSON(http.StatusOK, gin.H{"ok": true, "text": text})
}

// Extract 擷取外部網頁的可讀文章內容
func (h *Handler) Extract(c *gin.Context) {
	rawURL := c.Query("url")

	article, err := h.extractor.Extract(c.Request.Context(), rawURL)
	if err != nil {
		common.LogInfo("Article extraction failed",
			zap.Error(err),
			zap.String("url", rawURL),
		)
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": extractErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "title": article.Title, "text": article.Text})
}

// extractErrorMessage 對應前端顯示用的原因文字
func extractErrorMessage(err error) string {
	switch err {
	case extract.ErrInvalidURL:
		return "Invalid or missing url param"
	case extract.ErrFetchFailed:
		return "Failed to fetch page"
	case extract.ErrNoReadableText:
		return "Could not extract readable text"
	default:
		return "Unexpected error"
	}
}
