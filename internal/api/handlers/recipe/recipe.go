// Package recipe 處理食譜詳情頁與購物清單匯出
package recipe

import (
	"fmt"
	"net/http"
	"strings"

	"leftover-chef/internal/core/suggest"
	"leftover-chef/internal/infrastructure/store"
	"leftover-chef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 食譜詳情處理器
// db 允許為 nil：未設定資料庫時只有後備食譜有詳情可看
type Handler struct {
	db *store.Store
}

// NewHandler 創建食譜詳情處理器
func NewHandler(db *store.Store) *Handler {
	return &Handler{db: db}
}

// detailData recipe.html 的渲染資料
type detailData struct {
	Recipe      suggest.Recipe
	Ingredients []string
	Steps       []string
}

// genericDetail 查不到資料時的通用詳情頁
var genericDetail = detailData{
	Recipe: suggest.Recipe{
		Title:      "Recipe",
		Directions: "No extra details available.",
	},
}

// Detail 食譜詳情頁
// 後備 id 直接用靜態表渲染，不碰資料庫
func (h *Handler) Detail(c *gin.Context) {
	id := c.Param("id")

	if suggest.IsFallbackID(id) || h.db == nil {
		if rec, keywords, ok := suggest.FallbackRecipe(id); ok {
			c.HTML(http.StatusOK, "recipe.html", detailData{
				Recipe:      rec,
				Ingredients: keywords,
				Steps:       splitSteps(rec.Directions),
			})
			return
		}
		c.HTML(http.StatusOK, "recipe.html", genericDetail)
		return
	}

	rec, err := h.db.RecipeByID(c.Request.Context(), id)
	if err != nil {
		common.LogWarn("Recipe detail lookup failed",
			zap.Error(err),
			zap.String("recipe_id", id),
		)
		c.HTML(http.StatusOK, "recipe.html", genericDetail)
		return
	}

	ingredients, err := h.db.IngredientNames(c.Request.Context(), id)
	if err != nil {
		common.LogWarn("Recipe ingredients lookup failed",
			zap.Error(err),
			zap.String("recipe_id", id),
		)
		ingredients = nil
	}

	c.HTML(http.StatusOK, "recipe.html", detailData{
		Recipe:      *rec,
		Ingredients: ingredients,
		Steps:       splitSteps(rec.Directions),
	})
}

// ShoppingList 以純文字附件匯出食譜所需的食材清單
func (h *Handler) ShoppingList(c *gin.Context) {
	id := c.Param("id")

	var title string
	var ingredients []string

	if suggest.IsFallbackID(id) || h.db == nil {
		rec, keywords, ok := suggest.FallbackRecipe(id)
		if !ok {
			c.String(http.StatusNotFound, "recipe not found\n")
			return
		}
		title = rec.Title
		ingredients = keywords
	} else {
		rec, err := h.db.RecipeByID(c.Request.Context(), id)
		if err != nil {
			c.String(http.StatusNotFound, "recipe not found\n")
			return
		}
		title = rec.Title
		ingredients, err = h.db.IngredientNames(c.Request.Context(), id)
		if err != nil {
			common.LogWarn("Shopping list ingredients lookup failed",
				zap.Error(err),
				zap.String("recipe_id", id),
			)
		}
	}

	var sb strings.Builder
	sb.WriteString("Shopping list: " + title + "\n\n")
	for _, name := range ingredients {
		sb.WriteString("- " + name + "\n")
	}
	if len(ingredients) == 0 {
		sb.WriteString("(no ingredient data)\n")
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "shopping-list-"+id+".txt"))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(sb.String()))
}

// splitSteps 將作法文字切成步驟
// 優先按換行切，整段沒有換行時退回按句號切
func splitSteps(directions string) []string {
	text := strings.TrimSpace(strings.ReplaceAll(directions, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	var parts []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) > 1 {
		return parts
	}

	var steps []string
	for _, sentence := range strings.Split(text, ".") {
		if s := strings.TrimSpace(sentence); s != "" {
			steps = append(steps, s)
		}
	}
	return steps
}
