package api

import (
	"context"
	"net/http"
	"time"

	aiHandler "leftover-chef/internal/api/handlers/ai"
	"leftover-chef/internal/api/handlers/health"
	planHandler "leftover-chef/internal/api/handlers/plan"
	recipeHandler "leftover-chef/internal/api/handlers/recipe"
	"leftover-chef/internal/api/middleware"
	"leftover-chef/internal/core/extract"
	"leftover-chef/internal/core/session"
	"leftover-chef/internal/core/suggest"
	"leftover-chef/internal/infrastructure/config"
	"leftover-chef/internal/infrastructure/store"
	"leftover-chef/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (1MB)：表單與小型 JSON，不收大負載
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
// db 允許為 nil（未設定資料庫時建議引擎走後備規則表）
func SetupRouter(cfg *config.Config, db *store.Store, sessions session.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("database_configured", db != nil),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 重複提交去重
	router.Use(middleware.Deduplication(cfg))

	// 視圖模板與靜態檔案
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	// 初始化服務
	suggestSvc := suggest.NewService(&cfg.Suggest, recipeSource(db), auditSink(db))
	extractor := extract.NewExtractor(&cfg.Extract)

	planH := planHandler.NewHandler(suggestSvc, sessions, cfg)
	recipeH := recipeHandler.NewHandler(db)
	aiH := aiHandler.NewHandler(cfg, extractor)

	common.LogInfo("Services initialized",
		zap.Bool("session_store_ready", sessions != nil),
		zap.Bool("ai_enabled", cfg.AI.Enabled),
	)

	// 全局中間件：設置超時和配置
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// 設置配置
		c.Set("config", cfg)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck(db))
	router.GET("/live", health.LivenessCheck)

	// 頁面路由
	router.GET("/", planH.Index)
	router.POST("/plan", planH.Plan)
	router.POST("/save", planH.Save)
	router.POST("/row", planH.Row)
	router.GET("/recipe/:id", recipeH.Detail)
	router.GET("/recipe/:id/shopping-list", recipeH.ShoppingList)

	// JSON API 路由
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/suggest-ai", aiH.SuggestAI)
		apiGroup.GET("/extract", aiH.Extract)
	}

	common.LogInfo("Router setup complete")

	return router, nil
}

// recipeSource 將可能為 nil 的 *store.Store 轉成介面
// 直接把 nil 指針塞進介面會得到非 nil 介面值，這裡保持語義正確
func recipeSource(db *store.Store) suggest.RecipeSource {
	if db == nil {
		return nil
	}
	return db
}

// auditSink 同上，提交紀錄端
func auditSink(db *store.Store) suggest.AuditSink {
	if db == nil {
		return nil
	}
	return db
}
