package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leftover-chef/internal/api"
	"leftover-chef/internal/core/session"
	"leftover-chef/internal/infrastructure/config"
	"leftover-chef/internal/infrastructure/store"
	"leftover-chef/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 使用 logger 記錄啟動信息
	common.LogInfo("載入設定",
		zap.String("database_driver", cfg.Database.Driver),
		zap.Bool("database_configured", cfg.Database.Configured()),
		zap.Bool("ai_enabled", cfg.AI.Enabled),
	)

	// 開啟食譜資料庫
	// 未設定或開啟失敗都不是致命錯誤：建議引擎會降級到靜態後備表
	var db *store.Store
	if cfg.Database.Configured() {
		db, err = store.Open(cfg.Database)
		if err != nil {
			common.LogWarn("Failed to open recipe store, suggestions will use fallback rules",
				zap.Error(err),
			)
			db = nil
		}
	} else {
		common.LogInfo("Recipe store not configured, suggestions will use fallback rules")
	}
	if db != nil {
		defer db.Close()
	}

	// 初始化會話存放
	sessions := session.NewStore(&cfg.Session)
	defer sessions.Close()

	// 設置路由
	router, err := api.SetupRouter(cfg, db, sessions)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
