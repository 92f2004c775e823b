// Package store 以 GORM 實作建議引擎的資料庫協作端
// 支援 PostgreSQL 與 SQLite（純 Go，無 CGO）兩種後端，由設定選擇
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"leftover-chef/internal/core/suggest"
	"leftover-chef/internal/infrastructure/config"
	"leftover-chef/internal/pkg/common"

	"go.uber.org/zap"
)

// Store 食譜資料庫
type Store struct {
	db *gorm.DB
}

// Open 依設定開啟資料庫連線
func Open(cfg config.DatabaseConfig) (*Store, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("database dsn is required")
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres", "":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// 提交紀錄表由應用自己擁有；食譜與關聯表屬於外部資料源，
	// 但本地 SQLite 模式下一併建表方便自託管
	if err := db.AutoMigrate(&recipeRow{}, &linkRow{}, &submissionRow{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	common.LogInfo("Recipe store connected",
		zap.String("driver", cfg.Driver),
	)

	return &Store{db: db}, nil
}

// ListLinks 取得完整的食譜—食材關聯表
func (s *Store) ListLinks(ctx context.Context) ([]suggest.IngredientLink, error) {
	var rows []linkRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing recipe ingredient links: %w", err)
	}

	links := make([]suggest.IngredientLink, 0, len(rows))
	for _, r := range rows {
		links = append(links, suggest.IngredientLink{RecipeID: r.RecipeID, Name: r.Name})
	}
	return links, nil
}

// RecipesByID 取得指定 id 集合的食譜
// IN 查詢不保證順序，這裡依傳入的 id 順序重排後回傳
func (s *Store) RecipesByID(ctx context.Context, ids []string) ([]suggest.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []recipeRow
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetching recipes: %w", err)
	}

	byID := make(map[string]recipeRow, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	recipes := make([]suggest.Recipe, 0, len(rows))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			recipes = append(recipes, toRecipe(r))
		}
	}
	return recipes, nil
}

// RecipeByID 取得單一食譜
func (s *Store) RecipeByID(ctx context.Context, id string) (*suggest.Recipe, error) {
	var row recipeRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("fetching recipe %s: %w", id, err)
	}
	rec := toRecipe(row)
	return &rec, nil
}

// IngredientNames 取得單一食譜需要的食材名稱
func (s *Store) IngredientNames(ctx context.Context, recipeID string) ([]string, error) {
	var rows []linkRow
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetching ingredients for recipe %s: %w", recipeID, err)
	}

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names, nil
}

// RecordSubmission 寫入一批提交紀錄
func (s *Store) RecordSubmission(ctx context.Context, batchID string, pairs []suggest.Pair) error {
	rows := make([]submissionRow, 0, len(pairs))
	for _, p := range pairs {
		row := submissionRow{BatchID: batchID, Name: p.Name}
		if expiry, ok := suggest.ParseExpiry(p.Expiry); ok {
			row.Expiry = &expiry
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("recording submissions: %w", err)
	}
	return nil
}

// Ping 檢查資料庫連線，供就緒探針使用
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 關閉資料庫連線
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toRecipe(r recipeRow) suggest.Recipe {
	return suggest.Recipe{
		ID:         r.ID,
		Title:      r.Title,
		Directions: r.Directions,
		Minutes:    r.Minutes,
		Tags:       r.Tags,
	}
}
