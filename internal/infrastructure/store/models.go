package store

import "time"

// recipeRow 食譜資料表的一列
type recipeRow struct {
	ID         string   `gorm:"column:id;primaryKey"`
	Title      string   `gorm:"column:title"`
	Directions string   `gorm:"column:directions"`
	Minutes    int      `gorm:"column:minutes"`
	Tags       []string `gorm:"column:tags;type:text;serializer:json"`
}

func (recipeRow) TableName() string { return "recipes" }

// linkRow 食譜—食材關聯表的一列
type linkRow struct {
	RecipeID string `gorm:"column:recipe_id;index"`
	Name     string `gorm:"column:name"`
}

func (linkRow) TableName() string { return "recipe_ingredients" }

// submissionRow 提交紀錄表的一列，僅供遙測
type submissionRow struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	BatchID   string     `gorm:"column:batch_id;index"`
	Name      string     `gorm:"column:name"`
	Expiry    *time.Time `gorm:"column:expiry"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (submissionRow) TableName() string { return "ingredients_submissions" }
