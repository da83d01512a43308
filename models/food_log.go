package models

import (
	"time"

	"github.com/google/uuid"
)

// One logged meal, as parsed from free text by Claude.
// Rows are never hard-deleted; undo and dashboard deletes flip IsDeleted.
type FoodLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RawInput string    `gorm:"type:text;not null" json:"raw_input"`
	FoodName string    `gorm:"type:text" json:"food_name"`

	Calories     float64 `json:"calories"`
	ProteinG     float64 `gorm:"column:protein_g" json:"protein_g"`
	CarbsG       float64 `gorm:"column:carbs_g" json:"carbs_g"`
	FatG         float64 `gorm:"column:fat_g" json:"fat_g"`
	FiberG       float64 `gorm:"column:fiber_g" json:"fiber_g"`
	SugarG       float64 `gorm:"column:sugar_g" json:"sugar_g"`
	SodiumMg     float64 `gorm:"column:sodium_mg" json:"sodium_mg"`
	SaturatedFat float64 `gorm:"column:saturated_fat_g" json:"saturated_fat_g"`

	Notes     *string   `gorm:"type:text" json:"notes"`
	UserName  string    `gorm:"type:text;not null" json:"user_name"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	EntryDate time.Time `gorm:"not null" json:"entry_date"` // when the meal was eaten, not when the row was written
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (FoodLog) TableName() string {
	return "food_logs"
}
