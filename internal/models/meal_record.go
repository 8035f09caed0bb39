package models

import "time"

// Meal labels the client sends. They are not enforced on write.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

type MealRecord struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time    `gorm:"not null" json:"created_at"`
	Date         CalendarDate `gorm:"type:date;not null" json:"date"`
	Meal         string       `gorm:"not null" json:"meal"`
	WholeGrains  int          `json:"whole_grains"`
	Vegetables   int          `json:"vegetables"`
	ProteinLow   int          `json:"protein_low"`
	ProteinMed   int          `json:"protein_med"`
	ProteinHigh  int          `json:"protein_high"`
	ProteinXHigh int          `gorm:"column:protein_xhigh" json:"protein_xhigh"`
	JunkFood     int          `json:"junk_food"`
	Note         *string      `json:"note"`
	ImageURL     *string      `gorm:"column:image_url" json:"image_url"`
}

func (MealRecord) TableName() string {
	return "meal_records"
}

// DailySummary holds the per-day sums. The four protein tiers collapse into ProteinTotal.
type DailySummary struct {
	Date         CalendarDate `json:"date"`
	WholeGrains  int64        `json:"whole_grains"`
	Vegetables   int64        `json:"vegetables"`
	ProteinTotal int64        `json:"protein_total"`
	JunkFood     int64        `json:"junk_food"`
}
