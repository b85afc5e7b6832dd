package models

import (
	"time"

	"github.com/gympoint/backoffice/pkg/types"
)

// Plan is a purchasable duration/price template. Title is unique at write
// time; the store constraint backs the catalog pre-check.
type Plan struct {
	ID    string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Title string `gorm:"column:title;type:varchar(255);not null;uniqueIndex" json:"title"`
	// DurationMonths is the term length in whole months, always positive.
	DurationMonths int `gorm:"column:duration_months;type:int;not null" json:"duration_months"`
	// PriceCents is the per-month price in cents, always positive.
	PriceCents int64     `gorm:"column:price_cents;type:bigint;not null" json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Plan) TableName() string {
	return "plan"
}

// Snapshot freezes the plan fields a membership is priced against.
func (p *Plan) Snapshot() *types.PlanSnapshot {
	if p == nil {
		return nil
	}
	return &types.PlanSnapshot{
		ID:                p.ID,
		Title:             p.Title,
		DurationMonths:    p.DurationMonths,
		MonthlyPriceCents: p.PriceCents,
	}
}
