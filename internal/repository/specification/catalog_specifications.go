package specification

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ByCategory struct {
	CategoryId string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryId)
}

type ByPack struct {
	PackId uint
}

func (s ByPack) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pack_id = ?", s.PackId)
}

type ActivePacks struct{}

func (ActivePacks) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type FeaturedPacks struct{}

func (FeaturedPacks) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_featured = ?", true)
}

// ReleasedBy keeps packs whose release day is on or before Day.
type ReleasedBy struct {
	Day time.Time
}

func (s ReleasedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("release_date <= ?", datatypes.Date(s.Day))
}

// NewestReleaseFirst orders packs by release day, breaking ties on id so
// packs released the same day keep a stable order.
type NewestReleaseFirst struct{}

func (NewestReleaseFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("release_date DESC").Order("id DESC")
}
