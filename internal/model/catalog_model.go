package model

import (
	"time"

	"gorm.io/datatypes"
)

type Category struct {
	Id          string `gorm:"type:varchar(64);primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Subtitle    string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	Quote       string `gorm:"type:text;not null"`
	ImageURL    string `gorm:"column:image_url;type:text;not null"`
	IsPremium   bool   `gorm:"default:false"`
	Position    int    `gorm:"not null;default:0"`
}

func (Category) TableName() string {
	return "categories"
}

type Question struct {
	Id         uint              `gorm:"primaryKey;autoIncrement"`
	CategoryId *string           `gorm:"type:varchar(64);index"`
	Category   *Category         `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
	PackId     *uint             `gorm:"index"`
	Pack       *ConversationPack `gorm:"foreignKey:PackId;constraint:OnDelete:CASCADE"`
	Text       string            `gorm:"type:text;not null"`
	IsPremium  bool              `gorm:"default:false"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}

type ConversationPack struct {
	Id           uint           `gorm:"primaryKey;autoIncrement"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Description  string         `gorm:"type:text;not null"`
	ExpertName   string         `gorm:"type:varchar(255);not null"`
	ExpertTitle  string         `gorm:"type:varchar(255);not null"`
	ExpertAvatar string         `gorm:"type:text;not null"`
	ReleaseDate  datatypes.Date `gorm:"not null;index"`
	Theme        string         `gorm:"type:varchar(255);not null"`
	IsPremium    bool           `gorm:"default:false"`
	IsActive     bool           `gorm:"not null"`
	IsFeatured   bool           `gorm:"default:false"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (ConversationPack) TableName() string {
	return "conversation_packs"
}
