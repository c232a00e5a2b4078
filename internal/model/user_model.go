package model

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	Id                uint           `gorm:"primaryKey;autoIncrement"`
	Username          string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash      string         `gorm:"type:varchar(255);not null"`
	Role              string         `gorm:"type:varchar(50);not null;default:'user'"`
	IsPremium         bool           `gorm:"default:false"`
	FavoriteQuestions datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
