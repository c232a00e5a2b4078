package entity

import "time"

type Category struct {
	Id          string
	Name        string
	Subtitle    string
	Description string
	Quote       string
	ImageURL    string
	IsPremium   bool
	// Display order in the catalog.
	Position int
}

// Question belongs to a category or to a conversation pack. Pack questions
// carry no category.
type Question struct {
	Id         uint
	CategoryId *string
	PackId     *uint
	Text       string
	IsPremium  bool
	CreatedAt  time.Time
}

type ConversationPack struct {
	Id           uint
	Title        string
	Description  string
	ExpertName   string
	ExpertTitle  string
	ExpertAvatar string
	// Calendar day in UTC.
	ReleaseDate time.Time
	Theme       string
	IsPremium   bool
	IsActive    bool
	IsFeatured  bool
	CreatedAt   time.Time
}
