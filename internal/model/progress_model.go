package model

// ProgressEntry is one key of the terminal player's local progress file.
type ProgressEntry struct {
	Name  string `gorm:"primaryKey;type:varchar(255)"`
	Value string `gorm:"type:text;not null"`
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}
