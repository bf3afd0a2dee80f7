package model

import "time"

// Record is one persisted collection, stored whole under its key.
type Record struct {
	Key       string    `gorm:"column:name;primaryKey;size:64"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
