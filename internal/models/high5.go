package models

import (
	"time"

	"gorm.io/gorm"
)

// Level bounds for a high5. Enforced when a high5 is written, not by the
// aggregation layer.
const (
	MinLevel = 1
	MaxLevel = 5
)

// High5 is a recognition from one teammate (giver) to another (receiver),
// carrying a message and a helpfulness level. A high5 belongs to exactly one
// team for its entire lifetime. Giver and receiver are usernames.
type High5 struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	Receiver   string         `gorm:"type:varchar(50);index;not null" json:"receiver"`
	Giver      string         `gorm:"type:varchar(50);index;not null" json:"giver"`
	Message    string         `gorm:"type:varchar(250)" json:"message"`
	Level      int            `gorm:"not null" json:"level"`
	TimePosted time.Time      `gorm:"index" json:"time_posted"`
	TeamName   string         `gorm:"type:varchar(100);index;not null" json:"team_name"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Team Team `gorm:"foreignKey:TeamName" json:"team,omitempty"`
}
