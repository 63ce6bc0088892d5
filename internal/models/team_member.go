package models

import (
	"time"

	"gorm.io/gorm"
)

// TeamMember is the many-to-many join between teams and users. The composite
// primary key guarantees a user appears in a team's membership at most once.
type TeamMember struct {
	TeamName  string         `gorm:"type:varchar(100);primarykey" json:"team_name"`
	UserID    uint64         `gorm:"primarykey" json:"user_id"`
	JoinedAt  time.Time      `json:"joined_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Team Team `gorm:"foreignKey:TeamName" json:"team,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
