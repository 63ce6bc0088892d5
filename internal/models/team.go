package models

import (
	"time"

	"gorm.io/gorm"
)

// Team is keyed by its name, which doubles as the foreign key target for
// memberships and high5s. Admin holds the username of the founding user.
type Team struct {
	Name      string         `gorm:"type:varchar(100);primarykey" json:"name"`
	Admin     string         `gorm:"type:varchar(50);not null" json:"admin"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Members []TeamMember `gorm:"foreignKey:TeamName" json:"members,omitempty"`
	High5s  []High5      `gorm:"foreignKey:TeamName" json:"high5s,omitempty"`
}
