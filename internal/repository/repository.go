package repository

import (
	"github.com/vpeters/high5-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Delete removes a user together with their membership rows and every
	// high5 naming them as giver or receiver, in a single transaction.
	Delete(id uint64) error
}

// High5Filter holds filtering and pagination options for listing high5s.
// TeamName is required; Receiver and Giver narrow the result to one side
// of a single user's record.
type High5Filter struct {
	TeamName string
	Receiver string
	Giver    string
	Page     int
	PageSize int
}

// TeamRepository defines the interface for team, membership and high5 data
// access. Cascade rules live here as atomic units so callers never re-derive
// them: deleting a team deletes its high5s and memberships, removing a member
// deletes the high5s they received on that team.
type TeamRepository interface {
	// Create creates a team and its founding memberships atomically
	Create(team *models.Team, members []models.TeamMember) error

	// FindByName finds a team by name
	FindByName(name string) (*models.Team, error)

	// ListTeamsForUser lists the teams a user belongs to, alphabetically
	ListTeamsForUser(userID uint64) ([]models.Team, error)

	// Delete deletes a team, its high5s and its memberships in a transaction
	Delete(name string) error

	// AddMembers inserts membership rows, reviving previously removed ones
	AddMembers(members []models.TeamMember) error

	// RemoveMember deletes one membership row and every high5 the removed
	// user received on that team, in a transaction. High5s they gave stay.
	RemoveMember(teamName, username string, userID uint64) error

	// FindMember finds a specific membership row
	FindMember(teamName string, userID uint64) (*models.TeamMember, error)

	// ListMembers lists a team's membership rows with users preloaded
	ListMembers(teamName string) ([]models.TeamMember, error)

	// CreateHigh5 stores a new high5
	CreateHigh5(high5 *models.High5) error

	// FindHigh5 finds a high5 by ID
	FindHigh5(id uint64) (*models.High5, error)

	// UpdateHigh5 updates a high5
	UpdateHigh5(high5 *models.High5) error

	// DeleteHigh5 soft deletes a high5
	DeleteHigh5(id uint64) error

	// ListHigh5s retrieves high5s newest first, with filtering and pagination
	ListHigh5s(filter High5Filter) ([]models.High5, int64, error)
}
