package repository

import (
	"errors"
	"fmt"

	"github.com/vpeters/high5-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateTeam is returned when creating the team row fails inside the create transaction.
	ErrCreateTeam = errors.New("team repository: create team failed")
	// ErrCreateTeamMember is returned when creating a founding membership fails inside the create transaction.
	ErrCreateTeamMember = errors.New("team repository: create team member failed")
)

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a team and its founding memberships atomically
func (r *GormTeamRepository) Create(team *models.Team, members []models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateTeam, err)
		}

		for i := range members {
			members[i].TeamName = team.Name
		}

		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateTeamMember, err)
			}
		}

		return nil
	})
}

// FindByName finds a team by name
func (r *GormTeamRepository) FindByName(name string) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("name = ?", name).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// ListTeamsForUser lists the teams a user belongs to, alphabetically
func (r *GormTeamRepository) ListTeamsForUser(userID uint64) ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.
		Joins("JOIN team_members ON team_members.team_name = teams.name").
		Where("team_members.user_id = ? AND team_members.deleted_at IS NULL", userID).
		Order("teams.name ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Delete deletes a team and all its dependent rows in a transaction, so no
// orphaned high5s or memberships survive the team.
func (r *GormTeamRepository) Delete(name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_name = ?", name).Delete(&models.High5{}).Error; err != nil {
			return err
		}

		if err := tx.Where("team_name = ?", name).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}

		return tx.Where("name = ?", name).Delete(&models.Team{}).Error
	})
}

// AddMembers inserts membership rows. A row for a previously removed member
// is revived instead of violating the composite primary key, which makes
// re-adding idempotent.
func (r *GormTeamRepository) AddMembers(members []models.TeamMember) error {
	if len(members) == 0 {
		return nil
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_name"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"deleted_at": gorm.Expr("NULL")}),
		}).
		Create(&members).Error
}

// RemoveMember deletes the membership row and the high5s the removed user
// received on that team. High5s they gave are kept as historical record.
func (r *GormTeamRepository) RemoveMember(teamName, username string, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_name = ? AND user_id = ?", teamName, userID).
			Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}

		return tx.Where("team_name = ? AND receiver = ?", teamName, username).
			Delete(&models.High5{}).Error
	})
}

// FindMember finds a specific membership row
func (r *GormTeamRepository) FindMember(teamName string, userID uint64) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Where("team_name = ? AND user_id = ?", teamName, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists a team's membership rows with users preloaded
func (r *GormTeamRepository) ListMembers(teamName string) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Preload("User").
		Where("team_name = ?", teamName).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CreateHigh5 stores a new high5
func (r *GormTeamRepository) CreateHigh5(high5 *models.High5) error {
	return r.db.Create(high5).Error
}

// FindHigh5 finds a high5 by ID
func (r *GormTeamRepository) FindHigh5(id uint64) (*models.High5, error) {
	var high5 models.High5
	if err := r.db.First(&high5, id).Error; err != nil {
		return nil, err
	}
	return &high5, nil
}

// UpdateHigh5 updates a high5
func (r *GormTeamRepository) UpdateHigh5(high5 *models.High5) error {
	return r.db.Save(high5).Error
}

// DeleteHigh5 soft deletes a high5
func (r *GormTeamRepository) DeleteHigh5(id uint64) error {
	return r.db.Delete(&models.High5{}, id).Error
}

// ListHigh5s retrieves high5s newest first, with filtering and pagination
func (r *GormTeamRepository) ListHigh5s(filter High5Filter) ([]models.High5, int64, error) {
	var high5s []models.High5

	query := r.db.Model(&models.High5{}).Where("team_name = ?", filter.TeamName)

	if filter.Receiver != "" {
		query = query.Where("receiver = ?", filter.Receiver)
	}
	if filter.Giver != "" {
		query = query.Where("giver = ?", filter.Giver)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("time_posted DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	if err := listQuery.Find(&high5s).Error; err != nil {
		return nil, 0, err
	}

	return high5s, total, nil
}
