package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/vpeters/high5-api/internal/leaderboard"
	"github.com/vpeters/high5-api/internal/models"
	"github.com/vpeters/high5-api/internal/notify"
	"github.com/vpeters/high5-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrHigh5NotFound     = errors.New("high5 not found")
	ErrNotHigh5Giver     = errors.New("only the giver can modify a high5")
	ErrReceiverNotMember = errors.New("receiver is not a member of this team")
)

// High5Service provides business logic for giving and managing high5s.
type High5Service struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	notifier notify.Notifier
}

// NewHigh5Service creates a new High5Service. The notifier may be nil.
func NewHigh5Service(teamRepo repository.TeamRepository, userRepo repository.UserRepository, notifier notify.Notifier) *High5Service {
	return &High5Service{
		teamRepo: teamRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// GiveInput represents parameters to give a new high5.
type GiveInput struct {
	TeamName string
	Giver    string
	Receiver string
	Message  string
	Level    int
}

// Give records a new high5. The receiver must be a current member of the
// team. The level is clamped into [MinLevel, MaxLevel] at write time so the
// aggregation layer only ever sees in-range values.
func (s *High5Service) Give(input GiveInput) (*models.High5, error) {
	receiver, err := s.userRepo.FindByUsername(input.Receiver)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiverNotMember
		}
		return nil, fmt.Errorf("failed to resolve receiver: %w", err)
	}

	if _, err := s.teamRepo.FindMember(input.TeamName, receiver.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiverNotMember
		}
		return nil, fmt.Errorf("failed to verify receiver membership: %w", err)
	}

	level := input.Level
	if level < models.MinLevel {
		level = models.MinLevel
	} else if level > models.MaxLevel {
		level = models.MaxLevel
	}

	high5 := &models.High5{
		Receiver:   input.Receiver,
		Giver:      input.Giver,
		Message:    input.Message,
		Level:      level,
		TimePosted: time.Now().UTC(),
		TeamName:   input.TeamName,
	}

	if err := s.teamRepo.CreateHigh5(high5); err != nil {
		return nil, fmt.Errorf("failed to create high5: %w", err)
	}

	if s.notifier != nil {
		s.notifier.High5Given(receiver, input.Giver, input.Message)
	}

	return high5, nil
}

// UserPage is the per-user, per-team view: received high5s newest first with
// their total score, and the high5s the user has given.
type UserPage struct {
	Received []models.High5
	Score    int
	Given    []models.High5
}

// GetUserPage assembles a user's page for one team.
func (s *High5Service) GetUserPage(teamName, username string) (*UserPage, error) {
	received, _, err := s.teamRepo.ListHigh5s(repository.High5Filter{
		TeamName: teamName,
		Receiver: username,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list received high5s: %w", err)
	}

	given, _, err := s.teamRepo.ListHigh5s(repository.High5Filter{
		TeamName: teamName,
		Giver:    username,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list given high5s: %w", err)
	}

	return &UserPage{
		Received: received,
		Score:    leaderboard.TotalScore(received),
		Given:    given,
	}, nil
}

// UpdateMessage rewrites a high5's message. Only the giver may edit.
func (s *High5Service) UpdateMessage(id uint64, username, message string) (*models.High5, error) {
	high5, err := s.findOwnedHigh5(id, username)
	if err != nil {
		return nil, err
	}

	high5.Message = message
	if err := s.teamRepo.UpdateHigh5(high5); err != nil {
		return nil, fmt.Errorf("failed to update high5: %w", err)
	}

	return high5, nil
}

// Delete removes a high5. Only the giver may delete.
func (s *High5Service) Delete(id uint64, username string) error {
	high5, err := s.findOwnedHigh5(id, username)
	if err != nil {
		return err
	}

	if err := s.teamRepo.DeleteHigh5(high5.ID); err != nil {
		return fmt.Errorf("failed to delete high5: %w", err)
	}

	return nil
}

func (s *High5Service) findOwnedHigh5(id uint64, username string) (*models.High5, error) {
	high5, err := s.teamRepo.FindHigh5(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHigh5NotFound
		}
		return nil, fmt.Errorf("failed to find high5: %w", err)
	}

	if high5.Giver != username {
		return nil, ErrNotHigh5Giver
	}

	return high5, nil
}
