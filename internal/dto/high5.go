package dto

import (
	"time"

	"github.com/vpeters/high5-api/internal/models"
)

// High5DTO represents a high5 in API responses
type High5DTO struct {
	ID         uint64    `json:"id"`
	Receiver   string    `json:"receiver"`
	Giver      string    `json:"giver"`
	Message    string    `json:"message"`
	Level      int       `json:"level"`
	TimePosted time.Time `json:"time_posted"`
	TeamName   string    `json:"team_name"`
}

// UserPageDTO is the per-user, per-team view: received high5s with their
// total score, plus the high5s the user has given.
type UserPageDTO struct {
	Received []High5DTO `json:"received"`
	Score    int        `json:"score"`
	Given    []High5DTO `json:"given"`
}

// ToHigh5DTO converts a High5 model to High5DTO
func ToHigh5DTO(high5 models.High5) High5DTO {
	return High5DTO{
		ID:         high5.ID,
		Receiver:   high5.Receiver,
		Giver:      high5.Giver,
		Message:    high5.Message,
		Level:      high5.Level,
		TimePosted: high5.TimePosted,
		TeamName:   high5.TeamName,
	}
}

// ToHigh5DTOs converts a slice of High5 models
func ToHigh5DTOs(high5s []models.High5) []High5DTO {
	out := make([]High5DTO, len(high5s))
	for i, h := range high5s {
		out[i] = ToHigh5DTO(h)
	}
	return out
}
