package dto

import (
	"github.com/vpeters/high5-api/internal/leaderboard"
	"github.com/vpeters/high5-api/internal/models"
	"github.com/vpeters/high5-api/internal/services"
	"github.com/vpeters/high5-api/internal/utils"
)

// TeamDTO represents a team in API responses
type TeamDTO struct {
	Name  string `json:"name"`
	Admin string `json:"admin"`
}

// TeamPageDTO is the full team view: members, the paginated high5 feed and
// the three leaderboards. Empty leaderboards serialize as [] so clients can
// treat the absence signal uniformly.
type TeamPageDTO struct {
	Team         TeamDTO                  `json:"team"`
	Members      []UserDTO                `json:"members"`
	High5s       []High5DTO               `json:"high5s"`
	Pagination   utils.PaginationResponse `json:"pagination"`
	TopScorers   []leaderboard.Entry      `json:"top_scorers"`
	TopReceivers []leaderboard.Entry      `json:"top_receivers"`
	TopGivers    []leaderboard.Entry      `json:"top_givers"`
}

// ToTeamDTO converts a Team model to TeamDTO
func ToTeamDTO(team models.Team) TeamDTO {
	return TeamDTO{
		Name:  team.Name,
		Admin: team.Admin,
	}
}

// ToTeamDTOs converts a slice of Team models
func ToTeamDTOs(teams []models.Team) []TeamDTO {
	out := make([]TeamDTO, len(teams))
	for i, t := range teams {
		out[i] = ToTeamDTO(t)
	}
	return out
}

// ToTeamPageDTO converts a TeamPage snapshot to its response shape
func ToTeamPageDTO(page *services.TeamPage, params utils.PaginationParams) TeamPageDTO {
	return TeamPageDTO{
		Team:    ToTeamDTO(*page.Team),
		Members: ToUserDTOs(page.Members),
		High5s:  ToHigh5DTOs(page.High5s),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: page.TotalHigh5s,
		},
		TopScorers:   emptyAsSlice(page.TopScorers),
		TopReceivers: emptyAsSlice(page.TopReceivers),
		TopGivers:    emptyAsSlice(page.TopGivers),
	}
}

// ToUserPageDTO converts a UserPage snapshot to its response shape
func ToUserPageDTO(page *services.UserPage) UserPageDTO {
	return UserPageDTO{
		Received: ToHigh5DTOs(page.Received),
		Score:    page.Score,
		Given:    ToHigh5DTOs(page.Given),
	}
}

func emptyAsSlice(entries []leaderboard.Entry) []leaderboard.Entry {
	if entries == nil {
		return []leaderboard.Entry{}
	}
	return entries
}
