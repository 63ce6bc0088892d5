package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vpeters/high5-api/internal/leaderboard"
	"github.com/vpeters/high5-api/internal/models"
	"github.com/vpeters/high5-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrInvalidTeamName = errors.New("team name cannot be empty")
	ErrTeamNameTaken   = errors.New("team name already exists")
)

// TeamService provides business logic for team and membership operations.
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// CreateTeamInput represents parameters to create a new team. Admin is the
// founding user's username; MemberNames are additional usernames to enroll.
type CreateTeamInput struct {
	Name        string
	Admin       string
	MemberNames []string
}

// CreateTeam creates a team with the founder as admin and member. Member
// names that do not resolve to an existing user are silently skipped, and
// duplicates collapse to a single membership.
func (s *TeamService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidTeamName
	}

	if _, err := s.teamRepo.FindByName(name); err == nil {
		return nil, ErrTeamNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	team := &models.Team{
		Name:  name,
		Admin: input.Admin,
	}

	members, _, err := s.resolveMembers(append([]string{input.Admin}, input.MemberNames...))
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.Create(team, members); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// resolveMembers maps candidate usernames to membership rows, skipping names
// that do not resolve to an existing user and collapsing duplicates. The
// second return value holds the usernames that resolved, in input order.
func (s *TeamService) resolveMembers(names []string) ([]models.TeamMember, []string, error) {
	seen := make(map[string]bool, len(names))
	var members []models.TeamMember
	var resolved []string

	for _, raw := range names {
		username := strings.TrimSpace(raw)
		if username == "" || seen[username] {
			continue
		}
		seen[username] = true

		user, err := s.userRepo.FindByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("failed to resolve member %q: %w", username, err)
		}

		members = append(members, models.TeamMember{
			UserID:   user.ID,
			JoinedAt: time.Now(),
		})
		resolved = append(resolved, user.Username)
	}

	return members, resolved, nil
}

// ListTeamsForUser returns the teams the user belongs to, alphabetically.
func (s *TeamService) ListTeamsForUser(userID uint64) ([]models.Team, error) {
	teams, err := s.teamRepo.ListTeamsForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// ListMemberUsers returns the users currently on a team.
func (s *TeamService) ListMemberUsers(teamName string) ([]models.User, error) {
	members, err := s.teamRepo.ListMembers(teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	users := make([]models.User, len(members))
	for i, m := range members {
		users[i] = m.User
	}
	return users, nil
}

// TeamPage is the snapshot a team view renders from: the members and high5
// feed fetched at the start of the request plus the three rankings computed
// over that snapshot.
type TeamPage struct {
	Team         *models.Team
	Members      []models.User
	High5s       []models.High5
	TotalHigh5s  int64
	TopScorers   []leaderboard.Entry
	TopReceivers []leaderboard.Entry
	TopGivers    []leaderboard.Entry
}

// GetTeamPage assembles the team page. Rankings are computed over every
// high5 on the team; the returned feed honours the supplied pagination.
func (s *TeamService) GetTeamPage(teamName string, page, pageSize int) (*TeamPage, error) {
	team, err := s.teamRepo.FindByName(teamName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	members, err := s.ListMemberUsers(teamName)
	if err != nil {
		return nil, err
	}

	all, _, err := s.teamRepo.ListHigh5s(repository.High5Filter{TeamName: teamName})
	if err != nil {
		return nil, fmt.Errorf("failed to list high5s: %w", err)
	}

	feed, total, err := s.teamRepo.ListHigh5s(repository.High5Filter{
		TeamName: teamName,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list high5 feed: %w", err)
	}

	return &TeamPage{
		Team:         team,
		Members:      members,
		High5s:       feed,
		TotalHigh5s:  total,
		TopScorers:   leaderboard.TopScorers(all, members),
		TopReceivers: leaderboard.TopReceivers(all, members),
		TopGivers:    leaderboard.TopGivers(all, members),
	}, nil
}

// AddMembers enrolls the given usernames on the team. Unknown usernames and
// names already on the team are silently skipped; the batch commits as one
// unit. Returns the usernames that were enrolled or re-enrolled, leaving out
// names that were already current members.
func (s *TeamService) AddMembers(teamName string, names []string) ([]string, error) {
	if _, err := s.teamRepo.FindByName(teamName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	members, resolved, err := s.resolveMembers(names)
	if err != nil {
		return nil, err
	}

	var added []string
	for i := range members {
		members[i].TeamName = teamName

		if _, err := s.teamRepo.FindMember(teamName, members[i].UserID); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find membership for %q: %w", resolved[i], err)
		}
		added = append(added, resolved[i])
	}

	if err := s.teamRepo.AddMembers(members); err != nil {
		return nil, fmt.Errorf("failed to add members: %w", err)
	}

	return added, nil
}

// RemoveMembers removes the given usernames from the team. The team admin's
// own name is a no-op, as are unknown usernames and non-members; the rest of
// the batch still processes. Removing a member deletes the high5s they
// received on the team while preserving the ones they gave. Returns the
// usernames that were removed.
func (s *TeamService) RemoveMembers(teamName string, names []string) ([]string, error) {
	team, err := s.teamRepo.FindByName(teamName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	seen := make(map[string]bool, len(names))
	var removed []string

	for _, raw := range names {
		username := strings.TrimSpace(raw)
		if username == "" || seen[username] {
			continue
		}
		seen[username] = true

		// The admin can never be removed through this path.
		if username == team.Admin {
			continue
		}

		user, err := s.userRepo.FindByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve member %q: %w", username, err)
		}

		if _, err := s.teamRepo.FindMember(teamName, user.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to find membership for %q: %w", username, err)
		}

		if err := s.teamRepo.RemoveMember(teamName, username, user.ID); err != nil {
			return nil, fmt.Errorf("failed to remove member %q: %w", username, err)
		}
		removed = append(removed, username)
	}

	return removed, nil
}

// DeleteTeam removes a team together with its high5s and memberships.
func (s *TeamService) DeleteTeam(teamName string) error {
	if _, err := s.teamRepo.FindByName(teamName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to find team: %w", err)
	}

	if err := s.teamRepo.Delete(teamName); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}
