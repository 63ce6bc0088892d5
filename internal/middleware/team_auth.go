package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/vpeters/high5-api/internal/database"
	apierrors "github.com/vpeters/high5-api/internal/errors"
	"github.com/vpeters/high5-api/internal/models"
)

// RequireTeamMembership checks that the authenticated user is a member of the
// team named in the URL, loading the team, the membership row and the current
// user into the context.
func RequireTeamMembership() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamName := c.Param("name")
		if teamName == "" {
			apierrors.BadRequest(c, "Invalid team name")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var team models.Team
		if err := database.GetDB().Where("name = ?", teamName).First(&team).Error; err != nil {
			apierrors.NotFound(c, "Team not found")
			c.Abort()
			return
		}

		// Return 404 instead of 403 to avoid leaking team existence
		var member models.TeamMember
		if err := database.GetDB().
			Where("team_name = ? AND user_id = ?", teamName, userID).
			First(&member).Error; err != nil {
			apierrors.NotFound(c, "Team not found")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set("team", team)
		c.Set("team_member", member)
		c.Set("current_user", user)
		c.Next()
	}
}

// RequireTeamAdmin checks that the current user is the team's admin. Must run
// after RequireTeamMembership.
func RequireTeamAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamInterface, exists := c.Get("team")
		if !exists {
			apierrors.Forbidden(c, "Team access required")
			c.Abort()
			return
		}

		team, ok := teamInterface.(models.Team)
		if !ok {
			apierrors.InternalError(c, "Invalid team data")
			c.Abort()
			return
		}

		userInterface, exists := c.Get("current_user")
		if !exists {
			apierrors.Forbidden(c, "Team access required")
			c.Abort()
			return
		}

		user, ok := userInterface.(models.User)
		if !ok {
			apierrors.InternalError(c, "Invalid user data")
			c.Abort()
			return
		}

		if team.Admin != user.Username {
			apierrors.Forbidden(c, "Only the team admin can perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetTeam retrieves the team loaded by RequireTeamMembership
func GetTeam(c *gin.Context) (models.Team, bool) {
	teamInterface, exists := c.Get("team")
	if !exists {
		return models.Team{}, false
	}
	team, ok := teamInterface.(models.Team)
	return team, ok
}

// GetCurrentUser retrieves the user loaded by RequireTeamMembership
func GetCurrentUser(c *gin.Context) (models.User, bool) {
	userInterface, exists := c.Get("current_user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userInterface.(models.User)
	return user, ok
}
