package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vpeters/high5-api/internal/dto"
	apierrors "github.com/vpeters/high5-api/internal/errors"
	"github.com/vpeters/high5-api/internal/middleware"
	"github.com/vpeters/high5-api/internal/services"
)

// High5Handler coordinates high5 HTTP handlers.
type High5Handler struct {
	high5Service *services.High5Service
	authService  *services.AuthService
}

// NewHigh5Handler creates a new High5Handler.
func NewHigh5Handler(high5Service *services.High5Service, authService *services.AuthService) *High5Handler {
	return &High5Handler{
		high5Service: high5Service,
		authService:  authService,
	}
}

// Give records a new high5 from the caller to a teammate.
func (h *High5Handler) Give(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		apierrors.InternalError(c, "Team not found in context")
		return
	}

	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	// Level carries no binding so an absent or zero value reaches the
	// service, which clamps it into the valid range.
	type GiveRequest struct {
		Receiver string `json:"receiver" binding:"required"`
		Message  string `json:"message" binding:"required,max=250"`
		Level    int    `json:"level"`
	}

	var req GiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	high5, err := h.high5Service.Give(services.GiveInput{
		TeamName: team.Name,
		Giver:    user.Username,
		Receiver: req.Receiver,
		Message:  req.Message,
		Level:    req.Level,
	})
	if err != nil {
		respondHigh5Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHigh5DTO(*high5))
}

// GetUserPage returns the caller's view of one team: received high5s with
// their total score, and the high5s they have given.
func (h *High5Handler) GetUserPage(c *gin.Context) {
	team, ok := middleware.GetTeam(c)
	if !ok {
		apierrors.InternalError(c, "Team not found in context")
		return
	}

	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	page, err := h.high5Service.GetUserPage(team.Name, user.Username)
	if err != nil {
		respondHigh5Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPageDTO(page))
}

// UpdateMessage edits the message of a high5 the caller gave.
func (h *High5Handler) UpdateMessage(c *gin.Context) {
	id, user, ok := h.high5Request(c)
	if !ok {
		return
	}

	type UpdateRequest struct {
		Message string `json:"message" binding:"required,max=250"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	high5, err := h.high5Service.UpdateMessage(id, user, req.Message)
	if err != nil {
		respondHigh5Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHigh5DTO(*high5))
}

// Delete removes a high5 the caller gave.
func (h *High5Handler) Delete(c *gin.Context) {
	id, user, ok := h.high5Request(c)
	if !ok {
		return
	}

	if err := h.high5Service.Delete(id, user); err != nil {
		respondHigh5Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "High5 deleted successfully",
	})
}

// high5Request parses the high5 ID from the URL and resolves the caller's
// username. Responds with the appropriate error when either fails.
func (h *High5Handler) high5Request(c *gin.Context) (uint64, string, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid high5 ID")
		return 0, "", false
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, "", false
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return 0, "", false
	}

	return id, user.Username, true
}

func respondHigh5Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrReceiverNotMember):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrHigh5NotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotHigh5Giver):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
