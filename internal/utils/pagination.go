package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vpeters/high5-api/internal/constants"
)

// PaginationParams bounds one window onto a team's high5 feed.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse echoes the requested window back alongside the feed's
// total size, so clients can page through a team's full high5 history.
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams reads page and limit from the query string. Absent or
// malformed values fall back to the feed defaults; limit is clamped to the
// allowed range so a single request cannot pull an unbounded feed.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page := intQuery(c, "page", constants.MinPageSize)
	limit := intQuery(c, "limit", constants.DefaultPageSize)

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func intQuery(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return value
}
