package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vpeters/high5-api/internal/constants"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/teams/running"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	for _, tc := range []struct {
		name  string
		query string
		want  PaginationParams
	}{
		{
			name:  "defaults",
			query: "",
			want:  PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0},
		},
		{
			name:  "explicit window",
			query: "?page=3&limit=10",
			want:  PaginationParams{Page: 3, Limit: 10, Offset: 20},
		},
		{
			name:  "zero page clamped up",
			query: "?page=0",
			want:  PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0},
		},
		{
			name:  "oversized limit falls back",
			query: "?limit=100000",
			want:  PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0},
		},
		{
			name:  "malformed values fall back",
			query: "?page=abc&limit=xyz",
			want:  PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := GetPaginationParams(paginationContext(t, tc.query))
			require.Equal(t, tc.want, got)
		})
	}
}
