package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vpeters/high5-api/internal/models"
)

func TestHigh5Service_Give_ClampsLevel(t *testing.T) {
	env := setupServiceTestEnv(t)
	createTestUser(t, env.db, "vic")
	createTestUser(t, env.db, "tom")
	createTestTeam(t, env, "running", "vic", "tom")

	for _, tc := range []struct {
		level int
		want  int
	}{
		{-3, models.MinLevel},
		{0, models.MinLevel},
		{1, 1},
		{3, 3},
		{5, 5},
		{6, models.MaxLevel},
		{100, models.MaxLevel},
	} {
		high5 := giveTestHigh5(t, env, "running", "vic", "tom", tc.level)
		require.Equal(t, tc.want, high5.Level)
	}
}

func TestHigh5Service_Give_ReceiverMustBeMember(t *testing.T) {
	env := setupServiceTestEnv(t)
	createTestUser(t, env.db, "vic")
	createTestUser(t, env.db, "outsider")
	createTestTeam(t, env, "running", "vic")

	_, err := env.high5Service.Give(GiveInput{
		TeamName: "running",
		Giver:    "vic",
		Receiver: "outsider",
		Message:  "nice",
		Level:    3,
	})
	require.ErrorIs(t, err, ErrReceiverNotMember)

	_, err = env.high5Service.Give(GiveInput{
		TeamName: "running",
		Giver:    "vic",
		Receiver: "nosuchuser",
		Message:  "nice",
		Level:    3,
	})
	require.ErrorIs(t, err, ErrReceiverNotMember)
}

func TestHigh5Service_GetUserPage(t *testing.T) {
	env := setupServiceTestEnv(t)
	createTestUser(t, env.db, "vic")
	createTestUser(t, env.db, "tom")
	createTestTeam(t, env, "running", "vic", "tom")

	giveTestHigh5(t, env, "running", "vic", "tom", 5)
	giveTestHigh5(t, env, "running", "vic", "tom", 3)
	giveTestHigh5(t, env, "running", "tom", "vic", 2)

	page, err := env.high5Service.GetUserPage("running", "tom")
	require.NoError(t, err)
	require.Len(t, page.Received, 2)
	require.Equal(t, 8, page.Score)
	require.Len(t, page.Given, 1)
}

func TestHigh5Service_UpdateMessage_GiverOnly(t *testing.T) {
	env := setupServiceTestEnv(t)
	createTestUser(t, env.db, "vic")
	createTestUser(t, env.db, "tom")
	createTestTeam(t, env, "running", "vic", "tom")

	high5 := giveTestHigh5(t, env, "running", "vic", "tom", 4)

	_, err := env.high5Service.UpdateMessage(high5.ID, "tom", "rewritten")
	require.ErrorIs(t, err, ErrNotHigh5Giver)

	updated, err := env.high5Service.UpdateMessage(high5.ID, "vic", "rewritten")
	require.NoError(t, err)
	require.Equal(t, "rewritten", updated.Message)
	require.Equal(t, 4, updated.Level)
}

func TestHigh5Service_Delete_GiverOnly(t *testing.T) {
	env := setupServiceTestEnv(t)
	createTestUser(t, env.db, "vic")
	createTestUser(t, env.db, "tom")
	createTestTeam(t, env, "running", "vic", "tom")

	high5 := giveTestHigh5(t, env, "running", "vic", "tom", 4)

	require.ErrorIs(t, env.high5Service.Delete(high5.ID, "tom"), ErrNotHigh5Giver)

	require.NoError(t, env.high5Service.Delete(high5.ID, "vic"))
	require.EqualValues(t, 0, countHigh5s(t, env.db, "running"))

	require.ErrorIs(t, env.high5Service.Delete(high5.ID, "vic"), ErrHigh5NotFound)
}
