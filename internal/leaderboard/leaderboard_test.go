package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vpeters/high5-api/internal/models"
)

func high5(receiver, giver string, level int) models.High5 {
	return models.High5{
		Receiver: receiver,
		Giver:    giver,
		Level:    level,
		TeamName: "running",
	}
}

func users(names ...string) []models.User {
	out := make([]models.User, len(names))
	for i, n := range names {
		out[i] = models.User{Username: n}
	}
	return out
}

func TestTotalScore_Empty(t *testing.T) {
	require.Equal(t, 0, TotalScore(nil))
	require.Equal(t, 0, TotalScore([]models.High5{}))
}

func TestTotalScore_SumsLevels(t *testing.T) {
	high5s := []models.High5{
		high5("tom", "john", 5),
		high5("tom", "sara", 3),
		high5("john", "tom", 1),
	}
	require.Equal(t, 9, TotalScore(high5s))
}

func TestTotalScore_OrderInsensitive(t *testing.T) {
	a := []models.High5{high5("a", "b", 2), high5("a", "c", 4), high5("b", "a", 1)}
	b := []models.High5{a[2], a[0], a[1]}
	require.Equal(t, TotalScore(a), TotalScore(b))
}

func TestTopScorers_TwoMembers(t *testing.T) {
	members := users("tom", "john")
	high5s := []models.High5{
		high5("tom", "john", 5),
		high5("john", "tom", 4),
	}

	got := TopScorers(high5s, members)
	require.Equal(t, []Entry{
		{Username: "tom", Value: 5},
		{Username: "john", Value: 4},
	}, got)

	// Scoped to a single receiver, TotalScore agrees with the ranking row.
	require.Equal(t, 5, TotalScore([]models.High5{high5s[0]}))
}

func TestTopScorers_IncludesZeroScoreMembers(t *testing.T) {
	members := users("tom", "john", "idle")
	high5s := []models.High5{high5("tom", "john", 2)}

	got := TopScorers(high5s, members)
	require.Len(t, got, 3)
	require.Equal(t, Entry{Username: "idle", Value: 0}, got[2])
}

func TestTopScorers_LengthBound(t *testing.T) {
	high5s := []models.High5{high5("a", "b", 1)}

	for _, tc := range []struct {
		members []models.User
		want    int
	}{
		{nil, 0},
		{users("a"), 1},
		{users("a", "b"), 2},
		{users("a", "b", "c"), 3},
		{users("a", "b", "c", "d", "e"), 3},
	} {
		require.Len(t, TopScorers(high5s, tc.members), tc.want)
	}
}

func TestTopScorers_EmptyMembershipIsAbsence(t *testing.T) {
	require.Nil(t, TopScorers([]models.High5{high5("a", "b", 3)}, nil))
}

func TestTopScorers_TieBreakUsernameAscending(t *testing.T) {
	members := users("zoe", "amy", "mia")
	high5s := []models.High5{
		high5("zoe", "amy", 3),
		high5("amy", "zoe", 3),
		high5("mia", "zoe", 3),
	}

	got := TopScorers(high5s, members)
	require.Equal(t, []Entry{
		{Username: "amy", Value: 3},
		{Username: "mia", Value: 3},
		{Username: "zoe", Value: 3},
	}, got)
}

func TestTopScorers_ScoreConservation(t *testing.T) {
	// Summing every member's individual score recovers the total over the
	// full high5 set when all receivers are members.
	members := users("a", "b", "c")
	high5s := []models.High5{
		high5("a", "b", 5),
		high5("a", "c", 2),
		high5("b", "a", 4),
		high5("c", "a", 1),
	}

	perMember := 0
	for _, m := range members {
		var received []models.High5
		for _, h := range high5s {
			if h.Receiver == m.Username {
				received = append(received, h)
			}
		}
		perMember += TotalScore(received)
	}
	require.Equal(t, TotalScore(high5s), perMember)
}

func TestTopReceivers_CountsNotLevels(t *testing.T) {
	members := users("tom", "john")
	high5s := []models.High5{
		high5("tom", "john", 5),
		high5("john", "tom", 1),
		high5("john", "tom", 1),
	}

	got := TopReceivers(high5s, members)
	require.Equal(t, []Entry{
		{Username: "john", Value: 2},
		{Username: "tom", Value: 1},
	}, got)
}

func TestTopGivers_CountsGivenRecords(t *testing.T) {
	members := users("tom", "john", "sara")
	high5s := []models.High5{
		high5("tom", "john", 5),
		high5("sara", "john", 2),
		high5("john", "tom", 3),
	}

	got := TopGivers(high5s, members)
	require.Equal(t, []Entry{
		{Username: "john", Value: 2},
		{Username: "tom", Value: 1},
		{Username: "sara", Value: 0},
	}, got)
}

func TestRankings_IgnoreNonMembers(t *testing.T) {
	// High5s received by someone no longer on the team contribute to nobody.
	members := users("tom")
	high5s := []models.High5{
		high5("gone", "tom", 5),
		high5("tom", "gone", 2),
	}

	scorers := TopScorers(high5s, members)
	require.Equal(t, []Entry{{Username: "tom", Value: 2}}, scorers)

	givers := TopGivers(high5s, members)
	require.Equal(t, []Entry{{Username: "tom", Value: 1}}, givers)
}
