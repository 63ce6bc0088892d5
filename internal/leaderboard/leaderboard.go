// Package leaderboard computes per-team recognition rankings from plain data.
// All functions are pure: they take a snapshot of high5s and members fetched
// by the caller and hold no state between calls.
package leaderboard

import (
	"sort"

	"github.com/vpeters/high5-api/internal/models"
)

// Size is the maximum number of entries a ranking returns.
const Size = 3

// Entry is a single ranking row: a member's username and their score or count.
type Entry struct {
	Username string `json:"username"`
	Value    int    `json:"value"`
}

// TotalScore sums the level field across the given high5s. The caller is
// expected to pre-filter to the scope of interest (for example all high5s
// received by one user on one team). An empty input yields 0.
func TotalScore(high5s []models.High5) int {
	score := 0
	for _, h := range high5s {
		score += h.Level
	}
	return score
}

// TopScorers ranks members by the summed level of high5s they received.
func TopScorers(high5s []models.High5, members []models.User) []Entry {
	return rankMembers(members, func(username string) int {
		score := 0
		for _, h := range high5s {
			if h.Receiver == username {
				score += h.Level
			}
		}
		return score
	})
}

// TopReceivers ranks members by how many high5s they received.
func TopReceivers(high5s []models.High5, members []models.User) []Entry {
	return rankMembers(members, func(username string) int {
		count := 0
		for _, h := range high5s {
			if h.Receiver == username {
				count++
			}
		}
		return count
	})
}

// TopGivers ranks members by how many high5s they gave.
func TopGivers(high5s []models.High5, members []models.User) []Entry {
	return rankMembers(members, func(username string) int {
		count := 0
		for _, h := range high5s {
			if h.Giver == username {
				count++
			}
		}
		return count
	})
}

// rankMembers scores every member with the supplied metric, including members
// scoring zero, sorts descending by value with ties broken by username
// ascending, and truncates to at most Size entries. An empty membership
// yields nil.
func rankMembers(members []models.User, metric func(username string) int) []Entry {
	if len(members) == 0 {
		return nil
	}

	entries := make([]Entry, len(members))
	for i, m := range members {
		entries[i] = Entry{
			Username: m.Username,
			Value:    metric(m.Username),
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Username < entries[j].Username
	})

	if len(entries) > Size {
		entries = entries[:Size]
	}
	return entries
}
