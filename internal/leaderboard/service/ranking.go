package service

import (
	"cmp"
	"slices"

	"github.com/festy23/challenge_tracker/internal/leaderboard/model"
)

// RankIndividuals orders users by total descending, then by user id, and
// assigns 1-based ranks by position.
func RankIndividuals(totals []model.UserTotal) []model.IndividualEntry {
	sorted := slices.Clone(totals)
	slices.SortFunc(sorted, func(a, b model.UserTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})

	entries := make([]model.IndividualEntry, len(sorted))
	for i, t := range sorted {
		entries[i] = model.IndividualEntry{
			Rank:       i + 1,
			UserID:     t.UserID,
			UserName:   t.UserName,
			TotalValue: t.Total,
		}
	}
	return entries
}

// RankMembers ranks every given member by its total in totals, counting
// members without an entry as zero.
func RankMembers(members []model.Member, totals map[string]float64) []model.IndividualEntry {
	rows := make([]model.UserTotal, len(members))
	for i, m := range members {
		rows[i] = model.UserTotal{UserID: m.UserID, UserName: m.UserName, Total: totals[m.UserID]}
	}
	return RankIndividuals(rows)
}

// RankTeams groups members by team and orders teams by the mean of their
// members' totals descending, then by team id. Teams appear only through
// their members, so a team without members is never ranked.
func RankTeams(members []model.Member, totals map[string]float64) []model.TeamEntry {
	byTeam := make(map[string]*model.TeamEntry)
	var order []string
	for _, m := range members {
		entry, ok := byTeam[m.TeamID]
		if !ok {
			entry = &model.TeamEntry{TeamID: m.TeamID, TeamName: m.TeamName}
			byTeam[m.TeamID] = entry
			order = append(order, m.TeamID)
		}
		entry.MemberCount++
		entry.TotalValue += totals[m.UserID]
	}

	entries := make([]model.TeamEntry, 0, len(order))
	for _, id := range order {
		entry := byTeam[id]
		entry.AverageValue = entry.TotalValue / float64(entry.MemberCount)
		entries = append(entries, *entry)
	}

	slices.SortFunc(entries, func(a, b model.TeamEntry) int {
		if c := cmp.Compare(b.AverageValue, a.AverageValue); c != 0 {
			return c
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// totalsByUser indexes totals by user id.
func totalsByUser(totals []model.UserTotal) map[string]float64 {
	m := make(map[string]float64, len(totals))
	for _, t := range totals {
		m[t.UserID] = t.Total
	}
	return m
}
