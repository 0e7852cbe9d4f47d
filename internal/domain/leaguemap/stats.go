package leaguemap

import "math"

// PickProgress is the part of an annotated pick that user stats read.
type PickProgress struct {
	TeamOrAthlete string
	IsCompleted   bool
}

type LeagueProgress struct {
	Current   float64  `json:"current"`
	Possible  float64  `json:"possible"`
	Completed bool     `json:"completed"`
	Picks     []string `json:"picks"`
}

type UserStats struct {
	CurrentPoints        float64                   `json:"currentPoints"`
	MaxPossiblePoints    float64                   `json:"maxPossiblePoints"`
	CompletedPicks       int                       `json:"completedPicks"`
	TotalPicks           int                       `json:"totalPicks"`
	CompletionPercentage int                       `json:"completionPercentage"`
	LeagueBreakdown      map[string]LeagueProgress `json:"leagueBreakdown"`
}

// CalculateUserStats summarizes a player's picks by league. Picks that do
// not resolve to a known league count toward TotalPicks only. CurrentPoints
// is left for the caller, which owns the authoritative totals.
func (m *Mapper) CalculateUserStats(picks []PickProgress) UserStats {
	stats := UserStats{
		TotalPicks:      len(picks),
		LeagueBreakdown: make(map[string]LeagueProgress),
	}

	for _, pick := range picks {
		mapping, ok := m.Resolve(pick.TeamOrAthlete)
		if !ok {
			continue
		}
		league, ok := m.LeagueInfo(mapping.League)
		if !ok {
			continue
		}

		entry, exists := stats.LeagueBreakdown[mapping.League]
		if !exists {
			entry = LeagueProgress{
				Possible:  mapping.MaxPoints,
				Completed: league.IsCompleted,
				Picks:     []string{},
			}
		}
		entry.Picks = append(entry.Picks, pick.TeamOrAthlete)
		stats.LeagueBreakdown[mapping.League] = entry

		if pick.IsCompleted {
			stats.CompletedPicks++
		} else {
			stats.MaxPossiblePoints += mapping.MaxPoints
		}
	}

	if stats.TotalPicks > 0 {
		stats.CompletionPercentage = int(math.Floor(float64(stats.CompletedPicks)/float64(stats.TotalPicks)*100 + 0.5))
	}
	return stats
}
