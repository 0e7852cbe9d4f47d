package leaderboard

// Entry is one ranked row of the points leaderboard.
type Entry struct {
	PlayerName      string             `json:"playerName"`
	TotalPoints     float64            `json:"totalPoints"`
	CompletedEvents int                `json:"completedEvents"`
	PointsBreakdown map[string]float64 `json:"pointsBreakdown"`
	Rank            int                `json:"rank"`
}

// Find returns the entry for player.
func Find(entries []Entry, player string) (Entry, bool) {
	for _, e := range entries {
		if e.PlayerName == player {
			return e, true
		}
	}
	return Entry{}, false
}
