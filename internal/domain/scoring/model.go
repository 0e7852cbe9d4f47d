package scoring

import "time"

// Result is a participant's placement in one event.
type Result struct {
	ID            int64
	EventID       int64
	ParticipantID int64
	PickID        *int64
	Placement     int
	Points        float64
	ScoredAt      time.Time
}

// Standing is a participant's summed score within a league.
type Standing struct {
	ParticipantID int64
	PlayerName    string
	TotalPoints   float64
}

// PlacementForPoints maps earned points onto a finishing position.
func PlacementForPoints(points float64) int {
	switch {
	case points >= 75:
		return 1
	case points >= 50:
		return 2
	case points >= 25:
		return 3
	case points >= 10:
		return 4
	default:
		return 5
	}
}
