package schedule

// Event is one normalized schedule row.
type Event struct {
	Sport          string    `json:"sport"`
	EndingDate     string    `json:"endingDate"`
	Type           string    `json:"type"`
	PointStructure []float64 `json:"pointStructure"`
	IsCompleted    bool      `json:"isCompleted"`
}

// MaxPoints is the first-place payout, or 0 when unknown.
func (e Event) MaxPoints() float64 {
	if len(e.PointStructure) == 0 {
		return 0
	}
	return e.PointStructure[0]
}
