package points

// Sheet is the normalized points export.
// Totals come verbatim from the sheet's unnamed total column and are never
// recomputed from Breakdown; a player without a numeric total is absent from
// Totals.
type Sheet struct {
	Players   []string
	Breakdown map[string]map[string]float64
	Totals    map[string]float64
}

func NewSheet() Sheet {
	return Sheet{
		Breakdown: make(map[string]map[string]float64),
		Totals:    make(map[string]float64),
	}
}

// Total returns the authoritative total for player, or 0.
func (s Sheet) Total(player string) float64 {
	return s.Totals[player]
}

// Events returns a copy of the player's non-zero per-event points.
func (s Sheet) Events(player string) map[string]float64 {
	src := s.Breakdown[player]
	out := make(map[string]float64, len(src))
	for event, value := range src {
		out[event] = value
	}
	return out
}
