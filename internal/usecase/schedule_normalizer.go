package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/sports-challenge/internal/domain/schedule"
	"github.com/riskibarqy/sports-challenge/internal/platform/tabular"
)

const (
	pointStructureFirstColumn = 3
	pointStructureColumns     = 8
)

type ScheduleNormalizer struct{}

func NewScheduleNormalizer() *ScheduleNormalizer {
	return &ScheduleNormalizer{}
}

// Normalize returns one event per sport, completed events first and then by
// sport name.
func (n *ScheduleNormalizer) Normalize(ctx context.Context, text string) []schedule.Event {
	_, span := startUsecaseSpan(ctx, "usecase.ScheduleNormalizer.Normalize")
	defer span.End()

	rows := tabular.Parse(text)
	events := make([]schedule.Event, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		if row.Present() < 3 {
			continue
		}
		sport := row.At(0)
		if skipScheduleRow(sport) {
			continue
		}
		if _, exists := seen[sport]; exists {
			continue
		}

		structure := make([]float64, 0, pointStructureColumns)
		for i := pointStructureFirstColumn; i < pointStructureFirstColumn+pointStructureColumns; i++ {
			if value, ok := tabular.ParseNumber(row.At(i)); ok {
				structure = append(structure, value)
			}
		}
		if len(structure) == 0 {
			continue
		}

		endingDate := row.At(1)
		seen[sport] = struct{}{}
		events = append(events, schedule.Event{
			Sport:          sport,
			EndingDate:     endingDate,
			Type:           row.At(2),
			PointStructure: structure,
			IsCompleted:    schedule.IsCompleted(sport, endingDate),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].IsCompleted != events[j].IsCompleted {
			return events[i].IsCompleted
		}
		return events[i].Sport < events[j].Sport
	})
	return events
}

func skipScheduleRow(sport string) bool {
	return sport == "" ||
		strings.Contains(sport, "Sports Ranked") ||
		strings.Contains(sport, "Total") ||
		sport == "Sport" ||
		tabular.IsNumeric(sport)
}
