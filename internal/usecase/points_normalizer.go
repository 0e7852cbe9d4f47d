package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/sports-challenge/internal/domain/points"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
	"github.com/riskibarqy/sports-challenge/internal/platform/tabular"
)

type PointsNormalizer struct {
	logger *logging.Logger
}

func NewPointsNormalizer(logger *logging.Logger) *PointsNormalizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &PointsNormalizer{logger: logger}
}

// Normalize reads per-event points and the authoritative totals. The total
// column is the first column whose header is empty.
func (n *PointsNormalizer) Normalize(ctx context.Context, text string) points.Sheet {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsNormalizer.Normalize")
	defer span.End()

	sheet := points.NewSheet()
	rows := tabular.Parse(text)
	if len(rows) == 0 {
		return sheet
	}

	headers := rows[0].Headers()
	totalColumn := -1
	for i, header := range headers {
		if header == "" {
			totalColumn = i
			break
		}
	}
	if totalColumn < 0 {
		n.logger.DebugContext(ctx, "points export has no total column", "headers", len(headers))
	}

	for _, row := range rows {
		player := row.At(0)
		if player == "" {
			continue
		}
		if _, seen := sheet.Breakdown[player]; !seen {
			sheet.Players = append(sheet.Players, player)
		}

		events := make(map[string]float64)
		sheet.Breakdown[player] = events

		if totalColumn >= 0 {
			if total, ok := tabular.ParseNumber(row.At(totalColumn)); ok {
				sheet.Totals[player] = total
			}
		}

		for j := 1; j < len(headers) && j < row.Len(); j++ {
			event := headers[j]
			if strings.TrimSpace(event) == "" {
				continue
			}
			value, ok := tabular.ParseNumber(row.At(j))
			// Zero results are indistinguishable from no result here; they
			// still count through the total column.
			if !ok || value == 0 {
				continue
			}
			events[event] = value
		}
	}

	return sheet
}
