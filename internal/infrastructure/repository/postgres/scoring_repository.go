package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-challenge/internal/domain/scoring"
	qb "github.com/riskibarqy/sports-challenge/internal/platform/querybuilder"
)

const leagueParticipantsSubquery = "participant_id IN (SELECT id FROM league_participants WHERE league_id = ?)"

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) ReplaceForLeague(ctx context.Context, leagueID int64, results []scoring.Result) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace scoring results: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("scoring_results").
		Where(qb.Expr(leagueParticipantsSubquery, leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear scoring results query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear scoring results: %w", err)
	}

	for start := 0; start < len(results); start += insertBatchSize {
		end := min(start+insertBatchSize, len(results))

		builder := qb.InsertInto("scoring_results").
			Columns("event_id", "participant_id", "pick_id", "placement", "points")
		for _, result := range results[start:end] {
			builder.Values(result.EventID, result.ParticipantID, ptrToNullInt64(result.PickID), result.Placement, result.Points)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert scoring results query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert scoring results: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace scoring results tx: %w", err)
	}
	return nil
}

func (r *ScoringRepository) Leaderboard(ctx context.Context, leagueID int64) ([]scoring.Standing, error) {
	query, args, err := qb.Select(
		"p.id AS participant_id",
		"p.player_name",
		"COALESCE(SUM(r.points), 0) AS total_points",
	).
		From("league_participants p LEFT JOIN scoring_results r ON r.participant_id = p.id").
		Where(qb.Eq("p.league_id", leagueID)).
		GroupBy("p.id", "p.player_name").
		OrderBy("total_points DESC", "p.player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard query: %w", err)
	}

	var rows []standingRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leaderboard: %w", err)
	}

	out := make([]scoring.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.Standing{
			ParticipantID: row.ParticipantID,
			PlayerName:    row.PlayerName,
			TotalPoints:   row.TotalPoints,
		})
	}
	return out, nil
}
