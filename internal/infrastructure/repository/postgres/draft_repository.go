package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	qb "github.com/riskibarqy/sports-challenge/internal/platform/querybuilder"
)

// insertBatchSize keeps a multi-row insert well under the postgres bind
// parameter limit.
const insertBatchSize = 500

type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) ListByLeague(ctx context.Context, leagueID int64) ([]draft.StoredPick, error) {
	query, args, err := qb.Select("*").From("draft_picks").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("round", "pick_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select draft picks query: %w", err)
	}

	var rows []draftPickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select draft picks: %w", err)
	}

	out := make([]draft.StoredPick, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.StoredPick{
			ID:            row.ID,
			LeagueID:      row.LeagueID,
			ParticipantID: row.ParticipantID,
			SportID:       row.SportID,
			Round:         row.Round,
			PickNumber:    row.PickNumber,
			TeamOrPlayer:  row.TeamOrPlayer,
			IsWildCard:    row.IsWildCard,
			PickedAt:      row.PickedAt,
		})
	}
	return out, nil
}

func (r *DraftRepository) ReplaceForLeague(ctx context.Context, leagueID int64, picks []draft.StoredPick) error {
	for _, pick := range picks {
		if pick.LeagueID != leagueID {
			return fmt.Errorf("pick belongs to league %d, expected %d", pick.LeagueID, leagueID)
		}
		if err := pick.Validate(); err != nil {
			return fmt.Errorf("validate draft pick: %w", err)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace draft picks: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("draft_picks").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear draft picks query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear draft picks: %w", err)
	}

	for start := 0; start < len(picks); start += insertBatchSize {
		end := min(start+insertBatchSize, len(picks))

		builder := qb.InsertInto("draft_picks").
			Columns("league_id", "participant_id", "sport_id", "round", "pick_number", "team_or_player", "is_wild_card")
		for _, pick := range picks[start:end] {
			builder.Values(pick.LeagueID, pick.ParticipantID, pick.SportID, pick.Round, pick.PickNumber, pick.TeamOrPlayer, pick.IsWildCard)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert draft picks query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert draft picks: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace draft picks tx: %w", err)
	}
	return nil
}
