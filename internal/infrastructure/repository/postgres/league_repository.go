package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-challenge/internal/domain/league"
	qb "github.com/riskibarqy/sports-challenge/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, item league.League) (league.League, error) {
	insertModel := leagueInsertModel{
		Name:        item.Name,
		Description: item.Description,
		Season:      item.Season,
		CreatedBy:   item.CreatedBy,
		IsActive:    item.IsActive,
	}
	query, args, err := qb.InsertModel("leagues", insertModel, `ON CONFLICT (name, season)
DO UPDATE SET
    description = EXCLUDED.description,
    created_by = EXCLUDED.created_by,
    is_active = EXCLUDED.is_active,
    updated_at = NOW()
RETURNING *`)
	if err != nil {
		return league.League{}, fmt.Errorf("build upsert league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return league.League{}, fmt.Errorf("upsert league: %w", err)
	}
	return leagueFromRow(row), nil
}

func (r *LeagueRepository) ListParticipants(ctx context.Context, leagueID int64) ([]league.Participant, error) {
	query, args, err := qb.Select("*").From("league_participants").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select participants query: %w", err)
	}

	var rows []participantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select participants: %w", err)
	}

	out := make([]league.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, participantFromRow(row))
	}
	return out, nil
}

// ReplaceParticipants keeps rows for names still present so their ids (and
// any picks or results pointing at them) survive a reseed.
func (r *LeagueRepository) ReplaceParticipants(ctx context.Context, leagueID int64, playerNames []string) ([]league.Participant, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx replace participants: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	keep := make([]any, 0, len(playerNames))
	for _, name := range playerNames {
		keep = append(keep, name)
	}
	clearQuery, clearArgs, err := qb.DeleteFrom("league_participants").
		Where(
			qb.Eq("league_id", leagueID),
			qb.NotIn("player_name", keep),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build clear participants query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return nil, fmt.Errorf("clear participants: %w", err)
	}

	out := make([]league.Participant, 0, len(playerNames))
	for _, name := range playerNames {
		insertModel := participantInsertModel{LeagueID: leagueID, PlayerName: name}
		query, args, err := qb.InsertModel("league_participants", insertModel, `ON CONFLICT (league_id, player_name)
DO UPDATE SET player_name = EXCLUDED.player_name
RETURNING *`)
		if err != nil {
			return nil, fmt.Errorf("build upsert participant query: %w", err)
		}

		var row participantTableModel
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			return nil, fmt.Errorf("upsert participant %q: %w", name, err)
		}
		out = append(out, participantFromRow(row))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace participants tx: %w", err)
	}
	return out, nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Season:      row.Season,
		CreatedBy:   row.CreatedBy,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func participantFromRow(row participantTableModel) league.Participant {
	return league.Participant{
		ID:         row.ID,
		LeagueID:   row.LeagueID,
		UserID:     nullStringToString(row.UserID),
		PlayerName: row.PlayerName,
		JoinedAt:   row.JoinedAt,
	}
}
