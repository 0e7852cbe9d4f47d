package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-challenge/internal/domain/sport"
	qb "github.com/riskibarqy/sports-challenge/internal/platform/querybuilder"
)

type SportRepository struct {
	db *sqlx.DB
}

func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) ListSports(ctx context.Context) ([]sport.Sport, error) {
	query, args, err := qb.Select("*").From("sports").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sports query: %w", err)
	}

	var rows []sportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sports: %w", err)
	}

	out := make([]sport.Sport, 0, len(rows))
	for _, row := range rows {
		out = append(out, sportFromRow(row))
	}
	return out, nil
}

func (r *SportRepository) UpsertSports(ctx context.Context, items []sport.Sport) ([]sport.Sport, error) {
	if len(items) == 0 {
		return []sport.Sport{}, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx upsert sports: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	out := make([]sport.Sport, 0, len(items))
	for _, item := range items {
		insertModel := sportInsertModel{
			Name:     item.Name,
			Code:     item.Code,
			Category: item.Category,
			Icon:     item.Icon,
		}
		query, args, err := qb.InsertModel("sports", insertModel, `ON CONFLICT (code)
DO UPDATE SET
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    icon = EXCLUDED.icon,
    updated_at = NOW()
RETURNING *`)
		if err != nil {
			return nil, fmt.Errorf("build upsert sport query: %w", err)
		}

		var row sportTableModel
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			return nil, fmt.Errorf("upsert sport code=%s: %w", item.Code, err)
		}
		out = append(out, sportFromRow(row))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit upsert sports tx: %w", err)
	}
	return out, nil
}

func (r *SportRepository) ListEvents(ctx context.Context) ([]sport.Event, error) {
	query, args, err := qb.Select("*").From("events").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events query: %w", err)
	}
	return r.selectEvents(ctx, query, args)
}

func (r *SportRepository) ListUpcomingEvents(ctx context.Context, limit int) ([]sport.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.Eq("status", sport.EventStatusUpcoming)).
		OrderBy("name").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select upcoming events query: %w", err)
	}
	return r.selectEvents(ctx, query, args)
}

func (r *SportRepository) UpsertEvents(ctx context.Context, items []sport.Event) ([]sport.Event, error) {
	if len(items) == 0 {
		return []sport.Event{}, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx upsert events: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	out := make([]sport.Event, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("validate event %q: %w", item.Name, err)
		}
		insertModel := eventInsertModel{
			SportID:   ptrToNullInt64(item.SportID),
			Name:      item.Name,
			StartDate: ptrToNullTime(item.StartDate),
			EndDate:   item.EndDate,
			Status:    item.Status,
			MaxPoints: item.MaxPoints,
			EventType: item.EventType,
		}
		query, args, err := qb.InsertModel("events", insertModel, `ON CONFLICT (name)
DO UPDATE SET
    sport_id = EXCLUDED.sport_id,
    start_date = EXCLUDED.start_date,
    end_date = EXCLUDED.end_date,
    status = EXCLUDED.status,
    max_points = EXCLUDED.max_points,
    event_type = EXCLUDED.event_type,
    updated_at = NOW()
RETURNING *`)
		if err != nil {
			return nil, fmt.Errorf("build upsert event query: %w", err)
		}

		var row eventTableModel
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			return nil, fmt.Errorf("upsert event %q: %w", item.Name, err)
		}
		out = append(out, eventFromRow(row))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit upsert events tx: %w", err)
	}
	return out, nil
}

func (r *SportRepository) selectEvents(ctx context.Context, query string, args []any) ([]sport.Event, error) {
	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}

	out := make([]sport.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func sportFromRow(row sportTableModel) sport.Sport {
	return sport.Sport{
		ID:       row.ID,
		Name:     row.Name,
		Code:     row.Code,
		Category: row.Category,
		Icon:     row.Icon,
	}
}

func eventFromRow(row eventTableModel) sport.Event {
	return sport.Event{
		ID:        row.ID,
		SportID:   nullInt64ToPtr(row.SportID),
		Name:      row.Name,
		StartDate: nullTimeToPtr(row.StartDate),
		EndDate:   row.EndDate,
		Status:    row.Status,
		MaxPoints: row.MaxPoints,
		EventType: row.EventType,
	}
}
