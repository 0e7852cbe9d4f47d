package postgres

import (
	"database/sql"
	"time"
)

type sportTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	Category  string    `db:"category"`
	Icon      string    `db:"icon"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type sportInsertModel struct {
	Name     string `db:"name"`
	Code     string `db:"code"`
	Category string `db:"category"`
	Icon     string `db:"icon"`
}

type eventTableModel struct {
	ID        int64         `db:"id"`
	SportID   sql.NullInt64 `db:"sport_id"`
	Name      string        `db:"name"`
	StartDate sql.NullTime  `db:"start_date"`
	EndDate   string        `db:"end_date"`
	Status    string        `db:"status"`
	MaxPoints float64       `db:"max_points"`
	EventType string        `db:"event_type"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type eventInsertModel struct {
	SportID   sql.NullInt64 `db:"sport_id"`
	Name      string        `db:"name"`
	StartDate sql.NullTime  `db:"start_date"`
	EndDate   string        `db:"end_date"`
	Status    string        `db:"status"`
	MaxPoints float64       `db:"max_points"`
	EventType string        `db:"event_type"`
}
