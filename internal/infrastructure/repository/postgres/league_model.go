package postgres

import (
	"database/sql"
	"time"
)

type leagueTableModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Season      string    `db:"season"`
	CreatedBy   string    `db:"created_by"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type leagueInsertModel struct {
	Name        string `db:"name"`
	Description string `db:"description"`
	Season      string `db:"season"`
	CreatedBy   string `db:"created_by"`
	IsActive    bool   `db:"is_active"`
}

type participantTableModel struct {
	ID         int64          `db:"id"`
	LeagueID   int64          `db:"league_id"`
	UserID     sql.NullString `db:"user_id"`
	PlayerName string         `db:"player_name"`
	JoinedAt   time.Time      `db:"joined_at"`
}

type participantInsertModel struct {
	LeagueID   int64  `db:"league_id"`
	PlayerName string `db:"player_name"`
}
