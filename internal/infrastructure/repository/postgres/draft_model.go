package postgres

import "time"

type draftPickTableModel struct {
	ID            int64     `db:"id"`
	LeagueID      int64     `db:"league_id"`
	ParticipantID int64     `db:"participant_id"`
	SportID       int64     `db:"sport_id"`
	Round         int       `db:"round"`
	PickNumber    int       `db:"pick_number"`
	TeamOrPlayer  string    `db:"team_or_player"`
	IsWildCard    bool      `db:"is_wild_card"`
	PickedAt      time.Time `db:"picked_at"`
}
