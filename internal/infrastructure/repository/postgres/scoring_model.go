package postgres

type standingRowModel struct {
	ParticipantID int64   `db:"participant_id"`
	PlayerName    string  `db:"player_name"`
	TotalPoints   float64 `db:"total_points"`
}
