package scoring

import "context"

type Repository interface {
	// ReplaceForLeague swaps every result owned by the league's participants.
	ReplaceForLeague(ctx context.Context, leagueID int64, results []Result) error
	// Leaderboard sums points per participant, highest first. Participants
	// without results report zero.
	Leaderboard(ctx context.Context, leagueID int64) ([]Standing, error)
}
