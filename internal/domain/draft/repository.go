package draft

import "context"

// Repository persists the materialized draft of a league.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID int64) ([]StoredPick, error)
	ReplaceForLeague(ctx context.Context, leagueID int64, picks []StoredPick) error
}
