package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
	// Upsert matches on name and season and returns the stored league.
	Upsert(ctx context.Context, item League) (League, error)

	ListParticipants(ctx context.Context, leagueID int64) ([]Participant, error)
	// ReplaceParticipants returns the stored rows in input order.
	ReplaceParticipants(ctx context.Context, leagueID int64, playerNames []string) ([]Participant, error)
}
