package sport

import "context"

type Repository interface {
	ListSports(ctx context.Context) ([]Sport, error)
	// UpsertSports matches on code and returns stored rows in input order.
	UpsertSports(ctx context.Context, items []Sport) ([]Sport, error)

	ListEvents(ctx context.Context) ([]Event, error)
	ListUpcomingEvents(ctx context.Context, limit int) ([]Event, error)
	// UpsertEvents matches on name and returns stored rows in input order.
	UpsertEvents(ctx context.Context, items []Event) ([]Event, error)
}
