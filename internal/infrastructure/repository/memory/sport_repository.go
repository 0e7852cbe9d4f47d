package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/sports-challenge/internal/domain/sport"
)

type SportRepository struct {
	mu          sync.RWMutex
	sports      map[string]sport.Sport
	events      map[string]sport.Event
	nextSportID int64
	nextEventID int64
}

func NewSportRepository() *SportRepository {
	return &SportRepository{
		sports: make(map[string]sport.Sport),
		events: make(map[string]sport.Event),
	}
}

func (r *SportRepository) ListSports(_ context.Context) ([]sport.Sport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sport.Sport, 0, len(r.sports))
	for _, item := range r.sports {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *SportRepository) UpsertSports(_ context.Context, items []sport.Sport) ([]sport.Sport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]sport.Sport, 0, len(items))
	for _, item := range items {
		if existing, ok := r.sports[item.Code]; ok {
			item.ID = existing.ID
		} else {
			r.nextSportID++
			item.ID = r.nextSportID
		}
		r.sports[item.Code] = item
		out = append(out, item)
	}
	return out, nil
}

func (r *SportRepository) ListEvents(_ context.Context) ([]sport.Event, error) {
	return r.sortedEvents(func(sport.Event) bool { return true }, 0), nil
}

func (r *SportRepository) ListUpcomingEvents(_ context.Context, limit int) ([]sport.Event, error) {
	return r.sortedEvents(func(e sport.Event) bool { return e.Status == sport.EventStatusUpcoming }, limit), nil
}

func (r *SportRepository) UpsertEvents(_ context.Context, items []sport.Event) ([]sport.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]sport.Event, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if existing, ok := r.events[item.Name]; ok {
			item.ID = existing.ID
		} else {
			r.nextEventID++
			item.ID = r.nextEventID
		}
		r.events[item.Name] = item
		out = append(out, item)
	}
	return out, nil
}

func (r *SportRepository) sortedEvents(keep func(sport.Event) bool, limit int) []sport.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sport.Event, 0, len(r.events))
	for _, item := range r.events {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
