package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/sports-challenge/internal/domain/league"
)

type leagueKey struct {
	name   string
	season string
}

type LeagueRepository struct {
	mu           sync.RWMutex
	items        map[int64]league.League
	orders       []int64
	byKey        map[leagueKey]int64
	participants map[int64][]league.Participant
	nextID       int64
	nextPartID   int64
	now          func() time.Time
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{
		items:        make(map[int64]league.League),
		byKey:        make(map[leagueKey]int64),
		participants: make(map[int64][]league.Participant),
		now:          time.Now,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) Upsert(_ context.Context, item league.League) (league.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	key := leagueKey{name: item.Name, season: item.Season}
	if id, ok := r.byKey[key]; ok {
		existing := r.items[id]
		existing.Description = item.Description
		existing.CreatedBy = item.CreatedBy
		existing.IsActive = item.IsActive
		existing.UpdatedAt = now
		r.items[id] = existing
		return existing, nil
	}

	r.nextID++
	item.ID = r.nextID
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = item
	r.byKey[key] = item.ID
	r.orders = append(r.orders, item.ID)
	return item, nil
}

func (r *LeagueRepository) ListParticipants(_ context.Context, leagueID int64) ([]league.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]league.Participant(nil), r.participants[leagueID]...), nil
}

func (r *LeagueRepository) ReplaceParticipants(_ context.Context, leagueID int64, playerNames []string) ([]league.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := make(map[string]league.Participant, len(r.participants[leagueID]))
	for _, p := range r.participants[leagueID] {
		existing[p.PlayerName] = p
	}

	out := make([]league.Participant, 0, len(playerNames))
	seen := make(map[string]struct{}, len(playerNames))
	for _, name := range playerNames {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if p, ok := existing[name]; ok {
			out = append(out, p)
			continue
		}
		r.nextPartID++
		out = append(out, league.Participant{
			ID:         r.nextPartID,
			LeagueID:   leagueID,
			PlayerName: name,
			JoinedAt:   r.now().UTC(),
		})
	}
	r.participants[leagueID] = out

	return append([]league.Participant(nil), out...), nil
}

func (r *LeagueRepository) participantIDs(leagueID int64) map[int64]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]string, len(r.participants[leagueID]))
	for _, p := range r.participants[leagueID] {
		out[p.ID] = p.PlayerName
	}
	return out
}
