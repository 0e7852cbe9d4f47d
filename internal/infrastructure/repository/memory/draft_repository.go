package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
)

type DraftRepository struct {
	mu     sync.RWMutex
	picks  map[int64][]draft.StoredPick
	nextID int64
	now    func() time.Time
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{
		picks: make(map[int64][]draft.StoredPick),
		now:   time.Now,
	}
}

func (r *DraftRepository) ListByLeague(_ context.Context, leagueID int64) ([]draft.StoredPick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]draft.StoredPick(nil), r.picks[leagueID]...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Round != out[j].Round {
			return out[i].Round < out[j].Round
		}
		return out[i].PickNumber < out[j].PickNumber
	})
	return out, nil
}

func (r *DraftRepository) ReplaceForLeague(_ context.Context, leagueID int64, picks []draft.StoredPick) error {
	for _, pick := range picks {
		if pick.LeagueID != leagueID {
			return fmt.Errorf("pick belongs to league %d, expected %d", pick.LeagueID, leagueID)
		}
		if err := pick.Validate(); err != nil {
			return fmt.Errorf("validate draft pick: %w", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]draft.StoredPick, 0, len(picks))
	for _, pick := range picks {
		r.nextID++
		pick.ID = r.nextID
		if pick.PickedAt.IsZero() {
			pick.PickedAt = r.now().UTC()
		}
		stored = append(stored, pick)
	}
	r.picks[leagueID] = stored
	return nil
}
