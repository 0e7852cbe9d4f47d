package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/sports-challenge/internal/domain/scoring"
)

// ScoringRepository reads participant membership from the league store it
// was built with.
type ScoringRepository struct {
	mu      sync.RWMutex
	leagues *LeagueRepository
	results map[int64][]scoring.Result
	nextID  int64
	now     func() time.Time
}

func NewScoringRepository(leagues *LeagueRepository) *ScoringRepository {
	return &ScoringRepository{
		leagues: leagues,
		results: make(map[int64][]scoring.Result),
		now:     time.Now,
	}
}

func (r *ScoringRepository) ReplaceForLeague(_ context.Context, leagueID int64, results []scoring.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]scoring.Result, 0, len(results))
	for _, result := range results {
		r.nextID++
		result.ID = r.nextID
		if result.ScoredAt.IsZero() {
			result.ScoredAt = r.now().UTC()
		}
		stored = append(stored, result)
	}
	r.results[leagueID] = stored
	return nil
}

func (r *ScoringRepository) Leaderboard(_ context.Context, leagueID int64) ([]scoring.Standing, error) {
	members := r.leagues.participantIDs(leagueID)

	r.mu.RLock()
	totals := make(map[int64]float64, len(members))
	for _, result := range r.results[leagueID] {
		if _, ok := members[result.ParticipantID]; ok {
			totals[result.ParticipantID] += result.Points
		}
	}
	r.mu.RUnlock()

	out := make([]scoring.Standing, 0, len(members))
	for id, name := range members {
		out = append(out, scoring.Standing{
			ParticipantID: id,
			PlayerName:    name,
			TotalPoints:   totals[id],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out, nil
}
