package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	"github.com/riskibarqy/sports-challenge/internal/domain/leaderboard"
	"github.com/riskibarqy/sports-challenge/internal/domain/leaguemap"
	"github.com/riskibarqy/sports-challenge/internal/domain/points"
	"github.com/riskibarqy/sports-challenge/internal/domain/schedule"
	"github.com/riskibarqy/sports-challenge/internal/domain/source"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
)

const defaultFetchWorkers = 3

type PipelineConfig struct {
	FetchWorkers int
	DraftLayout  DraftLayout
}

// Snapshot is one consistent read of all three exports.
type Snapshot struct {
	Picks       []draft.Pick
	Points      points.Sheet
	Leaderboard []leaderboard.Entry
	Schedule    []schedule.Event
}

// PipelineService re-reads and re-parses its sources on every call. A source
// that cannot be read is logged and treated as empty text.
type PipelineService struct {
	sources    source.Repository
	draft      *DraftNormalizer
	points     *PointsNormalizer
	schedule   *ScheduleNormalizer
	aggregator *Aggregator
	workers    int
	logger     *logging.Logger
}

func NewPipelineService(sources source.Repository, mapper *leaguemap.Mapper, cfg PipelineConfig, logger *logging.Logger) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.FetchWorkers <= 0 {
		cfg.FetchWorkers = defaultFetchWorkers
	}
	if cfg.DraftLayout == (DraftLayout{}) {
		cfg.DraftLayout = DefaultDraftLayout()
	}

	return &PipelineService{
		sources:    sources,
		draft:      NewDraftNormalizer(cfg.DraftLayout, logger),
		points:     NewPointsNormalizer(logger),
		schedule:   NewScheduleNormalizer(),
		aggregator: NewAggregator(mapper),
		workers:    cfg.FetchWorkers,
		logger:     logger,
	}
}

func (s *PipelineService) Leaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Leaderboard")
	defer span.End()

	texts, err := s.load(ctx, source.KeyPoints)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Leaderboard(s.points.Normalize(ctx, texts[source.KeyPoints])), nil
}

func (s *PipelineService) PlayerData(ctx context.Context, playerName string) (PlayerData, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.PlayerData")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return PlayerData{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	board, err := s.Leaderboard(ctx)
	if err != nil {
		return PlayerData{}, err
	}
	return s.aggregator.PlayerData(playerName, board)
}

func (s *PipelineService) PlayerStats(ctx context.Context, playerName string) (PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.PlayerStats")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return PlayerStats{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	texts, err := s.load(ctx, source.KeyDraft, source.KeyPoints)
	if err != nil {
		return PlayerStats{}, err
	}
	picks := s.draft.Normalize(ctx, texts[source.KeyDraft])
	board := s.aggregator.Leaderboard(s.points.Normalize(ctx, texts[source.KeyPoints]))

	return s.aggregator.PlayerStats(playerName, picks, board), nil
}

func (s *PipelineService) DraftPicks(ctx context.Context) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.DraftPicks")
	defer span.End()

	texts, err := s.load(ctx, source.KeyDraft)
	if err != nil {
		return nil, err
	}
	return s.draft.Normalize(ctx, texts[source.KeyDraft]), nil
}

// DraftPlayers lists players in the order they appear in the draft.
func (s *PipelineService) DraftPlayers(ctx context.Context) ([]string, error) {
	picks, err := s.DraftPicks(ctx)
	if err != nil {
		return nil, err
	}
	players, _ := groupPicks(picks)
	return players, nil
}

func (s *PipelineService) DraftBoard(ctx context.Context) (DraftBoard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.DraftBoard")
	defer span.End()

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return DraftBoard{}, err
	}
	return s.aggregator.DraftBoard(snapshot.Picks, snapshot.Schedule, snapshot.Leaderboard), nil
}

func (s *PipelineService) Schedule(ctx context.Context) ([]schedule.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Schedule")
	defer span.End()

	texts, err := s.load(ctx, source.KeySchedule)
	if err != nil {
		return nil, err
	}
	return s.schedule.Normalize(ctx, texts[source.KeySchedule]), nil
}

func (s *PipelineService) Leagues() []leaguemap.League {
	return s.aggregator.Mapper().Leagues()
}

func (s *PipelineService) Snapshot(ctx context.Context) (Snapshot, error) {
	texts, err := s.load(ctx, source.Keys()...)
	if err != nil {
		return Snapshot{}, err
	}

	sheet := s.points.Normalize(ctx, texts[source.KeyPoints])
	return Snapshot{
		Picks:       s.draft.Normalize(ctx, texts[source.KeyDraft]),
		Points:      sheet,
		Leaderboard: s.aggregator.Leaderboard(sheet),
		Schedule:    s.schedule.Normalize(ctx, texts[source.KeySchedule]),
	}, nil
}

type fetchedSource struct {
	key  source.Key
	text string
}

// load fetches keys concurrently. Only worker pool failures are returned;
// fetch failures degrade to empty text.
func (s *PipelineService) load(ctx context.Context, keys ...source.Key) (map[source.Key]string, error) {
	texts := make(map[source.Key]string, len(keys))
	if len(keys) == 0 {
		return texts, nil
	}

	workerCount := s.workers
	if workerCount > len(keys) {
		workerCount = len(keys)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan fetchedSource, len(keys))
	var workers sync.WaitGroup
	for _, key := range keys {
		key := key
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- fetchedSource{key: key, text: s.fetch(ctx, key)}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit source fetch to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		texts[row.key] = row.text
	}
	return texts, nil
}

func (s *PipelineService) fetch(ctx context.Context, key source.Key) string {
	if s.sources == nil {
		s.logger.WarnContext(ctx, "source repository not configured", "source_key", string(key))
		return ""
	}

	raw, err := s.sources.Fetch(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "source unavailable, using empty text",
			"source_key", string(key),
			"error", err,
		)
		return ""
	}
	return string(raw)
}
