package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/riskibarqy/sports-challenge/internal/domain/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSourceRepository struct {
	mu     sync.Mutex
	texts  map[source.Key]string
	errs   map[source.Key]error
	called map[source.Key]int
}

func newStubSourceRepository(texts map[source.Key]string) *stubSourceRepository {
	return &stubSourceRepository{
		texts:  texts,
		errs:   make(map[source.Key]error),
		called: make(map[source.Key]int),
	}
}

func (s *stubSourceRepository) Fetch(_ context.Context, key source.Key) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.called[key]++
	if err := s.errs[key]; err != nil {
		return nil, err
	}
	return []byte(s.texts[key]), nil
}

func (s *stubSourceRepository) calls(key source.Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.called[key]
}

func sampleSources() map[source.Key]string {
	return map[source.Key]string{
		source.KeyDraft: draftExport(20,
			"NFL,Ravens,Miami Dolphins",
			"NBA,Lakers,Celtics",
		),
		source.KeyPoints: strings.Join([]string{
			"Players,NBA,Golf,",
			"Pat,25,0,25",
			"Mazzie,,10,40",
		}, "\n"),
		source.KeySchedule: strings.Join([]string{
			"Sport,Ending Date,Type,1st,2nd",
			"NFL,February 2026,Cool,150,100",
			"NBA,June 2025,Neutral,75,50",
		}, "\n"),
	}
}

func TestPipelineService_Leaderboard(t *testing.T) {
	t.Parallel()

	repo := newStubSourceRepository(sampleSources())
	service := NewPipelineService(repo, nil, PipelineConfig{}, nil)

	board, err := service.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Mazzie", board[0].PlayerName)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, 1, board[1].CompletedEvents)

	_, err = service.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls(source.KeyPoints))
	assert.Equal(t, 0, repo.calls(source.KeyDraft))
}

func TestPipelineService_PlayerData(t *testing.T) {
	t.Parallel()

	service := NewPipelineService(newStubSourceRepository(sampleSources()), nil, PipelineConfig{}, nil)

	got, err := service.PlayerData(context.Background(), " Pat ")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rank)
	assert.Equal(t, float64(25), got.TotalPoints)

	_, err = service.PlayerData(context.Background(), "Ghost")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = service.PlayerData(context.Background(), "  ")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestPipelineService_PlayerStats(t *testing.T) {
	t.Parallel()

	service := NewPipelineService(newStubSourceRepository(sampleSources()), nil, PipelineConfig{}, nil)

	got, err := service.PlayerStats(context.Background(), "Mazzie")
	require.NoError(t, err)
	assert.Equal(t, PlayerStats{
		TotalPoints:     40,
		PossiblePoints:  150,
		CompletedEvents: 0,
		UpcomingEvents:  2,
		TotalPicks:      2,
	}, got)

	_, err = service.PlayerStats(context.Background(), "")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestPipelineService_DraftBoardAndPlayers(t *testing.T) {
	t.Parallel()

	service := NewPipelineService(newStubSourceRepository(sampleSources()), nil, PipelineConfig{FetchWorkers: 1}, nil)

	board, err := service.DraftBoard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Pat", "Mazzie"}, board.Players)
	require.Len(t, board.Schedule, 2)
	assert.Equal(t, "NBA", board.Schedule[0].Sport)
	assert.Equal(t, float64(25), board.UserStats["Pat"].CurrentPoints)
	assert.Equal(t, "NFL", board.DraftByPlayer["Mazzie"][0].League)

	players, err := service.DraftPlayers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Pat", "Mazzie"}, players)
	assert.Len(t, service.Leagues(), 13)
}

func TestPipelineService_UnavailableSourceDegradesToEmpty(t *testing.T) {
	t.Parallel()

	repo := newStubSourceRepository(sampleSources())
	repo.errs[source.KeyPoints] = errors.Join(source.ErrUnavailable, errors.New("disk gone"))
	service := NewPipelineService(repo, nil, PipelineConfig{}, nil)

	snapshot, err := service.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Leaderboard)
	assert.NotNil(t, snapshot.Points.Totals)
	assert.Len(t, snapshot.Picks, 4)
	assert.Len(t, snapshot.Schedule, 2)

	board, err := service.DraftBoard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, board.UserStats["Pat"].CurrentPoints)
}

func TestPipelineService_NilRepository(t *testing.T) {
	t.Parallel()

	service := NewPipelineService(nil, nil, PipelineConfig{}, nil)

	events, err := service.Schedule(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)

	picks, err := service.DraftPicks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, picks)
}
