package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/sports-challenge/internal/config"
	"github.com/riskibarqy/sports-challenge/internal/domain/leaguemap"
	domainsource "github.com/riskibarqy/sports-challenge/internal/domain/source"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
	"github.com/riskibarqy/sports-challenge/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"draft.csv":    "",
		"points.csv":   "Players,NBA,\nPat,25,25\n",
		"schedule.csv": "Sport,Ending Date,Type,1st,2nd\nNBA,June 2025,Neutral,75,50\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return config.Config{
		HTTPAddr:                  ":0",
		ServiceName:               "sports-challenge-api",
		StorageBackend:            config.StorageMemory,
		CORSAllowedOrigins:        []string{"*"},
		SourceDraftURI:            "draft.csv",
		SourcePointsURI:           "points.csv",
		SourceScheduleURI:         "schedule.csv",
		SourceBaseDir:             dir,
		SourceHTTPTimeout:         time.Second,
		SourceCircuitFailureCount: 3,
		SourceFetchWorkers:        3,
		LeagueMatchStrategy:       string(leaguemap.MatchExactThenLongest),
		SeedLeagueName:            "Test League",
		SeedLeagueSeason:          "2026",
	}
}

func TestNewHTTPServer_MemoryBackend(t *testing.T) {
	cfg := testConfig(t)

	srv, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	assert.Nil(t, srv.Scheduler)
	require.NotNil(t, srv.HTTP)

	req := httptest.NewRequest(http.MethodGet, "/v1/leaderboard", nil)
	rec := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pat")

	result, err := srv.Seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Participants)
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTPAddr = " "

	if _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestNewHTTPServer_MissingLeagueTable(t *testing.T) {
	cfg := testConfig(t)
	cfg.LeagueTablePath = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for missing league table")
	}
}

func TestNewHTTPServer_BuildsSchedulerWhenIntervalSet(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedInterval = time.Hour

	srv, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, srv.Scheduler)
	srv.Scheduler.Start()
	require.NoError(t, srv.Close())
	assert.NotPanics(t, func() { _ = srv.Close() })
}

func TestUsesS3(t *testing.T) {
	assert.False(t, usesS3(map[domainsource.Key]string{domainsource.KeyPoints: "points.csv", domainsource.KeyDraft: "https://example.com/x.csv"}))
	assert.True(t, usesS3(map[domainsource.Key]string{domainsource.KeyPoints: " S3://bucket/points.csv"}))
}

type countingSeeder struct {
	calls atomic.Int32
}

func (s *countingSeeder) Seed(context.Context) (usecase.SeedResult, error) {
	s.calls.Add(1)
	return usecase.SeedResult{}, nil
}

func TestSeedScheduler_RunsOnInterval(t *testing.T) {
	seeder := &countingSeeder{}

	sched, err := NewSeedScheduler(seeder, 20*time.Millisecond, logging.NewNop())
	require.NoError(t, err)
	sched.Start()
	t.Cleanup(func() { _ = sched.Stop() })

	require.Eventually(t, func() bool {
		return seeder.calls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSeedScheduler_RejectsZeroInterval(t *testing.T) {
	if _, err := NewSeedScheduler(&countingSeeder{}, 0, nil); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}
