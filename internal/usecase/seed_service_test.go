package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/sports-challenge/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_SeedIntoMemoryStoreIsRepeatable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagues := memory.NewLeagueRepository()
	sports := memory.NewSportRepository()
	picks := memory.NewDraftRepository()
	scores := memory.NewScoringRepository(leagues)

	pipeline := NewPipelineService(newStubSourceRepository(sampleSources()), nil, PipelineConfig{}, nil)
	seeder := NewSeedService(pipeline, leagues, sports, picks, scores, testSeedConfig(), nil)
	queries := NewLeagueService(leagues, sports, picks, scores)

	first, err := seeder.Seed(ctx)
	require.NoError(t, err)
	second, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	standings, err := queries.StoredLeaderboard(ctx, "1")
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, "Pat", standings[0].PlayerName)
	assert.Equal(t, float64(25), standings[0].TotalPoints)
	assert.Equal(t, "Mazzie", standings[1].PlayerName)
	assert.Equal(t, float64(10), standings[1].TotalPoints)

	matrix, err := queries.DraftMatrix(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mazzie", "Pat"}, matrix.Players)
	require.NotNil(t, matrix.Matrix["NFL"]["Mazzie"])
	assert.Equal(t, "Miami Dolphins", *matrix.Matrix["NFL"]["Mazzie"])

	upcoming, err := queries.ListUpcomingEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "NFL", upcoming[0].Name)
}
