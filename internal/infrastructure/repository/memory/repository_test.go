package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	"github.com/riskibarqy/sports-challenge/internal/domain/league"
	"github.com/riskibarqy/sports-challenge/internal/domain/scoring"
	"github.com/riskibarqy/sports-challenge/internal/domain/sport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeagueRepository_UpsertMatchesNameAndSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLeagueRepository()

	first, err := repo.Upsert(ctx, league.League{Name: "Ryan's Sports Challenge 2026", Season: "2026", Description: "v1"})
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, league.League{Name: "Ryan's Sports Challenge 2026", Season: "2026", Description: "v2"})
	require.NoError(t, err)
	other, err := repo.Upsert(ctx, league.League{Name: "Ryan's Sports Challenge 2026", Season: "2027"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "v2", second.Description)
	assert.NotEqual(t, first.ID, other.ID)

	leagues, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, leagues, 2)

	_, found, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLeagueRepository_ReplaceParticipantsKeepsIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLeagueRepository()

	first, err := repo.ReplaceParticipants(ctx, 1, []string{"Pat", "Mazzie"})
	require.NoError(t, err)
	second, err := repo.ReplaceParticipants(ctx, 1, []string{"Mazzie", "Huff", "Mazzie"})
	require.NoError(t, err)

	require.Len(t, second, 2)
	assert.Equal(t, first[1].ID, second[0].ID)
	assert.Equal(t, "Huff", second[1].PlayerName)

	listed, err := repo.ListParticipants(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second, listed)
}

func TestSportRepository_UpsertAndUpcoming(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSportRepository()

	sports, err := repo.UpsertSports(ctx, []sport.Sport{{Name: "NFL", Code: "NFL"}, {Name: "NBA", Code: "NBA"}})
	require.NoError(t, err)
	again, err := repo.UpsertSports(ctx, []sport.Sport{{Name: "NFL", Code: "NFL", Icon: "football"}})
	require.NoError(t, err)
	assert.Equal(t, sports[0].ID, again[0].ID)

	_, err = repo.UpsertEvents(ctx, []sport.Event{
		{Name: "NHL", Status: sport.EventStatusCompleted},
		{Name: "NFL", Status: sport.EventStatusUpcoming},
		{Name: "MLB", Status: sport.EventStatusUpcoming},
	})
	require.NoError(t, err)

	upcoming, err := repo.ListUpcomingEvents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "MLB", upcoming[0].Name)

	all, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = repo.UpsertEvents(ctx, []sport.Event{{Name: "Bad", Status: "paused"}})
	assert.Error(t, err)
}

func TestDraftRepository_ReplaceForLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewDraftRepository()

	picks := []draft.StoredPick{
		{LeagueID: 1, ParticipantID: 2, SportID: 3, Round: 2, PickNumber: 1, TeamOrPlayer: "Dodgers"},
		{LeagueID: 1, ParticipantID: 1, SportID: 4, Round: 1, PickNumber: 2, TeamOrPlayer: "Ravens"},
	}
	require.NoError(t, repo.ReplaceForLeague(ctx, 1, picks))

	listed, err := repo.ListByLeague(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Ravens", listed[0].TeamOrPlayer)
	assert.False(t, listed[0].PickedAt.IsZero())

	err = repo.ReplaceForLeague(ctx, 1, []draft.StoredPick{{LeagueID: 2, ParticipantID: 1, SportID: 1, TeamOrPlayer: "x"}})
	assert.Error(t, err)
}

func TestScoringRepository_LeaderboardIncludesZeroes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagues := NewLeagueRepository()
	repo := NewScoringRepository(leagues)

	participants, err := leagues.ReplaceParticipants(ctx, 1, []string{"Pat", "Mazzie", "Huff"})
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceForLeague(ctx, 1, []scoring.Result{
		{EventID: 1, ParticipantID: participants[0].ID, Points: 25},
		{EventID: 2, ParticipantID: participants[1].ID, Points: 10},
		{EventID: 3, ParticipantID: participants[1].ID, Points: 30},
	}))

	standings, err := repo.Leaderboard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, "Mazzie", standings[0].PlayerName)
	assert.Equal(t, float64(40), standings[0].TotalPoints)
	assert.Equal(t, "Huff", standings[2].PlayerName)
	assert.Zero(t, standings[2].TotalPoints)
}
