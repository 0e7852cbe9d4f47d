package leaguemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ContainmentBothWays(t *testing.T) {
	t.Parallel()

	mapper := Default()

	got, ok := mapper.Resolve("Fern's Lakers")
	require.True(t, ok)
	assert.Equal(t, "Lakers", got.TeamOrAthlete)
	assert.Equal(t, "NBA", got.League)

	got, ok = mapper.Resolve("scheffler")
	require.True(t, ok)
	assert.Equal(t, "Scottie Scheffler", got.TeamOrAthlete)

	_, ok = mapper.Resolve("Random Team XYZ")
	assert.False(t, ok)

	_, ok = mapper.Resolve("   ")
	assert.False(t, ok)
}

func TestResolve_ExactThenLongest(t *testing.T) {
	t.Parallel()

	mapper := Default()
	cases := map[string]string{
		"Texas":           "NCAAB (2026)",
		"texas a&m ncaaf": "NCAAF",
		"Texas Rangers":   "MLB",
	}
	for input, wantLeague := range cases {
		got, ok := mapper.Resolve(input)
		require.True(t, ok, input)
		assert.Equal(t, wantLeague, got.League, input)
	}

	got, _ := mapper.Resolve("Texas")
	assert.Equal(t, "Texas", got.TeamOrAthlete)
}

func TestResolve_FirstInTableOrder(t *testing.T) {
	t.Parallel()

	legacy := Default().WithStrategy(MatchFirstInTableOrder)
	require.Equal(t, MatchFirstInTableOrder, legacy.Strategy())

	got, ok := legacy.Resolve("Texas Rangers")
	require.True(t, ok)
	assert.Equal(t, "Texas", got.TeamOrAthlete)
	assert.Equal(t, "NCAAB (2026)", got.League)

	got, ok = legacy.Resolve("Texas")
	require.True(t, ok)
	assert.Equal(t, "Texas Tech NCAAB 2026", got.TeamOrAthlete)
}

func TestResolve_LongestTieKeepsTableOrder(t *testing.T) {
	t.Parallel()

	mapper := NewMapper([]Mapping{
		{TeamOrAthlete: "Alpha", League: "One"},
		{TeamOrAthlete: "Gamma", League: "Two"},
	}, nil, MatchExactThenLongest)

	got, ok := mapper.Resolve("alpha gamma")
	require.True(t, ok)
	assert.Equal(t, "One", got.League)
}

func TestLeagueInfo(t *testing.T) {
	t.Parallel()

	mapper := Default()
	require.Len(t, mapper.Leagues(), 13)

	nba, ok := mapper.LeagueInfo("NBA")
	require.True(t, ok)
	assert.True(t, nba.IsCompleted)
	assert.Equal(t, float64(75), nba.TotalPoints)

	_, ok = mapper.LeagueInfo("Cricket")
	assert.False(t, ok)
}

func TestParseMatchStrategy(t *testing.T) {
	t.Parallel()

	got, err := ParseMatchStrategy("")
	require.NoError(t, err)
	assert.Equal(t, MatchExactThenLongest, got)

	got, err = ParseMatchStrategy(" FIRST ")
	require.NoError(t, err)
	assert.Equal(t, MatchFirstInTableOrder, got)

	_, err = ParseMatchStrategy("fuzzy")
	assert.Error(t, err)
}
