package leaguemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
mappings:
  - team_or_athlete: Ravens
    league: NFL
    sport: NFL
    max_points: 150
  - team_or_athlete: Lakers
    league: NBA
    sport: NBA
    max_points: 75
leagues:
  - name: NFL
    sport: NFL
    total_points: 150
    is_completed: false
    end_date: February 2026
  - name: NBA
    sport: NBA
    total_points: 75
    is_completed: true
    end_date: June 2025
`

func TestLoadTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leagues.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o600))

	mapper, err := LoadTable(path, MatchFirstInTableOrder)
	require.NoError(t, err)
	assert.Equal(t, MatchFirstInTableOrder, mapper.Strategy())
	assert.Len(t, mapper.Mappings(), 2)

	got, ok := mapper.Resolve("Baltimore Ravens")
	require.True(t, ok)
	assert.Equal(t, float64(150), got.MaxPoints)

	nba, ok := mapper.LeagueInfo("NBA")
	require.True(t, ok)
	assert.True(t, nba.IsCompleted)
}

func TestParseTable_RejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	_, err := ParseTable([]byte("mappings:\n  - league: NFL\nleagues:\n  - name: NFL\n    sport: NFL\n"), MatchExactThenLongest)
	require.Error(t, err)

	_, err = ParseTable([]byte("mappings: ["), MatchExactThenLongest)
	require.Error(t, err)
}

func TestLoadTable_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml"), MatchExactThenLongest)
	require.Error(t, err)
}
