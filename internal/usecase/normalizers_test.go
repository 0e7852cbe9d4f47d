package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlayerHeader = ",Pat,Mazzie,Huff,Collins,Steed,Kane,Frank,Robbie,Round,Notes,Total"

func draftExport(fillerLines int, sportRows ...string) string {
	var b strings.Builder
	b.WriteString("RYAN'S SPORTS CHALLENGE 2026,,,\n")
	b.WriteString(samplePlayerHeader + "\n")
	for i := 0; i < fillerLines; i++ {
		fmt.Fprintf(&b, "%d,filler\n", i)
	}
	b.WriteString("Sports,Pat,Mazzie,Huff,Collins,Steed,Kane,Frank,Robbie\n")
	for _, row := range sportRows {
		b.WriteString(row + "\n")
	}
	b.WriteString("WC Count,1,1,1\n")
	b.WriteString("NBA,Ignored,After,Footer\n")
	return b.String()
}

func TestDraftNormalizer_EmitsPicksPerPlayerColumn(t *testing.T) {
	t.Parallel()

	text := draftExport(20,
		"NFL,Ravens,Eagles,,Collins,Chiefs",
		"45%,x,y",
		"MLB,\"Yankees, NY\",Dodgers",
		"Solo",
	)
	picks := NewDraftNormalizer(DefaultDraftLayout(), nil).Normalize(context.Background(), text)

	require.Len(t, picks, 5)
	assert.Equal(t, draft.Pick{
		PlayerName:    "Pat",
		SportCategory: draft.CategoryCool,
		TeamOrAthlete: "Ravens",
		SportName:     "NFL",
		Round:         1,
		PickNumber:    1,
	}, picks[0])
	assert.Equal(t, "Mazzie", picks[1].PlayerName)
	assert.Equal(t, "Eagles", picks[1].TeamOrAthlete)

	// Collins echoed into their own column is not a pick.
	assert.Equal(t, "Steed", picks[2].PlayerName)
	assert.Equal(t, "Chiefs", picks[2].TeamOrAthlete)

	assert.Equal(t, "Yankees, NY", picks[3].TeamOrAthlete)
	assert.Equal(t, draft.CategoryWildCard, picks[3].SportCategory)
	assert.Equal(t, 2, picks[3].Round)
	for _, pick := range picks {
		assert.False(t, pick.IsWildCard)
	}
}

func TestDraftNormalizer_SportBlockBeforeOffsetIsIgnored(t *testing.T) {
	t.Parallel()

	text := draftExport(3, "NFL,Ravens,Eagles")
	picks := NewDraftNormalizer(DefaultDraftLayout(), nil).Normalize(context.Background(), text)
	assert.Empty(t, picks)

	layout := DefaultDraftLayout()
	layout.SportBlockOffset = 1
	picks = NewDraftNormalizer(layout, nil).Normalize(context.Background(), text)
	require.Len(t, picks, 2)
	assert.Equal(t, "Pat", picks[0].PlayerName)
}

func TestDraftNormalizer_MissingMarkers(t *testing.T) {
	t.Parallel()

	normalizer := NewDraftNormalizer(DefaultDraftLayout(), nil)
	assert.Empty(t, normalizer.Normalize(context.Background(), ""))
	assert.Empty(t, normalizer.Normalize(context.Background(), "a,b,c\n1,2,3\n"))
	assert.Empty(t, normalizer.Normalize(context.Background(), samplePlayerHeader+"\n"))
}

func TestDraftNormalizer_PlayersExcludeTrailingMetadata(t *testing.T) {
	t.Parallel()

	normalizer := NewDraftNormalizer(DefaultDraftLayout(), nil)
	got := normalizer.playerNames(samplePlayerHeader)
	assert.Equal(t, []string{"Pat", "Mazzie", "Huff", "Collins", "Steed", "Kane", "Frank", "Robbie"}, got)
	assert.Nil(t, normalizer.playerNames("Pat,Mazzie"))
}

func TestPointsNormalizer_ZeroExcludedFromBreakdown(t *testing.T) {
	t.Parallel()

	sheet := NewPointsNormalizer(nil).Normalize(context.Background(), "Players,E1,E2,\nAlice,0,5,10")

	require.Equal(t, []string{"Alice"}, sheet.Players)
	assert.Equal(t, map[string]float64{"E2": 5}, sheet.Breakdown["Alice"])
	assert.Equal(t, float64(10), sheet.Totals["Alice"])
}

func TestPointsNormalizer_Rules(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Players,NFL,,NBA,Golf",
		"Bob,-5,12,x,3.5",
		",1,2,3,4",
		"Cara,7,abc,0,",
		"Dan,1,0,2",
		"Bob,4,20,,",
	}, "\n")
	sheet := NewPointsNormalizer(nil).Normalize(context.Background(), text)

	assert.Equal(t, []string{"Bob", "Cara", "Dan"}, sheet.Players)

	// The second Bob row replaces the breakdown and the total.
	assert.Equal(t, map[string]float64{"NFL": 4}, sheet.Breakdown["Bob"])
	assert.Equal(t, float64(20), sheet.Totals["Bob"])

	_, hasCara := sheet.Totals["Cara"]
	assert.False(t, hasCara)
	assert.Equal(t, map[string]float64{"NFL": 7}, sheet.Breakdown["Cara"])

	assert.Equal(t, float64(0), sheet.Totals["Dan"])
	_, hasDan := sheet.Totals["Dan"]
	assert.True(t, hasDan)
	assert.Equal(t, map[string]float64{"NFL": 1, "NBA": 2}, sheet.Breakdown["Dan"])
}

func TestPointsNormalizer_NegativePreserved(t *testing.T) {
	t.Parallel()

	sheet := NewPointsNormalizer(nil).Normalize(context.Background(), "Players,Penalty,\nEve,-3,-3\n")
	assert.Equal(t, float64(-3), sheet.Breakdown["Eve"]["Penalty"])
	assert.Equal(t, float64(-3), sheet.Totals["Eve"])
}

func TestPointsNormalizer_EmptySource(t *testing.T) {
	t.Parallel()

	sheet := NewPointsNormalizer(nil).Normalize(context.Background(), "")
	assert.Empty(t, sheet.Players)
	assert.NotNil(t, sheet.Totals)
	assert.Empty(t, sheet.Totals)
}

func TestScheduleNormalizer_CompletedFirstThenName(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Sport,Ending Date,Type,1st,2nd,3rd",
		"Zebra,Now,Special,10,5,1",
		"Apple,March 2026,Major,20,10",
	}, "\n")
	events := NewScheduleNormalizer().Normalize(context.Background(), text)

	require.Len(t, events, 2)
	assert.Equal(t, "Zebra", events[0].Sport)
	assert.True(t, events[0].IsCompleted)
	assert.Equal(t, "Apple", events[1].Sport)
	assert.False(t, events[1].IsCompleted)
	assert.Equal(t, []float64{20, 10}, events[1].PointStructure)
	assert.Equal(t, float64(20), events[1].MaxPoints())
}

func TestScheduleNormalizer_SkipsAndDedupes(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Sport,Ending Date,Type,1st,2nd,3rd,4th,5th,6th,7th,8th,9th",
		"NBA,June 2025,Neutral,75,50,25,10,5,3,2,1,999",
		"NBA,June 2026,Neutral,1",
		"Sport,x,y,1",
		"Sports Ranked,x,y,1",
		"Grand Total,x,y,1",
		"2025,x,y,1",
		",x,y,1",
		"Two,cells",
		"MLB,October 2025,Wild Card,,,",
		"MLB,October 2025,Wild Card,50,,30",
		"FedEx,August 21-24,Cool,40",
		"Cornhole,TBD,Neutral,5",
	}, "\n")
	events := NewScheduleNormalizer().Normalize(context.Background(), text)

	sports := make([]string, 0, len(events))
	for _, event := range events {
		sports = append(sports, event.Sport)
	}
	assert.Equal(t, []string{"FedEx", "NBA", "Cornhole", "MLB"}, sports)

	assert.Equal(t, []float64{75, 50, 25, 10, 5, 3, 2, 1}, events[1].PointStructure)
	assert.Equal(t, "June 2025", events[1].EndingDate)
	assert.Equal(t, []float64{50, 30}, events[3].PointStructure)

	seen := map[string]bool{}
	for _, event := range events {
		assert.NotEmpty(t, event.PointStructure)
		assert.False(t, seen[event.Sport], "duplicate sport %s", event.Sport)
		seen[event.Sport] = true
	}
}

func TestScheduleNormalizer_EmptySource(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewScheduleNormalizer().Normalize(context.Background(), ""))
}
