package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	"github.com/riskibarqy/sports-challenge/internal/domain/leaderboard"
	"github.com/riskibarqy/sports-challenge/internal/domain/leaguemap"
	"github.com/riskibarqy/sports-challenge/internal/domain/points"
	"github.com/riskibarqy/sports-challenge/internal/domain/schedule"
	"github.com/sourcegraph/conc/iter"
)

const unknownLeague = "Unknown"

// AnnotatedPick is a draft pick enriched for the draft board.
type AnnotatedPick struct {
	draft.Pick
	IsCompleted       bool    `json:"isCompleted"`
	League            string  `json:"league"`
	Sport             string  `json:"sport"`
	MaxPoints         float64 `json:"maxPoints"`
	LeagueCompleted   bool    `json:"leagueCompleted"`
	LeagueTotalPoints float64 `json:"leagueTotalPoints"`
}

type PlayerDraftStats struct {
	leaguemap.UserStats
	Picks []AnnotatedPick `json:"picks"`
}

type DraftBoard struct {
	Players         []string
	DraftByPlayer   map[string][]AnnotatedPick
	UserStats       map[string]PlayerDraftStats
	Leagues         []leaguemap.League
	Schedule        []schedule.Event
	CompletedSports []string
	TotalPlayers    int
}

type PlayerStats struct {
	TotalPoints     float64 `json:"totalPoints"`
	PossiblePoints  float64 `json:"possiblePoints"`
	CompletedEvents int     `json:"completedEvents"`
	UpcomingEvents  int     `json:"upcomingEvents"`
	TotalPicks      int     `json:"totalPicks"`
}

type PlayerData struct {
	Points          map[string]float64 `json:"points"`
	TotalPoints     float64            `json:"totalPoints"`
	CompletedEvents int                `json:"completedEvents"`
	Rank            int                `json:"rank"`
}

// Aggregator derives the dashboard views. It holds no state beyond the
// read-only mapper.
type Aggregator struct {
	mapper *leaguemap.Mapper
}

func NewAggregator(mapper *leaguemap.Mapper) *Aggregator {
	if mapper == nil {
		mapper = leaguemap.Default()
	}
	return &Aggregator{mapper: mapper}
}

func (a *Aggregator) Mapper() *leaguemap.Mapper {
	return a.mapper
}

// Leaderboard ranks every player of the sheet by authoritative total. Ties
// keep sheet order.
func (a *Aggregator) Leaderboard(sheet points.Sheet) []leaderboard.Entry {
	entries := make([]leaderboard.Entry, 0, len(sheet.Players))
	for _, player := range sheet.Players {
		breakdown := sheet.Events(player)
		completed := 0
		for event, value := range breakdown {
			if strings.TrimSpace(event) != "" && value != 0 {
				completed++
			}
		}
		entries = append(entries, leaderboard.Entry{
			PlayerName:      player,
			TotalPoints:     sheet.Total(player),
			CompletedEvents: completed,
			PointsBreakdown: breakdown,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// DraftBoard groups picks per player and annotates each with league data and
// the draft-board completion rule.
func (a *Aggregator) DraftBoard(picks []draft.Pick, events []schedule.Event, board []leaderboard.Entry) DraftBoard {
	players, grouped := groupPicks(picks)

	byPlayer := make(map[string][]AnnotatedPick, len(players))
	for _, player := range players {
		annotated := make([]AnnotatedPick, 0, len(grouped[player]))
		for _, pick := range grouped[player] {
			annotated = append(annotated, a.annotate(pick))
		}
		byPlayer[player] = annotated
	}

	totals := make(map[string]float64, len(board))
	for _, entry := range board {
		totals[entry.PlayerName] = entry.TotalPoints
	}

	stats := iter.Map(players, func(player *string) PlayerDraftStats {
		annotated := byPlayer[*player]
		progress := make([]leaguemap.PickProgress, 0, len(annotated))
		for _, pick := range annotated {
			progress = append(progress, leaguemap.PickProgress{
				TeamOrAthlete: pick.TeamOrAthlete,
				IsCompleted:   pick.IsCompleted,
			})
		}
		userStats := a.mapper.CalculateUserStats(progress)
		userStats.CurrentPoints = totals[*player]
		return PlayerDraftStats{UserStats: userStats, Picks: annotated}
	})

	userStats := make(map[string]PlayerDraftStats, len(players))
	for i, player := range players {
		userStats[player] = stats[i]
	}

	if events == nil {
		events = []schedule.Event{}
	}

	return DraftBoard{
		Players:         players,
		DraftByPlayer:   byPlayer,
		UserStats:       userStats,
		Leagues:         a.mapper.Leagues(),
		Schedule:        events,
		CompletedSports: append([]string(nil), schedule.DraftBoardCompleted...),
		TotalPlayers:    len(players),
	}
}

func (a *Aggregator) annotate(pick draft.Pick) AnnotatedPick {
	out := AnnotatedPick{
		Pick:        pick,
		IsCompleted: draftPickCompleted(pick.SportCategory, pick.TeamOrAthlete),
		League:      unknownLeague,
		Sport:       string(pick.SportCategory),
	}

	mapping, ok := a.mapper.Resolve(pick.TeamOrAthlete)
	if !ok {
		return out
	}
	out.League = mapping.League
	out.Sport = mapping.Sport
	out.MaxPoints = mapping.MaxPoints
	if info, ok := a.mapper.LeagueInfo(mapping.League); ok {
		out.LeagueCompleted = info.IsCompleted
		out.LeagueTotalPoints = info.TotalPoints
	}
	return out
}

// PlayerStats summarizes one player's picks with the per-player rule set.
// Unknown players get zeroed stats.
func (a *Aggregator) PlayerStats(player string, picks []draft.Pick, board []leaderboard.Entry) PlayerStats {
	var stats PlayerStats
	if entry, ok := leaderboard.Find(board, player); ok {
		stats.TotalPoints = entry.TotalPoints
	}

	for _, pick := range picks {
		if pick.PlayerName != player {
			continue
		}
		stats.TotalPicks++

		maxPoints, completed := playerStatsRule(pick.SportCategory, pick.TeamOrAthlete)
		stats.PossiblePoints += maxPoints
		if completed {
			stats.CompletedEvents++
		} else {
			stats.UpcomingEvents++
		}
	}
	return stats
}

func (a *Aggregator) PlayerData(player string, board []leaderboard.Entry) (PlayerData, error) {
	entry, ok := leaderboard.Find(board, player)
	if !ok {
		return PlayerData{}, fmt.Errorf("%w: player=%s", ErrNotFound, player)
	}
	return PlayerData{
		Points:          entry.PointsBreakdown,
		TotalPoints:     entry.TotalPoints,
		CompletedEvents: entry.CompletedEvents,
		Rank:            entry.Rank,
	}, nil
}

func groupPicks(picks []draft.Pick) ([]string, map[string][]draft.Pick) {
	players := make([]string, 0)
	grouped := make(map[string][]draft.Pick)
	for _, pick := range picks {
		if _, seen := grouped[pick.PlayerName]; !seen {
			players = append(players, pick.PlayerName)
		}
		grouped[pick.PlayerName] = append(grouped[pick.PlayerName], pick)
	}
	return players, grouped
}
