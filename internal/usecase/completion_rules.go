package usecase

import (
	"strings"

	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
)

// The draft board and the player stats view each carry their own completion
// rule, and neither agrees with schedule.IsCompleted. They are kept apart so
// that each view keeps its current output.

var (
	draftBoardCoolCompleted = []string{
		"draft", "golf", "scheffler", "mcilroy", "morikawa", "schauffle",
		"ncaab 2025", "duke basketball (2025)",
	}
	draftBoardNeutralCompleted = []string{
		"tennis", "mensik", "ostapenko", "lacrosse", "lax",
		"nba", "nhl", "thunder", "celtics", "hockey",
	}
	draftBoardWildCardCompleted = []string{"impressing", "ryan", "fifa"}
)

// draftPickCompleted matches lower-cased pick text against category lists.
func draftPickCompleted(category draft.Category, teamOrAthlete string) bool {
	text := strings.ToLower(teamOrAthlete)
	switch strings.ToLower(string(category)) {
	case "cool":
		return containsAnyFragment(text, draftBoardCoolCompleted)
	case "neutral":
		return containsAnyFragment(text, draftBoardNeutralCompleted)
	case "wild card":
		return containsAnyFragment(text, draftBoardWildCardCompleted)
	default:
		return false
	}
}

type playerStatsMatch struct {
	fragments []string
	maxPoints float64
	completed func(text string) bool
}

var playerStatsRules = map[draft.Category][]playerStatsMatch{
	draft.CategoryCool: {
		{fragments: []string{"Dolphins", "NFL"}, maxPoints: 150},
		{fragments: []string{"Uconn", "Texas"}, maxPoints: 100},
		{fragments: []string{"Niemann", "golf"}, maxPoints: 50, completed: isDone},
	},
	draft.CategoryNeutral: {
		{fragments: []string{"Lax", "LAX"}, maxPoints: 25, completed: isDone},
		{fragments: []string{"Medvedev", "Sabalenka"}, maxPoints: 25, completed: isDone},
		{fragments: []string{"Terps", "Kansas", "NCAAB"}, maxPoints: 100, completed: func(text string) bool {
			return !strings.Contains(text, "2026")
		}},
		{fragments: []string{"NCAAF", "UNC"}, maxPoints: 100},
	},
	draft.CategoryWildCard: {
		{fragments: []string{"Juventus"}, maxPoints: 50, completed: isDone},
		{fragments: []string{"Norris", "Leclerc"}, maxPoints: 50},
	},
}

func isDone(string) bool { return true }

// playerStatsRule matches case-sensitive pick text. The first rule whose
// fragment appears wins; no match means zero points and upcoming.
func playerStatsRule(category draft.Category, teamOrAthlete string) (float64, bool) {
	for _, rule := range playerStatsRules[category] {
		if !containsAnyFragment(teamOrAthlete, rule.fragments) {
			continue
		}
		if rule.completed == nil {
			return rule.maxPoints, false
		}
		return rule.maxPoints, rule.completed(teamOrAthlete)
	}
	return 0, false
}

func containsAnyFragment(text string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(text, fragment) {
			return true
		}
	}
	return false
}
