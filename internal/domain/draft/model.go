package draft

import (
	"fmt"
	"strings"
	"time"
)

// Category is the scoring tier a drafted sport belongs to.
type Category string

const (
	CategoryCool     Category = "Cool"
	CategoryNeutral  Category = "Neutral"
	CategoryWildCard Category = "Wild Card"
)

var (
	coolSports     = []string{"NFL", "NCAAF", "NCAAB2026", "GOLF", "Masters", "PGA", "US Open"}
	neutralSports  = []string{"NBA", "NHL", "LAX", "MTENNIS", "WTENNIS", "NCAAB2025", "NCAAB (2025)", "Tennis", "Lacrosse"}
	wildCardSports = []string{"FIFA", "MLB", "F1", "Impressing Ryan"}
)

// CategoryForSport classifies a draft-sheet sport label. Tiers are tested in
// order with case-sensitive substring matching; unknown sports are Neutral.
func CategoryForSport(sport string) Category {
	switch {
	case containsAny(sport, coolSports):
		return CategoryCool
	case containsAny(sport, neutralSports):
		return CategoryNeutral
	case containsAny(sport, wildCardSports):
		return CategoryWildCard
	default:
		return CategoryNeutral
	}
}

func containsAny(s string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}

// Pick is one player's selection for one sport row of the draft sheet.
type Pick struct {
	PlayerName    string   `json:"playerName"`
	SportCategory Category `json:"sportCategory"`
	TeamOrAthlete string   `json:"teamOrAthlete"`
	IsWildCard    bool     `json:"isWildCard"`
	SportName     string   `json:"sportEvent"`
	Round         int      `json:"round"`
	PickNumber    int      `json:"pickNumber"`
}

// StoredPick is a persisted draft pick.
type StoredPick struct {
	ID            int64
	LeagueID      int64
	ParticipantID int64
	SportID       int64
	Round         int
	PickNumber    int
	TeamOrPlayer  string
	IsWildCard    bool
	PickedAt      time.Time
}

func (p StoredPick) Validate() error {
	if p.LeagueID <= 0 {
		return fmt.Errorf("pick league id is required")
	}
	if p.ParticipantID <= 0 {
		return fmt.Errorf("pick participant id is required")
	}
	if p.SportID <= 0 {
		return fmt.Errorf("pick sport id is required")
	}
	if strings.TrimSpace(p.TeamOrPlayer) == "" {
		return fmt.Errorf("pick team or player is required")
	}
	return nil
}
