package league

import (
	"fmt"
	"strings"
	"time"
)

// League is one season of the multi-sport challenge.
type League struct {
	ID          int64
	Name        string
	Description string
	Season      string
	CreatedBy   string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if strings.TrimSpace(l.Season) == "" {
		return fmt.Errorf("league season is required")
	}

	return nil
}

// Participant is a player enrolled in a league.
type Participant struct {
	ID         int64
	LeagueID   int64
	UserID     string
	PlayerName string
	JoinedAt   time.Time
}
