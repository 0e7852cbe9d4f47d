package sport

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusActive    = "active"
	EventStatusCompleted = "completed"
)

type Sport struct {
	ID       int64
	Name     string
	Code     string
	Category string
	Icon     string
}

// Event is a scored competition within a sport.
type Event struct {
	ID        int64
	SportID   *int64
	Name      string
	StartDate *time.Time
	EndDate   string
	Status    string
	MaxPoints float64
	EventType string
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("event name is required")
	}
	switch e.Status {
	case EventStatusUpcoming, EventStatusActive, EventStatusCompleted:
	default:
		return fmt.Errorf("invalid event status %q", e.Status)
	}
	return nil
}

// CodeFor derives the unique sport code from a display name.
func CodeFor(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var icons = []struct {
	fragment string
	icon     string
}{
	{fragment: "NFL", icon: "football"},
	{fragment: "NCAAF", icon: "football"},
	{fragment: "NBA", icon: "basketball"},
	{fragment: "NCAAB", icon: "basketball"},
	{fragment: "NHL", icon: "hockey-puck"},
	{fragment: "MLB", icon: "baseball"},
	{fragment: "GOLF", icon: "golf-ball"},
	{fragment: "TENNIS", icon: "tennis-ball"},
	{fragment: "F1", icon: "car-sport"},
	{fragment: "LAX", icon: "lacrosse"},
	{fragment: "LACROSSE", icon: "lacrosse"},
	{fragment: "FIFA", icon: "futbol"},
}

// IconFor picks a display icon by upper-cased name fragment.
func IconFor(name string) string {
	upper := strings.ToUpper(name)
	for _, item := range icons {
		if strings.Contains(upper, item.fragment) {
			return item.icon
		}
	}
	return "trophy"
}
