package schedule

import "strings"

// KnownCompleted lists the sports marked finished on the master schedule.
var KnownCompleted = []string{
	"NCAAB (2025)",
	"The Masters",
	"NFL Draft",
	"PGA Championship",
	"College Lacrosse",
	"French Open (Women's)",
	"French Open (Men's)",
	"US Open (Men's Golf)",
	"NBA",
	"NHL",
	"FIFA Club World Cup",
	"The Open Championship",
	"Wimbledon (Women's)",
	"Wimbledon (Men's)",
	"FedEx",
	"US Open (Women's Tennis)",
	"US Open (Men's Tennis)",
}

// DraftBoardCompleted is the shorter list shown alongside the draft board.
// It predates the late-summer additions to KnownCompleted.
var DraftBoardCompleted = []string{
	"NCAAB (2025)",
	"The Masters",
	"NFL Draft",
	"PGA Championship",
	"College Lacrosse",
	"French Open (Women's)",
	"French Open (Men's)",
	"US Open (Men's Golf)",
	"NBA",
	"NHL",
	"FIFA Club World Cup",
	"The Open Championship",
	"Wimbledon (Women's)",
	"Wimbledon (Men's)",
}

var knownCompletedSet = func() map[string]struct{} {
	out := make(map[string]struct{}, len(KnownCompleted))
	for _, sport := range KnownCompleted {
		out[sport] = struct{}{}
	}
	return out
}()

type specialCase struct {
	sport      string
	endingDate string
}

var completedSpecialCases = []specialCase{
	{sport: "NBA", endingDate: "June 2025"},
	{sport: "NHL", endingDate: "June 2025"},
	{sport: "FIFA Club World Cup", endingDate: "July 2025"},
	{sport: "Wimbledon (Men's)", endingDate: "July 2025"},
	{sport: "Wimbledon (Women's)", endingDate: "July 2025"},
	{sport: "The Open Championship", endingDate: "July 17-20"},
}

func IsKnownCompleted(sport string) bool {
	_, ok := knownCompletedSet[sport]
	return ok
}

func IsSpecialCaseCompleted(sport, endingDate string) bool {
	for _, c := range completedSpecialCases {
		if c.sport == sport && c.endingDate == endingDate {
			return true
		}
	}
	return false
}

// EndedBeforeCutoff reports whether an ending-date label falls before the
// season cutoff of 20 July 2025. It is a fixed snapshot over the labels the
// schedule sheet uses, not a date parser.
func EndedBeforeCutoff(endingDate string) bool {
	if endingDate == "" || endingDate == "TBD" {
		return false
	}
	if endingDate == "Now" {
		return true
	}

	if strings.Contains(endingDate, "2025") {
		lower := strings.ToLower(endingDate)
		if strings.Contains(lower, "june") || strings.Contains(lower, "may") ||
			strings.Contains(lower, "april") || strings.Contains(lower, "march") {
			return true
		}
		if strings.Contains(lower, "july") {
			return strings.Contains(endingDate, "17-20")
		}
	}

	return strings.Contains(endingDate, "May") ||
		strings.Contains(endingDate, "April") ||
		strings.Contains(endingDate, "June")
}

// IsCompleted combines the schedule completion rules for one row.
func IsCompleted(sport, endingDate string) bool {
	return IsKnownCompleted(sport) ||
		endingDate == "Now" ||
		EndedBeforeCutoff(endingDate) ||
		IsSpecialCaseCompleted(sport, endingDate)
}
