package leaguemap

import (
	"fmt"
	"strings"
)

// Mapping ties a drafted team or athlete to the sub-league it scores in.
type Mapping struct {
	TeamOrAthlete string  `json:"teamOrPlayer"`
	League        string  `json:"league"`
	Sport         string  `json:"sport"`
	MaxPoints     float64 `json:"maxPoints"`
}

// League is a scored sub-competition, e.g. "Men's Tennis" within Tennis.
type League struct {
	Name        string  `json:"name"`
	Sport       string  `json:"sport"`
	TotalPoints float64 `json:"totalPoints"`
	IsCompleted bool    `json:"isCompleted"`
	EndDate     string  `json:"endDate"`
}

// MatchStrategy selects how free-text picks resolve against the table.
type MatchStrategy string

const (
	// MatchExactThenLongest prefers a case-insensitive exact name, then the
	// longest contained or containing entry. Ties keep table order.
	MatchExactThenLongest MatchStrategy = "exact-longest"
	// MatchFirstInTableOrder returns the first contained or containing entry.
	MatchFirstInTableOrder MatchStrategy = "first"
)

func ParseMatchStrategy(raw string) (MatchStrategy, error) {
	switch MatchStrategy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", MatchExactThenLongest:
		return MatchExactThenLongest, nil
	case MatchFirstInTableOrder:
		return MatchFirstInTableOrder, nil
	default:
		return "", fmt.Errorf("unsupported match strategy %q", raw)
	}
}

// Mapper is immutable after construction and safe for concurrent reads.
type Mapper struct {
	mappings []Mapping
	lowered  []string
	leagues  []League
	byLeague map[string]int
	strategy MatchStrategy
}

func NewMapper(mappings []Mapping, leagues []League, strategy MatchStrategy) *Mapper {
	if strategy == "" {
		strategy = MatchExactThenLongest
	}

	m := &Mapper{
		mappings: append([]Mapping(nil), mappings...),
		lowered:  make([]string, len(mappings)),
		leagues:  append([]League(nil), leagues...),
		byLeague: make(map[string]int, len(leagues)),
		strategy: strategy,
	}
	for i, item := range m.mappings {
		m.lowered[i] = strings.ToLower(item.TeamOrAthlete)
	}
	for i, item := range m.leagues {
		if _, exists := m.byLeague[item.Name]; !exists {
			m.byLeague[item.Name] = i
		}
	}
	return m
}

var defaultMapper = NewMapper(builtinMappings, builtinLeagues, MatchExactThenLongest)

// Default returns the mapper over the built-in table.
func Default() *Mapper {
	return defaultMapper
}

// WithStrategy returns a mapper over the same table using strategy.
func (m *Mapper) WithStrategy(strategy MatchStrategy) *Mapper {
	return NewMapper(m.mappings, m.leagues, strategy)
}

func (m *Mapper) Strategy() MatchStrategy {
	return m.strategy
}

func (m *Mapper) Mappings() []Mapping {
	return append([]Mapping(nil), m.mappings...)
}

func (m *Mapper) Leagues() []League {
	return append([]League(nil), m.leagues...)
}

func (m *Mapper) LeagueInfo(name string) (League, bool) {
	idx, ok := m.byLeague[name]
	if !ok {
		return League{}, false
	}
	return m.leagues[idx], true
}

// Resolve finds the mapping for a pick. Blank input never matches.
func (m *Mapper) Resolve(teamOrAthlete string) (Mapping, bool) {
	needle := strings.ToLower(strings.TrimSpace(teamOrAthlete))
	if needle == "" {
		return Mapping{}, false
	}

	if m.strategy == MatchFirstInTableOrder {
		for i, name := range m.lowered {
			if contains(name, needle) {
				return m.mappings[i], true
			}
		}
		return Mapping{}, false
	}

	for i, name := range m.lowered {
		if name == needle {
			return m.mappings[i], true
		}
	}

	best := -1
	for i, name := range m.lowered {
		if !contains(name, needle) {
			continue
		}
		if best < 0 || len(name) > len(m.lowered[best]) {
			best = i
		}
	}
	if best < 0 {
		return Mapping{}, false
	}
	return m.mappings[best], true
}

func contains(name, needle string) bool {
	if name == "" {
		return false
	}
	return strings.Contains(name, needle) || strings.Contains(needle, name)
}
