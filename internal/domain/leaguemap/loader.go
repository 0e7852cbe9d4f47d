package leaguemap

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type tableFile struct {
	Mappings []mappingEntry `yaml:"mappings" validate:"required,min=1,dive"`
	Leagues  []leagueEntry  `yaml:"leagues" validate:"required,min=1,dive"`
}

type mappingEntry struct {
	TeamOrAthlete string  `yaml:"team_or_athlete" validate:"required"`
	League        string  `yaml:"league" validate:"required"`
	Sport         string  `yaml:"sport" validate:"required"`
	MaxPoints     float64 `yaml:"max_points" validate:"gte=0"`
}

type leagueEntry struct {
	Name        string  `yaml:"name" validate:"required"`
	Sport       string  `yaml:"sport" validate:"required"`
	TotalPoints float64 `yaml:"total_points" validate:"gte=0"`
	IsCompleted bool    `yaml:"is_completed"`
	EndDate     string  `yaml:"end_date"`
}

// LoadTable reads a YAML mapping table. Entry order in the file is kept.
func LoadTable(path string, strategy MatchStrategy) (*Mapper, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read league table: %w", err)
	}
	return ParseTable(raw, strategy)
}

func ParseTable(raw []byte, strategy MatchStrategy) (*Mapper, error) {
	var file tableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode league table: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("validate league table: %w", err)
	}

	mappings := make([]Mapping, 0, len(file.Mappings))
	for _, item := range file.Mappings {
		mappings = append(mappings, Mapping{
			TeamOrAthlete: item.TeamOrAthlete,
			League:        item.League,
			Sport:         item.Sport,
			MaxPoints:     item.MaxPoints,
		})
	}

	leagues := make([]League, 0, len(file.Leagues))
	for _, item := range file.Leagues {
		leagues = append(leagues, League{
			Name:        item.Name,
			Sport:       item.Sport,
			TotalPoints: item.TotalPoints,
			IsCompleted: item.IsCompleted,
			EndDate:     item.EndDate,
		})
	}

	return NewMapper(mappings, leagues, strategy), nil
}
