package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	"github.com/riskibarqy/sports-challenge/internal/domain/league"
	"github.com/riskibarqy/sports-challenge/internal/domain/points"
	"github.com/riskibarqy/sports-challenge/internal/domain/schedule"
	"github.com/riskibarqy/sports-challenge/internal/domain/scoring"
	"github.com/riskibarqy/sports-challenge/internal/domain/sport"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const pointsOnlyEventType = "points"

type SeedConfig struct {
	LeagueName        string
	LeagueSeason      string
	LeagueDescription string
	CreatedBy         string
}

type SeedResult struct {
	LeagueID     int64 `json:"leagueId"`
	Participants int   `json:"participants"`
	Sports       int   `json:"sports"`
	Events       int   `json:"events"`
	Picks        int   `json:"picks"`
	Results      int   `json:"results"`
}

// SeedService materializes the current exports into the relational store.
// Each replace is atomic on its own; a seed as a whole is not.
type SeedService struct {
	pipeline    *PipelineService
	leagueRepo  league.Repository
	sportRepo   sport.Repository
	draftRepo   draft.Repository
	scoringRepo scoring.Repository
	cfg         SeedConfig
	logger      *logging.Logger

	mu sync.Mutex
}

func NewSeedService(
	pipeline *PipelineService,
	leagueRepo league.Repository,
	sportRepo sport.Repository,
	draftRepo draft.Repository,
	scoringRepo scoring.Repository,
	cfg SeedConfig,
	logger *logging.Logger,
) *SeedService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeedService{
		pipeline:    pipeline,
		leagueRepo:  leagueRepo,
		sportRepo:   sportRepo,
		draftRepo:   draftRepo,
		scoringRepo: scoringRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedService.Seed",
		attribute.String("league.name", s.cfg.LeagueName),
		attribute.String("league.season", s.cfg.LeagueSeason),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.pipeline.Snapshot(ctx)
	if err != nil {
		return SeedResult{}, failSpan(span, fmt.Errorf("load snapshot: %w", err))
	}

	item := league.League{
		Name:        s.cfg.LeagueName,
		Description: s.cfg.LeagueDescription,
		Season:      s.cfg.LeagueSeason,
		CreatedBy:   s.cfg.CreatedBy,
		IsActive:    true,
	}
	if err := item.Validate(); err != nil {
		return SeedResult{}, failSpan(span, fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}
	stored, err := s.leagueRepo.Upsert(ctx, item)
	if err != nil {
		return SeedResult{}, failSpan(span, fmt.Errorf("upsert league: %w", err))
	}

	participants, err := s.leagueRepo.ReplaceParticipants(ctx, stored.ID, seedPlayers(snapshot))
	if err != nil {
		return SeedResult{}, failSpan(span, fmt.Errorf("replace participants: %w", err))
	}
	participantIDs := make(map[string]int64, len(participants))
	for _, p := range participants {
		participantIDs[p.PlayerName] = p.ID
	}

	sports, err := s.sportRepo.UpsertSports(ctx, seedSports(snapshot.Picks))
	if err != nil {
		return SeedResult{}, failSpan(span, fmt.Errorf("upsert sports: %w", err))
	}
	sportIDs := make(map[string]int64, len(sports))
	for _, row := range sports {
		sportIDs[row.Code] = row.ID
	}

	events, err := s.sportRepo.UpsertEvents(ctx, seedEvents(snapshot.Schedule, snapshot.Points, sportIDs))
	if err != nil {
		return SeedResult{}, failSpan(span, fmt.Errorf("upsert events: %w", err))
	}
	eventIDs := make(map[string]int64, len(events))
	for _, row := range events {
		eventIDs[row.Name] = row.ID
	}

	picks := make([]draft.StoredPick, 0, len(snapshot.Picks))
	for _, pick := range snapshot.Picks {
		participantID, ok := participantIDs[pick.PlayerName]
		if !ok {
			continue
		}
		sportID, ok := sportIDs[sport.CodeFor(pick.SportName)]
		if !ok {
			continue
		}
		picks = append(picks, draft.StoredPick{
			LeagueID:      stored.ID,
			ParticipantID: participantID,
			SportID:       sportID,
			Round:         pick.Round,
			PickNumber:    pick.PickNumber,
			TeamOrPlayer:  pick.TeamOrAthlete,
			IsWildCard:    pick.IsWildCard,
		})
	}
	if err := s.draftRepo.ReplaceForLeague(ctx, stored.ID, picks); err != nil {
		return SeedResult{}, failSpan(span, fmt.Errorf("replace draft picks: %w", err))
	}

	results := seedResults(snapshot.Points, participantIDs, eventIDs)
	if err := s.scoringRepo.ReplaceForLeague(ctx, stored.ID, results); err != nil {
		return SeedResult{}, failSpan(span, fmt.Errorf("replace scoring results: %w", err))
	}

	out := SeedResult{
		LeagueID:     stored.ID,
		Participants: len(participants),
		Sports:       len(sports),
		Events:       len(events),
		Picks:        len(picks),
		Results:      len(results),
	}
	s.logger.InfoContext(ctx, "seed completed",
		"league_id", out.LeagueID,
		"participants", out.Participants,
		"sports", out.Sports,
		"events", out.Events,
		"picks", out.Picks,
		"results", out.Results,
	)
	return out, nil
}

// seedPlayers lists leaderboard players first, then draft-only players.
func seedPlayers(snapshot Snapshot) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(snapshot.Leaderboard))
	add := func(name string) {
		if strings.TrimSpace(name) == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, entry := range snapshot.Leaderboard {
		add(entry.PlayerName)
	}
	for _, pick := range snapshot.Picks {
		add(pick.PlayerName)
	}
	return out
}

func seedSports(picks []draft.Pick) []sport.Sport {
	seen := make(map[string]struct{})
	out := make([]sport.Sport, 0)
	for _, pick := range picks {
		code := sport.CodeFor(pick.SportName)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, sport.Sport{
			Name:     pick.SportName,
			Code:     code,
			Category: string(draft.CategoryForSport(pick.SportName)),
			Icon:     sport.IconFor(pick.SportName),
		})
	}
	return out
}

func seedEvents(events []schedule.Event, sheet points.Sheet, sportIDs map[string]int64) []sport.Event {
	seen := make(map[string]struct{}, len(events))
	out := make([]sport.Event, 0, len(events))
	for _, item := range events {
		status := sport.EventStatusUpcoming
		if item.IsCompleted {
			status = sport.EventStatusCompleted
		}
		row := sport.Event{
			Name:      item.Sport,
			EndDate:   item.EndingDate,
			Status:    status,
			MaxPoints: item.MaxPoints(),
			EventType: item.Type,
		}
		if id, ok := sportIDs[sport.CodeFor(item.Sport)]; ok {
			row.SportID = &id
		}
		seen[item.Sport] = struct{}{}
		out = append(out, row)
	}

	// Scored columns missing from the schedule still need an event row.
	for _, name := range breakdownEvents(sheet) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, sport.Event{
			Name:      name,
			Status:    sport.EventStatusCompleted,
			EventType: pointsOnlyEventType,
		})
	}
	return out
}

func seedResults(sheet points.Sheet, participantIDs, eventIDs map[string]int64) []scoring.Result {
	out := make([]scoring.Result, 0)
	for _, player := range sheet.Players {
		participantID, ok := participantIDs[player]
		if !ok {
			continue
		}
		breakdown := sheet.Breakdown[player]
		names := make([]string, 0, len(breakdown))
		for name := range breakdown {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			eventID, ok := eventIDs[name]
			if !ok {
				continue
			}
			value := breakdown[name]
			out = append(out, scoring.Result{
				EventID:       eventID,
				ParticipantID: participantID,
				Placement:     scoring.PlacementForPoints(value),
				Points:        value,
			})
		}
	}
	return out
}

func breakdownEvents(sheet points.Sheet) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, player := range sheet.Players {
		for name := range sheet.Breakdown[player] {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
