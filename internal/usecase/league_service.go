package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	"github.com/riskibarqy/sports-challenge/internal/domain/league"
	"github.com/riskibarqy/sports-challenge/internal/domain/scoring"
	"github.com/riskibarqy/sports-challenge/internal/domain/sport"
)

const (
	defaultUpcomingEventsLimit = 10
	maxUpcomingEventsLimit     = 100
)

// DraftMatrix maps sport name to player name to the drafted team, or nil
// when the player has no pick for that sport.
type DraftMatrix struct {
	Sports  []sport.Sport                 `json:"sports"`
	Players []string                      `json:"players"`
	Matrix  map[string]map[string]*string `json:"matrix"`
}

// LeagueService serves the seeded store.
type LeagueService struct {
	leagueRepo  league.Repository
	sportRepo   sport.Repository
	draftRepo   draft.Repository
	scoringRepo scoring.Repository
}

func NewLeagueService(leagueRepo league.Repository, sportRepo sport.Repository, draftRepo draft.Repository, scoringRepo scoring.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo:  leagueRepo,
		sportRepo:   sportRepo,
		draftRepo:   draftRepo,
		scoringRepo: scoringRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, rawLeagueID string) (league.League, error) {
	leagueID, err := parseLeagueID(rawLeagueID)
	if err != nil {
		return league.League{}, err
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	return item, nil
}

func (s *LeagueService) ListParticipants(ctx context.Context, rawLeagueID string) ([]league.Participant, error) {
	item, err := s.GetLeague(ctx, rawLeagueID)
	if err != nil {
		return nil, err
	}

	participants, err := s.leagueRepo.ListParticipants(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

func (s *LeagueService) ListPicks(ctx context.Context, rawLeagueID string) ([]draft.StoredPick, error) {
	item, err := s.GetLeague(ctx, rawLeagueID)
	if err != nil {
		return nil, err
	}

	picks, err := s.draftRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	return picks, nil
}

func (s *LeagueService) StoredLeaderboard(ctx context.Context, rawLeagueID string) ([]scoring.Standing, error) {
	item, err := s.GetLeague(ctx, rawLeagueID)
	if err != nil {
		return nil, err
	}

	standings, err := s.scoringRepo.Leaderboard(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	return standings, nil
}

// ListPlayers returns every participant name across leagues, sorted.
func (s *LeagueService) ListPlayers(ctx context.Context) ([]string, error) {
	participants, err := s.allParticipants(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.PlayerName)
	}
	sort.Strings(names)
	return names, nil
}

func (s *LeagueService) ListSports(ctx context.Context) ([]sport.Sport, error) {
	sports, err := s.sportRepo.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return sports, nil
}

func (s *LeagueService) ListEvents(ctx context.Context) ([]sport.Event, error) {
	events, err := s.sportRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// ListUpcomingEvents defaults to 10 events when limit is not positive.
func (s *LeagueService) ListUpcomingEvents(ctx context.Context, limit int) ([]sport.Event, error) {
	if limit <= 0 {
		limit = defaultUpcomingEventsLimit
	}
	if limit > maxUpcomingEventsLimit {
		return nil, fmt.Errorf("%w: limit must be <= %d", ErrInvalidInput, maxUpcomingEventsLimit)
	}

	events, err := s.sportRepo.ListUpcomingEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

func (s *LeagueService) DraftMatrix(ctx context.Context) (DraftMatrix, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.DraftMatrix")
	defer span.End()

	participants, err := s.allParticipants(ctx)
	if err != nil {
		return DraftMatrix{}, err
	}
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].PlayerName < participants[j].PlayerName
	})

	sports, err := s.ListSports(ctx)
	if err != nil {
		return DraftMatrix{}, err
	}
	sort.SliceStable(sports, func(i, j int) bool {
		return sports[i].Name < sports[j].Name
	})

	leagueIDs := make(map[int64]struct{})
	for _, p := range participants {
		leagueIDs[p.LeagueID] = struct{}{}
	}
	type cellKey struct {
		participantID int64
		sportID       int64
	}
	cells := make(map[cellKey]string)
	for leagueID := range leagueIDs {
		picks, err := s.draftRepo.ListByLeague(ctx, leagueID)
		if err != nil {
			return DraftMatrix{}, fmt.Errorf("list picks: %w", err)
		}
		for _, pick := range picks {
			key := cellKey{participantID: pick.ParticipantID, sportID: pick.SportID}
			if _, exists := cells[key]; !exists {
				cells[key] = pick.TeamOrPlayer
			}
		}
	}

	out := DraftMatrix{
		Sports:  sports,
		Players: make([]string, 0, len(participants)),
		Matrix:  make(map[string]map[string]*string, len(sports)),
	}
	for _, p := range participants {
		out.Players = append(out.Players, p.PlayerName)
	}
	for _, item := range sports {
		row := make(map[string]*string, len(participants))
		for _, p := range participants {
			if value, ok := cells[cellKey{participantID: p.ID, sportID: item.ID}]; ok {
				value := value
				row[p.PlayerName] = &value
				continue
			}
			row[p.PlayerName] = nil
		}
		out.Matrix[item.Name] = row
	}
	return out, nil
}

func (s *LeagueService) allParticipants(ctx context.Context) ([]league.Participant, error) {
	leagues, err := s.ListLeagues(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]league.Participant, 0)
	for _, item := range leagues {
		participants, err := s.leagueRepo.ListParticipants(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("list participants: %w", err)
		}
		out = append(out, participants...)
	}
	return out, nil
}

func parseLeagueID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: league id must be a positive integer", ErrInvalidInput)
	}
	return id, nil
}
