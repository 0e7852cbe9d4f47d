package httpapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	"github.com/riskibarqy/sports-challenge/internal/domain/league"
	"github.com/riskibarqy/sports-challenge/internal/domain/leaguemap"
	"github.com/riskibarqy/sports-challenge/internal/domain/schedule"
	"github.com/riskibarqy/sports-challenge/internal/domain/scoring"
	"github.com/riskibarqy/sports-challenge/internal/domain/sport"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
	"github.com/riskibarqy/sports-challenge/internal/usecase"
)

type Handler struct {
	pipelineService *usecase.PipelineService
	leagueService   *usecase.LeagueService
	seedService     *usecase.SeedService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	pipelineService *usecase.PipelineService,
	leagueService *usecase.LeagueService,
	seedService *usecase.SeedService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		pipelineService: pipelineService,
		leagueService:   leagueService,
		seedService:     seedService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type upcomingEventsQuery struct {
	Limit int `validate:"gte=0,lte=100"`
}

type draftBoardDTO struct {
	Players         []string                            `json:"players"`
	DraftByPlayer   map[string][]usecase.AnnotatedPick  `json:"draftByPlayer"`
	UserStats       map[string]usecase.PlayerDraftStats `json:"userStats"`
	Leagues         []leaguemap.League                  `json:"leagues"`
	Schedule        []schedule.Event                    `json:"schedule"`
	CompletedSports []string                            `json:"completedSports"`
	TotalPlayers    int                                 `json:"totalPlayers"`
}

type leagueDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Season       string `json:"season"`
	CreatedBy    string `json:"createdBy,omitempty"`
	IsActive     bool   `json:"isActive"`
	CreatedAtUTC string `json:"createdAtUtc,omitempty"`
	UpdatedAtUTC string `json:"updatedAtUtc,omitempty"`
}

type participantDTO struct {
	ID          string `json:"id"`
	LeagueID    string `json:"leagueId"`
	UserID      string `json:"userId,omitempty"`
	PlayerName  string `json:"playerName"`
	JoinedAtUTC string `json:"joinedAtUtc,omitempty"`
}

type storedPickDTO struct {
	ID            string `json:"id"`
	LeagueID      string `json:"leagueId"`
	ParticipantID string `json:"participantId"`
	SportID       string `json:"sportId"`
	Round         int    `json:"round"`
	PickNumber    int    `json:"pickNumber"`
	TeamOrPlayer  string `json:"teamOrPlayer"`
	IsWildCard    bool   `json:"isWildCard"`
}

type standingDTO struct {
	Rank          int     `json:"rank"`
	ParticipantID string  `json:"participantId"`
	PlayerName    string  `json:"playerName"`
	TotalPoints   float64 `json:"totalPoints"`
}

type sportDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

type eventDTO struct {
	ID           string  `json:"id"`
	SportID      string  `json:"sportId,omitempty"`
	Name         string  `json:"name"`
	StartDateUTC string  `json:"startDateUtc,omitempty"`
	EndDate      string  `json:"endDate"`
	Status       string  `json:"status"`
	MaxPoints    float64 `json:"maxPoints"`
	EventType    string  `json:"eventType"`
}

type draftMatrixDTO struct {
	Sports  []sportDTO                    `json:"sports"`
	Players []string                      `json:"players"`
	Matrix  map[string]map[string]*string `json:"matrix"`
}

func draftBoardToDTO(v usecase.DraftBoard) draftBoardDTO {
	return draftBoardDTO{
		Players:         v.Players,
		DraftByPlayer:   v.DraftByPlayer,
		UserStats:       v.UserStats,
		Leagues:         v.Leagues,
		Schedule:        v.Schedule,
		CompletedSports: v.CompletedSports,
		TotalPlayers:    v.TotalPlayers,
	}
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:           formatID(v.ID),
		Name:         v.Name,
		Description:  v.Description,
		Season:       v.Season,
		CreatedBy:    v.CreatedBy,
		IsActive:     v.IsActive,
		CreatedAtUTC: formatTime(v.CreatedAt),
		UpdatedAtUTC: formatTime(v.UpdatedAt),
	}
}

func participantToDTO(v league.Participant) participantDTO {
	return participantDTO{
		ID:          formatID(v.ID),
		LeagueID:    formatID(v.LeagueID),
		UserID:      v.UserID,
		PlayerName:  v.PlayerName,
		JoinedAtUTC: formatTime(v.JoinedAt),
	}
}

func storedPickToDTO(v draft.StoredPick) storedPickDTO {
	return storedPickDTO{
		ID:            formatID(v.ID),
		LeagueID:      formatID(v.LeagueID),
		ParticipantID: formatID(v.ParticipantID),
		SportID:       formatID(v.SportID),
		Round:         v.Round,
		PickNumber:    v.PickNumber,
		TeamOrPlayer:  v.TeamOrPlayer,
		IsWildCard:    v.IsWildCard,
	}
}

// standingsToDTO ranks standings in the order the store returned them.
func standingsToDTO(items []scoring.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for i, item := range items {
		out = append(out, standingDTO{
			Rank:          i + 1,
			ParticipantID: formatID(item.ParticipantID),
			PlayerName:    item.PlayerName,
			TotalPoints:   item.TotalPoints,
		})
	}
	return out
}

func sportToDTO(v sport.Sport) sportDTO {
	return sportDTO{
		ID:       formatID(v.ID),
		Name:     v.Name,
		Code:     v.Code,
		Category: v.Category,
		Icon:     v.Icon,
	}
}

func eventToDTO(v sport.Event) eventDTO {
	out := eventDTO{
		ID:        formatID(v.ID),
		Name:      v.Name,
		EndDate:   v.EndDate,
		Status:    v.Status,
		MaxPoints: v.MaxPoints,
		EventType: v.EventType,
	}
	if v.SportID != nil {
		out.SportID = formatID(*v.SportID)
	}
	if v.StartDate != nil {
		out.StartDateUTC = formatTime(*v.StartDate)
	}
	return out
}

func draftMatrixToDTO(v usecase.DraftMatrix) draftMatrixDTO {
	sports := make([]sportDTO, 0, len(v.Sports))
	for _, item := range v.Sports {
		sports = append(sports, sportToDTO(item))
	}
	return draftMatrixDTO{
		Sports:  sports,
		Players: v.Players,
		Matrix:  v.Matrix,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
