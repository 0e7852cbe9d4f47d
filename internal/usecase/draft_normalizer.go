package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
	"github.com/riskibarqy/sports-challenge/internal/platform/tabular"
)

// DraftLayout describes where the draft export keeps its player header and
// sport block.
type DraftLayout struct {
	PlayerHeaderMarker    string
	TrailingMetadataCells int
	// SportBlockOffset is counted in non-blank lines after the player header.
	SportBlockOffset int
	SportBlockMarker string
	FooterSentinel   string
}

func DefaultDraftLayout() DraftLayout {
	return DraftLayout{
		PlayerHeaderMarker:    "Pat,Mazzie,Huff,Collins,Steed,Kane,Frank,Robbie",
		TrailingMetadataCells: 3,
		SportBlockOffset:      20,
		SportBlockMarker:      "Sports,Pat,Mazzie,Huff",
		FooterSentinel:        "WC Count",
	}
}

type draftParseState int

const (
	draftSeekingPlayerHeader draftParseState = iota
	draftSeekingSportBlock
	draftInSportBlock
	draftDone
)

func (s draftParseState) String() string {
	switch s {
	case draftSeekingPlayerHeader:
		return "seeking_player_header"
	case draftSeekingSportBlock:
		return "seeking_sport_block"
	case draftInSportBlock:
		return "in_sport_block"
	default:
		return "done"
	}
}

type DraftNormalizer struct {
	layout DraftLayout
	logger *logging.Logger
}

func NewDraftNormalizer(layout DraftLayout, logger *logging.Logger) *DraftNormalizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &DraftNormalizer{layout: layout, logger: logger}
}

// Normalize flattens the draft export into one pick per filled player cell.
// It never fails: a layout it cannot find yields no picks.
func (n *DraftNormalizer) Normalize(ctx context.Context, text string) []draft.Pick {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftNormalizer.Normalize")
	defer span.End()

	lines := tabular.Lines(text)
	picks := make([]draft.Pick, 0)

	state := draftSeekingPlayerHeader
	headerLine := -1
	round := 0
	var players []string

	for i := 0; i < len(lines) && state != draftDone; i++ {
		line := lines[i]

		switch state {
		case draftSeekingPlayerHeader:
			if strings.Contains(line, n.layout.PlayerHeaderMarker) {
				players = n.playerNames(line)
				headerLine = i
				state = draftSeekingSportBlock
			}
		case draftSeekingSportBlock:
			if i < headerLine+n.layout.SportBlockOffset {
				continue
			}
			if strings.Contains(line, n.layout.SportBlockMarker) {
				state = draftInSportBlock
			}
		case draftInSportBlock:
			if strings.TrimSpace(line) == "" || strings.Contains(line, n.layout.FooterSentinel) {
				state = draftDone
				continue
			}

			cells := tabular.SplitQuoted(line)
			if len(cells) < 2 {
				continue
			}
			sport := cells[0]
			if sport == "" || strings.Contains(sport, "%") {
				continue
			}

			round++
			picks = appendRowPicks(picks, sport, round, cells, players)
		}
	}

	if state == draftSeekingPlayerHeader || state == draftSeekingSportBlock {
		n.logger.WarnContext(ctx, "draft layout incomplete", "state", state.String(), "lines", len(lines))
	}

	return picks
}

func (n *DraftNormalizer) playerNames(line string) []string {
	cells := strings.Split(line, ",")
	end := len(cells) - n.layout.TrailingMetadataCells
	if end <= 1 {
		return nil
	}

	names := make([]string, 0, end-1)
	for _, cell := range cells[1:end] {
		names = append(names, strings.TrimSpace(cell))
	}
	return names
}

func appendRowPicks(out []draft.Pick, sport string, round int, cells, players []string) []draft.Pick {
	category := draft.CategoryForSport(sport)
	for j := 1; j < len(cells) && j <= len(players); j++ {
		pick := cells[j]
		player := players[j-1]
		// A player's own name echoed into their column is not a pick.
		if pick == "" || player == "" || pick == player {
			continue
		}
		out = append(out, draft.Pick{
			PlayerName:    player,
			SportCategory: category,
			TeamOrAthlete: pick,
			IsWildCard:    false,
			SportName:     sport,
			Round:         round,
			PickNumber:    j,
		})
	}
	return out
}
