package source

import (
	"context"
	"errors"
	"fmt"
)

// Key names one of the spreadsheet exports the pipeline reads.
type Key string

const (
	KeyDraft    Key = "draft"
	KeyPoints   Key = "points"
	KeySchedule Key = "schedule"
)

func Keys() []Key {
	return []Key{KeyDraft, KeyPoints, KeySchedule}
}

func (k Key) Validate() error {
	switch k {
	case KeyDraft, KeyPoints, KeySchedule:
		return nil
	default:
		return fmt.Errorf("unknown source key %q", string(k))
	}
}

// ErrUnavailable marks a source that could not be read.
var ErrUnavailable = errors.New("source unavailable")

// Repository returns the raw text of a named export.
type Repository interface {
	Fetch(ctx context.Context, key Key) ([]byte, error)
}
