package main

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
)

func init() {
	logger = logging.NewNop()
}

type fakeMigrator struct {
	upErr   error
	steps   []int
	forced  int
	target  uint
	version uint
	dirty   bool
	verErr  error
}

func (f *fakeMigrator) Up() error { return f.upErr }

func (f *fakeMigrator) Steps(n int) error {
	f.steps = append(f.steps, n)
	return nil
}

func (f *fakeMigrator) Version() (uint, bool, error) { return f.version, f.dirty, f.verErr }

func (f *fakeMigrator) Force(version int) error {
	f.forced = version
	return nil
}

func (f *fakeMigrator) Migrate(version uint) error {
	f.target = version
	return nil
}

func TestExecute(t *testing.T) {
	t.Run("up ignores no change", func(t *testing.T) {
		m := &fakeMigrator{upErr: migrate.ErrNoChange}
		if err := execute(m, "up", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("up surfaces failures", func(t *testing.T) {
		m := &fakeMigrator{upErr: errors.New("dirty database")}
		if err := execute(m, "up", nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("down defaults to one step", func(t *testing.T) {
		m := &fakeMigrator{}
		if err := execute(m, "down", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m.steps) != 1 || m.steps[0] != -1 {
			t.Fatalf("unexpected steps: %v", m.steps)
		}
	})

	t.Run("force and goto parse versions", func(t *testing.T) {
		m := &fakeMigrator{}
		if err := execute(m, "force", []string{"1771776035"}); err != nil {
			t.Fatalf("force: %v", err)
		}
		if err := execute(m, "goto", []string{"1771776036"}); err != nil {
			t.Fatalf("goto: %v", err)
		}
		if m.forced != 1771776035 || m.target != 1771776036 {
			t.Fatalf("unexpected versions: forced=%d target=%d", m.forced, m.target)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		if err := execute(&fakeMigrator{}, "sideways", nil); !errors.Is(err, errUsage) {
			t.Fatalf("expected usage error, got %v", err)
		}
	})
}

func TestParseSteps(t *testing.T) {
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
	if _, err := parseSteps([]string{"x"}); err == nil {
		t.Fatalf("expected error for non numeric steps")
	}
	if steps, err := parseSteps([]string{" 3 "}); err != nil || steps != 3 {
		t.Fatalf("unexpected steps=%d err=%v", steps, err)
	}
}
