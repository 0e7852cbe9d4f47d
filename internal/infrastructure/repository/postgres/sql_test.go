package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get league: %w", sql.ErrNoRows)) {
			t.Fatalf("expected wrapped sql.ErrNoRows to match")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation leagues does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestNullableConversions(t *testing.T) {
	t.Run("int64 pointer round trip", func(t *testing.T) {
		id := int64(42)
		got := nullInt64ToPtr(ptrToNullInt64(&id))
		if got == nil || *got != 42 {
			t.Fatalf("expected 42, got %v", got)
		}
		if nullInt64ToPtr(ptrToNullInt64(nil)) != nil {
			t.Fatalf("expected nil for null int64")
		}
	})

	t.Run("empty string becomes null", func(t *testing.T) {
		if stringToNullString("").Valid {
			t.Fatalf("expected empty string to be null")
		}
		if got := nullStringToString(stringToNullString("anubis-user")); got != "anubis-user" {
			t.Fatalf("unexpected string %q", got)
		}
	})

	t.Run("time is stored in utc", func(t *testing.T) {
		loc := time.FixedZone("WIB", 7*60*60)
		at := time.Date(2026, 2, 1, 9, 0, 0, 0, loc)
		got := ptrToNullTime(&at)
		if !got.Valid || got.Time.Location() != time.UTC {
			t.Fatalf("expected valid utc time, got %+v", got)
		}
		if back := nullTimeToPtr(got); back == nil || !back.Equal(at) {
			t.Fatalf("unexpected round trip %v", back)
		}
	})
}
