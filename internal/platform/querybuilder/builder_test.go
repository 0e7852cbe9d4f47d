package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "player_name").
		From("league_participants").
		Where(Eq("league_id", int64(1))).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, player_name FROM league_participants WHERE league_id = $1 ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(1) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_GroupByAndExpr(t *testing.T) {
	query, args, err := Select("p.id", "COALESCE(SUM(r.points), 0) AS total_points").
		From("league_participants p LEFT JOIN scoring_results r ON r.participant_id = p.id").
		Where(Expr("p.league_id = ?", int64(3)), Expr("r.pick_id IS NULL")).
		GroupBy("p.id").
		OrderBy("total_points DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.id, COALESCE(SUM(r.points), 0) AS total_points FROM league_participants p LEFT JOIN scoring_results r ON r.participant_id = p.id WHERE p.league_id = $1 AND r.pick_id IS NULL GROUP BY p.id ORDER BY total_points DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("sports").
		Columns("name", "code").
		Values("NFL", "NFL").
		Values("College Football", "COLLEGEFOOTBALL").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO sports (name, code) VALUES ($1, $2), ($3, $4) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "College Football" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name    string `db:"name"`
		Season  string `db:"season"`
		Ignored string
		Skipped string `db:"-"`
	}

	query, args, err := InsertModel("leagues", row{Name: "Ryan's Sports Challenge 2026", Season: "2026"}, "ON CONFLICT (name, season) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO leagues (name, season) VALUES ($1, $2) ON CONFLICT (name, season) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != "2026" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RejectsRowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("scoring_results").
		Columns("event_id", "participant_id", "points").
		Values(int64(1), int64(2)).
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestExpr_SurplusMarkersKept(t *testing.T) {
	query, args, err := Select("*").From("events").
		Where(Expr("name = ? OR code = ?", "NFL")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT * FROM events WHERE name = $1 OR code = ?" || len(args) != 1 {
		t.Fatalf("unexpected query %q args=%+v", query, args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("sports", "NFL", ""); err == nil {
		t.Fatalf("expected error for non struct model")
	}
	var nilModel *struct {
		Name string `db:"name"`
	}
	if _, _, err := InsertModel("sports", nilModel, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("scoring_results").
		Where(Expr("participant_id IN (SELECT id FROM league_participants WHERE league_id = ?)", int64(4))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM scoring_results WHERE participant_id IN (SELECT id FROM league_participants WHERE league_id = $1)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("draft_picks").ToSQL(); err == nil {
		t.Fatalf("expected unfiltered delete to be rejected")
	}
}

func TestInCondition_EmptyMatchesNothing(t *testing.T) {
	query, args, err := Select("*").From("events").Where(In("name", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT * FROM events WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args=%+v", query, args)
	}
}

func TestNotInCondition(t *testing.T) {
	query, args, err := DeleteFrom("league_participants").
		Where(Eq("league_id", int64(1)), NotIn("player_name", []any{"Pat", "Mazzie"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM league_participants WHERE league_id = $1 AND player_name NOT IN ($2, $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != "Mazzie" {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, _, err = DeleteFrom("league_participants").
		Where(Eq("league_id", int64(1)), NotIn("player_name", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM league_participants WHERE league_id = $1 AND 1=1" {
		t.Fatalf("unexpected query %q", query)
	}
}
