package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/matchup-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation teams does not exist")) {
		t.Fatalf("expected unrelated error to not be not found")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Run("matches 23503", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", &pq.Error{Code: "23503"})
		if !isForeignKeyViolation(err) {
			t.Fatalf("expected true for foreign key violation")
		}
	})

	t.Run("ignores unique violation", func(t *testing.T) {
		if isForeignKeyViolation(&pq.Error{Code: "23505"}) {
			t.Fatalf("expected false for unique violation")
		}
	})

	t.Run("ignores plain error", func(t *testing.T) {
		if isForeignKeyViolation(fakeErr("boom")) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestNullFloatRoundTrip(t *testing.T) {
	if got := nullFloat(0); got.Valid {
		t.Fatalf("expected 0 to map to NULL")
	}
	if got := nullFloatToFloat(sql.NullFloat64{}); got != 0 {
		t.Fatalf("expected NULL to coalesce to 0, got %v", got)
	}
	if got := nullFloatToFloat(nullFloat(-2.5)); got != -2.5 {
		t.Fatalf("expected -2.5, got %v", got)
	}
}

func TestUniqueNonEmpty(t *testing.T) {
	got := uniqueNonEmpty([]string{" alpha", "", "bravo", "alpha"})
	if len(got) != 2 || got[0] != "alpha" || got[1] != "bravo" {
		t.Fatalf("unexpected ids: %v", got)
	}
}

func TestSeasonStatsModelCoalescesNulls(t *testing.T) {
	in := teamstats.SeasonStats{
		TeamID: "alpha",
		TeamStats: prediction.TeamStats{
			Year:                        2024,
			YardsPerGameSeason:          410.5,
			DefensiveYardsAllowedSeason: 330,
			FPIOverall:                  -4.2,
		},
	}

	insert := teamSeasonStatsInsertModelFromDomain(in)
	if insert.PointsPerGameSeason.Valid {
		t.Fatalf("expected missing points per game to be NULL")
	}
	if !insert.FPIOverall.Valid || insert.FPIOverall.Float64 != -4.2 {
		t.Fatalf("unexpected fpi overall: %+v", insert.FPIOverall)
	}

	stored := teamSeasonStatsTableModel{ID: 7, TeamID: insert.TeamID, Year: insert.Year, teamSeasonStatsValues: insert.teamSeasonStatsValues}
	out := stored.toDomain()
	if out.ID != 7 || out.TeamID != "alpha" || out.Year != 2024 {
		t.Fatalf("unexpected identity: %+v", out)
	}
	if out.TeamStats != in.TeamStats {
		t.Fatalf("round trip mismatch:\nwant: %+v\ngot:  %+v", in.TeamStats, out.TeamStats)
	}
	if !out.MissingCore() {
		t.Fatalf("expected missing core data to survive the round trip")
	}
}

func TestSeasonStatsUpsertSuffix(t *testing.T) {
	suffix := seasonStatsUpsertSuffix()
	if !strings.HasPrefix(suffix, "ON CONFLICT (team_public_id, year) WHERE deleted_at IS NULL") {
		t.Fatalf("unexpected conflict target: %s", suffix)
	}
	for _, col := range teamSeasonStatsColumns {
		if !strings.Contains(suffix, col+" = EXCLUDED."+col) {
			t.Fatalf("missing update for column %s", col)
		}
	}
	if strings.Contains(suffix, "?") {
		t.Fatalf("suffix must not carry placeholders")
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
