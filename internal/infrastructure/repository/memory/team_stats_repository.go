package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
)

type TeamStatsRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []teamstats.SeasonStats
}

func NewTeamStatsRepository(rows []teamstats.SeasonStats) *TeamStatsRepository {
	r := &TeamStatsRepository{}
	for _, row := range rows {
		r.insert(row)
	}
	return r
}

func (r *TeamStatsRepository) GetByTeamAndYear(_ context.Context, teamID string, year int) (teamstats.SeasonStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.first(teamID, year)
}

func (r *TeamStatsRepository) LatestCommonYear(_ context.Context, teamIDs []string) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if id = strings.TrimSpace(id); id != "" {
			wanted[id] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return 0, false, nil
	}

	teamsByYear := make(map[int]map[string]struct{})
	for _, row := range r.rows {
		if _, ok := wanted[row.TeamID]; !ok {
			continue
		}
		if teamsByYear[row.Year] == nil {
			teamsByYear[row.Year] = make(map[string]struct{})
		}
		teamsByYear[row.Year][row.TeamID] = struct{}{}
	}

	best, found := 0, false
	for year, teams := range teamsByYear {
		if len(teams) == len(wanted) && year > best {
			best, found = year, true
		}
	}

	return best, found, nil
}

func (r *TeamStatsRepository) LatestYear(_ context.Context) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best, found := 0, false
	for _, row := range r.rows {
		if row.Year > best {
			best, found = row.Year, true
		}
	}

	return best, found, nil
}

func (r *TeamStatsRepository) ListYears(_ context.Context) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, row := range r.rows {
		if _, ok := seen[row.Year]; ok {
			continue
		}
		seen[row.Year] = struct{}{}
		out = append(out, row.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out, nil
}

func (r *TeamStatsRepository) ListByYear(_ context.Context, year int) ([]teamstats.SeasonStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byYear(year), nil
}

func (r *TeamStatsRepository) GetLeagueAverages(_ context.Context, year int) (teamstats.LeagueAverages, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	avg, ok := teamstats.ComputeLeagueAverages(year, r.byYear(year))
	return avg, ok, nil
}

func (r *TeamStatsRepository) UpsertSeasonStats(_ context.Context, rows []teamstats.SeasonStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		row.TeamID = strings.TrimSpace(row.TeamID)
		if row.TeamID == "" {
			continue
		}
		replaced := false
		for idx := range r.rows {
			if r.rows[idx].TeamID == row.TeamID && r.rows[idx].Year == row.Year {
				row.ID = r.rows[idx].ID
				r.rows[idx] = row
				replaced = true
				break
			}
		}
		if !replaced {
			r.insert(row)
		}
	}

	return nil
}

func (r *TeamStatsRepository) insert(row teamstats.SeasonStats) {
	r.nextID++
	row.ID = r.nextID
	r.rows = append(r.rows, row)
}

// first returns the lowest-id row for the team and year. Callers hold the lock.
func (r *TeamStatsRepository) first(teamID string, year int) (teamstats.SeasonStats, bool, error) {
	var (
		out   teamstats.SeasonStats
		found bool
	)
	for _, row := range r.rows {
		if row.TeamID != teamID || row.Year != year {
			continue
		}
		if !found || row.ID < out.ID {
			out, found = row, true
		}
	}
	return out, found, nil
}

// byYear returns one row per team, ordered by team id. Callers hold the lock.
func (r *TeamStatsRepository) byYear(year int) []teamstats.SeasonStats {
	byTeam := make(map[string]teamstats.SeasonStats)
	for _, row := range r.rows {
		if row.Year != year {
			continue
		}
		if existing, ok := byTeam[row.TeamID]; ok && existing.ID < row.ID {
			continue
		}
		byTeam[row.TeamID] = row
	}

	out := make([]teamstats.SeasonStats, 0, len(byTeam))
	for _, row := range byTeam {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out
}
