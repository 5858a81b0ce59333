package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	basecache "github.com/riskibarqy/matchup-predictor/internal/platform/cache"
)

const (
	teamKeyPrefix  = "team:"
	statsKeyPrefix = "team-stats:"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamKeyPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamKeyPrefix+"id:"+teamID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedValue[team.Team]{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedValue[team.Team])
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) UpsertTeams(ctx context.Context, items []team.Team) error {
	if err := r.next.UpsertTeams(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, teamKeyPrefix)
	return nil
}

type TeamStatsRepository struct {
	next  teamstats.Repository
	cache *basecache.Store
}

func NewTeamStatsRepository(next teamstats.Repository, cache *basecache.Store) *TeamStatsRepository {
	return &TeamStatsRepository{next: next, cache: cache}
}

func (r *TeamStatsRepository) GetByTeamAndYear(ctx context.Context, teamID string, year int) (teamstats.SeasonStats, bool, error) {
	key := statsKeyPrefix + "team:" + teamID + ":year:" + strconv.Itoa(year)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByTeamAndYear(ctx, teamID, year)
		if err != nil {
			return nil, err
		}
		return cachedValue[teamstats.SeasonStats]{value: item, exists: exists}, nil
	})
	if err != nil {
		return teamstats.SeasonStats{}, false, err
	}

	cached, _ := v.(cachedValue[teamstats.SeasonStats])
	return cached.value, cached.exists, nil
}

func (r *TeamStatsRepository) LatestCommonYear(ctx context.Context, teamIDs []string) (int, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, commonYearKey(teamIDs), func(ctx context.Context) (any, error) {
		year, exists, err := r.next.LatestCommonYear(ctx, teamIDs)
		if err != nil {
			return nil, err
		}
		return cachedValue[int]{value: year, exists: exists}, nil
	})
	if err != nil {
		return 0, false, err
	}

	cached, _ := v.(cachedValue[int])
	return cached.value, cached.exists, nil
}

func (r *TeamStatsRepository) LatestYear(ctx context.Context) (int, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, statsKeyPrefix+"latest-year", func(ctx context.Context) (any, error) {
		year, exists, err := r.next.LatestYear(ctx)
		if err != nil {
			return nil, err
		}
		return cachedValue[int]{value: year, exists: exists}, nil
	})
	if err != nil {
		return 0, false, err
	}

	cached, _ := v.(cachedValue[int])
	return cached.value, cached.exists, nil
}

func (r *TeamStatsRepository) ListYears(ctx context.Context) ([]int, error) {
	v, err := r.cache.GetOrLoad(ctx, statsKeyPrefix+"years", func(ctx context.Context) (any, error) {
		years, err := r.next.ListYears(ctx)
		if err != nil {
			return nil, err
		}
		return append([]int(nil), years...), nil
	})
	if err != nil {
		return nil, err
	}

	years, _ := v.([]int)
	return append([]int(nil), years...), nil
}

func (r *TeamStatsRepository) ListByYear(ctx context.Context, year int) ([]teamstats.SeasonStats, error) {
	v, err := r.cache.GetOrLoad(ctx, statsKeyPrefix+"year:"+strconv.Itoa(year), func(ctx context.Context) (any, error) {
		rows, err := r.next.ListByYear(ctx, year)
		if err != nil {
			return nil, err
		}
		return append([]teamstats.SeasonStats(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]teamstats.SeasonStats)
	return append([]teamstats.SeasonStats(nil), rows...), nil
}

func (r *TeamStatsRepository) GetLeagueAverages(ctx context.Context, year int) (teamstats.LeagueAverages, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, statsKeyPrefix+"league:"+strconv.Itoa(year), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetLeagueAverages(ctx, year)
		if err != nil {
			return nil, err
		}
		return cachedValue[teamstats.LeagueAverages]{value: item, exists: exists}, nil
	})
	if err != nil {
		return teamstats.LeagueAverages{}, false, err
	}

	cached, _ := v.(cachedValue[teamstats.LeagueAverages])
	return cached.value, cached.exists, nil
}

// UpsertSeasonStats drops every stats key: new rows can change the latest
// year, the common year of any pair and the league averages.
func (r *TeamStatsRepository) UpsertSeasonStats(ctx context.Context, rows []teamstats.SeasonStats) error {
	if err := r.next.UpsertSeasonStats(ctx, rows); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, statsKeyPrefix)
	return nil
}

type cachedValue[T any] struct {
	value  T
	exists bool
}

func commonYearKey(teamIDs []string) string {
	ids := make([]string, 0, len(teamIDs))
	for _, id := range teamIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return statsKeyPrefix + "common-year:" + strings.Join(ids, ",")
}
