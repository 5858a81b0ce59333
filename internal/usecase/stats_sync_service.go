package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
)

type TeamStatsProvider interface {
	FetchTeamSeasonStats(ctx context.Context, teamID string, year int) (teamstats.SeasonStats, error)
}

type StatsSyncConfig struct {
	Enabled    bool
	MaxWorkers int
}

type SyncInput struct {
	Year int
	// TeamIDs narrows the sync. Empty means every known team.
	TeamIDs    []string
	MaxWorkers int
	// DryRun fetches without writing.
	DryRun bool
}

type SyncResult struct {
	Year          int              `json:"year"`
	TeamCount     int              `json:"team_count"`
	SuccessCount  int              `json:"success_count"`
	FailedCount   int              `json:"failed_count"`
	SkippedCount  int              `json:"skipped_count"`
	UpsertedCount int              `json:"upserted_count"`
	WorkerCount   int              `json:"worker_count"`
	Tasks         []SyncTaskResult `json:"tasks"`
}

type SyncTaskResult struct {
	TeamID     string `json:"team_id"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	syncStatusSuccess = "success"
	syncStatusFailed  = "failed"
	syncStatusSkipped = "skipped"

	defaultSyncWorkers = 4
	maxSyncWorkers     = 16
)

type StatsSyncService struct {
	cfg       StatsSyncConfig
	provider  TeamStatsProvider
	teamRepo  team.Repository
	statsRepo teamstats.Repository
	logger    *logging.Logger
}

func NewStatsSyncService(
	cfg StatsSyncConfig,
	provider TeamStatsProvider,
	teamRepo team.Repository,
	statsRepo teamstats.Repository,
	logger *logging.Logger,
) *StatsSyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StatsSyncService{
		cfg:       cfg,
		provider:  provider,
		teamRepo:  teamRepo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// UpsertSeasonStats validates and stores ingested rows. Every referenced team must exist.
func (s *StatsSyncService) UpsertSeasonStats(ctx context.Context, rows []teamstats.SeasonStats) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsSyncService.UpsertSeasonStats")
	defer span.End()

	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: stats rows are required", ErrInvalidInput)
	}

	teamIDs := make(map[string]struct{}, len(rows))
	for idx := range rows {
		rows[idx].TeamID = strings.TrimSpace(rows[idx].TeamID)
		if err := rows[idx].Validate(); err != nil {
			return 0, fmt.Errorf("%w: row %d: %v", ErrInvalidInput, idx, err)
		}
		teamIDs[rows[idx].TeamID] = struct{}{}
	}

	for teamID := range teamIDs {
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return 0, fmt.Errorf("get team by id: %w", err)
		}
		if !exists {
			return 0, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	if err := s.statsRepo.UpsertSeasonStats(ctx, rows); err != nil {
		return 0, fmt.Errorf("upsert season stats: %w", err)
	}

	s.logger.InfoContext(ctx, "season stats upserted", "rows", len(rows), "teams", len(teamIDs))
	return len(rows), nil
}

// SyncSeason pulls one season of stats per team from the provider on a
// bounded worker pool and upserts the rows that came back.
func (s *StatsSyncService) SyncSeason(ctx context.Context, input SyncInput) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsSyncService.SyncSeason")
	defer span.End()

	if !s.cfg.Enabled {
		return SyncResult{}, fmt.Errorf("%w: stats sync is disabled (SPORTSDATA_ENABLED=false)", ErrDependencyUnavailable)
	}
	if s.provider == nil {
		return SyncResult{}, fmt.Errorf("%w: stats provider is not configured", ErrDependencyUnavailable)
	}
	if input.Year <= 0 {
		return SyncResult{}, fmt.Errorf("%w: year must be > 0", ErrInvalidInput)
	}

	teamIDs, err := s.resolveSyncTeams(ctx, input.TeamIDs)
	if err != nil {
		return SyncResult{}, err
	}

	requested := input.MaxWorkers
	if requested <= 0 {
		requested = s.cfg.MaxWorkers
	}
	workerCount := normalizeSyncWorkerCount(requested, len(teamIDs))
	result := SyncResult{
		Year:        input.Year,
		TeamCount:   len(teamIDs),
		WorkerCount: workerCount,
		Tasks:       make([]SyncTaskResult, 0, len(teamIDs)),
	}
	if len(teamIDs) == 0 {
		return result, nil
	}

	type taskOutput struct {
		row    SyncTaskResult
		stats  teamstats.SeasonStats
		stored bool
	}
	results := make(chan taskOutput, len(teamIDs))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return SyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var wg sync.WaitGroup
	for _, teamID := range teamIDs {
		teamID := teamID
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			start := time.Now()
			out := taskOutput{row: SyncTaskResult{TeamID: teamID}}

			stats, err := s.provider.FetchTeamSeasonStats(ctx, teamID, input.Year)
			switch {
			case err != nil:
				out.row.Status = syncStatusFailed
				out.row.Message = err.Error()
				failedCount.Add(1)
			case stats.MissingCore() && stats.YardsPerPointSeason == 0:
				out.row.Status = syncStatusSkipped
				out.row.Message = "provider returned no season stats"
				skippedCount.Add(1)
			default:
				stats.TeamID = teamID
				stats.Year = input.Year
				out.stats = stats
				out.stored = true
				out.row.Status = syncStatusSuccess
				successCount.Add(1)
			}
			out.row.DurationMs = time.Since(start).Milliseconds()

			results <- out
		}); err != nil {
			wg.Done()
			return SyncResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	wg.Wait()
	close(results)

	rows := make([]teamstats.SeasonStats, 0, len(teamIDs))
	for out := range results {
		result.Tasks = append(result.Tasks, out.row)
		if out.stored {
			rows = append(rows, out.stats)
		}
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].TeamID < result.Tasks[j].TeamID
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TeamID < rows[j].TeamID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())

	if len(rows) > 0 && !input.DryRun {
		if err := s.statsRepo.UpsertSeasonStats(ctx, rows); err != nil {
			err = fmt.Errorf("upsert synced season stats: %w", err)
			recordSpanError(span, err)
			return SyncResult{}, err
		}
		result.UpsertedCount = len(rows)
	}

	s.logger.InfoContext(ctx, "season stats sync finished",
		"year", input.Year,
		"teams", result.TeamCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
		"dry_run", input.DryRun,
	)
	return result, nil
}

func (s *StatsSyncService) resolveSyncTeams(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) > 0 {
		seen := make(map[string]struct{}, len(requested))
		out := make([]string, 0, len(requested))
		for _, raw := range requested {
			teamID := strings.TrimSpace(raw)
			if teamID == "" {
				continue
			}
			if _, ok := seen[teamID]; ok {
				continue
			}
			seen[teamID] = struct{}{}
			out = append(out, teamID)
		}
		sort.Strings(out)
		return out, nil
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	out := make([]string, 0, len(teams))
	for _, item := range teams {
		out = append(out, item.ID)
	}
	sort.Strings(out)
	return out, nil
}

func normalizeSyncWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = defaultSyncWorkers
	}
	if value > maxSyncWorkers {
		value = maxSyncWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
