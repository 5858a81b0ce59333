package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	"github.com/riskibarqy/matchup-predictor/internal/usecase"
)

type ingestTeamStatsResponse struct {
	Upserted int `json:"upserted"`
}

func (h *Handler) IngestTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestTeamStats")
	defer span.End()

	if h.statsSyncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: stats ingestion is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req ingestTeamStatsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows := make([]teamstats.SeasonStats, 0, len(req.Rows))
	for _, item := range req.Rows {
		rows = append(rows, item.toDomain())
	}

	upserted, err := h.statsSyncService.UpsertSeasonStats(ctx, rows)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest team stats failed", "rows", len(rows), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestTeamStatsResponse{Upserted: upserted})
}

func (h *Handler) RunSyncStatsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncStatsJob")
	defer span.End()

	if h.statsSyncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: stats sync is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req internalSyncStatsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	for i := range req.TeamIDs {
		req.TeamIDs[i] = strings.TrimSpace(req.TeamIDs[i])
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsSyncService.SyncSeason(ctx, usecase.SyncInput{
		Year:       req.Year,
		TeamIDs:    req.TeamIDs,
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run sync stats job failed", "year", req.Year, "dry_run", req.DryRun, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "sync stats job completed",
		"year", result.Year,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
