package usecase

import (
	"context"
	"errors"
	"testing"
)

type stubScoreboardProvider struct {
	board ExternalScoreboard
	err   error
}

func (p stubScoreboardProvider) FetchScoreboard(_ context.Context, year, week int) (ExternalScoreboard, error) {
	if p.err != nil {
		return ExternalScoreboard{}, p.err
	}
	board := p.board
	board.Year, board.Week = year, week
	return board, nil
}

func TestScoreboardService_Get(t *testing.T) {
	t.Parallel()

	service := NewScoreboardService(stubScoreboardProvider{board: ExternalScoreboard{Games: []ExternalGame{{ExternalID: "g1"}}}})

	got, err := service.Get(context.Background(), 2024, 3)
	if err != nil {
		t.Fatalf("get scoreboard: %v", err)
	}
	if got.Year != 2024 || got.Week != 3 || len(got.Games) != 1 {
		t.Fatalf("unexpected scoreboard: %+v", got)
	}

	for _, week := range []int{0, maxScoreboardWeek + 1} {
		if _, err := service.Get(context.Background(), 2024, week); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("week %d: expected ErrInvalidInput, got %v", week, err)
		}
	}

	failing := NewScoreboardService(stubScoreboardProvider{err: ErrDependencyUnavailable})
	if _, err := failing.Get(context.Background(), 2024, 1); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}

	if _, err := NewScoreboardService(nil).Get(context.Background(), 2024, 1); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable for missing provider, got %v", err)
	}
}
