package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "default one", want: 1},
		{name: "explicit", args: []string{"3"}, want: 3},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "garbage", args: []string{"x"}, wantErr: true},
	}

	for _, tc := range tests {
		got, err := parseSteps(tc.args)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%s: err=%v wantErr=%v", tc.name, err, tc.wantErr)
		}
		if err == nil && got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.name, got, tc.want)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if v, err := parseVersion(" 1760000100 "); err != nil || v != 1760000100 {
		t.Fatalf("parseVersion: v=%d err=%v", v, err)
	}
	if _, err := parseTarget("-5"); err == nil {
		t.Fatalf("expected error for negative target")
	}
}

func TestNormalizeDBURL(t *testing.T) {
	in := "postgres://u:p@localhost:5432/matchup_predictor?sslmode=disable"

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "true")
	if got := normalizeDBURL(in); !strings.Contains(got, "disable_prepared_binary_result=yes") {
		t.Fatalf("expected flag appended, got %q", got)
	}

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "false")
	if got := normalizeDBURL(in); got != in {
		t.Fatalf("expected url unchanged, got %q", got)
	}
}

func TestRun_RequiresCommandAndURL(t *testing.T) {
	logger := logging.NewNop()

	if err := run(nil, logger); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}

	t.Setenv("DB_URL", "")
	if err := run([]string{"up"}, logger); err == nil || !strings.Contains(err.Error(), "DB_URL") {
		t.Fatalf("expected DB_URL error, got %v", err)
	}
}
