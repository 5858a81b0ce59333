package sportsdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchup-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchup-predictor/internal/platform/resilience"
	"github.com/riskibarqy/matchup-predictor/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseBody = 4 << 20
)

var (
	tokenParamRegex      = regexp.MustCompile(`(?i)(token|apikey)=[^&\s"']+`)
	errProviderTransient = crerr.New("sports data transient failure")
	errProviderNotFound  = crerr.New("sports data resource not found")
)

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient   *fasthttp.Client
	baseURL      string
	token        string
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	return &Client{
		httpClient: &fasthttp.Client{
			Name:                "matchup-predictor",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBody,
		},
		baseURL:      strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:        strings.TrimSpace(cfg.Token),
		timeout:      timeout,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger,
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker, func(from, to resilience.CircuitState) {
			logger.Warn("sports data circuit breaker state changed", "from", from, "to", to)
		}),
	}
}

func (c *Client) FetchScoreboard(ctx context.Context, year, week int) (usecase.ExternalScoreboard, error) {
	query := map[string]string{
		"year": strconv.Itoa(year),
		"week": strconv.Itoa(week),
	}

	var payload scoreboardEnvelope
	if err := c.doJSON(ctx, "/scoreboard", query, &payload); err != nil {
		return usecase.ExternalScoreboard{}, fmt.Errorf("fetch scoreboard year=%d week=%d: %w", year, week, err)
	}

	out := usecase.ExternalScoreboard{
		Year:  year,
		Week:  week,
		Games: make([]usecase.ExternalGame, 0, len(payload.Events)),
	}
	if payload.Season.Year > 0 {
		out.Year = payload.Season.Year
	}
	if payload.Week.Number > 0 {
		out.Week = payload.Week.Number
	}
	for _, event := range payload.Events {
		if game, ok := mapScoreboardEvent(event); ok {
			out.Games = append(out.Games, game)
		}
	}
	sort.SliceStable(out.Games, func(i, j int) bool {
		return out.Games[i].StartsAt.Before(out.Games[j].StartsAt)
	})

	return out, nil
}

// FetchTeamSeasonStats maps provider nulls to 0, the sentinel the engine
// treats as missing data.
func (c *Client) FetchTeamSeasonStats(ctx context.Context, teamID string, year int) (teamstats.SeasonStats, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return teamstats.SeasonStats{}, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}

	var payload teamStatisticsEnvelope
	path := "/teams/" + url.PathEscape(teamID) + "/statistics"
	if err := c.doJSON(ctx, path, map[string]string{"season": strconv.Itoa(year)}, &payload); err != nil {
		return teamstats.SeasonStats{}, fmt.Errorf("fetch team statistics team=%s year=%d: %w", teamID, year, err)
	}

	s := payload.Stats
	return teamstats.SeasonStats{
		TeamID: teamID,
		TeamStats: prediction.TeamStats{
			Year:                         year,
			YardsPerGameSeason:           value(s.YardsPerGame.Season),
			YardsPerGameLast3:            value(s.YardsPerGame.Last3),
			YardsPerGameLast1:            value(s.YardsPerGame.Last1),
			YardsPerGameHome:             value(s.YardsPerGame.Home),
			YardsPerGameAway:             value(s.YardsPerGame.Away),
			PointsPerGameSeason:          value(s.PointsPerGame.Season),
			PointsPerGameLast3:           value(s.PointsPerGame.Last3),
			PointsPerGameLast1:           value(s.PointsPerGame.Last1),
			PointsPerGameHome:            value(s.PointsPerGame.Home),
			PointsPerGameAway:            value(s.PointsPerGame.Away),
			TouchdownsPerGameSeason:      value(s.TouchdownsPerGame.Season),
			DefensiveYardsAllowedSeason:  value(s.Defense.YardsAllowedPerGame),
			DefensivePointsAllowedSeason: value(s.Defense.PointsAllowedPerGame),
			YardsPerPointSeason:          value(s.YardsPerPoint.Season),
			YardsPerPointLast3:           value(s.YardsPerPoint.Last3),
			YardsPerPointLast1:           value(s.YardsPerPoint.Last1),
			YardsPerPointHome:            value(s.YardsPerPoint.Home),
			YardsPerPointAway:            value(s.YardsPerPoint.Away),
			FPIOverall:                   value(s.FPI.Overall),
			FPIOffense:                   value(s.FPI.Offense),
			FPIDefense:                   value(s.FPI.Defense),
		},
	}, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.baseURL == "" {
		return fmt.Errorf("%w: sports data base url is not configured", usecase.ErrDependencyUnavailable)
	}

	fullURL := c.buildURL(path, query)
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		var raw []byte
		reqErr := c.breaker.Execute(func() error {
			var err error
			raw, err = c.executeRequest(ctx, fullURL)
			return err
		}, isCircuitFailure)
		return raw, reqErr
	})
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "sports data circuit breaker rejected request", "state", c.breaker.State())
		return fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return mapProviderError(err)
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

// buildURL sorts query keys so identical requests share one flight key.
func (c *Client) buildURL(path string, query map[string]string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(path)

	if len(query) > 0 {
		keys := make([]string, 0, len(query))
		for key := range query {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		args := fasthttp.AcquireArgs()
		defer fasthttp.ReleaseArgs(args)
		for _, key := range keys {
			args.Add(key, query[key])
		}
		_ = buf.WriteByte('?')
		_, _ = buf.Write(args.QueryString())
	}

	return buf.String()
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, status, err := c.get(fullURL)
		switch {
		case err != nil:
			lastErr = crerr.Mark(crerr.Newf("send request: %s", sanitizeSensitiveText(err.Error(), c.token)), errProviderTransient)
		case status >= 200 && status < 300:
			return raw, nil
		case status == http.StatusNotFound:
			return nil, crerr.Mark(crerr.Newf("provider status=%d", status), errProviderNotFound)
		case isRetryableStatus(status):
			lastErr = crerr.Mark(crerr.Newf("provider status=%d body=%s", status, abbreviateBody(raw)), errProviderTransient)
		default:
			return nil, crerr.Newf("provider status=%d body=%s", status, abbreviateBody(raw))
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "sports data request failed", "url", sanitizeSensitiveText(fullURL, c.token), "error", lastErr)
	return nil, lastErr
}

func (c *Client) get(fullURL string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.token)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, 0, err
	}

	return append([]byte(nil), resp.Body()...), resp.StatusCode(), nil
}

func mapProviderError(err error) error {
	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return err
	case crerr.Is(err, errProviderNotFound):
		return fmt.Errorf("%w: %v", usecase.ErrNotFound, err)
	case crerr.Is(err, errProviderTransient):
		return fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
	default:
		return err
	}
}

func mapScoreboardEvent(event scoreboardEvent) (usecase.ExternalGame, bool) {
	if strings.TrimSpace(event.ID) == "" || len(event.Competitions) == 0 {
		return usecase.ExternalGame{}, false
	}

	comp := event.Competitions[0]
	game := usecase.ExternalGame{
		ExternalID: event.ID,
		Status:     normalizeStatus(event.Status.Type.Name),
		Venue:      strings.TrimSpace(comp.Venue.FullName),
	}
	if startsAt, ok := parseProviderTime(event.Date); ok {
		game.StartsAt = startsAt
	}

	for _, item := range comp.Competitors {
		score := parseScore(item.Score)
		switch strings.ToLower(item.HomeAway) {
		case "home":
			game.HomeTeamID = item.Team.ID
			game.HomeTeamName = item.Team.DisplayName
			game.HomeScore = score
		case "away":
			game.AwayTeamID = item.Team.ID
			game.AwayTeamName = item.Team.DisplayName
			game.AwayScore = score
		}
	}
	if game.HomeTeamID == "" || game.AwayTeamID == "" {
		return usecase.ExternalGame{}, false
	}
	if game.Status == usecase.GameStatusScheduled {
		game.HomeScore, game.AwayScore = nil, nil
	}

	return game, true
}

func normalizeStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "STATUS_FINAL", "FINAL":
		return usecase.GameStatusFinal
	case "STATUS_IN_PROGRESS", "STATUS_HALFTIME", "STATUS_END_PERIOD", "IN_PROGRESS":
		return usecase.GameStatusLive
	case "STATUS_POSTPONED", "STATUS_CANCELED", "POSTPONED", "CANCELED":
		return usecase.GameStatusPostponed
	default:
		return usecase.GameStatusScheduled
	}
}

// parseProviderTime accepts RFC3339 with or without seconds.
func parseProviderTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseScore(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func isCircuitFailure(err error) bool {
	return err != nil && crerr.Is(err, errProviderTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(text, token string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	if token != "" {
		text = strings.ReplaceAll(text, token, "REDACTED")
	}
	return tokenParamRegex.ReplaceAllString(text, "$1=REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
