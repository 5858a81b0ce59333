package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantExposed bool
	}{
		{name: "configured origin", allowed: []string{"https://matchup.example.com"}, method: http.MethodGet, origin: "https://matchup.example.com", wantStatus: http.StatusOK, wantOrigin: "https://matchup.example.com", wantExposed: true},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: "https://matchup.example.com", wantStatus: http.StatusNoContent, wantOrigin: "*", wantExposed: true},
		{name: "unconfigured origin", allowed: []string{"https://allowed.example.com"}, method: http.MethodGet, origin: "https://elsewhere.example.com", wantStatus: http.StatusOK},
		{name: "no origin header", allowed: []string{"*"}, method: http.MethodGet, wantStatus: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := CORS(tc.allowed, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(tc.method, "/v1/scoreboard?year=2024&week=1", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status=%d want %d", rec.Code, tc.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin=%q want %q", got, tc.wantOrigin)
			}
			exposed := rec.Header().Get("Access-Control-Expose-Headers") != ""
			if exposed != tc.wantExposed {
				t.Fatalf("expose headers present=%v want %v", exposed, tc.wantExposed)
			}
		})
	}
}
