package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/playperu/nostos/internal/database"
)

func TestHandleHealth(t *testing.T) {
	// Real SQLite in-memory DB — lightweight, no mocks needed.
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	defer db.Close()

	closed, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	closed.Close()

	tests := []struct {
		name       string
		checks     map[string]Checker
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:       "roster ok",
			checks:     map[string]Checker{"roster": CheckerFunc(db.PingContext)},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"roster": "ok"},
		},
		{
			name:       "roster closed",
			checks:     map[string]Checker{"roster": CheckerFunc(closed.PingContext)},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   map[string]string{"roster": "error"},
		},
		{
			name: "one of two down",
			checks: map[string]Checker{
				"roster": CheckerFunc(db.PingContext),
				"other":  CheckerFunc(func(context.Context) error { return errors.New("refused") }),
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   map[string]string{"roster": "ok", "other": "error"},
		},
		{
			name:       "no checks",
			checks:     nil,
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handleHealth(slog.Default(), tt.checks)

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body map[string]struct{ Status string }
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding: %v", err)
			}
			if len(body) != len(tt.wantBody) {
				t.Errorf("got %d checks, want %d", len(body), len(tt.wantBody))
			}
			for name, want := range tt.wantBody {
				if got := body[name].Status; got != want {
					t.Errorf("%s = %q, want %q", name, got, want)
				}
			}
		})
	}
}
