package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/playperu/nostos/internal/nostos"
)

func TestPeople(t *testing.T) {
	r, _ := testRouter(t)

	w := do(t, r, http.MethodGet, "/api/people", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var markers []map[string]any
	json.NewDecoder(w.Body).Decode(&markers)
	if len(markers) != 6 {
		t.Fatalf("expected 6 markers, got %d", len(markers))
	}
	for i, m := range markers {
		if m["id"] != float64(i+1) {
			t.Errorf("marker %d: id = %v", i, m["id"])
		}
		if _, ok := m["name"]; ok {
			t.Errorf("marker %d exposes name", i)
		}
		if _, ok := m["dni"]; ok {
			t.Errorf("marker %d exposes dni", i)
		}
	}
}

func TestPerson(t *testing.T) {
	r, _ := testRouter(t)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/api/people/3", http.StatusOK},
		{"/api/people/42", http.StatusNotFound},
		{"/api/people/three", http.StatusBadRequest},
	}
	for _, tt := range tests {
		w := do(t, r, http.MethodGet, tt.path, nil)
		if w.Code != tt.wantStatus {
			t.Errorf("%s: expected %d, got %d", tt.path, tt.wantStatus, w.Code)
		}
	}

	w := do(t, r, http.MethodGet, "/api/people/3", nil)
	var m nostos.Marker
	json.NewDecoder(w.Body).Decode(&m)
	if m.ID != 3 || m.Position.Lat != -12.0432 || m.Position.Lng != -77.0282 {
		t.Errorf("unexpected marker %+v", m)
	}
}

func TestMap(t *testing.T) {
	r, _ := testRouter(t)

	w := do(t, r, http.MethodGet, "/api/map", nil)
	var cfg MapConfig
	json.NewDecoder(w.Body).Decode(&cfg)
	if cfg.Zoom != 13 || cfg.Center.Lat != -12.0464 {
		t.Errorf("unexpected map config %+v", cfg)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := testRouter(t)
	createSession(t, r)

	w := do(t, r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "nostos_sessions_active 1") {
		t.Errorf("metrics missing active session gauge:\n%s", body)
	}
}
