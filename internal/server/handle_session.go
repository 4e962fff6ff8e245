package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/playperu/nostos/internal/disclosure"
	"github.com/playperu/nostos/internal/metrics"
	"github.com/playperu/nostos/internal/nostos"
	"github.com/playperu/nostos/internal/screen"
)

type SessionResponse struct {
	ID   string      `json:"id"`
	View screen.View `json:"view"`
}

type SelectRequest struct {
	PersonID *int `json:"personId"`
}

type SectionRequest struct {
	Section string `json:"section"`
}

func handleCreateSession(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, sc := sessions.Create()
		writeJSON(w, http.StatusCreated, SessionResponse{ID: id, View: sc.View()})
	}
}

func handleGetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionScreen(r).View())
	}
}

func handleSelect(m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		runCommand(w, r, m, Command{Type: commandSelect, PersonID: req.PersonID})
	}
}

func handleClose(m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runCommand(w, r, m, Command{Type: commandClose})
	}
}

func handleNavigate(m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SectionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		runCommand(w, r, m, Command{Type: commandNavigate, Section: req.Section})
	}
}

func runCommand(w http.ResponseWriter, r *http.Request, m *metrics.Metrics, cmd Command) {
	v, err := apply(sessionScreen(r), m, cmd)
	if err != nil {
		writeError(w, commandStatus(err), commandMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handlePayload returns the exact bytes encoded into the QR code.
func handlePayload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := sessionScreen(r).Disclosure()
		if errors.Is(err, nostos.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no person selected")
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(d.Payload.Marshal())
	}
}

func handleQR(m *metrics.Metrics, defaultSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		size := defaultSize
		if raw := r.URL.Query().Get("size"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < disclosure.MinSize || n > disclosure.MaxSize {
				writeError(w, http.StatusBadRequest, "size must be an integer between 64 and 1024")
				return
			}
			size = n
		}

		d, err := sessionScreen(r).Disclosure()
		if errors.Is(err, nostos.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no person selected")
			return
		}

		png, err := disclosure.Render(d.Payload.Marshal(), size)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		m.QRRendered.Inc()

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
