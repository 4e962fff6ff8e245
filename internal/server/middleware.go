package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/nostos/internal/screen"
)

type ctxKey int

const (
	ctxKeyScreen ctxKey = iota
	ctxKeySessionID
)

func sessionMiddleware(sessions *Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "sessionID")
			if id == "" {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}

			sc, err := sessions.Get(id)
			if err != nil {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyScreen, sc)
			ctx = context.WithValue(ctx, ctxKeySessionID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionScreen(r *http.Request) *screen.Screen {
	return r.Context().Value(ctxKeyScreen).(*screen.Screen)
}

func sessionID(r *http.Request) string {
	return r.Context().Value(ctxKeySessionID).(string)
}
