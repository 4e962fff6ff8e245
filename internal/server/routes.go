package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, opts Options) {
	broker := NewBroker()
	sessions := NewSessions(opts.People, broker, opts.Metrics)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Nostos API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, opts.Checks))
	r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	r.Get("/api/map", handleMap(opts.Map))
	r.Get("/api/people", handlePeople(opts.People))
	r.Get("/api/people/{id}", handlePerson(opts.People))

	r.Post("/api/sessions", handleCreateSession(sessions))

	// Session routes — {sessionID} resolved by sessionMiddleware.
	r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Get("/", handleGetSession())
		r.Put("/selection", handleSelect(opts.Metrics))
		r.Delete("/selection", handleClose(opts.Metrics))
		r.Get("/selection/payload", handlePayload())
		r.Get("/selection/qr.png", handleQR(opts.Metrics, opts.QRSize))
		r.Put("/section", handleNavigate(opts.Metrics))
		r.Get("/events", handleEvents(broker))
		r.Get("/live", handleLive(logger, opts.Metrics))
	})

	if opts.SPADir != "" {
		if info, err := os.Stat(opts.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", opts.SPADir)
			r.NotFound(handleSPA(opts.SPADir))
		}
	}
}
