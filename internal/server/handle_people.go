package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/nostos/internal/nostos"
	"github.com/playperu/nostos/internal/roster"
)

func handleMap(cfg MapConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cfg)
	}
}

func handlePeople(people *roster.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := people.All()
		markers := make([]nostos.Marker, len(all))
		for i, p := range all {
			markers[i] = p.Marker()
		}
		writeJSON(w, http.StatusOK, markers)
	}
}

func handlePerson(people *roster.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "id must be an integer")
			return
		}

		p, err := people.ByID(id)
		if errors.Is(err, nostos.ErrNotFound) {
			writeError(w, http.StatusNotFound, "person not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, p.Marker())
	}
}
