package server

import (
	"errors"
	"net/http"

	"github.com/playperu/nostos/internal/metrics"
	"github.com/playperu/nostos/internal/nostos"
	"github.com/playperu/nostos/internal/screen"
	"github.com/playperu/nostos/internal/section"
)

const (
	commandSelect   = "select"
	commandClose    = "close"
	commandNavigate = "navigate"
)

var (
	errMissingPerson  = errors.New("personId is required")
	errUnknownCommand = errors.New("unknown command type")
)

// Command is a user interaction sent by a marker, the disclosure surface
// or a navigation button.
type Command struct {
	Type     string `json:"type"`
	PersonID *int   `json:"personId,omitempty"`
	Section  string `json:"section,omitempty"`
}

// apply runs cmd against the screen and returns the resulting view. On
// error the returned view is the unchanged current one.
func apply(sc *screen.Screen, m *metrics.Metrics, cmd Command) (screen.View, error) {
	switch cmd.Type {
	case commandSelect:
		if cmd.PersonID == nil {
			return sc.View(), errMissingPerson
		}
		v, err := sc.Select(*cmd.PersonID)
		if err != nil {
			return v, err
		}
		m.Selections.Inc()
		return v, nil

	case commandClose:
		m.SelectionsCleared.Inc()
		return sc.Close(), nil

	case commandNavigate:
		s, err := section.Parse(cmd.Section)
		if err != nil {
			return sc.View(), err
		}
		v, err := sc.Navigate(s)
		if err != nil {
			return v, err
		}
		m.SectionChanges.WithLabelValues(string(s)).Inc()
		return v, nil
	}
	return sc.View(), errUnknownCommand
}

func commandStatus(err error) int {
	switch {
	case errors.Is(err, nostos.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, nostos.ErrInvalidSection),
		errors.Is(err, errMissingPerson),
		errors.Is(err, errUnknownCommand):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func commandMessage(err error) string {
	switch {
	case errors.Is(err, nostos.ErrNotFound):
		return "person not found"
	case errors.Is(err, nostos.ErrInvalidSection):
		return "section must be one of home, information, settings, user"
	case errors.Is(err, errMissingPerson), errors.Is(err, errUnknownCommand):
		return err.Error()
	}
	return "internal error"
}
