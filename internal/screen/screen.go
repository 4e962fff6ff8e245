// Package screen composes the roster, the selection controller and the
// section controller into the state behind one browser session.
//
// Markers and navigation buttons talk to a Screen with plain values: a
// person id for a marker click, a section for a nav click. The disclosure
// surface is mounted iff the home section is active and a person is
// selected. Changing section keeps the selection.
package screen

import (
	"fmt"
	"sync"

	"github.com/playperu/nostos/internal/disclosure"
	"github.com/playperu/nostos/internal/nostos"
	"github.com/playperu/nostos/internal/roster"
	"github.com/playperu/nostos/internal/section"
	"github.com/playperu/nostos/internal/selection"
)

const disclosureTitle = "Detalles de la persona"

// Disclosure is the content of the modal for the selected person.
type Disclosure struct {
	PersonID int                `json:"personId"`
	Title    string             `json:"title"`
	Payload  disclosure.Payload `json:"payload"`
}

// View is everything a front end needs to render the current screen.
type View struct {
	Section    section.Section   `json:"section"`
	Nav        []section.NavItem `json:"nav"`
	MapMounted bool              `json:"mapMounted"`
	Disclosure *Disclosure       `json:"disclosure"`
}

type Screen struct {
	mu        sync.Mutex
	people    *roster.Registry
	selection *selection.Controller
	section   *section.Controller
	onChange  func(View)
}

// New returns a screen on the home section with nothing selected.
// onChange, if non-nil, is called synchronously with the new view after
// every state change and must not block.
func New(people *roster.Registry, onChange func(View)) *Screen {
	s := &Screen{people: people, onChange: onChange}
	s.selection = selection.NewController(func(selection.State) { s.notify() })
	s.section = section.NewController(func(section.Section) { s.notify() })
	return s
}

// Markers returns one marker per person, in roster order.
func (s *Screen) Markers() []nostos.Marker {
	all := s.people.All()
	markers := make([]nostos.Marker, len(all))
	for i, p := range all {
		markers[i] = p.Marker()
	}
	return markers
}

// Select handles a marker click.
func (s *Screen) Select(personID int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.people.ByID(personID)
	if err != nil {
		return s.view(), err
	}
	s.selection.Select(p)
	return s.view(), nil
}

// Close handles any close gesture on the disclosure surface.
func (s *Screen) Close() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Clear()
	return s.view()
}

// Navigate handles a navigation bar click.
func (s *Screen) Navigate(to section.Section) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.section.GoTo(to); err != nil {
		return s.view(), err
	}
	return s.view(), nil
}

func (s *Screen) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// Disclosure returns the mounted disclosure, or ErrNotFound when the
// disclosure surface is not mounted.
func (s *Screen) Disclosure() (Disclosure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.disclosure()
	if d == nil {
		return Disclosure{}, fmt.Errorf("disclosure: %w", nostos.ErrNotFound)
	}
	return *d, nil
}

func (s *Screen) view() View {
	current := s.section.Current()
	return View{
		Section:    current,
		Nav:        section.Nav(current),
		MapMounted: current == section.Home,
		Disclosure: s.disclosure(),
	}
}

func (s *Screen) disclosure() *Disclosure {
	if s.section.Current() != section.Home {
		return nil
	}
	p, ok := s.selection.Current().Person()
	if !ok {
		return nil
	}
	return &Disclosure{
		PersonID: p.ID,
		Title:    disclosureTitle,
		Payload:  disclosure.Encode(p),
	}
}

// notify runs inside a controller transition, with s.mu held.
func (s *Screen) notify() {
	if s.onChange != nil {
		s.onChange(s.view())
	}
}
