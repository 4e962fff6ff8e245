// Package selection tracks which person, if any, is selected on the map.
//
// A Controller has two states, empty and selected. Select always
// overwrites the current selection; Clear always empties it. Listeners
// run synchronously inside each transition so whatever renders the
// disclosure surface never observes a stale state.
package selection

import "github.com/playperu/nostos/internal/nostos"

// State is either empty or holds exactly one selected person.
type State struct {
	person   nostos.Person
	selected bool
}

// Empty is the initial state.
var Empty = State{}

func Selected(p nostos.Person) State {
	return State{person: p, selected: true}
}

// Person returns the selected person and whether there is one.
func (s State) Person() (nostos.Person, bool) {
	return s.person, s.selected
}

func (s State) IsEmpty() bool { return !s.selected }

// Listener observes every state change.
type Listener func(State)

// Controller is not safe for concurrent use.
type Controller struct {
	state     State
	listeners []Listener
}

func NewController(listeners ...Listener) *Controller {
	return &Controller{state: Empty, listeners: listeners}
}

// Select replaces the current state with Selected(p), from any state.
func (c *Controller) Select(p nostos.Person) {
	c.set(Selected(p))
}

// Clear empties the selection. Clearing an empty selection is a no-op and
// notifies nobody.
func (c *Controller) Clear() {
	if c.state.IsEmpty() {
		return
	}
	c.set(Empty)
}

func (c *Controller) Current() State { return c.state }

func (c *Controller) set(s State) {
	c.state = s
	for _, l := range c.listeners {
		l(s)
	}
}
