// Package section implements the mutually exclusive top-level views.
package section

import (
	"fmt"

	"github.com/playperu/nostos/internal/nostos"
)

type Section string

const (
	Home        Section = "home"
	Information Section = "information"
	Settings    Section = "settings"
	User        Section = "user"
)

// Sections lists every valid section in navigation bar order.
var Sections = []Section{Home, User, Information, Settings}

var labels = map[Section]string{
	Home:        "Home",
	User:        "Usuario",
	Information: "Información",
	Settings:    "Configuración",
}

func (s Section) Valid() bool {
	_, ok := labels[s]
	return ok
}

func (s Section) Label() string { return labels[s] }

// Parse converts a wire value into a Section.
func Parse(v string) (Section, error) {
	s := Section(v)
	if !s.Valid() {
		return "", fmt.Errorf("section %q: %w", v, nostos.ErrInvalidSection)
	}
	return s, nil
}

// Listener observes every section change.
type Listener func(Section)

// Controller holds the active section. It keeps no history. Not safe for
// concurrent use.
type Controller struct {
	current   Section
	listeners []Listener
}

func NewController(listeners ...Listener) *Controller {
	return &Controller{current: Home, listeners: listeners}
}

func (c *Controller) Current() Section { return c.current }

// GoTo makes s the active section. Any section is reachable from any
// other.
func (c *Controller) GoTo(s Section) error {
	if !s.Valid() {
		return fmt.Errorf("section %q: %w", s, nostos.ErrInvalidSection)
	}
	c.current = s
	for _, l := range c.listeners {
		l(s)
	}
	return nil
}

// MustGoTo is GoTo for compile-time section values. It panics on an
// invalid section.
func (c *Controller) MustGoTo(s Section) {
	if err := c.GoTo(s); err != nil {
		panic(err)
	}
}

// NavItem is one button of the navigation bar.
type NavItem struct {
	Section Section `json:"section"`
	Label   string  `json:"label"`
	Active  bool    `json:"active"`
}

// Nav returns the navigation bar with exactly the current section active.
func Nav(current Section) []NavItem {
	items := make([]NavItem, len(Sections))
	for i, s := range Sections {
		items[i] = NavItem{Section: s, Label: s.Label(), Active: s == current}
	}
	return items
}
