// Package roster holds the fixed, ordered collection of persons shown on
// the map. A Registry is built once at startup and never mutated.
package roster

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/playperu/nostos/internal/nostos"
)

type Registry struct {
	people []nostos.Person
	byID   map[int]int
}

// New builds a registry preserving the order of people. Duplicate ids are
// rejected.
func New(people []nostos.Person) (*Registry, error) {
	r := &Registry{
		people: make([]nostos.Person, len(people)),
		byID:   make(map[int]int, len(people)),
	}
	copy(r.people, people)

	for i, p := range r.people {
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate person id %d", p.ID)
		}
		r.byID[p.ID] = i
	}
	return r, nil
}

// All returns the roster in insertion order. The returned slice is a copy.
func (r *Registry) All() []nostos.Person {
	out := make([]nostos.Person, len(r.people))
	copy(out, r.people)
	return out
}

func (r *Registry) ByID(id int) (nostos.Person, error) {
	i, ok := r.byID[id]
	if !ok {
		return nostos.Person{}, fmt.Errorf("person %d: %w", id, nostos.ErrNotFound)
	}
	return r.people[i], nil
}

func (r *Registry) Len() int { return len(r.people) }

// Load reads the persons table once and returns an immutable registry.
func Load(ctx context.Context, db *sql.DB) (*Registry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, last_name, age, address, phone, dni, lat, lng
		FROM persons
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying persons: %w", err)
	}
	defer rows.Close()

	var people []nostos.Person
	for rows.Next() {
		var p nostos.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.LastName, &p.Age, &p.Address,
			&p.Phone, &p.DNI, &p.Position.Lat, &p.Position.Lng); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating persons: %w", err)
	}

	return New(people)
}
