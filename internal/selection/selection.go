// Package selection holds the one piece of mutable application state: the
// finish currently applied to the floor.
package selection

import (
	"fmt"

	"tile-configurator/internal/finish"
)

// Listener is called after the current finish changes. prev is the finish that
// was current before the change.
type Listener func(prev, next finish.Option)

// State owns the current finish. It is not safe for concurrent use: writes come
// from the UI event handler and reads from the frame update, both on the render
// thread, so every write is seen by the next read.
type State struct {
	current   finish.Option
	listeners []Listener
}

// New returns a state initialised to the catalog's first entry.
func New(c *finish.Catalog) (*State, error) {
	first, err := c.First()
	if err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}
	return &State{current: first}, nil
}

// Current returns the selected finish.
func (s *State) Current() finish.Option {
	return s.current
}

// CurrentID returns the id of the selected finish.
func (s *State) CurrentID() int {
	return s.current.ID
}

// Subscribe registers l to run after every Select. Listeners run in
// registration order, synchronously.
func (s *State) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Select makes opt the current finish and notifies listeners. Selecting the
// finish that is already current still notifies; consumers are idempotent.
func (s *State) Select(opt finish.Option) {
	prev := s.current
	s.current = opt
	for _, l := range s.listeners {
		l(prev, opt)
	}
}
