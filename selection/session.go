package selection

import "github.com/stylepick/stylepick/log"

// State is the lifecycle state of a Session.
type State int

const (
	Open State = iota
	Resolved
	Cancelled
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Resolved:
		return "resolved"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session is one picker interaction. It reports at most one choice to its coordinator.
type Session[T any] struct {
	catalog     *Catalog[T]
	coordinator *Coordinator[T]
	state       State
}

// OpenSession starts a session over catalog bound to coordinator. The coordinator is not touched.
func OpenSession[T any](catalog *Catalog[T], coordinator *Coordinator[T]) *Session[T] {
	log.Debugf("%s: picker opened with %d option(s)", coordinator.Name(), catalog.Len())

	return &Session[T]{
		catalog:     catalog,
		coordinator: coordinator,
		state:       Open,
	}
}

func (s *Session[T]) State() State {
	return s.state
}

func (s *Session[T]) Catalog() *Catalog[T] {
	return s.catalog
}

// Choose applies the option stored under key and resolves the session.
//
// An unknown key yields an *UnknownOptionKeyError and leaves the session open so the caller can
// retry. If the coordinator rejects the apply, that error is returned and the session also stays open.
func (s *Session[T]) Choose(key string) (T, error) {
	var zero T

	if s.state != Open {
		return zero, ErrSessionAlreadyClosed
	}

	value, ok := s.catalog.Lookup(key).Get()
	if !ok {
		return zero, &UnknownOptionKeyError{
			Key:        key,
			Suggestion: s.catalog.Closest(key),
		}
	}

	if err := s.coordinator.Apply(value, key); err != nil {
		return zero, err
	}

	s.state = Resolved
	return value, nil
}

// Cancel closes the session without touching the coordinator.
func (s *Session[T]) Cancel() error {
	if s.state != Open {
		return ErrSessionAlreadyClosed
	}

	log.Debugf("%s: picker cancelled", s.coordinator.Name())
	s.state = Cancelled
	return nil
}
