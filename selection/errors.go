package selection

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

var (
	// ErrUnknownOptionKey is returned when a session is asked to choose a key its catalog does not hold.
	// The session stays open.
	ErrUnknownOptionKey = errors.New("unknown option key")

	// ErrSessionAlreadyClosed is returned by Choose or Cancel on a resolved or cancelled session.
	ErrSessionAlreadyClosed = errors.New("session already closed")

	// ErrReentrantApply is returned when a subscriber calls Apply on the coordinator that is notifying it.
	ErrReentrantApply = errors.New("re-entrant apply not allowed")

	ErrDuplicateKey = errors.New("duplicate option key")
	ErrEmptyKey     = errors.New("empty option key")
)

// UnknownOptionKeyError carries the rejected key and, when the catalog is not empty, its closest match.
type UnknownOptionKeyError struct {
	Key        string
	Suggestion mo.Option[string]
}

func (e *UnknownOptionKeyError) Error() string {
	if s, ok := e.Suggestion.Get(); ok {
		return fmt.Sprintf("%s %q, did you mean %q?", ErrUnknownOptionKey, e.Key, s)
	}
	return fmt.Sprintf("%s %q", ErrUnknownOptionKey, e.Key)
}

func (e *UnknownOptionKeyError) Unwrap() error {
	return ErrUnknownOptionKey
}
