package selection

import (
	"github.com/samber/lo"
	"github.com/stylepick/stylepick/log"
)

// Subscriber is called with the newly applied value and its key.
type Subscriber[T any] func(value T, key string)

// Subscription is the handle returned by Coordinator.Subscribe.
type Subscription struct {
	id     uint64
	cancel func(id uint64)
}

// Unsubscribe removes the subscriber. Calling it more than once is harmless.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.cancel != nil {
		s.cancel(s.id)
	}
}

type subscriber[T any] struct {
	id uint64
	fn Subscriber[T]
}

// Option configures a Coordinator.
type Option func(*options)

type options struct {
	name string
}

// WithName labels the coordinator in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// Coordinator owns the current selection for one attribute and notifies subscribers whenever a
// selection is applied. It is meant to be driven from a single goroutine.
//
// Every Apply notifies, even when the value and key equal the current selection.
type Coordinator[T any] struct {
	name string

	current    T
	currentKey string

	subscribers []subscriber[T]
	nextID      uint64

	// set while subscribers are being called
	notifying bool
}

// NewCoordinator creates a coordinator whose selection starts at the given default.
func NewCoordinator[T any](value T, key string, opts ...Option) *Coordinator[T] {
	o := options{name: "selection"}
	for _, opt := range opts {
		opt(&o)
	}

	return &Coordinator[T]{
		name:       o.name,
		current:    value,
		currentKey: key,
	}
}

func (c *Coordinator[T]) Name() string {
	return c.name
}

// Current returns the present selection.
func (c *Coordinator[T]) Current() (T, string) {
	return c.current, c.currentKey
}

// Subscribe registers fn. Subscribers run in subscription order.
// A subscriber added while a notification pass is running is first called on the next pass.
func (c *Coordinator[T]) Subscribe(fn Subscriber[T]) *Subscription {
	id := c.nextID
	c.nextID++
	c.subscribers = append(c.subscribers, subscriber[T]{id: id, fn: fn})

	return &Subscription{id: id, cancel: c.unsubscribe}
}

// Unsubscribe removes the subscriber behind sub. It may be called from inside a subscriber;
// the pass that is already running still completes with the subscribers it started with.
func (c *Coordinator[T]) Unsubscribe(sub *Subscription) {
	sub.Unsubscribe()
}

// Subscribers reports how many subscribers are registered.
func (c *Coordinator[T]) Subscribers() int {
	return len(c.subscribers)
}

func (c *Coordinator[T]) unsubscribe(id uint64) {
	c.subscribers = lo.Reject(c.subscribers, func(s subscriber[T], _ int) bool {
		return s.id == id
	})
}

// Apply sets the current selection and synchronously calls every subscriber exactly once, in order.
// Calling Apply from within one of this coordinator's subscribers returns ErrReentrantApply and
// changes nothing.
func (c *Coordinator[T]) Apply(value T, key string) error {
	if c.notifying {
		log.Warnf("%s: re-entrant apply of %q rejected", c.name, key)
		return ErrReentrantApply
	}

	c.current = value
	c.currentKey = key

	// unsubscribe replaces the slice instead of mutating it, so pass is fixed for this loop
	pass := c.subscribers

	log.Debugf("%s: applied %q, notifying %d subscriber(s)", c.name, key, len(pass))

	c.notifying = true
	defer func() { c.notifying = false }()

	for _, s := range pass {
		s.fn(value, key)
	}

	return nil
}
