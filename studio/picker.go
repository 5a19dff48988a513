package studio

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/stylepick/stylepick/color"
	"github.com/stylepick/stylepick/selection"
)

// Attribute identifies one of the pickable text attributes.
type Attribute int

const (
	Font Attribute = iota + 1
	Size
	Color
)

// Attributes lists every attribute in picker button order.
var Attributes = []Attribute{Font, Size, Color}

func (a Attribute) String() string {
	switch a {
	case Font:
		return "font"
	case Size:
		return "size"
	case Color:
		return "color"
	default:
		return "unknown"
	}
}

// ParseAttribute accepts singular or plural attribute names, case-insensitively.
func ParseAttribute(name string) (Attribute, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "s")
	a, ok := lo.Find(Attributes, func(a Attribute) bool {
		return a.String() == name
	})
	if !ok {
		return 0, fmt.Errorf("unknown attribute %q, expected one of font, size, color", name)
	}
	return a, nil
}

// Option is a catalog entry flattened for display.
type Option struct {
	Key string
	// Swatch is set for color options only.
	Swatch *color.Swatch
}

// Picker is an attribute-agnostic view over a selection.Session, so front ends can present
// any of the three pickers with the same code.
type Picker interface {
	Attribute() Attribute
	Options() []Option
	// Current is the key selected when the picker was opened.
	Current() string
	Choose(key string) error
	Cancel() error
	State() selection.State
}

type picker[T any] struct {
	attribute Attribute
	session   *selection.Session[T]
	current   string
	option    func(selection.Entry[T]) Option
}

func (p *picker[T]) Attribute() Attribute {
	return p.attribute
}

func (p *picker[T]) Options() []Option {
	return lo.Map(p.session.Catalog().Entries(), func(e selection.Entry[T], _ int) Option {
		return p.option(e)
	})
}

func (p *picker[T]) Current() string {
	return p.current
}

func (p *picker[T]) Choose(key string) error {
	_, err := p.session.Choose(key)
	return err
}

func (p *picker[T]) Cancel() error {
	return p.session.Cancel()
}

func (p *picker[T]) State() selection.State {
	return p.session.State()
}

func plainOption[T any](e selection.Entry[T]) Option {
	return Option{Key: e.Key}
}

// Open starts a picker session for attr.
func (s *Studio) Open(attr Attribute) (Picker, error) {
	switch attr {
	case Font:
		return openPicker(attr, s.Fonts, s.Font, plainOption[string]), nil
	case Size:
		return openPicker(attr, s.Sizes, s.Size, plainOption[string]), nil
	case Color:
		return openPicker(attr, s.Colors, s.Color, func(e selection.Entry[color.Swatch]) Option {
			swatch := e.Value
			return Option{Key: e.Key, Swatch: &swatch}
		}), nil
	default:
		return nil, fmt.Errorf("unknown attribute %d", attr)
	}
}

func openPicker[T any](
	attr Attribute,
	catalog *selection.Catalog[T],
	coordinator *selection.Coordinator[T],
	option func(selection.Entry[T]) Option,
) Picker {
	_, current := coordinator.Current()
	return &picker[T]{
		attribute: attr,
		session:   selection.OpenSession(catalog, coordinator),
		current:   current,
		option:    option,
	}
}

// Pick opens a picker for attr and immediately chooses key.
func (s *Studio) Pick(attr Attribute, key string) error {
	p, err := s.Open(attr)
	if err != nil {
		return err
	}

	if err := p.Choose(key); err != nil {
		return fmt.Errorf("pick %s: %w", attr, err)
	}

	return nil
}

// Keys returns the catalog keys for attr.
func (s *Studio) Keys(attr Attribute) []string {
	switch attr {
	case Font:
		return s.Fonts.Keys()
	case Size:
		return s.Sizes.Keys()
	case Color:
		return s.Colors.Keys()
	default:
		return nil
	}
}

// Filter returns the keys for attr that fuzzily match query.
func (s *Studio) Filter(attr Attribute, query string) []string {
	keys := func(entries []selection.Entry[string]) []string {
		return lo.Map(entries, func(e selection.Entry[string], _ int) string { return e.Key })
	}

	switch attr {
	case Font:
		return keys(s.Fonts.Filter(query))
	case Size:
		return keys(s.Sizes.Filter(query))
	case Color:
		return lo.Map(s.Colors.Filter(query), func(e selection.Entry[color.Swatch], _ int) string { return e.Key })
	default:
		return nil
	}
}
