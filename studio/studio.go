// Package studio is the host model behind every stylepick front end.
//
// A Studio owns one catalog and one coordinator per text attribute (font, size, color), the editable
// sample text, and the preview derived from them. Front ends open pickers through it and subscribe
// to preview changes; they never touch each other.
package studio

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/stylepick/stylepick/color"
	"github.com/stylepick/stylepick/constant"
	"github.com/stylepick/stylepick/log"
	"github.com/stylepick/stylepick/selection"
)

// Options seeds a Studio. Zero fields fall back to the built-in defaults.
type Options struct {
	Text  string
	Font  string
	Size  string
	Color string

	Fonts []string
	Sizes []string
}

// Studio holds the selection state of one editing session.
type Studio struct {
	Fonts  *selection.Catalog[string]
	Sizes  *selection.Catalog[string]
	Colors *selection.Catalog[color.Swatch]

	Font  *selection.Coordinator[string]
	Size  *selection.Coordinator[string]
	Color *selection.Coordinator[color.Swatch]

	text      string
	pointSize int

	subscriptions []*selection.Subscription
	listeners     []func(Preview)
}

// New builds the catalogs and coordinators and subscribes the preview refresh to each coordinator.
func New(options Options) (*Studio, error) {
	options = withDefaults(options)

	fonts, err := selection.NewCatalog(selection.KeyedBy(options.Fonts...)...)
	if err != nil {
		return nil, fmt.Errorf("font catalog: %w", err)
	}

	sizes, err := selection.NewCatalog(selection.KeyedBy(options.Sizes...)...)
	if err != nil {
		return nil, fmt.Errorf("size catalog: %w", err)
	}

	colors, err := selection.NewCatalog(lo.Map(color.Swatches, func(s color.Swatch, _ int) selection.Entry[color.Swatch] {
		return selection.Entry[color.Swatch]{Key: s.Name, Value: s}
	})...)
	if err != nil {
		return nil, fmt.Errorf("color catalog: %w", err)
	}

	fontKey := initialKey(Font, fonts, options.Font, constant.DefaultFont)
	sizeKey := initialKey(Size, sizes, options.Size, constant.DefaultSize)
	colorKey := initialKey(Color, colors, options.Color, constant.DefaultColor)

	s := &Studio{
		Fonts:  fonts,
		Sizes:  sizes,
		Colors: colors,

		Font:  selection.NewCoordinator(fonts.Lookup(fontKey).MustGet(), fontKey, selection.WithName(Font.String())),
		Size:  selection.NewCoordinator(sizes.Lookup(sizeKey).MustGet(), sizeKey, selection.WithName(Size.String())),
		Color: selection.NewCoordinator(colors.Lookup(colorKey).MustGet(), colorKey, selection.WithName(Color.String())),

		text:      options.Text,
		pointSize: ParsePointSize(sizeKey, constant.DefaultPointSize),
	}

	s.subscriptions = []*selection.Subscription{
		s.Font.Subscribe(func(_ string, key string) {
			s.changed(Font, key)
		}),
		s.Size.Subscribe(func(_ string, key string) {
			s.pointSize = ParsePointSize(key, s.pointSize)
			s.changed(Size, key)
		}),
		s.Color.Subscribe(func(_ color.Swatch, key string) {
			s.changed(Color, key)
		}),
	}

	return s, nil
}

func withDefaults(o Options) Options {
	if o.Text == "" {
		o.Text = constant.DefaultText
	}
	if len(o.Fonts) == 0 {
		o.Fonts = constant.Fonts
	}
	if len(o.Sizes) == 0 {
		o.Sizes = constant.Sizes
	}
	return o
}

// initialKey picks the configured key when the catalog has it, then the built-in default, then the first entry.
func initialKey[T any](attr Attribute, catalog *selection.Catalog[T], configured, builtin string) string {
	for _, k := range []string{configured, builtin} {
		if k != "" && catalog.Contains(k) {
			return k
		}
	}

	first := catalog.Keys()[0]
	log.WithFields(log.Fields{"attribute": attr.String(), "configured": configured}).
		Warnf("default not in catalog, using %q", first)
	return first
}

// ParsePointSize converts a size key to points, returning previous when the key is not a positive integer.
func ParsePointSize(key string, previous int) int {
	n, err := strconv.Atoi(key)
	if err != nil || n <= 0 {
		return previous
	}
	return n
}

// OnChange registers fn to be called with the new preview after every applied selection and text edit.
func (s *Studio) OnChange(fn func(Preview)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Studio) changed(attr Attribute, key string) {
	log.WithFields(log.Fields{"attribute": attr.String(), "key": key}).Info("selection applied")
	s.refresh()
}

func (s *Studio) refresh() {
	p := s.Preview()
	for _, fn := range s.listeners {
		fn(p)
	}
}

// Text returns the sample text.
func (s *Studio) Text() string {
	return s.text
}

// SetText replaces the sample text and refreshes listeners.
func (s *Studio) SetText(text string) {
	s.text = text
	s.refresh()
}

// Preview returns a snapshot of the current selections.
func (s *Studio) Preview() Preview {
	font, _ := s.Font.Current()
	_, size := s.Size.Current()
	swatch, _ := s.Color.Current()

	return Preview{
		Text:      s.text,
		Font:      font,
		Size:      size,
		PointSize: s.pointSize,
		Color:     swatch,
	}
}

// Close detaches the studio from its coordinators and drops every listener.
func (s *Studio) Close() {
	for _, sub := range s.subscriptions {
		sub.Unsubscribe()
	}
	s.subscriptions = nil
	s.listeners = nil
}
