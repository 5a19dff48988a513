package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/mo"
	"github.com/stylepick/stylepick/studio"
)

// Pick is one selection to apply, in order.
type Pick struct {
	Attribute studio.Attribute
	Key       string
}

type Options struct {
	Out   io.Writer
	Json  bool
	Text  mo.Option[string]
	Picks []Pick
	// Width wraps the rendered preview. Zero disables wrapping.
	Width int
}

// ParsePick parses "attribute=key", e.g. "font=Courier" or "sizes=36".
func ParsePick(description string) (Pick, error) {
	name, value, found := strings.Cut(description, "=")
	if !found {
		return Pick{}, fmt.Errorf("invalid pick %q, expected attribute=key", description)
	}

	attr, err := studio.ParseAttribute(name)
	if err != nil {
		return Pick{}, err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return Pick{}, fmt.Errorf("invalid pick %q, key is empty", description)
	}

	return Pick{Attribute: attr, Key: value}, nil
}
