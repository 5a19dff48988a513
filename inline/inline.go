// Package inline is the non-interactive mode: apply picks in order and print the resulting preview.
package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/stylepick/stylepick/log"
	"github.com/stylepick/stylepick/studio"
)

func Run(s *studio.Studio, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if text, ok := options.Text.Get(); ok {
		s.SetText(text)
	}

	for _, p := range options.Picks {
		log.Infof("inline pick %s=%s", p.Attribute, p.Key)
		if err := s.Pick(p.Attribute, p.Key); err != nil {
			return err
		}
	}

	preview := s.Preview()

	if options.Json {
		return writeJson(options.Out, options.Picks, preview)
	}

	_, err := fmt.Fprintf(options.Out, "%s\n\n%s\n", preview.Render(options.Width), preview.Summary())
	return err
}

func writeJson(out io.Writer, picks []Pick, preview studio.Preview) error {
	data, err := asJson(picks, preview)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
