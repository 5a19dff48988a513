package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/stylepick/stylepick/filesystem"
	"github.com/stylepick/stylepick/inline"
	"github.com/stylepick/stylepick/studio"
	"github.com/stylepick/stylepick/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("font", "f", "", "Font to pick")
	inlineCmd.Flags().StringP("size", "s", "", "Size to pick")
	inlineCmd.Flags().StringP("color", "c", "", "Color to pick")
	inlineCmd.Flags().StringArrayP("pick", "p", []string{}, "Extra picks as attribute=key, applied in order after --font, --size and --color")
	inlineCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")

	for _, attr := range studio.Attributes {
		attr := attr
		lo.Must0(inlineCmd.RegisterFlagCompletionFunc(attr.String(), func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			s, err := studio.FromConfig()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return s.Filter(attr, toComplete), cobra.ShellCompDirectiveNoFileComp
		}))
	}
}

// inlineCmd applies picks without any prompts.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Apply picks non-interactively and print the result",
	Long: `Apply font, size and color picks without prompting, then print the preview.

Picks are applied in this order: --font, --size, --color, then each --pick.
An unknown key fails the command and names the closest known key.`,
	Example: `  stylepick inline --font Courier --size 36 --color Red --text "Hello"
  stylepick inline -p size=12 -p size=48 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		var picks []inline.Pick

		for _, attr := range studio.Attributes {
			if value := lo.Must(cmd.Flags().GetString(attr.String())); value != "" {
				picks = append(picks, inline.Pick{Attribute: attr, Key: value})
			}
		}

		for _, description := range lo.Must(cmd.Flags().GetStringArray("pick")) {
			p, err := inline.ParsePick(description)
			handleErr(err)
			picks = append(picks, p)
		}

		text := mo.None[string]()
		if cmd.Flags().Changed("text") {
			text = mo.Some(lo.Must(cmd.Flags().GetString("text")))
		}

		var (
			writer io.Writer = os.Stdout
			width  int
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		} else if w, _, err := util.TerminalSize(); err == nil {
			width = w
		}

		s, err := studio.FromConfig()
		handleErr(err)
		defer s.Close()

		handleErr(inline.Run(s, &inline.Options{
			Out:   writer,
			Json:  lo.Must(cmd.Flags().GetBool("json")),
			Text:  text,
			Picks: picks,
			Width: width,
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of inline --json output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "preview", "swatch", "output", "applied":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
