package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stylepick/stylepick/color"
	"github.com/stylepick/stylepick/studio"
	"github.com/stylepick/stylepick/style"
	"github.com/stylepick/stylepick/util"
)

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringP("filter", "f", "", "Only list keys fuzzy-matching this query")
	catalogCmd.Flags().BoolP("json", "j", false, "Print the catalogs as JSON")

	catalogCmd.SetOut(os.Stdout)
}

// catalogCmd lists the keys each picker offers.
var catalogCmd = &cobra.Command{
	Use:       "catalog [fonts|sizes|colors]",
	Short:     "List the options offered by the pickers",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"fonts", "sizes", "colors"},
	Run: func(cmd *cobra.Command, args []string) {
		attributes := studio.Attributes
		if len(args) == 1 {
			attr, err := studio.ParseAttribute(args[0])
			handleErr(err)
			attributes = []studio.Attribute{attr}
		}

		s, err := studio.FromConfig()
		handleErr(err)
		defer s.Close()

		query := lo.Must(cmd.Flags().GetString("filter"))
		listed := make(map[string][]string, len(attributes))
		for _, attr := range attributes {
			listed[attr.String()] = s.Filter(attr, query)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(listed))
			return
		}

		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		for i, attr := range attributes {
			keys := listed[attr.String()]
			cmd.Printf("%s %s\n", headerStyle(util.Capitalize(attr.String())+"s"), style.Faint(util.Quantify(len(keys), "option", "options")))

			for _, k := range keys {
				cmd.Println("  " + k)
			}

			if i < len(attributes)-1 {
				cmd.Println()
			}
		}
	},
}
