package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stylepick/stylepick/mini"
	"github.com/stylepick/stylepick/studio"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("clear", "c", false, "Clear the screen before each preview")
}

// miniCmd runs the prompt-driven front end.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Pick styles with simple line prompts instead of the full-screen interface",
	Run: func(cmd *cobra.Command, args []string) {
		CheckTerminal("stylepick inline")

		s, err := studio.FromConfig()
		handleErr(err)
		defer s.Close()

		handleErr(mini.Run(s, mini.Options{
			Clear: lo.Must(cmd.Flags().GetBool("clear")),
		}))
	},
}
