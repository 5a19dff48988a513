// Package cmd implements the stylepick command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stylepick/stylepick/color"
	"github.com/stylepick/stylepick/constant"
	"github.com/stylepick/stylepick/icon"
	"github.com/stylepick/stylepick/key"
	"github.com/stylepick/stylepick/log"
	"github.com/stylepick/stylepick/studio"
	"github.com/stylepick/stylepick/style"
	"github.com/stylepick/stylepick/tui"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant (emoji, kaomoji, plain, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("text", "t", "", "Sample text to start with")
	lo.Must0(viper.BindPFlag(key.DefaultsText, rootCmd.PersistentFlags().Lookup("text")))
}

// rootCmd launches the full-screen picker.
var rootCmd = &cobra.Command{
	Use:   constant.Stylepick,
	Short: "Pick a font, size and color for a line of sample text",
	Long: constant.Logo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Pick a font, size and color, see the result live"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckTerminal("stylepick inline")

		s, err := studio.FromConfig()
		handleErr(err)
		defer s.Close()

		handleErr(tui.Run(s))
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
