package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gex-dev/gex/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐─┐ ┬
  │ ┬├┤ ┌┴┬┘
  └─┘└─┘┴ └─
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gex",
		Short: "Scaffolding for GetX-convention Flutter apps",
		Long: `gex scaffolds Flutter applications that follow the GetX
controller/binding/screen convention.

Every page is three generated artifacts plus one route registration:

  • a controller holding the reactive state
  • a binding that lazy-wires the controller
  • a screen rendering it as a GetView
  • a GetPage entry in lib/routes/app_routes.dart

Generation is conflict-checked up front: if any target file or the
route already exists, nothing is written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return errors.New("E011").
				WithDetail(fmt.Sprintf("'%s' is not a gex command.", args[0])).
				WithSuggestion("Run 'gex --help' for the command list")
		},
	}

	// Add commands
	rootCmd.AddCommand(
		initCmd(),
		makeControllerCmd(),
		makeBindingCmd(),
		makeScreenCmd(),
		makePageCmd(),
		versionCmd(),
	)

	return rootCmd
}

// printBanner prints the gex ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("%s %s\n", color.New(color.FgYellow).Sprint("⚠"), fmt.Sprintf(format, args...))
}
