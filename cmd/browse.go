package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lon/internal/app"
)

// browseNoTUI controls whether to run the browser (false) or print a
// summary and exit (true).
var browseNoTUI bool

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive colour browser",
		Long: `Opens the interactive colour browser. Each library is a tab holding a grid
of swatches that scrolls endlessly in both directions.

Keys:
  arrows/hjkl  move          tab/shift+tab  switch library
  enter        details       y/c            copy hex to clipboard
  /            search        s              cycle sort order
  L            log           ?              help
  q            quit

Use --no-tui to print a summary of the loaded libraries instead.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
	cmd.Flags().BoolVar(&browseNoTUI, "no-tui", false, "Print a library summary instead of starting the browser")
	return cmd
}

// runBrowse is the entry point for both 'lon' and 'lon browse'.
func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(browseNoTUI, debug, configPath)
	cfg.Out = cmd.OutOrStdout()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// loadServices bootstraps configuration and the catalog for the
// non-interactive commands.
func loadServices(cmd *cobra.Command) (*app.Services, error) {
	cfg := app.NewConfig(true, debug, configPath)
	cfg.Out = cmd.OutOrStdout()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Services(), nil
}
