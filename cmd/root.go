package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// configPath points at a directory holding config.yaml instead of the
// layered user and project lookup.
var configPath string

// debug enables verbose logging across the application.
var debug bool

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it behaves like 'lon browse'.
var rootCmd = &cobra.Command{
	Use:   "lon",
	Short: "Browse Pantone colour libraries in the terminal",
	Long: `lon is a terminal colour browser for the Pantone Fashion, Home + Interiors (TCX)
and Solid Coated libraries.

Run it without arguments to open the interactive browser, or use the
subcommands to list, look up and summarize colours from scripts.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown colour names, bad config)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runBrowse,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "lon version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newFamiliesCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Directory containing config.yaml (default: layered ~/.config/lon and ./.lon)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&browseNoTUI, "no-tui", false, "Print a library summary instead of starting the browser")
}
