package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lon/internal/cli"
	"lon/internal/color"
)

var (
	showNearest int
	showOutput  string
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name|hex>",
		Short: "Show one colour and its nearest neighbours",
		Long: `Shows a colour looked up by name or hex value, together with the colours
closest to it across both libraries (CIEDE2000).

When nothing matches exactly and the argument is a hex value, the nearest
catalog colours are listed instead.

Examples:
  lon show classic-blue
  lon show "Reflex Blue C"
  lon show '#0f4c81' --nearest 10`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	cmd.Flags().IntVarP(&showNearest, "nearest", "n", 5, "Number of nearest colours to list")
	cmd.Flags().StringVarP(&showOutput, "output", "o", string(cli.OutputFormatTable), "Output format: table, json or yaml")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(showOutput)
	if err != nil {
		return err
	}
	if showNearest < 0 {
		return fmt.Errorf("--nearest must not be negative, got %d", showNearest)
	}

	services, err := loadServices(cmd)
	if err != nil {
		return err
	}
	cat := services.Catalog
	printer := cli.NewPrinter(format, cmd.OutOrStdout())
	query := strings.TrimSpace(args[0])

	if c, ok := cat.Find(query); ok {
		// One extra, since the colour itself comes back at distance zero.
		return printer.PrintColor(c, cat.Nearest(c.NormalizedHex(), showNearest+1))
	}

	if _, isHex := color.ParseHex(query); isHex && showNearest > 0 {
		return printer.PrintMatches(cat.Nearest(query, showNearest))
	}
	return fmt.Errorf("no colour named %q", query)
}
