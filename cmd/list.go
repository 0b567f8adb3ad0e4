package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lon/internal/cli"
	"lon/internal/color"
)

var (
	listLibrary string
	listFamily  string
	listSort    string
	listOutput  string
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the colours of a library",
		Long: `Lists the colours of one library, optionally restricted to a single family
and sorted by name, hue, saturation or lightness.

Examples:
  lon list
  lon list --library solid-coated --family blue --sort lightness
  lon list --output json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cmd.Flags().StringVarP(&listLibrary, "library", "l", color.FashionHomeTCX.Key(), "Library key: tcx or solid-coated")
	cmd.Flags().StringVarP(&listFamily, "family", "f", "", "Only list colours of this family, e.g. red")
	cmd.Flags().StringVarP(&listSort, "sort", "s", color.SortHue.String(), "Sort order: name, hue, saturation or lightness")
	cmd.Flags().StringVarP(&listOutput, "output", "o", string(cli.OutputFormatTable), "Output format: table, json or yaml")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	library, err := color.ParseLibrary(listLibrary)
	if err != nil {
		return err
	}
	order, err := color.ParseSortOrder(listSort)
	if err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(listOutput)
	if err != nil {
		return err
	}

	services, err := loadServices(cmd)
	if err != nil {
		return err
	}

	colors := services.Catalog.Get(library)
	if listFamily != "" {
		family, err := color.ParseFamily(listFamily)
		if err != nil {
			return fmt.Errorf("--family: %w", err)
		}
		colors = color.FilterFamily(colors, family)
	}

	return cli.NewPrinter(format, cmd.OutOrStdout()).PrintColors(color.Sort(colors, order))
}
