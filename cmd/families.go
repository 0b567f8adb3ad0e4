package cmd

import (
	"github.com/spf13/cobra"

	"lon/internal/cli"
	"lon/internal/color"
)

var (
	familiesLibrary string
	familiesOutput  string
)

func newFamiliesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "families",
		Short: "Summarize a library by colour family",
		Long: `Prints, for every colour family present in a library, how many colours it
holds and the mean and standard deviation of their lightness and saturation.`,
		Args: cobra.NoArgs,
		RunE: runFamilies,
	}
	cmd.Flags().StringVarP(&familiesLibrary, "library", "l", color.FashionHomeTCX.Key(), "Library key: tcx or solid-coated")
	cmd.Flags().StringVarP(&familiesOutput, "output", "o", string(cli.OutputFormatTable), "Output format: table, json or yaml")
	return cmd
}

func runFamilies(cmd *cobra.Command, args []string) error {
	library, err := color.ParseLibrary(familiesLibrary)
	if err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(familiesOutput)
	if err != nil {
		return err
	}

	services, err := loadServices(cmd)
	if err != nil {
		return err
	}
	return cli.NewPrinter(format, cmd.OutOrStdout()).PrintFamilies(library, services.Catalog.FamilyStats(library))
}
