package cmd

import (
	"github.com/spf13/cobra"

	"lon/internal/cli"
)

var infoOutput string

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the loaded libraries and the catalog fingerprint",
		Long: `Shows where colour data was loaded from, how many colours each library holds
and a fingerprint of the raw resources. The fingerprint changes whenever
the data files do.`,
		Args: cobra.NoArgs,
		RunE: runInfo,
	}
	cmd.Flags().StringVarP(&infoOutput, "output", "o", string(cli.OutputFormatTable), "Output format: table, json or yaml")
	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(infoOutput)
	if err != nil {
		return err
	}

	services, err := loadServices(cmd)
	if err != nil {
		return err
	}

	source := "embedded"
	if services.DataDir != "" {
		source = services.DataDir
	}
	info := cli.NewCatalogInfo(rootCmd.Version, source, services.Catalog)
	return cli.NewPrinter(format, cmd.OutOrStdout()).PrintInfo(info)
}
