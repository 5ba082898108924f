package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
	"github.com/yamanjr10/deskdash/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your dashboard data",
	Long: `Export a snapshot of all durable dashboard data.

Formats: json, yaml, md

By default the snapshot is written to stdout; use --output to write a
file instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		snapshot := internal.BuildSnapshot(app.store)

		if exportOutput == "" {
			return exporter.Export(&snapshot, cmd.OutOrStdout())
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		if err := exporter.Export(&snapshot, f); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Exported to "+exportOutput))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, yaml, md)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}
