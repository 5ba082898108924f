package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

var progressYear int

// progressCmd represents the progress command
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your yearly anime progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		year := app.cfg.ProgressYear
		if cmd.Flags().Changed("year") {
			year = progressYear
		}

		w := internal.NewProgressWidget(app.store, app.center, year)
		w.Load()
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("📈 Progress %d", view.Year)))
		for i, month := range view.Months {
			if view.MonthlyAnime[i] == 0 {
				continue
			}
			fmt.Fprintf(out, "  %s %s anime · %s hours\n", titleStyle.Render(month),
				valueStyle.Render(fmt.Sprintf("%d", view.MonthlyAnime[i])),
				valueStyle.Render(fmt.Sprintf("%.0f", view.MonthlyHours[i])))
		}
		fmt.Fprintf(out, "\n%s %s anime · %s episodes · %s hours\n",
			titleStyle.Render("Total:"),
			valueStyle.Render(fmt.Sprintf("%d", view.TotalAnime)),
			valueStyle.Render(view.TotalEpisodes),
			valueStyle.Render(view.TotalHours))
		if view.TotalAnime == 0 {
			fmt.Fprintln(out, dimStyle.Render("No data - deskdash progress import <backup.json>"))
		}
		return nil
	},
}

// progressImportCmd represents the progress import command
var progressImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import an anime list backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewProgressWidget(app.store, app.center, app.cfg.ProgressYear)
		w.Load()
		if err := w.Import(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Backup imported"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressImportCmd)
	progressCmd.Flags().IntVar(&progressYear, "year", 0, "Year to aggregate (defaults to config)")
}
