package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// weatherCmd represents the weather command
var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show current conditions for your location",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := newWeatherWidget(app)
		w.Load(cmd.Context(), forceRefresh)
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("🌤  Weather"))
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Location:"), valueStyle.Render(view.Location))
		fmt.Fprintf(out, "%s %s %s\n", titleStyle.Render("Now:"),
			valueStyle.Render(view.Temp), dimStyle.Render(view.Description))
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Range:"), valueStyle.Render(view.Forecast))
		if view.Degraded {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Provider unreachable, showing fallback data"))
		}
		return nil
	},
}

// weatherSetCmd represents the weather set command
var weatherSetCmd = &cobra.Command{
	Use:     "set <city>",
	Aliases: []string{"set-location"},
	Short:   "Save your weather location",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		city := strings.Join(args, " ")
		w := newWeatherWidget(app)
		if err := w.SetLocation(city); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Weather location set to "+city))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weatherCmd)
	weatherCmd.AddCommand(weatherSetCmd)
	weatherCmd.Flags().BoolVar(&forceRefresh, "refresh", false, "Bypass cached data and refetch")
}
