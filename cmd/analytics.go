package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

// analyticsCmd represents the analytics command
var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show your weekly activity chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewAnalyticsWidget(app.store, app.center)
		w.Load()
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("📊 Weekly Activity"))
		fmt.Fprintf(out, "%-10s", "")
		for _, d := range view.Days {
			fmt.Fprintf(out, "%5s", dimStyle.Render(d))
		}
		fmt.Fprintln(out)
		printSeries(cmd, "Anime", view.Anime)
		printSeries(cmd, "Manga", view.Manga)
		printSeries(cmd, "Projects", view.Projects)
		fmt.Fprintf(out, "\n%s %s anime · %s manga episodes this week\n",
			titleStyle.Render("Totals:"),
			valueStyle.Render(strconv.Itoa(view.AnimeTotal)),
			valueStyle.Render(strconv.Itoa(view.MangaTotal)))
		return nil
	},
}

func printSeries(cmd *cobra.Command, label string, values [7]int) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s", titleStyle.Render(label))
	for _, v := range values {
		fmt.Fprintf(out, "%5s", valueStyle.Render(strconv.Itoa(v)))
	}
	fmt.Fprintln(out)
}

// analyticsSetCmd represents the analytics set command
var analyticsSetCmd = &cobra.Command{
	Use:   "set <category> <mon,tue,...,sun>",
	Short: "Replace one category's weekly counts",
	Long: `Replace the seven Monday-first daily counts for a category.

Categories: anime, manga, projects

Example:
  deskdash analytics set anime 3,5,2,4,6,3,4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		parts := strings.Split(args[1], ",")
		values := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", p, err)
			}
			values = append(values, n)
		}

		w := internal.NewAnalyticsWidget(app.store, app.center)
		w.Load()
		if err := w.SetSeries(args[0], values); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Updated "+args[0]+" counts"))
		return nil
	},
}

// analyticsRandomizeCmd represents the analytics randomize command
var analyticsRandomizeCmd = &cobra.Command{
	Use:     "randomize",
	Aliases: []string{"sample"},
	Short:   "Reroll the chart with random sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewAnalyticsWidget(app.store, app.center)
		w.Load()
		w.Randomize()

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Chart randomized"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
	analyticsCmd.AddCommand(analyticsSetCmd)
	analyticsCmd.AddCommand(analyticsRandomizeCmd)
}
