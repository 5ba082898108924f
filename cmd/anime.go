package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

// animeCmd represents the anime command
var animeCmd = &cobra.Command{
	Use:   "anime",
	Short: "Show trending, upcoming, and releasing anime",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := newAnimeWidget(app)
		w.Load(cmd.Context(), forceRefresh)
		view := w.ViewModel()

		printFeed(cmd, "🔥 Trending", view.Trending)
		printFeed(cmd, "🗓  Upcoming", view.Upcoming)
		printFeed(cmd, "📺 Releasing", view.Releasing)
		if view.Degraded {
			fmt.Fprintln(cmd.OutOrStdout(), warningStyle.Render("⚠️  Some feeds unreachable"))
		}
		return nil
	},
}

func printFeed(cmd *cobra.Command, title string, items []internal.MediaItem) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(title))
	if len(items) == 0 {
		fmt.Fprintln(out, dimStyle.Render("  nothing here"))
		return
	}
	for i, item := range items {
		line := fmt.Sprintf("%2d. %s", i+1, valueStyle.Render(item.Title))
		if item.Score > 0 {
			line += " " + dimStyle.Render(fmt.Sprintf("(%d%%)", item.Score))
		}
		if item.Season != "" {
			line += " " + dimStyle.Render(fmt.Sprintf("%s %d", item.Season, item.SeasonYear))
		}
		fmt.Fprintln(out, line)
	}
}

// animeFeedCmd builds one single-feed subcommand.
func animeFeedCmd(use, title string, pick func(internal.AnimeView) []internal.MediaItem) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Show only the " + use + " feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			w := newAnimeWidget(app)
			w.Load(cmd.Context(), forceRefresh)
			printFeed(cmd, title, pick(w.ViewModel()))
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(animeCmd)
	animeCmd.Flags().BoolVar(&forceRefresh, "refresh", false, "Bypass cached data and refetch")
	animeCmd.AddCommand(animeFeedCmd("trending", "🔥 Trending", func(v internal.AnimeView) []internal.MediaItem { return v.Trending }))
	animeCmd.AddCommand(animeFeedCmd("upcoming", "🗓  Upcoming", func(v internal.AnimeView) []internal.MediaItem { return v.Upcoming }))
	animeCmd.AddCommand(animeFeedCmd("releasing", "📺 Releasing", func(v internal.AnimeView) []internal.MediaItem { return v.Releasing }))
}
