package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// socialCmd represents the social command
var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Show your channel and code-hosting stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := newSocialWidget(app)
		w.Load(cmd.Context(), forceRefresh)
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("🌐 Social"))
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Channel:"), valueStyle.Render(view.ChannelTitle))
		fmt.Fprintf(out, "  %s subscribers · %s views · %s videos\n",
			valueStyle.Render(view.Subscribers), valueStyle.Render(view.Views), valueStyle.Render(view.Videos))
		fmt.Fprintf(out, "%s %s repos · %s followers · %s stars\n",
			titleStyle.Render("GitHub:"),
			valueStyle.Render(strconv.Itoa(view.Repos)),
			valueStyle.Render(strconv.Itoa(view.Followers)),
			valueStyle.Render(strconv.Itoa(view.Stars)))
		if view.Degraded {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Some providers unreachable, showing fallback data"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(socialCmd)
	socialCmd.Flags().BoolVar(&forceRefresh, "refresh", false, "Bypass cached data and refetch")
}
