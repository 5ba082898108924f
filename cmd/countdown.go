package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

// countdownCmd represents the countdown command
var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Show the One Piece episode countdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewCountdownWidget(app.store, app.center)
		w.Load()
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("🏴‍☠️ One Piece"))
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Next:"), valueStyle.Render(view.Episode))
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Airs in:"), valueStyle.Render(view.Remaining))
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Airs at:"), dimStyle.Render(view.AirsAt))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countdownCmd)
}
