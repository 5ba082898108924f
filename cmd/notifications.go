package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

// notificationsCmd represents the notifications command
var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notify", "notif"},
	Short:   "List today's notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		list := app.center.List()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("🔔 Notifications"))
		if len(list) == 0 {
			fmt.Fprintln(out, dimStyle.Render("Nothing today"))
			return nil
		}

		for _, n := range list {
			var badge string
			switch n.Kind {
			case internal.KindSuccess:
				badge = successStyle.Render("✔")
			case internal.KindError:
				badge = errorStyle.Render("✖")
			case internal.KindWarning:
				badge = warningStyle.Render("⚠")
			default:
				badge = infoStyle.Render("ℹ")
			}
			fmt.Fprintf(out, "%s %s %s\n", badge, titleStyle.Render(n.Title),
				dimStyle.Render(n.CreatedAt.Format("15:04")))
			fmt.Fprintf(out, "  %s %s\n", valueStyle.Render(n.Message), dimStyle.Render("("+n.ID+")"))
		}

		// Viewing the list counts as reading it.
		app.center.MarkAllRead()
		return nil
	},
}

// notificationsDismissCmd represents the notifications dismiss command
var notificationsDismissCmd = &cobra.Command{
	Use:   "dismiss <id>",
	Short: "Dismiss one notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		app.center.Dismiss(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Dismissed"))
		return nil
	},
}

// notificationsClearCmd represents the notifications clear command
var notificationsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		app.center.ClearAll()
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Notifications cleared"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(notificationsDismissCmd)
	notificationsCmd.AddCommand(notificationsClearCmd)
}
