package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

var (
	profileName   string
	profileAvatar string
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile and visit streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewProfileWidget(app.store, app.center)
		w.Load()
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("👤 Profile"))
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Name:"), valueStyle.Render(view.Name))
		if view.Avatar != "" {
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Avatar:"), dimStyle.Render(view.Avatar))
		}
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Streak:"),
			valueStyle.Render(fmt.Sprintf("%d %s", view.Streak, view.StreakLabel)))
		return nil
	},
}

// profileSetCmd represents the profile set command
var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update your name and avatar",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewProfileWidget(app.store, app.center)
		w.Load()
		if err := w.SetProfile(profileName, profileAvatar); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Profile updated"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().StringVar(&profileAvatar, "avatar", "", "Avatar image URL")
	_ = profileSetCmd.MarkFlagRequired("name")
}
