package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the dashboard theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewThemeWidget(app.store, app.center)
		w.Load()
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("🎨 Theme"))
		fmt.Fprintf(out, "%s %s %s\n", titleStyle.Render("Theme:"), valueStyle.Render(view.Theme),
			dimStyle.Render("(available: "+strings.Join(internal.Themes, ", ")+")"))
		fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Wallpaper:"), valueStyle.Render(view.WallpaperName))
		return nil
	},
}

// themeSetCmd represents the theme set command
var themeSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Switch to a named theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewThemeWidget(app.store, app.center)
		w.Load()
		if err := w.SetTheme(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Theme set to "+args[0]))
		return nil
	},
}

// wallpaperCmd represents the theme wallpaper command
var wallpaperCmd = &cobra.Command{
	Use:   "wallpaper",
	Short: "Cycle to the next wallpaper",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewThemeWidget(app.store, app.center)
		w.Load()
		if err := w.NextWallpaper(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(),
			successStyle.Render("✅ Wallpaper: "+w.ViewModel().WallpaperName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(wallpaperCmd)
}
