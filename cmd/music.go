package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

// musicCmd represents the music command
var musicCmd = &cobra.Command{
	Use:   "music",
	Short: "Show the music player",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewMusicWidget(app.store, app.center)
		w.Load()
		printMusic(cmd, w)
		return nil
	},
}

// musicSourceCmd represents the music source command
var musicSourceCmd = &cobra.Command{
	Use:   "source <name>",
	Short: "Switch the playback source",
	Long: "Switch the playback source. Available: " +
		strings.Join(internal.MusicSources, ", "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewMusicWidget(app.store, app.center)
		w.Load()
		if err := w.SetSource(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Source set to "+args[0]))
		return nil
	},
}

// musicPlayCmd represents the music play command
var musicPlayCmd = &cobra.Command{
	Use:     "play",
	Aliases: []string{"toggle"},
	Short:   "Toggle play/pause",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewMusicWidget(app.store, app.center)
		w.Load()
		w.TogglePlay()
		printMusic(cmd, w)
		return nil
	},
}

// musicNextCmd represents the music next command
var musicNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to the next track",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewMusicWidget(app.store, app.center)
		w.Load()
		w.NextTrack()
		printMusic(cmd, w)
		return nil
	},
}

// musicPrevCmd represents the music prev command
var musicPrevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Go back to the previous track",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewMusicWidget(app.store, app.center)
		w.Load()
		w.PreviousTrack()
		printMusic(cmd, w)
		return nil
	},
}

func printMusic(cmd *cobra.Command, w *internal.MusicWidget) {
	view := w.ViewModel()
	out := cmd.OutOrStdout()

	state := "⏸"
	if view.Playing {
		state = "▶"
	}
	fmt.Fprintln(out, headerStyle.Render("🎵 Music"))
	fmt.Fprintf(out, "%s %s %s\n", valueStyle.Render(state),
		titleStyle.Render(view.Title), dimStyle.Render(view.Artist))
	fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Source:"), valueStyle.Render(view.Source))
}

func init() {
	rootCmd.AddCommand(musicCmd)
	musicCmd.AddCommand(musicSourceCmd)
	musicCmd.AddCommand(musicPlayCmd)
	musicCmd.AddCommand(musicNextCmd)
	musicCmd.AddCommand(musicPrevCmd)
}
