package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

// filesCmd represents the files command
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List tracked files and storage usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewFilesWidget(app.store, app.center)
		w.Load()
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("📁 Files"))
		if len(view.Files) == 0 {
			fmt.Fprintln(out, dimStyle.Render("No files tracked - deskdash files add <path>"))
		}
		for _, f := range view.Files {
			fmt.Fprintf(out, "  %s %s %s\n", valueStyle.Render(f.Name),
				dimStyle.Render(internal.FormatFileSize(f.Size)),
				dimStyle.Render(f.UploadDate.Format("2006-01-02")))
		}
		fmt.Fprintf(out, "\n%s %s %s\n", titleStyle.Render("Storage:"),
			valueStyle.Render(view.Used),
			dimStyle.Render(fmt.Sprintf("(%.0f%%)", view.UsedPct)))
		return nil
	},
}

// filesAddCmd represents the files add command
var filesAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Track a file's metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewFilesWidget(app.store, app.center)
		w.Load()
		if err := w.Add(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ File added"))
		return nil
	},
}

// filesRemoveCmd represents the files remove command
var filesRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Stop tracking a file",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewFilesWidget(app.store, app.center)
		w.Load()
		w.Remove(args[0])

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ File removed"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(filesAddCmd)
	filesCmd.AddCommand(filesRemoveCmd)
}
