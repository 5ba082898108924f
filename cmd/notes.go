package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

// notesCmd represents the notes command
var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Show your quick notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewNotesWidget(app.store, app.center)
		w.Load()
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("📝 Quick Notes"))
		if view.Empty {
			fmt.Fprintln(out, dimStyle.Render("No notes yet - deskdash notes set \"...\""))
			return nil
		}
		fmt.Fprintln(out, valueStyle.Render(view.Text))
		return nil
	},
}

// notesSetCmd represents the notes set command
var notesSetCmd = &cobra.Command{
	Use:   "set <text>",
	Short: "Replace your notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewNotesWidget(app.store, app.center)
		w.Load()
		w.Set(strings.Join(args, " "))

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Notes saved"))
		return nil
	},
}

// notesAppendCmd represents the notes append command
var notesAppendCmd = &cobra.Command{
	Use:   "append <text>",
	Short: "Append a line to your notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewNotesWidget(app.store, app.center)
		w.Load()
		w.Append(strings.Join(args, " "))

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Line appended"))
		return nil
	},
}

// notesClearCmd represents the notes clear command
var notesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete your notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewNotesWidget(app.store, app.center)
		w.Load()
		w.Set("")

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Notes cleared"))
		return nil
	},
}

// notesExportCmd represents the notes export command
var notesExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write your notes to a text file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewNotesWidget(app.store, app.center)
		w.Load()
		if err := w.Export(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Notes exported to "+args[0]))
		return nil
	},
}

// notesImportCmd represents the notes import command
var notesImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace your notes with a text file's contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewNotesWidget(app.store, app.center)
		w.Load()
		if err := w.Import(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Notes imported from "+args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesSetCmd)
	notesCmd.AddCommand(notesAppendCmd)
	notesCmd.AddCommand(notesClearCmd)
	notesCmd.AddCommand(notesExportCmd)
	notesCmd.AddCommand(notesImportCmd)
}
