package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yamanjr10/deskdash/internal"
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Show a fresh quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := newQuoteWidget(app)
		w.Load(cmd.Context())
		view := w.ViewModel()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("💬 Quote"))
		fmt.Fprintf(out, "%s\n%s\n", valueStyle.Render("“"+view.Text+"”"), dimStyle.Render(view.Author))
		if view.Degraded {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Offline, showing a built-in quote"))
		}
		return nil
	},
}

// quoteBookmarkCmd represents the quote bookmark command
var quoteBookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Bookmark a fresh quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := newQuoteWidget(app)
		w.Load(cmd.Context())
		w.Bookmark()
		q := w.Current()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, successStyle.Render("✅ Bookmarked"))
		fmt.Fprintf(out, "%s %s\n", valueStyle.Render(q.Text), dimStyle.Render("- "+q.Author))
		return nil
	},
}

// quoteBookmarksCmd represents the quote bookmarks command
var quoteBookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		w := internal.NewQuoteWidget(app.store, app.center, nil)
		bookmarks := w.Bookmarks()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("🔖 Bookmarked Quotes"))
		if len(bookmarks) == 0 {
			fmt.Fprintln(out, dimStyle.Render("No bookmarks yet"))
			return nil
		}
		for i, q := range bookmarks {
			fmt.Fprintf(out, "%s %s %s\n", titleStyle.Render(fmt.Sprintf("%d.", i+1)),
				valueStyle.Render(q.Text), dimStyle.Render("- "+q.Author))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
	quoteCmd.AddCommand(quoteBookmarkCmd)
	quoteCmd.AddCommand(quoteBookmarksCmd)
}
