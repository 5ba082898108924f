package export

import (
	"fmt"
	"io"

	"github.com/yamanjr10/deskdash/internal"
)

// MarkdownExporter exports snapshots in Markdown format
type MarkdownExporter struct{}

// Export exports a snapshot to Markdown format
func (e *MarkdownExporter) Export(snapshot *internal.Snapshot, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Dashboard Snapshot\n\n")
	_, _ = fmt.Fprintf(w, "**Exported:** %s\n\n", snapshot.ExportedAt.Format("2006-01-02 15:04:05"))

	name := snapshot.Profile.Name
	if name == "" {
		name = "Guest"
	}
	_, _ = fmt.Fprintf(w, "**Profile:** %s  \n", name)
	_, _ = fmt.Fprintf(w, "**Streak:** %d days  \n", snapshot.Streak)
	if snapshot.Theme != "" {
		_, _ = fmt.Fprintf(w, "**Theme:** %s  \n", snapshot.Theme)
	}
	if snapshot.Location != "" {
		_, _ = fmt.Fprintf(w, "**Weather location:** %s  \n", snapshot.Location)
	}
	_, _ = fmt.Fprintf(w, "\n")

	if len(snapshot.Events) > 0 {
		_, _ = fmt.Fprintf(w, "## Events\n\n")
		for _, ev := range snapshot.Events {
			line := fmt.Sprintf("- %s — %s", ev.Date, ev.Title)
			if ev.Time != "" {
				line = fmt.Sprintf("- %s %s — %s", ev.Date, ev.Time, ev.Title)
			}
			if ev.Category != "" {
				line += fmt.Sprintf(" (%s)", ev.Category)
			}
			_, _ = fmt.Fprintf(w, "%s\n", line)
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	if len(snapshot.Bookmarks) > 0 {
		_, _ = fmt.Fprintf(w, "## Bookmarked Quotes\n\n")
		for _, q := range snapshot.Bookmarks {
			_, _ = fmt.Fprintf(w, "> %s\n>\n> — %s\n\n", q.Text, q.Author)
		}
	}

	if snapshot.Notes != "" {
		_, _ = fmt.Fprintf(w, "## Notes\n\n%s\n\n", snapshot.Notes)
	}

	if len(snapshot.Files) > 0 {
		_, _ = fmt.Fprintf(w, "## Files\n\n")
		for _, f := range snapshot.Files {
			_, _ = fmt.Fprintf(w, "- %s (%s)\n", f.Name, internal.FormatFileSize(f.Size))
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
