package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ProgressWidget summarizes an imported anime-list backup into monthly
// completed counts and hours watched for one year.
type ProgressWidget struct {
	store    *Store
	notifier Notifier

	year    int
	status  Status
	entries []AnimeEntry
}

// NewProgressWidget creates a widget summarizing the given year.
func NewProgressWidget(store *Store, notifier Notifier, year int) *ProgressWidget {
	return &ProgressWidget{
		store:    store,
		notifier: notifier,
		year:     year,
		status:   StatusUninitialized,
	}
}

// Load reads the stored backup; absent data is an empty list.
func (w *ProgressWidget) Load() {
	w.status = StatusLoading
	w.entries = nil
	w.store.Get(ScopeDurable, KeyAnimeBackup, &w.entries)
	w.status = StatusReady
}

// Import reads a JSON backup file and replaces the stored list. Invalid
// JSON is rejected without touching stored data.
func (w *ProgressWidget) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ValidationError{Field: "file", Reason: "cannot read " + path}
	}

	var entries []AnimeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return &ValidationError{Field: "file", Reason: "not a valid anime data backup"}
	}

	w.entries = entries
	if err := w.store.Set(ScopeDurable, KeyAnimeBackup, entries); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Backup kept for this session only.", false)
		return nil
	}

	w.notifier.Notify(KindSuccess, "Backup Imported",
		fmt.Sprintf("Imported %d entries.", len(entries)), false)
	return nil
}

// Status returns the widget's load state.
func (w *ProgressWidget) Status() Status {
	return w.status
}

// ProgressView is the rendered projection of the progress widget.
type ProgressView struct {
	Year          int
	Months        [12]string
	MonthlyAnime  [12]int
	MonthlyHours  [12]float64
	TotalAnime    int
	TotalEpisodes string // compact, e.g. "1.2k"
	TotalHours    string
}

// ViewModel aggregates the backup for the target year. Entries without a
// finish date, with an unparseable date, or outside the year are skipped.
func (w *ProgressWidget) ViewModel() ProgressView {
	view := ProgressView{
		Year: w.year,
		Months: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
	}

	totalEpisodes := 0
	totalMinutes := 0

	for _, e := range w.entries {
		if e.FinishDate == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", e.FinishDate)
		if err != nil || t.Year() != w.year {
			continue
		}

		month := int(t.Month()) - 1
		minutes := e.Episodes * e.Duration

		view.MonthlyAnime[month]++
		view.MonthlyHours[month] += float64(minutes) / 60
		view.TotalAnime++
		totalEpisodes += e.Episodes
		totalMinutes += minutes
	}

	view.TotalEpisodes = formatK(totalEpisodes)
	view.TotalHours = formatK(totalMinutes / 60)
	return view
}

// formatK renders 1234 as "1.2k" and leaves values under a thousand alone.
func formatK(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%.1f", float64(n)/1000)
	if s[len(s)-2:] == ".0" {
		s = s[:len(s)-2]
	}
	return s + "k"
}
