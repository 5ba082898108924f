package internal

import (
	"math/rand"
)

// sampleAnalytics is the series a fresh dashboard starts with.
func sampleAnalytics() AnalyticsData {
	return AnalyticsData{
		Anime:    [7]int{3, 5, 2, 4, 6, 3, 4},
		Manga:    [7]int{2, 3, 1, 2, 4, 2, 3},
		Projects: [7]int{1, 2, 1, 3, 2, 1, 2},
	}
}

// AnalyticsWidget owns the weekly activity series.
type AnalyticsWidget struct {
	store    *Store
	notifier Notifier

	status Status
	data   AnalyticsData
}

// NewAnalyticsWidget creates the widget.
func NewAnalyticsWidget(store *Store, notifier Notifier) *AnalyticsWidget {
	return &AnalyticsWidget{store: store, notifier: notifier, status: StatusUninitialized}
}

// Load reads the stored series. A fresh store is seeded with the sample
// series so the chart never renders blank.
func (w *AnalyticsWidget) Load() {
	w.status = StatusLoading

	if !w.store.Get(ScopeDurable, KeyAnalytics, &w.data) {
		w.data = sampleAnalytics()
		if err := w.store.Set(ScopeDurable, KeyAnalytics, w.data); err != nil {
			w.notifier.Notify(KindError, "Storage Full", "Sample data kept for this session only.", false)
		}
	}

	w.status = StatusReady
}

// SetSeries replaces one category's week. Values must be non-negative and
// exactly seven long.
func (w *AnalyticsWidget) SetSeries(category string, values []int) error {
	if len(values) != 7 {
		return &ValidationError{Field: "values", Reason: "expected 7 values, one per weekday"}
	}
	var week [7]int
	for i, v := range values {
		if v < 0 {
			return &ValidationError{Field: "values", Reason: "counts must not be negative"}
		}
		week[i] = v
	}

	switch category {
	case "anime":
		w.data.Anime = week
	case "manga":
		w.data.Manga = week
	case "projects":
		w.data.Projects = week
	default:
		return &ValidationError{Field: "category", Reason: "unknown category " + category}
	}

	if err := w.store.Set(ScopeDurable, KeyAnalytics, w.data); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Series kept for this session only.", false)
		return nil
	}

	w.notifier.Notify(KindSuccess, "Data Updated", "Updated "+category+" series.", false)
	return nil
}

// Randomize regenerates sample data points, matching the original
// dashboard's demo button.
func (w *AnalyticsWidget) Randomize() {
	for i := range w.data.Anime {
		w.data.Anime[i] = rand.Intn(7) + 1
	}
	for i := range w.data.Manga {
		w.data.Manga[i] = rand.Intn(5) + 1
	}

	if err := w.store.Set(ScopeDurable, KeyAnalytics, w.data); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Series kept for this session only.", false)
		return
	}
	w.notifier.Notify(KindSuccess, "Data Updated", "Added new sample data to analytics.", false)
}

// Status returns the widget's load state.
func (w *AnalyticsWidget) Status() Status {
	return w.status
}

// AnalyticsView is the rendered projection of the analytics widget.
type AnalyticsView struct {
	Days       [7]string
	Anime      [7]int
	Manga      [7]int
	Projects   [7]int
	AnimeTotal int
	MangaTotal int
}

// ViewModel projects the current series with per-category totals.
func (w *AnalyticsWidget) ViewModel() AnalyticsView {
	v := AnalyticsView{
		Days:     [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Anime:    w.data.Anime,
		Manga:    w.data.Manga,
		Projects: w.data.Projects,
	}
	for i := 0; i < 7; i++ {
		v.AnimeTotal += w.data.Anime[i]
		v.MangaTotal += w.data.Manga[i]
	}
	return v
}
