package internal

import "time"

// Snapshot is a portable copy of the dashboard's durable state, the unit
// the export command works on.
type Snapshot struct {
	ExportedAt time.Time       `json:"exportedAt" yaml:"exported_at"`
	Profile    Profile         `json:"profile" yaml:"profile"`
	Streak     int             `json:"streak" yaml:"streak"`
	Theme      string          `json:"theme" yaml:"theme"`
	Wallpaper  int             `json:"wallpaper" yaml:"wallpaper"`
	Location   string          `json:"weatherLocation,omitempty" yaml:"weather_location,omitempty"`
	Events     []CalendarEvent `json:"calendarEvents,omitempty" yaml:"calendar_events,omitempty"`
	Notes      string          `json:"quickNotes,omitempty" yaml:"quick_notes,omitempty"`
	Bookmarks  []Quote         `json:"bookmarkedQuotes,omitempty" yaml:"bookmarked_quotes,omitempty"`
	Analytics  AnalyticsData   `json:"analyticsData" yaml:"analytics_data"`
	Files      []FileMeta      `json:"uploadedFiles,omitempty" yaml:"uploaded_files,omitempty"`
	Music      string          `json:"musicSource,omitempty" yaml:"music_source,omitempty"`
}

// BuildSnapshot reads every exportable key from the store. Absent keys
// leave their zero values; a snapshot of a fresh store is valid.
func BuildSnapshot(store *Store) Snapshot {
	s := Snapshot{ExportedAt: time.Now()}

	store.Get(ScopeDurable, KeyUserProfile, &s.Profile)
	store.Get(ScopeDurable, KeyUserStreak, &s.Streak)
	store.Get(ScopeDurable, KeyTheme, &s.Theme)
	store.Get(ScopeDurable, KeyWallpaper, &s.Wallpaper)
	store.Get(ScopeDurable, KeyWeatherPlace, &s.Location)
	store.Get(ScopeDurable, KeyCalendar, &s.Events)
	store.Get(ScopeDurable, KeyQuickNotes, &s.Notes)
	store.Get(ScopeDurable, KeyBookmarks, &s.Bookmarks)
	store.Get(ScopeDurable, KeyAnalytics, &s.Analytics)
	store.Get(ScopeDurable, KeyUploadedFiles, &s.Files)
	store.Get(ScopeDurable, KeyMusicSource, &s.Music)

	return s
}
