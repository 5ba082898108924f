package internal

import (
	"errors"
	"testing"
	"time"
)

func TestProfileLoadDefaultsToGuest(t *testing.T) {
	w := NewProfileWidget(newTestStore(t), silentNotifier)

	if got := w.Status(); got != StatusUninitialized {
		t.Errorf("Status() before Load = %v, want %v", got, StatusUninitialized)
	}

	w.Load()

	if got := w.Status(); got != StatusReady {
		t.Errorf("Status() after Load = %v, want %v", got, StatusReady)
	}

	view := w.ViewModel()
	if view.Name != "Guest" {
		t.Errorf("Name = %q, want %q", view.Name, "Guest")
	}
	if view.Initial != "G" {
		t.Errorf("Initial = %q, want %q", view.Initial, "G")
	}
	if view.Streak != 1 {
		t.Errorf("first-visit Streak = %d, want 1", view.Streak)
	}
	if view.StreakLabel != "day" {
		t.Errorf("StreakLabel = %q, want %q", view.StreakLabel, "day")
	}
}

func TestStreakRules(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		lastVisit  string
		streak     int
		today      time.Time
		wantStreak int
	}{
		{
			name:       "first ever visit",
			today:      day(14),
			wantStreak: 1,
		},
		{
			name:       "same day revisits do not change the streak",
			lastVisit:  "2026-03-14",
			streak:     5,
			today:      day(14),
			wantStreak: 5,
		},
		{
			name:       "consecutive day increments",
			lastVisit:  "2026-03-13",
			streak:     5,
			today:      day(14),
			wantStreak: 6,
		},
		{
			name:       "gap resets to one",
			lastVisit:  "2026-03-10",
			streak:     5,
			today:      day(14),
			wantStreak: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if tt.lastVisit != "" {
				if err := store.Set(ScopeDurable, KeyLastVisit, tt.lastVisit); err != nil {
					t.Fatalf("Set() error = %v", err)
				}
				if err := store.Set(ScopeDurable, KeyUserStreak, tt.streak); err != nil {
					t.Fatalf("Set() error = %v", err)
				}
			}

			w := NewProfileWidget(store, silentNotifier)
			w.now = func() time.Time { return tt.today }
			w.Load()

			if got := w.ViewModel().Streak; got != tt.wantStreak {
				t.Errorf("Streak = %d, want %d", got, tt.wantStreak)
			}

			// A second Load on the same day must be a no-op.
			w.Load()
			if got := w.ViewModel().Streak; got != tt.wantStreak {
				t.Errorf("Streak after reload = %d, want %d", got, tt.wantStreak)
			}
		})
	}
}

func TestStreakPersistsAcrossWidgets(t *testing.T) {
	store := newTestStore(t)

	first := NewProfileWidget(store, silentNotifier)
	first.now = func() time.Time { return time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC) }
	first.Load()

	second := NewProfileWidget(store, silentNotifier)
	second.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	second.Load()

	if got := second.ViewModel().Streak; got != 2 {
		t.Errorf("Streak on day two = %d, want 2", got)
	}
}

func TestSetProfile(t *testing.T) {
	store := newTestStore(t)
	w := NewProfileWidget(store, silentNotifier)
	w.Load()

	if err := w.SetProfile("Yaman", "https://example.com/a.png"); err != nil {
		t.Fatalf("SetProfile() error = %v", err)
	}

	var saved Profile
	if !store.Get(ScopeDurable, KeyUserProfile, &saved) {
		t.Fatal("profile not persisted")
	}
	if saved.Name != "Yaman" || saved.AvatarURL != "https://example.com/a.png" {
		t.Errorf("saved profile = %+v", saved)
	}

	view := w.ViewModel()
	if view.Name != "Yaman" || view.Initial != "Y" {
		t.Errorf("view = %+v, want Yaman / Y", view)
	}
}

func TestSetProfileRejectsEmptyName(t *testing.T) {
	store := newTestStore(t)
	w := NewProfileWidget(store, silentNotifier)
	w.Load()

	tests := []string{"", "   ", "\t"}
	for _, name := range tests {
		err := w.SetProfile(name, "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("SetProfile(%q) error = %v, want *ValidationError", name, err)
		}
	}

	// Stored state must be untouched by rejected writes.
	var saved Profile
	if store.Get(ScopeDurable, KeyUserProfile, &saved) {
		t.Error("rejected SetProfile still persisted a profile")
	}
}

func TestTimeGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{hour: 0, want: "Good morning"},
		{hour: 11, want: "Good morning"},
		{hour: 12, want: "Good afternoon"},
		{hour: 17, want: "Good afternoon"},
		{hour: 18, want: "Good evening"},
		{hour: 23, want: "Good evening"},
	}

	for _, tt := range tests {
		if got := timeGreeting(tt.hour); got != tt.want {
			t.Errorf("timeGreeting(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
