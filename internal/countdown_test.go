package internal

import (
	"testing"
	"time"
)

func TestNextSunday23(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "midweek",
			now:  time.Date(2026, 3, 11, 10, 0, 0, 0, loc), // Wednesday
			want: time.Date(2026, 3, 15, 23, 0, 0, 0, loc),
		},
		{
			name: "sunday before air time",
			now:  time.Date(2026, 3, 15, 12, 0, 0, 0, loc),
			want: time.Date(2026, 3, 15, 23, 0, 0, 0, loc),
		},
		{
			name: "sunday at air time rolls a week",
			now:  time.Date(2026, 3, 15, 23, 0, 0, 0, loc),
			want: time.Date(2026, 3, 22, 23, 0, 0, 0, loc),
		},
		{
			name: "sunday after air time rolls a week",
			now:  time.Date(2026, 3, 15, 23, 30, 0, 0, loc),
			want: time.Date(2026, 3, 22, 23, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextSunday23(tt.now); !got.Equal(tt.want) {
				t.Errorf("nextSunday23(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestCountdownFreshStore(t *testing.T) {
	store := newTestStore(t)
	w := NewCountdownWidget(store, silentNotifier)
	w.now = func() time.Time { return time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC) }
	w.Load()

	view := w.ViewModel()
	if view.Episode != "Episode 1147" {
		t.Errorf("Episode = %q, want %q", view.Episode, "Episode 1147")
	}
	// Wednesday 10:00 to Sunday 23:00 is 4d 13h.
	if view.Remaining != "4d 13h 0m 0s" {
		t.Errorf("Remaining = %q, want %q", view.Remaining, "4d 13h 0m 0s")
	}
}

func TestCountdownAdvancesPastElapsedWeeks(t *testing.T) {
	store := newTestStore(t)

	first := NewCountdownWidget(store, silentNotifier)
	first.now = func() time.Time { return time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC) }
	first.Load()

	// Reopen two and a half weeks later: two air times have passed.
	second := NewCountdownWidget(store, silentNotifier)
	second.now = func() time.Time { return time.Date(2026, 3, 29, 12, 0, 0, 0, time.UTC) }
	second.Load()

	view := second.ViewModel()
	if view.Episode != "Episode 1149" {
		t.Errorf("Episode = %q, want %q after two elapsed air times", view.Episode, "Episode 1149")
	}

	// The advanced number is durable.
	var saved int
	if !store.Get(ScopeDurable, KeyEpisodeNum, &saved) || saved != 1149 {
		t.Errorf("stored episode = %d, want 1149", saved)
	}
}

func TestCountdownLoadIsIdempotentWithinWeek(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

	w := NewCountdownWidget(store, silentNotifier)
	w.now = func() time.Time { return now }
	w.Load()
	w.Load()

	if got := w.ViewModel().Episode; got != "Episode 1147" {
		t.Errorf("Episode = %q, want unchanged %q", got, "Episode 1147")
	}
}

func TestCountdownViewAtAirTime(t *testing.T) {
	store := newTestStore(t)
	w := NewCountdownWidget(store, silentNotifier)
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }
	w.Load()

	view := w.ViewModel()
	if view.AirsAt != "Sun Mar 15 23:00" {
		t.Errorf("AirsAt = %q, want %q", view.AirsAt, "Sun Mar 15 23:00")
	}
}
