package internal

import (
	"fmt"
	"time"
)

// defaultEpisode is where the countdown starts on a fresh store.
const defaultEpisode = 1147

// keyNextAir remembers the air time the current episode counts down to.
const keyNextAir = "onePieceNextAir"

// CountdownWidget counts down to the next weekly episode, Sunday 23:00
// local time, and advances the episode number once an air time has passed.
type CountdownWidget struct {
	store    *Store
	notifier Notifier
	now      func() time.Time

	status  Status
	episode int
	nextAir time.Time
}

// NewCountdownWidget creates the widget.
func NewCountdownWidget(store *Store, notifier Notifier) *CountdownWidget {
	return &CountdownWidget{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		status:   StatusUninitialized,
	}
}

// nextSunday23 returns the next Sunday 23:00 strictly after t.
func nextSunday23(t time.Time) time.Time {
	days := (7 - int(t.Weekday())) % 7
	next := time.Date(t.Year(), t.Month(), t.Day(), 23, 0, 0, 0, t.Location()).
		AddDate(0, 0, days)
	if !next.After(t) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}

// Load reads the stored episode and air time, advancing past any air times
// that elapsed while the dashboard wasn't running.
func (w *CountdownWidget) Load() {
	w.status = StatusLoading

	w.episode = defaultEpisode
	w.store.Get(ScopeDurable, KeyEpisodeNum, &w.episode)

	var airISO string
	if w.store.Get(ScopeDurable, keyNextAir, &airISO) {
		if t, err := time.Parse(time.RFC3339, airISO); err == nil {
			w.nextAir = t
		}
	}
	if w.nextAir.IsZero() {
		w.nextAir = nextSunday23(w.now())
	}

	advanced := false
	for !w.nextAir.After(w.now()) {
		w.episode++
		w.nextAir = w.nextAir.AddDate(0, 0, 7)
		advanced = true
	}

	if advanced {
		if err := w.store.Set(ScopeDurable, KeyEpisodeNum, w.episode); err != nil {
			w.notifier.Notify(KindError, "Storage Full", "Episode number kept for this session only.", false)
		}
	}
	w.persistNextAir()

	w.status = StatusReady
}

func (w *CountdownWidget) persistNextAir() {
	if err := w.store.Set(ScopeDurable, keyNextAir, w.nextAir.Format(time.RFC3339)); err != nil {
		Log.Warn().Err(err).Msg("countdown air time not persisted")
	}
}

// Status returns the widget's load state.
func (w *CountdownWidget) Status() Status {
	return w.status
}

// CountdownView is the rendered projection of the countdown widget.
type CountdownView struct {
	Episode   string
	Remaining string // "2d 4h 31m 12s"
	AirsAt    string
}

// ViewModel projects the countdown to the next episode.
func (w *CountdownWidget) ViewModel() CountdownView {
	diff := w.nextAir.Sub(w.now())
	if diff < 0 {
		diff = 0
	}

	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60
	seconds := int(diff.Seconds()) % 60

	return CountdownView{
		Episode:   fmt.Sprintf("Episode %d", w.episode),
		Remaining: fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds),
		AirsAt:    w.nextAir.Format("Mon Jan 2 15:04"),
	}
}
