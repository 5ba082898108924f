package internal

import (
	"strings"
	"time"
	"unicode"
)

// ProfileWidget owns the user's identity state and the daily visit streak.
type ProfileWidget struct {
	store    *Store
	notifier Notifier
	now      func() time.Time

	status  Status
	profile Profile
	streak  int
}

// NewProfileWidget creates the widget. Nothing is read until Load.
func NewProfileWidget(store *Store, notifier Notifier) *ProfileWidget {
	return &ProfileWidget{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		status:   StatusUninitialized,
	}
}

// Load reads the stored profile, falling back to the Guest default, and
// advances the visit streak for today.
func (w *ProfileWidget) Load() {
	w.status = StatusLoading

	w.profile = Profile{Name: "Guest"}
	w.store.Get(ScopeDurable, KeyUserProfile, &w.profile)

	w.streak = w.updateStreak()
	w.status = StatusReady
}

// updateStreak applies the visit rules: first-ever visit starts at 1, a
// visit on the immediately following day increments, anything later resets
// to 1. Repeat visits on the same day change nothing.
func (w *ProfileWidget) updateStreak() int {
	today := w.now().Format("2006-01-02")
	yesterday := w.now().AddDate(0, 0, -1).Format("2006-01-02")

	var lastVisit string
	w.store.Get(ScopeDurable, KeyLastVisit, &lastVisit)

	var streak int
	w.store.Get(ScopeDurable, KeyUserStreak, &streak)

	if lastVisit == today {
		if streak == 0 {
			streak = 1
		}
		return streak
	}

	if lastVisit == yesterday {
		streak++
	} else {
		streak = 1
	}

	if err := w.store.Set(ScopeDurable, KeyUserStreak, streak); err != nil {
		w.notifier.Notify(KindError, "Storage Full", err.Error(), false)
	}
	if err := w.store.Set(ScopeDurable, KeyLastVisit, today); err != nil {
		w.notifier.Notify(KindError, "Storage Full", err.Error(), false)
	}

	return streak
}

// SetProfile validates and persists a new name and avatar. An empty name is
// rejected without touching stored state.
func (w *ProfileWidget) SetProfile(name, avatarURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	w.profile = Profile{Name: name, AvatarURL: avatarURL}
	if err := w.store.Set(ScopeDurable, KeyUserProfile, w.profile); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Profile kept for this session only.", false)
		return nil
	}

	w.notifier.Notify(KindSuccess, "Profile Updated",
		"Profile saved for "+name+".", false)
	return nil
}

// Status returns the widget's load state.
func (w *ProfileWidget) Status() Status {
	return w.status
}

// ProfileView is the rendered projection of the profile widget.
type ProfileView struct {
	Greeting    string
	Name        string
	Initial     string
	Avatar      string
	Streak      int
	StreakLabel string
}

// ViewModel projects current state. It is a pure function of the widget's
// fields plus the clock; calling it twice without a state change yields the
// same view.
func (w *ProfileWidget) ViewModel() ProfileView {
	name := w.profile.Name
	if name == "" {
		name = "Guest"
	}

	initial := ""
	for _, r := range name {
		initial = string(unicode.ToUpper(r))
		break
	}

	label := "days"
	if w.streak == 1 {
		label = "day"
	}

	return ProfileView{
		Greeting:    timeGreeting(w.now().Hour()) + ", " + name + "!",
		Name:        name,
		Initial:     initial,
		Avatar:      w.profile.AvatarURL,
		Streak:      w.streak,
		StreakLabel: label,
	}
}

func timeGreeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
