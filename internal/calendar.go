package internal

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CalendarWidget owns the stored event list.
type CalendarWidget struct {
	store    *Store
	notifier Notifier
	now      func() time.Time

	status Status
	events []CalendarEvent
}

// NewCalendarWidget creates the widget.
func NewCalendarWidget(store *Store, notifier Notifier) *CalendarWidget {
	return &CalendarWidget{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		status:   StatusUninitialized,
	}
}

// Load reads stored events; an absent or corrupt list is empty.
func (w *CalendarWidget) Load() {
	w.status = StatusLoading
	w.events = nil
	w.store.Get(ScopeDurable, KeyCalendar, &w.events)
	w.status = StatusReady
}

// Events returns all stored events.
func (w *CalendarWidget) Events() []CalendarEvent {
	return w.events
}

// AddEvent validates and persists a new event, returning its id. Title and
// date are required; date must be YYYY-MM-DD.
func (w *CalendarWidget) AddEvent(title, date, timeOfDay, category string) (string, error) {
	ev := CalendarEvent{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(title),
		Date:     date,
		Time:     timeOfDay,
		Category: category,
	}
	if err := w.validate(ev); err != nil {
		return "", err
	}

	w.events = append(w.events, ev)
	w.persist("Event Added", `"`+ev.Title+`" has been added to your calendar.`)
	return ev.ID, nil
}

// UpdateEvent replaces the event with the given id. Unknown ids are a
// validation failure.
func (w *CalendarWidget) UpdateEvent(ev CalendarEvent) error {
	ev.Title = strings.TrimSpace(ev.Title)
	if err := w.validate(ev); err != nil {
		return err
	}

	for i := range w.events {
		if w.events[i].ID == ev.ID {
			w.events[i] = ev
			w.persist("Event Updated", `"`+ev.Title+`" has been updated.`)
			return nil
		}
	}
	return &ValidationError{Field: "id", Reason: "no such event"}
}

// DeleteEvent removes an event by id; absent ids are a no-op.
func (w *CalendarWidget) DeleteEvent(id string) {
	kept := w.events[:0]
	var removed *CalendarEvent
	for _, ev := range w.events {
		if ev.ID == id {
			e := ev
			removed = &e
			continue
		}
		kept = append(kept, ev)
	}
	if removed == nil {
		return
	}
	w.events = kept
	w.persist("Event Deleted", `"`+removed.Title+`" has been removed from your calendar.`)
}

func (w *CalendarWidget) validate(ev CalendarEvent) error {
	if ev.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if _, err := time.Parse("2006-01-02", ev.Date); err != nil {
		return &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	return nil
}

func (w *CalendarWidget) persist(title, message string) {
	if err := w.store.Set(ScopeDurable, KeyCalendar, w.events); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Calendar kept for this session only.", false)
		return
	}
	w.notifier.Notify(KindSuccess, title, message, false)
}

// EventsOn returns the events scheduled for one YYYY-MM-DD date.
func (w *CalendarWidget) EventsOn(date string) []CalendarEvent {
	var out []CalendarEvent
	for _, ev := range w.events {
		if ev.Date == date {
			out = append(out, ev)
		}
	}
	return out
}

// UpcomingEvents returns up to limit events from today onward, soonest
// first.
func (w *CalendarWidget) UpcomingEvents(limit int) []CalendarEvent {
	today := w.now().Format("2006-01-02")

	out := make([]CalendarEvent, 0, limit)
	for _, ev := range w.events {
		if ev.Date >= today {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Status returns the widget's load state.
func (w *CalendarWidget) Status() Status {
	return w.status
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Day      int // zero for leading blanks
	Date     string
	Today    bool
	HasEvent bool
}

// CalendarView is the rendered projection of the calendar widget.
type CalendarView struct {
	MonthTitle string
	DayNames   [7]string
	Grid       []CalendarDay
	Today      []CalendarEvent
}

// ViewModel projects the month containing ref (year, month) into a grid,
// Sunday first, plus today's events.
func (w *CalendarWidget) ViewModel(year int, month time.Month) CalendarView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := w.now()
	todayStr := today.Format("2006-01-02")

	view := CalendarView{
		MonthTitle: first.Format("January 2006"),
		DayNames:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Today:      w.EventsOn(todayStr),
	}

	for i := 0; i < int(first.Weekday()); i++ {
		view.Grid = append(view.Grid, CalendarDay{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format("2006-01-02")
		view.Grid = append(view.Grid, CalendarDay{
			Day:      day,
			Date:     date,
			Today:    date == todayStr,
			HasEvent: len(w.EventsOn(date)) > 0,
		})
	}

	return view
}
