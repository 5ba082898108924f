package internal

import "time"

// ClockWidget renders the current time and date. No persistence.
type ClockWidget struct {
	now func() time.Time
}

// NewClockWidget creates the widget.
func NewClockWidget() *ClockWidget {
	return &ClockWidget{now: time.Now}
}

// ClockView is the rendered projection of the clock widget.
type ClockView struct {
	Time string // "3:04:05 PM"
	Date string // "Wednesday, Oct 23, 2025"
}

// ViewModel projects the current instant.
func (w *ClockWidget) ViewModel() ClockView {
	now := w.now()
	return ClockView{
		Time: now.Format("3:04:05 PM"),
		Date: now.Format("Monday, Jan 2, 2006"),
	}
}
