package internal

import (
	"context"
	"fmt"
	"time"
)

// PomodoroWidget runs the work/break countdown. The clock is advanced one
// second per Tick so the countdown logic stays independent of real timers;
// Run drives Tick from a ticker channel.
type PomodoroWidget struct {
	notifier Notifier

	work      time.Duration
	breakTime time.Duration

	running   bool
	working   bool
	remaining time.Duration
}

// NewPomodoroWidget creates a widget with the configured work and break
// durations, starting at a full work phase.
func NewPomodoroWidget(notifier Notifier, work, breakTime time.Duration) *PomodoroWidget {
	return &PomodoroWidget{
		notifier:  notifier,
		work:      work,
		breakTime: breakTime,
		working:   true,
		remaining: work,
	}
}

// Start begins the countdown. Starting a running timer is a no-op.
func (w *PomodoroWidget) Start() {
	w.running = true
}

// Stop pauses the countdown. Stopping a stopped timer is a no-op.
func (w *PomodoroWidget) Stop() {
	w.running = false
}

// Reset stops the timer and restores a full work phase.
func (w *PomodoroWidget) Reset() {
	w.Stop()
	w.working = true
	w.remaining = w.work
}

// Running reports whether the countdown is active.
func (w *PomodoroWidget) Running() bool {
	return w.running
}

// Tick advances the countdown by one second. When a phase completes the
// widget records a sticky notification, flips between work and break, and
// keeps running into the next phase.
func (w *PomodoroWidget) Tick() {
	if !w.running {
		return
	}

	w.remaining -= time.Second
	if w.remaining > 0 {
		return
	}

	message := "Break complete! Ready for another work session."
	if w.working {
		message = "Work session complete! Time for a break."
	}
	w.notifier.Notify(KindSuccess, "Pomodoro Complete", message, true)

	w.working = !w.working
	if w.working {
		w.remaining = w.work
	} else {
		w.remaining = w.breakTime
	}
}

// Run drives the countdown from ticks until ctx is cancelled, invoking
// render after every tick. It blocks, so callers own the goroutine.
func (w *PomodoroWidget) Run(ctx context.Context, ticks <-chan time.Time, render func(PomodoroView)) {
	w.Start()
	render(w.ViewModel())

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-ticks:
			w.Tick()
			render(w.ViewModel())
		}
	}
}

// PomodoroView is the rendered projection of the pomodoro widget.
type PomodoroView struct {
	Phase     string // "work" or "break"
	Remaining string // MM:SS
	Running   bool
}

// ViewModel projects the current countdown.
func (w *PomodoroWidget) ViewModel() PomodoroView {
	phase := "break"
	if w.working {
		phase = "work"
	}

	total := int(w.remaining / time.Second)
	if total < 0 {
		total = 0
	}

	return PomodoroView{
		Phase:     phase,
		Remaining: fmt.Sprintf("%02d:%02d", total/60, total%60),
		Running:   w.running,
	}
}
