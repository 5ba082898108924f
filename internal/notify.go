package internal

import (
	"time"

	"github.com/google/uuid"
)

// maxNotifications bounds the session log; the oldest entries are evicted
// first once the bound is hit.
const maxNotifications = 50

// AutoDismissAfter is how long a non-sticky notification stays on screen.
const AutoDismissAfter = 5 * time.Second

// Notifier is the outcome-reporting surface handed to widgets. Notify
// returns the id of the recorded notification.
type Notifier interface {
	Notify(kind NotificationKind, title, message string, sticky bool) string
}

// NotificationCenter keeps the capped, session-scoped notification log.
// The zero-value pointer is usable as a silent Notifier, which keeps
// widget constructors nil-safe in tests.
type NotificationCenter struct {
	store *Store
	now   func() time.Time
}

// NewNotificationCenter creates a center persisting to the session scope of
// store.
func NewNotificationCenter(store *Store) *NotificationCenter {
	return &NotificationCenter{store: store, now: time.Now}
}

// Notify records a notification at the head of the log, evicting from the
// tail past the cap, and returns its id. A failed persist is logged and the
// id still returned; the log simply won't survive into the next command.
func (c *NotificationCenter) Notify(kind NotificationKind, title, message string, sticky bool) string {
	if c == nil || c.store == nil {
		return ""
	}

	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: c.now(),
		Sticky:    sticky,
	}

	list := c.List()
	list = append([]Notification{n}, list...)
	if len(list) > maxNotifications {
		list = list[:maxNotifications]
	}

	if err := c.store.Set(ScopeSession, KeyNotifications, list); err != nil {
		Log.Warn().Err(err).Msg("notification log not persisted")
	}

	return n.ID
}

// List returns the log newest first. An absent or corrupt log is empty.
func (c *NotificationCenter) List() []Notification {
	if c == nil || c.store == nil {
		return nil
	}
	var list []Notification
	c.store.Get(ScopeSession, KeyNotifications, &list)
	return list
}

// Dismiss removes exactly one entry by id; absent ids are a no-op.
func (c *NotificationCenter) Dismiss(id string) {
	list := c.List()
	kept := list[:0]
	for _, n := range list {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(list) {
		return
	}
	if err := c.store.Set(ScopeSession, KeyNotifications, kept); err != nil {
		Log.Warn().Err(err).Msg("notification log not persisted")
	}
}

// ClearAll empties the log.
func (c *NotificationCenter) ClearAll() {
	if c == nil || c.store == nil {
		return
	}
	if err := c.store.Set(ScopeSession, KeyNotifications, []Notification{}); err != nil {
		Log.Warn().Err(err).Msg("notification log not persisted")
	}
}

// UnreadCount counts entries not yet marked read.
func (c *NotificationCenter) UnreadCount() int {
	count := 0
	for _, n := range c.List() {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead flips every entry to read. Opening the notification center
// from the CLI calls this, matching the usual unread-badge behavior.
func (c *NotificationCenter) MarkAllRead() {
	list := c.List()
	changed := false
	for i := range list {
		if !list[i].Read {
			list[i].Read = true
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := c.store.Set(ScopeSession, KeyNotifications, list); err != nil {
		Log.Warn().Err(err).Msg("notification log not persisted")
	}
}
