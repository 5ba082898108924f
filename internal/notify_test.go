package internal

import (
	"fmt"
	"testing"
	"time"
)

func TestNotifyRecordsNewestFirst(t *testing.T) {
	center := NewNotificationCenter(newTestStore(t))

	id1 := center.Notify(KindInfo, "first", "one", false)
	id2 := center.Notify(KindSuccess, "second", "two", false)

	if id1 == "" || id2 == "" {
		t.Fatal("Notify() returned empty id")
	}
	if id1 == id2 {
		t.Fatal("Notify() returned duplicate ids")
	}

	list := center.List()
	if len(list) != 2 {
		t.Fatalf("List() len = %d, want 2", len(list))
	}
	if list[0].ID != id2 || list[1].ID != id1 {
		t.Error("List() is not newest first")
	}
	if list[0].Kind != KindSuccess || list[0].Title != "second" {
		t.Errorf("head = %+v, want the second notification", list[0])
	}
}

func TestNotifyEnforcesCap(t *testing.T) {
	center := NewNotificationCenter(newTestStore(t))

	for i := 0; i < maxNotifications+10; i++ {
		center.Notify(KindInfo, fmt.Sprintf("n%d", i), "", false)
	}

	list := center.List()
	if len(list) != maxNotifications {
		t.Fatalf("List() len = %d, want %d", len(list), maxNotifications)
	}

	// Newest survives, oldest was evicted.
	if list[0].Title != fmt.Sprintf("n%d", maxNotifications+9) {
		t.Errorf("head = %q, want the newest entry", list[0].Title)
	}
	for _, n := range list {
		if n.Title == "n0" {
			t.Error("oldest entry survived past the cap")
		}
	}
}

func TestDismiss(t *testing.T) {
	center := NewNotificationCenter(newTestStore(t))

	id1 := center.Notify(KindInfo, "keep", "", false)
	id2 := center.Notify(KindInfo, "drop", "", false)

	center.Dismiss(id2)

	list := center.List()
	if len(list) != 1 {
		t.Fatalf("List() len = %d, want 1", len(list))
	}
	if list[0].ID != id1 {
		t.Errorf("surviving id = %s, want %s", list[0].ID, id1)
	}

	// Dismissing an unknown id changes nothing.
	center.Dismiss("no-such-id")
	if got := len(center.List()); got != 1 {
		t.Errorf("List() len after bogus dismiss = %d, want 1", got)
	}
}

func TestClearAll(t *testing.T) {
	center := NewNotificationCenter(newTestStore(t))

	center.Notify(KindInfo, "a", "", false)
	center.Notify(KindInfo, "b", "", true)
	center.ClearAll()

	if got := len(center.List()); got != 0 {
		t.Errorf("List() len after ClearAll = %d, want 0", got)
	}
}

func TestUnreadCountAndMarkAllRead(t *testing.T) {
	center := NewNotificationCenter(newTestStore(t))

	center.Notify(KindInfo, "a", "", false)
	center.Notify(KindError, "b", "", true)

	if got := center.UnreadCount(); got != 2 {
		t.Errorf("UnreadCount() = %d, want 2", got)
	}

	center.MarkAllRead()
	if got := center.UnreadCount(); got != 0 {
		t.Errorf("UnreadCount() after MarkAllRead = %d, want 0", got)
	}

	// Entries survive being read; only the badge changes.
	if got := len(center.List()); got != 2 {
		t.Errorf("List() len after MarkAllRead = %d, want 2", got)
	}
}

func TestNotifyStickyPreserved(t *testing.T) {
	center := NewNotificationCenter(newTestStore(t))

	center.Notify(KindSuccess, "Pomodoro Complete", "Work phase done.", true)

	list := center.List()
	if len(list) != 1 {
		t.Fatalf("List() len = %d, want 1", len(list))
	}
	if !list[0].Sticky {
		t.Error("sticky flag lost on persist")
	}
}

func TestNilCenterIsSilent(t *testing.T) {
	var center *NotificationCenter

	if id := center.Notify(KindError, "x", "", false); id != "" {
		t.Errorf("nil center Notify() = %q, want empty", id)
	}
	if list := center.List(); list != nil {
		t.Errorf("nil center List() = %v, want nil", list)
	}
	center.ClearAll()
	if got := center.UnreadCount(); got != 0 {
		t.Errorf("nil center UnreadCount() = %d, want 0", got)
	}
}

func TestNotificationTimestamps(t *testing.T) {
	center := NewNotificationCenter(newTestStore(t))
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	center.now = func() time.Time { return fixed }

	center.Notify(KindInfo, "a", "", false)

	list := center.List()
	if !list[0].CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", list[0].CreatedAt, fixed)
	}
}
