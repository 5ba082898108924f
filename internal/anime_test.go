package internal

import (
	"context"
	"errors"
	"testing"
)

type stubAnimeCatalog struct {
	trending  func(ctx context.Context, limit int) ([]MediaItem, error)
	upcoming  func(ctx context.Context, limit int) ([]MediaItem, error)
	releasing func(ctx context.Context, limit int) ([]MediaItem, error)
}

func (s *stubAnimeCatalog) Trending(ctx context.Context, limit int) ([]MediaItem, error) {
	return s.trending(ctx, limit)
}

func (s *stubAnimeCatalog) Upcoming(ctx context.Context, limit int) ([]MediaItem, error) {
	return s.upcoming(ctx, limit)
}

func (s *stubAnimeCatalog) Releasing(ctx context.Context, limit int) ([]MediaItem, error) {
	return s.releasing(ctx, limit)
}

func feedOf(titles ...string) []MediaItem {
	items := make([]MediaItem, len(titles))
	for i, title := range titles {
		items[i] = MediaItem{ID: i + 1, Title: title}
	}
	return items
}

func TestAnimeLoadAllFeeds(t *testing.T) {
	store := newTestStore(t)
	cache := NewCache(store, silentNotifier)

	catalog := &stubAnimeCatalog{
		trending: func(ctx context.Context, limit int) ([]MediaItem, error) {
			if limit != 10 {
				t.Errorf("trending limit = %d, want 10", limit)
			}
			return feedOf("Frieren"), nil
		},
		upcoming: func(ctx context.Context, limit int) ([]MediaItem, error) {
			return feedOf("Next Season Show"), nil
		},
		releasing: func(ctx context.Context, limit int) ([]MediaItem, error) {
			return feedOf("One Piece"), nil
		},
	}

	w := NewAnimeWidget(cache, catalog)
	w.Load(context.Background(), false)

	if got := w.Status(); got != StatusReady {
		t.Errorf("Status() = %v, want %v", got, StatusReady)
	}

	view := w.ViewModel()
	if len(view.Trending) != 1 || view.Trending[0].Title != "Frieren" {
		t.Errorf("Trending = %+v", view.Trending)
	}
	if len(view.Upcoming) != 1 || view.Upcoming[0].Title != "Next Season Show" {
		t.Errorf("Upcoming = %+v", view.Upcoming)
	}
	if len(view.Releasing) != 1 || view.Releasing[0].Title != "One Piece" {
		t.Errorf("Releasing = %+v", view.Releasing)
	}
}

func TestAnimeFeedsFailIndependently(t *testing.T) {
	store := newTestStore(t)
	cache := NewCache(store, silentNotifier)

	catalog := &stubAnimeCatalog{
		trending: func(ctx context.Context, limit int) ([]MediaItem, error) {
			return nil, errors.New("rate limited")
		},
		upcoming: func(ctx context.Context, limit int) ([]MediaItem, error) {
			return feedOf("Survivor"), nil
		},
		releasing: func(ctx context.Context, limit int) ([]MediaItem, error) {
			return feedOf("One Piece"), nil
		},
	}

	w := NewAnimeWidget(cache, catalog)
	w.Load(context.Background(), false)

	if got := w.Status(); got != StatusDegraded {
		t.Errorf("Status() = %v, want %v", got, StatusDegraded)
	}

	view := w.ViewModel()
	if len(view.Trending) != 0 {
		t.Errorf("failed Trending = %+v, want empty", view.Trending)
	}
	if len(view.Upcoming) != 1 || len(view.Releasing) != 1 {
		t.Error("healthy feeds affected by the failed one")
	}
	if !view.Degraded {
		t.Error("Degraded = false, want true")
	}
}

func TestAnimeFeedsAreCached(t *testing.T) {
	store := newTestStore(t)
	cache := NewCache(store, silentNotifier)

	calls := 0
	feed := func(ctx context.Context, limit int) ([]MediaItem, error) {
		calls++
		return feedOf("x"), nil
	}
	catalog := &stubAnimeCatalog{trending: feed, upcoming: feed, releasing: feed}

	w := NewAnimeWidget(cache, catalog)
	w.Load(context.Background(), false)
	w.Load(context.Background(), false)

	if calls != 3 {
		t.Errorf("fetch calls = %d, want 3 (one per feed, second load cached)", calls)
	}

	w.Load(context.Background(), true)
	if calls != 6 {
		t.Errorf("fetch calls = %d, want 6 after forced refresh", calls)
	}
}
