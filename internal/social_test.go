package internal

import (
	"context"
	"errors"
	"testing"
)

type stubChannelSource struct {
	stats func(ctx context.Context, channelID string) (ChannelStats, error)
}

func (s *stubChannelSource) ChannelStats(ctx context.Context, channelID string) (ChannelStats, error) {
	return s.stats(ctx, channelID)
}

type stubCodeHostSource struct {
	stats func(ctx context.Context, user string) (CodeStats, error)
}

func (s *stubCodeHostSource) UserStats(ctx context.Context, user string) (CodeStats, error) {
	return s.stats(ctx, user)
}

func TestSocialLoad(t *testing.T) {
	store := newTestStore(t)
	cache := NewCache(store, silentNotifier)

	channels := &stubChannelSource{
		stats: func(ctx context.Context, channelID string) (ChannelStats, error) {
			if channelID != "UC123" {
				t.Errorf("channelID = %q, want UC123", channelID)
			}
			return ChannelStats{Title: "My Channel", Subscribers: 1234, Views: 45600, Videos: 24}, nil
		},
	}
	code := &stubCodeHostSource{
		stats: func(ctx context.Context, user string) (CodeStats, error) {
			if user != "yamanjr10" {
				t.Errorf("user = %q, want yamanjr10", user)
			}
			return CodeStats{Repos: 30, Followers: 120, Stars: 450}, nil
		},
	}

	w := NewSocialWidget(cache, channels, code, "UC123", "yamanjr10")
	w.Load(context.Background(), false)

	if got := w.Status(); got != StatusReady {
		t.Errorf("Status() = %v, want %v", got, StatusReady)
	}

	view := w.ViewModel()
	if view.Subscribers != "1.2K" {
		t.Errorf("Subscribers = %q, want %q", view.Subscribers, "1.2K")
	}
	if view.Views != "45.6K" {
		t.Errorf("Views = %q, want %q", view.Views, "45.6K")
	}
	if view.Repos != 30 || view.Stars != 450 {
		t.Errorf("code stats = %+v", view)
	}
}

func TestSocialHalvesDegradeIndependently(t *testing.T) {
	store := newTestStore(t)
	cache := NewCache(store, silentNotifier)

	channels := &stubChannelSource{
		stats: func(ctx context.Context, channelID string) (ChannelStats, error) {
			return ChannelStats{}, errors.New("quota exceeded")
		},
	}
	code := &stubCodeHostSource{
		stats: func(ctx context.Context, user string) (CodeStats, error) {
			return CodeStats{Repos: 30, Followers: 120, Stars: 450}, nil
		},
	}

	w := NewSocialWidget(cache, channels, code, "UC123", "yamanjr10")
	w.Load(context.Background(), false)

	if got := w.Status(); got != StatusDegraded {
		t.Errorf("Status() = %v, want %v", got, StatusDegraded)
	}

	view := w.ViewModel()
	// Channel half shows the mock numbers.
	if view.Subscribers != "1.2K" || view.Views != "45.6K" || view.Videos != "24" {
		t.Errorf("channel mock = %+v", view)
	}
	// Code half shows the real fetch.
	if view.Repos != 30 || view.Followers != 120 {
		t.Errorf("code half degraded along with channel half: %+v", view)
	}
	if !view.Degraded {
		t.Error("Degraded = false, want true")
	}
}

func TestSocialFullyDegraded(t *testing.T) {
	store := newTestStore(t)
	cache := NewCache(store, silentNotifier)

	channels := &stubChannelSource{
		stats: func(ctx context.Context, channelID string) (ChannelStats, error) {
			return ChannelStats{}, errors.New("down")
		},
	}
	code := &stubCodeHostSource{
		stats: func(ctx context.Context, user string) (CodeStats, error) {
			return CodeStats{}, errors.New("down")
		},
	}

	w := NewSocialWidget(cache, channels, code, "c", "u")
	w.Load(context.Background(), false)

	view := w.ViewModel()
	if view.Repos != 12 || view.Followers != 45 || view.Stars != 89 {
		t.Errorf("code mock = %+v, want 12/45/89", view)
	}
}

func TestCompactNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0"},
		{n: 999, want: "999"},
		{n: 1000, want: "1K"},
		{n: 1234, want: "1.2K"},
		{n: 45600, want: "45.6K"},
		{n: 2_000_000, want: "2M"},
		{n: 2_500_000, want: "2.5M"},
		{n: 1_300_000_000, want: "1.3B"},
	}

	for _, tt := range tests {
		if got := compactNumber(tt.n); got != tt.want {
			t.Errorf("compactNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
