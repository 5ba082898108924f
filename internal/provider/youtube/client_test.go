package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yamanjr10/deskdash/internal"
)

const channelsPayload = `{
	"items": [{
		"snippet": {"title": "My Channel", "publishedAt": "2019-06-01T00:00:00Z"},
		"statistics": {"subscriberCount": "1234", "viewCount": "45600", "videoCount": "24"}
	}]
}`

func TestChannelStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/youtube/v3/channels" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "UC123" {
			t.Errorf("id = %q, want UC123", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("part"); got != "statistics,snippet" {
			t.Errorf("part = %q", got)
		}
		_, _ = w.Write([]byte(channelsPayload))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.SetBaseURL(srv.URL)

	stats, err := c.ChannelStats(context.Background(), "UC123")
	if err != nil {
		t.Fatalf("ChannelStats() error = %v", err)
	}

	if stats.Title != "My Channel" {
		t.Errorf("Title = %q", stats.Title)
	}
	if stats.Subscribers != 1234 || stats.Views != 45600 || stats.Videos != 24 {
		t.Errorf("counters = %d/%d/%d, want 1234/45600/24", stats.Subscribers, stats.Views, stats.Videos)
	}
	if stats.JoinedAt.Year() != 2019 {
		t.Errorf("JoinedAt = %v", stats.JoinedAt)
	}
}

func TestChannelStatsUnknownChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	c := NewClient("k")
	c.SetBaseURL(srv.URL)

	_, err := c.ChannelStats(context.Background(), "UCnope")
	var ferr *internal.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *internal.FetchError", err)
	}
}

func TestChannelStatsQuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("k")
	c.SetBaseURL(srv.URL)

	var ferr *internal.FetchError
	if _, err := c.ChannelStats(context.Background(), "UC123"); !errors.As(err, &ferr) {
		t.Errorf("error = %v, want *internal.FetchError", err)
	}
}
