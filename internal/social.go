package internal

import (
	"context"
	"fmt"
	"time"
)

// socialTTL is how long fetched channel and account stats stay fresh.
const socialTTL = 10 * time.Minute

// SocialWidget shows video-channel and code-hosting statistics side by
// side. The two halves load and degrade independently.
type SocialWidget struct {
	cache    *Cache
	channels ChannelSource
	code     CodeHostSource

	channelID string
	user      string

	status   Status
	channel  ChannelStats
	codeStat CodeStats
	chanDeg  bool
	codeDeg  bool
}

// NewSocialWidget creates the widget.
func NewSocialWidget(cache *Cache, channels ChannelSource, code CodeHostSource, channelID, user string) *SocialWidget {
	return &SocialWidget{
		cache:     cache,
		channels:  channels,
		code:      code,
		channelID: channelID,
		user:      user,
		status:    StatusUninitialized,
	}
}

// Load populates both halves through the cache. A failure on either side
// shows that side's mock numbers without touching the other.
func (w *SocialWidget) Load(ctx context.Context, force bool) {
	w.status = StatusLoading

	w.channel, w.chanDeg = LoadCached(ctx, w.cache, "channelStats", socialTTL,
		func(ctx context.Context) (ChannelStats, error) {
			return w.channels.ChannelStats(ctx, w.channelID)
		},
		func() ChannelStats {
			return ChannelStats{Subscribers: 1200, Views: 45600, Videos: 24}
		},
		force)

	w.codeStat, w.codeDeg = LoadCached(ctx, w.cache, "codeStats", socialTTL,
		func(ctx context.Context) (CodeStats, error) {
			return w.code.UserStats(ctx, w.user)
		},
		func() CodeStats {
			return CodeStats{Repos: 12, Followers: 45, Stars: 89}
		},
		force)

	if w.chanDeg || w.codeDeg {
		w.status = StatusDegraded
	} else {
		w.status = StatusReady
	}
}

// Status returns the widget's load state.
func (w *SocialWidget) Status() Status {
	return w.status
}

// SocialView is the rendered projection of the social widget.
type SocialView struct {
	ChannelTitle string
	Subscribers  string
	Views        string
	Videos       string
	Repos        int
	Followers    int
	Stars        int
	Degraded     bool
}

// ViewModel projects the current stats with compact number formatting.
func (w *SocialWidget) ViewModel() SocialView {
	return SocialView{
		ChannelTitle: w.channel.Title,
		Subscribers:  compactNumber(w.channel.Subscribers),
		Views:        compactNumber(w.channel.Views),
		Videos:       fmt.Sprintf("%d", w.channel.Videos),
		Repos:        w.codeStat.Repos,
		Followers:    w.codeStat.Followers,
		Stars:        w.codeStat.Stars,
		Degraded:     w.chanDeg || w.codeDeg,
	}
}

// compactNumber renders 1234 as "1.2K", 45600 as "45.6K", 2000000 as "2M".
func compactNumber(n int64) string {
	format := func(v float64, suffix string) string {
		s := fmt.Sprintf("%.1f", v)
		if s[len(s)-2:] == ".0" {
			s = s[:len(s)-2]
		}
		return s + suffix
	}

	switch {
	case n >= 1_000_000_000:
		return format(float64(n)/1_000_000_000, "B")
	case n >= 1_000_000:
		return format(float64(n)/1_000_000, "M")
	case n >= 1_000:
		return format(float64(n)/1_000, "K")
	default:
		return fmt.Sprintf("%d", n)
	}
}
