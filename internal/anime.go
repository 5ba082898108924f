package internal

import (
	"context"
	"time"
)

// animeTTL is how long a fetched catalog feed stays fresh.
const animeTTL = 30 * time.Minute

// feedLimit is how many entries each feed shows.
const feedLimit = 10

// AnimeWidget renders the three catalog feeds: trending, upcoming, and
// currently releasing.
type AnimeWidget struct {
	cache   *Cache
	catalog AnimeCatalog

	status    Status
	trending  []MediaItem
	upcoming  []MediaItem
	releasing []MediaItem
	degraded  bool
}

// NewAnimeWidget creates the widget.
func NewAnimeWidget(cache *Cache, catalog AnimeCatalog) *AnimeWidget {
	return &AnimeWidget{cache: cache, catalog: catalog, status: StatusUninitialized}
}

// Load populates all three feeds through the cache. A failed feed renders
// empty; the others are unaffected.
func (w *AnimeWidget) Load(ctx context.Context, force bool) {
	w.status = StatusLoading
	w.degraded = false

	empty := func() []MediaItem { return nil }

	var deg bool
	w.trending, deg = LoadCached(ctx, w.cache, "animeTrending", animeTTL,
		func(ctx context.Context) ([]MediaItem, error) {
			return w.catalog.Trending(ctx, feedLimit)
		}, empty, force)
	w.degraded = w.degraded || deg

	w.upcoming, deg = LoadCached(ctx, w.cache, "animeUpcoming", animeTTL,
		func(ctx context.Context) ([]MediaItem, error) {
			return w.catalog.Upcoming(ctx, feedLimit)
		}, empty, force)
	w.degraded = w.degraded || deg

	w.releasing, deg = LoadCached(ctx, w.cache, "animeReleasing", animeTTL,
		func(ctx context.Context) ([]MediaItem, error) {
			return w.catalog.Releasing(ctx, feedLimit)
		}, empty, force)
	w.degraded = w.degraded || deg

	if w.degraded {
		w.status = StatusDegraded
	} else {
		w.status = StatusReady
	}
}

// Status returns the widget's load state.
func (w *AnimeWidget) Status() Status {
	return w.status
}

// AnimeView is the rendered projection of the anime widget.
type AnimeView struct {
	Trending  []MediaItem
	Upcoming  []MediaItem
	Releasing []MediaItem
	Degraded  bool
}

// ViewModel projects the current feeds.
func (w *AnimeWidget) ViewModel() AnimeView {
	return AnimeView{
		Trending:  w.trending,
		Upcoming:  w.upcoming,
		Releasing: w.releasing,
		Degraded:  w.degraded,
	}
}
