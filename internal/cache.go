package internal

import (
	"context"
	"encoding/json"
	"time"
)

// CacheEnvelope wraps a cached fetch result with its freshness metadata.
// Envelopes are replaced wholesale on refresh, never mutated in place.
type CacheEnvelope struct {
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetchedAt"`
	TTL       time.Duration   `json:"ttl"`
}

// Fresh reports whether the envelope is still within its TTL at now.
func (e CacheEnvelope) Fresh(now time.Time) bool {
	return e.TTL > 0 && now.Sub(e.FetchedAt) < e.TTL
}

// Cache is the fetch-with-expiry layer every provider-backed widget goes
// through. Envelopes live in the durable scope under "cache:<key>".
type Cache struct {
	store    *Store
	notifier Notifier
	now      func() time.Time
}

// NewCache creates a cache over store, reporting degraded fetches through
// notifier.
func NewCache(store *Store, notifier Notifier) *Cache {
	return &Cache{store: store, notifier: notifier, now: time.Now}
}

func cacheKey(key string) string {
	return "cache:" + key
}

// LoadCached returns the value at key, fetching when the cached envelope is
// absent, stale, or force is set. A ttl of zero always refetches. When the
// fetch fails the caller-supplied fallback is returned instead and a
// warning notification describes the degraded mode; the stored envelope is
// left exactly as it was, so a failure can never poison the cache.
//
// The second return reports degraded mode. Concurrent loads of the same key
// are not deduplicated; the last successful write wins.
func LoadCached[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	fetch func(context.Context) (T, error),
	fallback func() T,
	force bool,
) (T, bool) {
	if !force && ttl > 0 {
		var env CacheEnvelope
		if c.store.Get(ScopeDurable, cacheKey(key), &env) && c.now().Sub(env.FetchedAt) < ttl {
			var v T
			if err := json.Unmarshal(env.Payload, &v); err == nil {
				Log.Debug().Str("key", key).Msg("cache hit")
				return v, false
			}
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		Log.Warn().Str("key", key).Err(err).Msg("fetch failed, serving fallback")
		c.notifier.Notify(KindWarning, "Degraded Mode",
			"Could not refresh "+key+"; showing fallback data.", false)
		return fallback(), true
	}

	payload, merr := json.Marshal(v)
	if merr == nil {
		env := CacheEnvelope{Payload: payload, FetchedAt: c.now(), TTL: ttl}
		if serr := c.store.Set(ScopeDurable, cacheKey(key), env); serr != nil {
			c.notifier.Notify(KindWarning, "Storage Full",
				"Fetched data could not be cached; it will be refetched next time.", false)
		}
	}

	return v, false
}

// InvalidateCached drops the cached envelope for key, forcing the next load
// to fetch.
func (c *Cache) InvalidateCached(key string) {
	if err := c.store.Remove(ScopeDurable, cacheKey(key)); err != nil {
		Log.Warn().Str("key", key).Err(err).Msg("cache invalidation failed")
	}
}
