package internal

import "context"

// GeoLocation is a coarse position resolved from the caller's IP.
type GeoLocation struct {
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// WeatherSource provides current weather. Implementations live under
// internal/provider and are injected at startup; widgets never construct
// their own HTTP clients.
type WeatherSource interface {
	ByCity(ctx context.Context, city string) (WeatherReport, error)
	ByCoords(ctx context.Context, lat, lon float64) (WeatherReport, error)
}

// GeoSource resolves the caller's approximate location.
type GeoSource interface {
	Locate(ctx context.Context) (GeoLocation, error)
}

// QuoteSource provides a random quotation.
type QuoteSource interface {
	Random(ctx context.Context) (Quote, error)
}

// ChannelSource provides public video-channel statistics.
type ChannelSource interface {
	ChannelStats(ctx context.Context, channelID string) (ChannelStats, error)
}

// CodeHostSource provides public code-hosting account statistics.
type CodeHostSource interface {
	UserStats(ctx context.Context, user string) (CodeStats, error)
}

// AnimeCatalog provides the three catalog feeds the anime widget renders.
type AnimeCatalog interface {
	Trending(ctx context.Context, limit int) ([]MediaItem, error)
	Upcoming(ctx context.Context, limit int) ([]MediaItem, error)
	Releasing(ctx context.Context, limit int) ([]MediaItem, error)
}
