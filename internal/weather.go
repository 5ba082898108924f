package internal

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// weatherTTL is how long a fetched report stays fresh.
const weatherTTL = 15 * time.Minute

// WeatherWidget owns the saved location and the cached weather report.
type WeatherWidget struct {
	store    *Store
	notifier Notifier
	cache    *Cache
	source   WeatherSource
	geo      GeoSource

	// Coordinates from config, used when no city is saved.
	lat, lon float64

	status   Status
	report   WeatherReport
	degraded bool
}

// NewWeatherWidget creates the widget.
func NewWeatherWidget(store *Store, notifier Notifier, cache *Cache, source WeatherSource, geo GeoSource, lat, lon float64) *WeatherWidget {
	return &WeatherWidget{
		store:    store,
		notifier: notifier,
		cache:    cache,
		source:   source,
		geo:      geo,
		lat:      lat,
		lon:      lon,
		status:   StatusUninitialized,
	}
}

// Location returns the saved free-text location, empty when unset.
func (w *WeatherWidget) Location() string {
	var loc string
	w.store.Get(ScopeDurable, KeyWeatherPlace, &loc)
	return loc
}

// SetLocation validates and persists a new location. The cached report is
// invalidated so the next load fetches for the new place.
func (w *WeatherWidget) SetLocation(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return &ValidationError{Field: "location", Reason: "must not be empty"}
	}

	if err := w.store.Set(ScopeDurable, KeyWeatherPlace, city); err != nil {
		w.notifier.Notify(KindError, "Storage Full", "Location kept for this session only.", false)
		return nil
	}

	w.cache.InvalidateCached(KeyWeatherCache)
	w.notifier.Notify(KindSuccess, "Location Saved", "Weather location set to "+city+".", false)
	return nil
}

// Load populates the report, going through the cache. Location resolution
// order: saved city, configured coordinates, IP lookup. Fetch failures fall
// back to a mock report; nothing here returns an error to the CLI.
func (w *WeatherWidget) Load(ctx context.Context, force bool) {
	w.status = StatusLoading

	loc := w.Location()
	w.report, w.degraded = LoadCached(ctx, w.cache, KeyWeatherCache, weatherTTL,
		func(ctx context.Context) (WeatherReport, error) {
			return w.fetch(ctx, loc)
		},
		func() WeatherReport {
			return mockWeather(loc)
		},
		force)

	if w.degraded {
		w.status = StatusDegraded
	} else {
		w.status = StatusReady
	}
}

func (w *WeatherWidget) fetch(ctx context.Context, loc string) (WeatherReport, error) {
	if loc != "" {
		return w.source.ByCity(ctx, loc)
	}
	if w.lat != 0 || w.lon != 0 {
		return w.source.ByCoords(ctx, w.lat, w.lon)
	}

	place, err := w.geo.Locate(ctx)
	if err != nil {
		return WeatherReport{}, err
	}
	return w.source.ByCoords(ctx, place.Lat, place.Lon)
}

// mockWeather is the fallback shown when every fetch path fails.
func mockWeather(location string) WeatherReport {
	if location == "" {
		location = "Unknown"
	}
	return WeatherReport{
		Location:    location,
		Temp:        22,
		TempMin:     18,
		TempMax:     26,
		Description: "Partly cloudy",
		Condition:   "Clouds",
	}
}

// Status returns the widget's load state.
func (w *WeatherWidget) Status() Status {
	return w.status
}

// WeatherView is the rendered projection of the weather widget.
type WeatherView struct {
	Location    string
	Temp        string
	Description string
	Forecast    string
	Condition   string
	Degraded    bool
}

// ViewModel projects the current report.
func (w *WeatherWidget) ViewModel() WeatherView {
	return WeatherView{
		Location:    w.report.Location,
		Temp:        fmt.Sprintf("%.0f°C", w.report.Temp),
		Description: w.report.Description,
		Forecast:    fmt.Sprintf("H: %.0f° L: %.0f°", w.report.TempMax, w.report.TempMin),
		Condition:   w.report.Condition,
		Degraded:    w.degraded,
	}
}
