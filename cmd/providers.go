package cmd

import (
	"github.com/yamanjr10/deskdash/internal"
	"github.com/yamanjr10/deskdash/internal/provider/anilist"
	"github.com/yamanjr10/deskdash/internal/provider/geoip"
	"github.com/yamanjr10/deskdash/internal/provider/github"
	"github.com/yamanjr10/deskdash/internal/provider/quote"
	"github.com/yamanjr10/deskdash/internal/provider/weather"
	"github.com/yamanjr10/deskdash/internal/provider/youtube"
)

// Provider wiring. Commands build widgets through these so every command
// gets the same client configuration.

func newWeatherWidget(app *app) *internal.WeatherWidget {
	return internal.NewWeatherWidget(
		app.store,
		app.center,
		app.cache,
		weather.NewClient(app.cfg.OpenWeatherAPIKey),
		geoip.NewClient(),
		app.cfg.WeatherLat,
		app.cfg.WeatherLon,
	)
}

func newQuoteWidget(app *app) *internal.QuoteWidget {
	return internal.NewQuoteWidget(app.store, app.center, quote.NewClient())
}

func newSocialWidget(app *app) *internal.SocialWidget {
	return internal.NewSocialWidget(
		app.cache,
		youtube.NewClient(app.cfg.YouTubeAPIKey),
		github.NewClient(),
		app.cfg.YouTubeChannel,
		app.cfg.GitHubUser,
	)
}

func newAnimeWidget(app *app) *internal.AnimeWidget {
	return internal.NewAnimeWidget(app.cache, anilist.NewClient())
}
