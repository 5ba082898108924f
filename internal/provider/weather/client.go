// Package weather fetches current conditions from the OpenWeather API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yamanjr10/deskdash/internal"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Client calls the OpenWeather current-weather endpoint. One attempt per
// call; refreshes are user-initiated.
type Client struct {
	client *resty.Client
	apiKey string
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(apiKey string) *Client {
	c := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(10 * time.Second)

	return &Client{client: c, apiKey: apiKey}
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(u string) {
	c.client.SetBaseURL(u)
}

// currentResponse is the subset of the provider payload the dashboard uses.
type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp    float64 `json:"temp"`
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// ByCity returns current weather for a free-text city name.
func (c *Client) ByCity(ctx context.Context, city string) (internal.WeatherReport, error) {
	return c.current(ctx, map[string]string{"q": city})
}

// ByCoords returns current weather for a lat/lon pair.
func (c *Client) ByCoords(ctx context.Context, lat, lon float64) (internal.WeatherReport, error) {
	return c.current(ctx, map[string]string{
		"lat": strconv.FormatFloat(lat, 'f', 4, 64),
		"lon": strconv.FormatFloat(lon, 'f', 4, 64),
	})
}

func (c *Client) current(ctx context.Context, params map[string]string) (internal.WeatherReport, error) {
	params["units"] = "metric"
	params["appid"] = c.apiKey

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/data/2.5/weather")
	if err != nil {
		return internal.WeatherReport{}, &internal.FetchError{Provider: "openweather", Op: "current", Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return internal.WeatherReport{}, &internal.FetchError{
			Provider: "openweather",
			Op:       "current",
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode(), resp.String()),
		}
	}

	var cur currentResponse
	if err := json.Unmarshal(resp.Body(), &cur); err != nil {
		return internal.WeatherReport{}, &internal.FetchError{Provider: "openweather", Op: "current", Err: err}
	}
	if len(cur.Weather) == 0 {
		return internal.WeatherReport{}, &internal.FetchError{
			Provider: "openweather",
			Op:       "current",
			Err:      fmt.Errorf("empty weather array"),
		}
	}

	return internal.WeatherReport{
		Location:    cur.Name,
		Temp:        cur.Main.Temp,
		TempMin:     cur.Main.TempMin,
		TempMax:     cur.Main.TempMax,
		Description: cur.Weather[0].Description,
		Condition:   cur.Weather[0].Main,
	}, nil
}
