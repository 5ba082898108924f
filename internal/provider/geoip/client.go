// Package geoip resolves the caller's approximate location from their IP,
// used as the weather widget's last-resort location source.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yamanjr10/deskdash/internal"
)

const defaultBaseURL = "http://ip-api.com"

// Client calls the ip-api.com self-lookup endpoint.
type Client struct {
	client *resty.Client
}

// NewClient creates a client with a 10 second request timeout.
func NewClient() *Client {
	c := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(10 * time.Second)
	return &Client{client: c}
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(u string) {
	c.client.SetBaseURL(u)
}

type lookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate resolves the caller's city and coordinates.
func (c *Client) Locate(ctx context.Context) (internal.GeoLocation, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("fields", "status,message,city,lat,lon").
		Get("/json")
	if err != nil {
		return internal.GeoLocation{}, &internal.FetchError{Provider: "ip-api", Op: "locate", Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return internal.GeoLocation{}, &internal.FetchError{
			Provider: "ip-api",
			Op:       "locate",
			Err:      fmt.Errorf("status %d", resp.StatusCode()),
		}
	}

	var body lookupResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return internal.GeoLocation{}, &internal.FetchError{Provider: "ip-api", Op: "locate", Err: err}
	}
	if body.Status != "success" {
		return internal.GeoLocation{}, &internal.FetchError{
			Provider: "ip-api",
			Op:       "locate",
			Err:      fmt.Errorf("lookup failed: %s", body.Message),
		}
	}

	return internal.GeoLocation{City: body.City, Lat: body.Lat, Lon: body.Lon}, nil
}
