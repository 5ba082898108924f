// Package quote fetches a random quotation from the Quotable API.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yamanjr10/deskdash/internal"
)

const defaultBaseURL = "https://api.quotable.io"

// Client calls the Quotable random-quote endpoint.
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

type randomResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Random returns one random quote.
func (c *Client) Random(ctx context.Context) (internal.Quote, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/random")
	if err != nil {
		return internal.Quote{}, &internal.FetchError{Provider: "quotable", Op: "random", Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return internal.Quote{}, &internal.FetchError{
			Provider: "quotable",
			Op:       "random",
			Err:      fmt.Errorf("status %d", resp.StatusCode()),
		}
	}

	var body randomResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return internal.Quote{}, &internal.FetchError{Provider: "quotable", Op: "random", Err: err}
	}

	return internal.Quote{Text: body.Content, Author: body.Author}, nil
}
