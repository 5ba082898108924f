// Package youtube fetches public channel statistics from the YouTube Data
// API.
package youtube

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

const defaultBaseURL = "https://www.googleapis.com"

// Client calls the YouTube Data API v3 channels endpoint.
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

// channelsResponse mirrors the fields the dashboard uses. The API returns
// counters as strings.
type channelsResponse struct {
	Items []struct {
		Snippet struct {
			Title       string    `json:"title"`
			PublishedAt time.Time `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			ViewCount       string `json:"viewCount"`
			VideoCount      string `json:"videoCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// ChannelStats returns public statistics for one channel.
func (c *Client) ChannelStats(ctx context.Context, channelID string) (internal.ChannelStats, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "statistics,snippet",
			"id":   channelID,
			"key":  c.apiKey,
		}).
		Get("/youtube/v3/channels")
	if err != nil {
		return internal.ChannelStats{}, &internal.FetchError{Provider: "youtube", Op: "channel-stats", Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return internal.ChannelStats{}, &internal.FetchError{
			Provider: "youtube",
			Op:       "channel-stats",
			Err:      fmt.Errorf("status %d", resp.StatusCode()),
		}
	}

	var body channelsResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return internal.ChannelStats{}, &internal.FetchError{Provider: "youtube", Op: "channel-stats", Err: err}
	}
	if len(body.Items) == 0 {
		return internal.ChannelStats{}, &internal.FetchError{
			Provider: "youtube",
			Op:       "channel-stats",
			Err:      fmt.Errorf("channel %s not found", channelID),
		}
	}

	item := body.Items[0]
	subs, _ := strconv.ParseInt(item.Statistics.SubscriberCount, 10, 64)
	views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
	videos, _ := strconv.ParseInt(item.Statistics.VideoCount, 10, 64)

	return internal.ChannelStats{
		Title:       item.Snippet.Title,
		Subscribers: subs,
		Views:       views,
		Videos:      videos,
		JoinedAt:    item.Snippet.PublishedAt,
	}, nil
}
