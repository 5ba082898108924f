// Package anilist queries the AniList GraphQL API for the catalog feeds
// the anime widget renders.
package anilist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yamanjr10/deskdash/internal"
)

const defaultBaseURL = "https://graphql.anilist.co"

const mediaQuery = `
query ($perPage: Int, $sort: [MediaSort], $status: [MediaStatus]) {
  Page(page: 1, perPage: $perPage) {
    media(type: ANIME, sort: $sort, status_in: $status) {
      id
      title {
        english
        romaji
      }
      coverImage {
        medium
      }
      averageScore
      season
      seasonYear
    }
  }
}`

// Client posts GraphQL queries to AniList.
type Client struct {
	client *resty.Client
}

// NewClient creates a client with a 10 second request timeout.
func NewClient() *Client {
	c := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)
	return &Client{client: c}
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(u string) {
	c.client.SetBaseURL(u)
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type mediaResponse struct {
	Data struct {
		Page struct {
			Media []struct {
				ID    int `json:"id"`
				Title struct {
					English string `json:"english"`
					Romaji  string `json:"romaji"`
				} `json:"title"`
				CoverImage struct {
					Medium string `json:"medium"`
				} `json:"coverImage"`
				AverageScore int    `json:"averageScore"`
				Season       string `json:"season"`
				SeasonYear   int    `json:"seasonYear"`
			} `json:"media"`
		} `json:"Page"`
	} `json:"data"`
}

// Trending returns the current most-trending anime.
func (c *Client) Trending(ctx context.Context, limit int) ([]internal.MediaItem, error) {
	return c.query(ctx, "trending", limit, []string{"TRENDING_DESC"}, nil)
}

// Upcoming returns not-yet-released anime by popularity.
func (c *Client) Upcoming(ctx context.Context, limit int) ([]internal.MediaItem, error) {
	return c.query(ctx, "upcoming", limit, []string{"POPULARITY_DESC"}, []string{"NOT_YET_RELEASED"})
}

// Releasing returns currently-airing anime by popularity.
func (c *Client) Releasing(ctx context.Context, limit int) ([]internal.MediaItem, error) {
	return c.query(ctx, "releasing", limit, []string{"POPULARITY_DESC"}, []string{"RELEASING"})
}

func (c *Client) query(ctx context.Context, op string, limit int, sort, status []string) ([]internal.MediaItem, error) {
	vars := map[string]interface{}{
		"perPage": limit,
		"sort":    sort,
	}
	if status != nil {
		vars["status"] = status
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(graphqlRequest{Query: mediaQuery, Variables: vars}).
		Post("")
	if err != nil {
		return nil, &internal.FetchError{Provider: "anilist", Op: op, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &internal.FetchError{
			Provider: "anilist",
			Op:       op,
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode(), resp.String()),
		}
	}

	var body mediaResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, &internal.FetchError{Provider: "anilist", Op: op, Err: err}
	}

	items := make([]internal.MediaItem, 0, len(body.Data.Page.Media))
	for _, m := range body.Data.Page.Media {
		title := m.Title.English
		if title == "" {
			title = m.Title.Romaji
		}
		items = append(items, internal.MediaItem{
			ID:         m.ID,
			Title:      title,
			CoverURL:   m.CoverImage.Medium,
			Score:      m.AverageScore,
			Season:     m.Season,
			SeasonYear: m.SeasonYear,
		})
	}

	return items, nil
}
