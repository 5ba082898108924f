// Package github fetches public account statistics from the GitHub REST
// API. No authentication; the unauthenticated rate limit is plenty for a
// cached dashboard.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yamanjr10/deskdash/internal"
)

const defaultBaseURL = "https://api.github.com"

// Client calls the GitHub users endpoints.
type Client struct {
	client *resty.Client
}

// NewClient creates a client with a 10 second request timeout.
func NewClient() *Client {
	c := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("Accept", "application/vnd.github+json").
		SetTimeout(10 * time.Second)
	return &Client{client: c}
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(u string) {
	c.client.SetBaseURL(u)
}

type userResponse struct {
	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
}

type repoResponse struct {
	StargazersCount int `json:"stargazers_count"`
}

// UserStats returns repo count, followers, and total stars across the
// user's public repos. Two requests; each a single attempt.
func (c *Client) UserStats(ctx context.Context, user string) (internal.CodeStats, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/users/" + user)
	if err != nil {
		return internal.CodeStats{}, &internal.FetchError{Provider: "github", Op: "user-stats", Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return internal.CodeStats{}, &internal.FetchError{
			Provider: "github",
			Op:       "user-stats",
			Err:      fmt.Errorf("status %d", resp.StatusCode()),
		}
	}

	var u userResponse
	if err := json.Unmarshal(resp.Body(), &u); err != nil {
		return internal.CodeStats{}, &internal.FetchError{Provider: "github", Op: "user-stats", Err: err}
	}

	resp, err = c.client.R().
		SetContext(ctx).
		SetQueryParam("per_page", "100").
		Get("/users/" + user + "/repos")
	if err != nil {
		return internal.CodeStats{}, &internal.FetchError{Provider: "github", Op: "user-repos", Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return internal.CodeStats{}, &internal.FetchError{
			Provider: "github",
			Op:       "user-repos",
			Err:      fmt.Errorf("status %d", resp.StatusCode()),
		}
	}

	var repos []repoResponse
	if err := json.Unmarshal(resp.Body(), &repos); err != nil {
		return internal.CodeStats{}, &internal.FetchError{Provider: "github", Op: "user-repos", Err: err}
	}

	stars := 0
	for _, r := range repos {
		stars += r.StargazersCount
	}

	return internal.CodeStats{
		Repos:     u.PublicRepos,
		Followers: u.Followers,
		Stars:     stars,
	}, nil
}
