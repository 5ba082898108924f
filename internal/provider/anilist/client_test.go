package anilist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yamanjr10/deskdash/internal"
)

const mediaPayload = `{
	"data": {"Page": {"media": [
		{
			"id": 1,
			"title": {"english": "Frieren: Beyond Journey's End", "romaji": "Sousou no Frieren"},
			"coverImage": {"medium": "https://img.example/1.png"},
			"averageScore": 89,
			"season": "FALL",
			"seasonYear": 2023
		},
		{
			"id": 2,
			"title": {"english": "", "romaji": "Romaji Only"},
			"coverImage": {"medium": ""},
			"averageScore": 0,
			"season": "",
			"seasonYear": 0
		}
	]}}
}`

func captureServer(t *testing.T, vars *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Query == "" {
			t.Error("request carries no query")
		}
		*vars = req.Variables
		_, _ = w.Write([]byte(mediaPayload))
	}))
}

func TestTrending(t *testing.T) {
	var vars map[string]interface{}
	srv := captureServer(t, &vars)
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	items, err := c.Trending(context.Background(), 10)
	if err != nil {
		t.Fatalf("Trending() error = %v", err)
	}

	if got := vars["perPage"]; got != float64(10) {
		t.Errorf("perPage = %v, want 10", got)
	}
	if sort, _ := vars["sort"].([]interface{}); len(sort) != 1 || sort[0] != "TRENDING_DESC" {
		t.Errorf("sort = %v, want [TRENDING_DESC]", vars["sort"])
	}
	if _, ok := vars["status"]; ok {
		t.Error("trending query should not filter by status")
	}

	if len(items) != 2 {
		t.Fatalf("items len = %d, want 2", len(items))
	}
	if items[0].Title != "Frieren: Beyond Journey's End" {
		t.Errorf("Title = %q, want the english title", items[0].Title)
	}
	if items[0].Score != 89 || items[0].Season != "FALL" || items[0].SeasonYear != 2023 {
		t.Errorf("item = %+v", items[0])
	}
	// Missing english title falls back to romaji.
	if items[1].Title != "Romaji Only" {
		t.Errorf("Title = %q, want the romaji fallback", items[1].Title)
	}
}

func TestUpcoming(t *testing.T) {
	var vars map[string]interface{}
	srv := captureServer(t, &vars)
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	if _, err := c.Upcoming(context.Background(), 10); err != nil {
		t.Fatalf("Upcoming() error = %v", err)
	}

	if sort, _ := vars["sort"].([]interface{}); len(sort) != 1 || sort[0] != "POPULARITY_DESC" {
		t.Errorf("sort = %v, want [POPULARITY_DESC]", vars["sort"])
	}
	if status, _ := vars["status"].([]interface{}); len(status) != 1 || status[0] != "NOT_YET_RELEASED" {
		t.Errorf("status = %v, want [NOT_YET_RELEASED]", vars["status"])
	}
}

func TestReleasing(t *testing.T) {
	var vars map[string]interface{}
	srv := captureServer(t, &vars)
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	if _, err := c.Releasing(context.Background(), 10); err != nil {
		t.Fatalf("Releasing() error = %v", err)
	}

	if status, _ := vars["status"].([]interface{}); len(status) != 1 || status[0] != "RELEASING" {
		t.Errorf("status = %v, want [RELEASING]", vars["status"])
	}
}

func TestQueryServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"rate limited"}]}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	_, err := c.Trending(context.Background(), 10)
	var ferr *internal.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *internal.FetchError", err)
	}
	if ferr.Provider != "anilist" {
		t.Errorf("Provider = %q, want anilist", ferr.Provider)
	}
}
