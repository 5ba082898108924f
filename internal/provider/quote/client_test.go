package quote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yamanjr10/deskdash/internal"
)

func TestRandom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/random" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"content":"Simplicity is prerequisite for reliability.","author":"Edsger Dijkstra"}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	q, err := c.Random(context.Background())
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if q.Text != "Simplicity is prerequisite for reliability." {
		t.Errorf("Text = %q", q.Text)
	}
	if q.Author != "Edsger Dijkstra" {
		t.Errorf("Author = %q", q.Author)
	}
}

func TestRandomServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	_, err := c.Random(context.Background())
	var ferr *internal.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *internal.FetchError", err)
	}
	if ferr.Provider != "quotable" {
		t.Errorf("Provider = %q, want quotable", ferr.Provider)
	}
}
