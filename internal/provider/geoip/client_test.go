package geoip

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yamanjr10/deskdash/internal"
)

func TestLocate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"success","city":"Tokyo","lat":35.68,"lon":139.69}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	loc, err := c.Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if loc.City != "Tokyo" || loc.Lat != 35.68 || loc.Lon != 139.69 {
		t.Errorf("location = %+v", loc)
	}
}

func TestLocateFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	_, err := c.Locate(context.Background())
	var ferr *internal.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *internal.FetchError", err)
	}
	if ferr.Provider != "ip-api" {
		t.Errorf("Provider = %q, want ip-api", ferr.Provider)
	}
}
