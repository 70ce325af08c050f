package tmdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmvault/internal/services"
	"filmvault/internal/tmdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "en-US"); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration when api key missing, got %v", err)
	}
}

func TestSearchMultiSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "key" {
			t.Fatalf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("page") != "2" {
			t.Fatalf("expected page=2, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":2,"results":[
			{"id":1,"title":"Inception","media_type":"movie","release_date":"2010-07-16"},
			{"id":2,"name":"Christopher Nolan","media_type":"person"},
			{"id":3,"name":"Severance","media_type":"tv","first_air_date":"2022-02-18"}
		],"total_pages":4,"total_results":62}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	resp, err := client.SearchMulti(context.Background(), "inception", 2)
	if err != nil {
		t.Fatalf("SearchMulti returned error: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected person results dropped, got %#v", resp.Results)
	}
	if resp.Results[0].DisplayTitle() != "Inception" || resp.Results[0].Year() != "2010" {
		t.Fatalf("unexpected movie result: %#v", resp.Results[0])
	}
	if resp.Results[1].DisplayTitle() != "Severance" || resp.Results[1].Year() != "2022" {
		t.Fatalf("unexpected tv result: %#v", resp.Results[1])
	}
}

func TestSearchMultiStatusClassification(t *testing.T) {
	cases := []struct {
		status int
		marker error
	}{
		{http.StatusUnauthorized, services.ErrConfiguration},
		{http.StatusForbidden, services.ErrConfiguration},
		{http.StatusTooManyRequests, services.ErrRateLimited},
		{http.StatusInternalServerError, services.ErrExternalService},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"status_message":"refused"}`))
		}))

		client, err := tmdb.New("key", server.URL, "")
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		_, err = client.SearchMulti(context.Background(), "fail", 1)
		if !errors.Is(err, tc.marker) {
			t.Fatalf("status %d: expected marker %v, got %v", tc.status, tc.marker, err)
		}
		server.Close()
	}
}

func TestSearchMultiEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMulti(context.Background(), "  ", 1); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestGetMovieDetailsSetsMediaType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":603,"title":"The Matrix","release_date":"1999-03-31"}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	result, err := client.GetMovieDetails(context.Background(), 603)
	if err != nil {
		t.Fatalf("GetMovieDetails returned error: %v", err)
	}
	if result.MediaType != "movie" || result.Title != "The Matrix" {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestGetTVDetailsSetsMediaType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tv/1396" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1396,"name":"Breaking Bad","first_air_date":"2008-01-20"}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	result, err := client.GetTVDetails(context.Background(), 1396)
	if err != nil {
		t.Fatalf("GetTVDetails returned error: %v", err)
	}
	if result.MediaType != "tv" || result.DisplayTitle() != "Breaking Bad" {
		t.Fatalf("unexpected result: %#v", result)
	}
}
