package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGeoIPClientLocate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","lat":48.8566,"lon":2.3522}`))
	}))
	defer srv.Close()

	client := NewGeoIPClient(srv.URL, NewDefaultHTTPClient(time.Second))
	coords, err := client.Locate(context.Background())
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if coords.Lat != 48.8566 || coords.Lng != 2.3522 {
		t.Fatalf("unexpected coords: %+v", coords)
	}
}

func TestGeoIPClientLocateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	client := NewGeoIPClient(srv.URL, NewDefaultHTTPClient(time.Second))
	if _, err := client.Locate(context.Background()); err == nil {
		t.Fatalf("expected error for failed lookup")
	}
}

func TestGeoIPClientBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewGeoIPClient(srv.URL, NewDefaultHTTPClient(time.Second))
	if _, err := client.Locate(context.Background()); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}
