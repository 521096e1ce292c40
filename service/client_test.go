package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cinema-booking-cli/config"
)

func newTestClient(server *httptest.Server) *Client {
	cfg := &config.Config{BaseURL: server.URL, HTTPTimeout: 5 * time.Second}
	client := NewClient(cfg, server.Client())
	client.retryBase = time.Millisecond
	client.retryCap = 2 * time.Millisecond
	return client
}

func TestGetJSON_Non2xxReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 1

	var out map[string]any
	err := client.getJSON(context.Background(), server.URL+"/fail", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetJSON_RetriesTransientServerErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := atomic.AddInt32(&attempts, 1)
		if current < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("retry later"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 3

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/retry", &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if ok, _ := out["ok"].(bool); !ok {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestGetJSON_DoesNotRetryOnClientErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad request"))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 3

	var out map[string]any
	err := client.getJSON(context.Background(), server.URL+"/bad-request", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestSendJSON_NeverRetries(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unavailable"))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 3

	err := client.BookSeat(context.Background(), "seat-1", "user-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt for a write, got %d", attempts)
	}
}

func TestBookSeat_ConflictDetected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/seats/seat-1/book" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"seat already booked"}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	err := client.BookSeat(context.Background(), "seat-1", "user-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestGetShowtimesByMovie_FiltersByMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/showtimes" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("movieId") != "m1" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"id":"s1","movieId":"m1","room":"P1"},
  {"id":"s2","movieId":"m2","room":"P2"}
]`))
	}))
	defer server.Close()

	client := newTestClient(server)

	showtimes, err := client.GetShowtimesByMovie(context.Background(), "m1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(showtimes) != 1 || showtimes[0].Id != "s1" {
		t.Fatalf("unexpected showtimes: %+v", showtimes)
	}
}

func TestGetShowtimesByMovie_FallsBackToPathRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/showtimes" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Path != "/showtimes/movie/m1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"s1","movieId":"m1","room":"P1"}]`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 1

	showtimes, err := client.GetShowtimesByMovie(context.Background(), "m1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(showtimes) != 1 || showtimes[0].Id != "s1" {
		t.Fatalf("unexpected showtimes: %+v", showtimes)
	}
}

func TestGetSeatsByShowtime_FiltersForeignShowtimes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seats" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"id":"s1","showtimeId":"st-1","seatNumber":"A1","row":"A","column":1},
  {"id":"s2","showtimeId":"st-2","seatNumber":"A1","row":"A","column":1,"booked":true}
]`))
	}))
	defer server.Close()

	client := newTestClient(server)

	seats, err := client.GetSeatsByShowtime(context.Background(), "st-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(seats) != 1 || seats[0].Id != "s1" {
		t.Fatalf("expected only st-1 seats, got %+v", seats)
	}
	if seats[0].Booked {
		t.Fatal("a seat booked in another showtime must not appear booked here")
	}
}

func TestGetSeatsByShowtime_FallsBackToPathRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/seats" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Path != "/seats/showtime/st-1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"s1","showtimeId":"st-1","seatNumber":"A1","row":"A","column":1}]`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 1

	seats, err := client.GetSeatsByShowtime(context.Background(), "st-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(seats) != 1 || seats[0].Id != "s1" {
		t.Fatalf("unexpected seats: %+v", seats)
	}
}

func TestGetCombosByPriceRange_RejectsInvalidRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an invalid range")
	}))
	defer server.Close()

	client := newTestClient(server)

	if _, err := client.GetCombosByPriceRange(context.Background(), -1, 10); err == nil {
		t.Fatal("expected error for negative min")
	}
	if _, err := client.GetCombosByPriceRange(context.Background(), 100, 50); err == nil {
		t.Fatal("expected error for max below min")
	}
}

func TestAdminLogin_FailureCarriesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"Sai tên đăng nhập hoặc mật khẩu"}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.AdminLogin(context.Background(), "admin", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Sai tên đăng nhập") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAdminLogin_SetsNothingWithoutCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without credentials")
	}))
	defer server.Close()

	client := newTestClient(server)

	if _, err := client.AdminLogin(context.Background(), "", "secret"); err == nil {
		t.Fatal("expected error for empty username")
	}
	if _, err := client.AdminLogin(context.Background(), "admin", ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestSetToken_AttachesBearerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.SetToken("tok-1")

	if _, err := client.GetCombos(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
