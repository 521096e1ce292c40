package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-booking-cli/config"
	"cinema-booking-cli/service"
)

func setTestDirs(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("XDG_CACHE_HOME", root)
}

func newTestClient(server *httptest.Server) *service.Client {
	cfg := &config.Config{BaseURL: server.URL, HTTPTimeout: 5 * time.Second}
	return service.NewClient(cfg, server.Client())
}

func TestSetUser_PersistsAcrossLoads(t *testing.T) {
	setTestDirs(t)

	sess := Load()
	if sess.LoggedIn() {
		t.Fatalf("expected no user session, got %q", sess.UserID())
	}

	if err := sess.SetUser("  user-1  "); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if sess.UserID() != "user-1" {
		t.Fatalf("expected trimmed user id, got %q", sess.UserID())
	}

	reloaded := Load()
	if !reloaded.LoggedIn() || reloaded.UserID() != "user-1" {
		t.Fatalf("expected persisted session, got %q", reloaded.UserID())
	}

	if err := reloaded.ClearUser(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if Load().LoggedIn() {
		t.Fatal("expected cleared session")
	}
}

func TestLoginAdmin_PersistsSessionAndAttachesToken(t *testing.T) {
	setTestDirs(t)

	var sawToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/login":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"token":"tok-1","admin":{"id":"ad-1","username":"admin","fullName":"Quản trị viên"}}`))
		case "/combos":
			sawToken = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(server)
	sess := Load()

	if err := sess.LoginAdmin(context.Background(), client, "admin", "secret"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	admin, ok := sess.Admin()
	if !ok || admin.Username != "admin" {
		t.Fatalf("expected admin session, got %+v ok=%v", admin, ok)
	}

	if _, err := client.GetCombos(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if sawToken != "Bearer tok-1" {
		t.Fatalf("expected bearer token on requests, got %q", sawToken)
	}

	reloaded := Load()
	if _, ok := reloaded.Admin(); !ok {
		t.Fatal("expected persisted admin session")
	}
}

func TestLogoutAdmin_ClearsEvenWhenBackendFails(t *testing.T) {
	setTestDirs(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/login":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"token":"tok-1","admin":{"id":"ad-1","username":"admin"}}`))
		case "/admin/logout":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(server)
	sess := Load()
	if err := sess.LoginAdmin(context.Background(), client, "admin", "secret"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := sess.LogoutAdmin(context.Background(), client); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok := sess.Admin(); ok {
		t.Fatal("expected admin session cleared")
	}
	if _, ok := Load().Admin(); ok {
		t.Fatal("expected persisted admin session cleared")
	}
}
