// Package session owns the signed-in identities for a run: the booking
// user and the admin console session. Both are loaded once at startup,
// written through on login and torn down on logout, replacing any state
// that would otherwise live implicitly in the API client.
package session

import (
	"context"
	"strings"

	"cinema-booking-cli/model"
	"cinema-booking-cli/service"
	"cinema-booking-cli/store"
)

type Context struct {
	user  store.UserSession
	admin store.AdminSession
}

// Load restores the persisted sessions. A missing or unreadable file
// means no session; startup never fails on it.
func Load() *Context {
	ctx := &Context{}
	if user, err := store.LoadUserSession(); err == nil {
		ctx.user = user
	}
	if admin, err := store.LoadAdminSession(); err == nil {
		ctx.admin = admin
	}
	return ctx
}

func (c *Context) UserID() string { return c.user.UserID }

func (c *Context) LoggedIn() bool {
	return strings.TrimSpace(c.user.UserID) != ""
}

// SetUser records the booking identity and persists it for later runs.
func (c *Context) SetUser(userID string) error {
	c.user = store.UserSession{UserID: strings.TrimSpace(userID)}
	return store.SaveUserSession(c.user)
}

func (c *Context) ClearUser() error {
	c.user = store.UserSession{}
	return store.ClearUserSession()
}

func (c *Context) Admin() (model.Admin, bool) {
	return c.admin.Admin, c.admin.Token != ""
}

// Attach puts the admin token on the client so subsequent admin calls
// carry it. No-op without a session.
func (c *Context) Attach(client *service.Client) {
	if c.admin.Token != "" {
		client.SetToken(c.admin.Token)
	}
}

// LoginAdmin authenticates against the backend and, on success, attaches
// the token to the client and persists the session.
func (c *Context) LoginAdmin(ctx context.Context, client *service.Client, username string, password string) error {
	response, err := client.AdminLogin(ctx, username, password)
	if err != nil {
		return err
	}
	c.admin = store.AdminSession{Token: response.Token, Admin: response.Admin}
	client.SetToken(response.Token)
	return store.SaveAdminSession(c.admin)
}

// LogoutAdmin tears the admin session down. The backend call is best
// effort; the local session is cleared regardless so a dead backend
// cannot pin a stale login.
func (c *Context) LogoutAdmin(ctx context.Context, client *service.Client) error {
	if c.admin.Admin.Id != "" {
		_ = client.AdminLogout(ctx, c.admin.Admin.Id)
	}
	c.admin = store.AdminSession{}
	client.SetToken("")
	return store.ClearAdminSession()
}
