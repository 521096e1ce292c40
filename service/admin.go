package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"cinema-booking-cli/model"
)

// AdminLogin authenticates an administrator. A response with success=false
// is returned as an error carrying the backend's message.
func (c *Client) AdminLogin(ctx context.Context, username string, password string) (model.AdminLoginResponse, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return model.AdminLoginResponse{}, errors.New("username and password are required")
	}

	request := model.AdminLoginRequest{Username: username, Password: password}
	var response model.AdminLoginResponse
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("/admin/login"), request, &response); err != nil {
		return model.AdminLoginResponse{}, err
	}
	if !response.Success {
		message := response.Message
		if message == "" {
			message = "đăng nhập thất bại"
		}
		return response, errors.New(message)
	}
	return response, nil
}

// AdminLogout invalidates an admin session on the backend.
func (c *Client) AdminLogout(ctx context.Context, adminID string) error {
	if strings.TrimSpace(adminID) == "" {
		return errors.New("admin id is required")
	}
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("/admin/logout?adminId=%s", escape(adminID)), nil, nil)
}
