package notesdk

import (
	"context"
	"net/http"
)

// Signup creates an account and starts a session.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login starts a session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*User, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout ends the session. The server clears the cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, http.StatusOK)
}

// AuthCheck returns the user behind the current session.
func (c *Client) AuthCheck(ctx context.Context) (*User, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/auth-check", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// GetProfile returns the caller's profile.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile/me", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile changes the set fields of the caller's profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodPut, "/api/profile/update", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
