package client

import (
	"context"
	"net/http"
)

type authResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.authenticate(ctx, "/auth/register", body)
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	return c.authenticate(ctx, "/auth/login", body)
}

func (c *Client) authenticate(ctx context.Context, path string, body map[string]string) (*User, error) {
	var result authResult
	if err := c.doJSON(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, err
	}
	if err := c.setSession(&Session{Token: result.Token, User: result.User}); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// Me fetches the signed-in user and refreshes the stored session copy.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	if err := c.setUser(user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPut, "/auth/profile", update, &user); err != nil {
		return nil, err
	}
	if err := c.setUser(user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Analytics(ctx context.Context, userID string) (*Stats, error) {
	var stats Stats
	if err := c.doJSON(ctx, http.MethodGet, "/analytics/users/"+escape(userID), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
