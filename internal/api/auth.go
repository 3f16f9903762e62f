package api

import (
	"context"
	"fmt"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the dashboard password for a bearer token and caches
// it for subsequent requests and for the WebSocket auth handshake.
func (c *Client) Login(ctx context.Context) (string, error) {
	var resp loginResponse
	if err := c.post(ctx, "/api/auth", loginRequest{Password: c.password}, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: empty token in response")
	}

	c.tokenMu.Lock()
	c.token = resp.Token
	c.tokenMu.Unlock()

	return resp.Token, nil
}

// Token returns the cached bearer token, logging in first if none is
// cached yet. Satisfies socket.TokenSource.
func (c *Client) Token(ctx context.Context) (string, error) {
	if token := c.cachedToken(); token != "" {
		return token, nil
	}
	return c.Login(ctx)
}

// InvalidateToken clears the cached token so the next Token call logs
// in again.
func (c *Client) InvalidateToken() {
	c.tokenMu.Lock()
	c.token = ""
	c.tokenMu.Unlock()
}

func (c *Client) cachedToken() string {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	return c.token
}
