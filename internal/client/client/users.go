package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/conduit/internal/client/models"
)

type userEnvelope struct {
	User models.User `json:"user"`
}

type loginUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginEnvelope struct {
	User loginUser `json:"user"`
}

type registerUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerEnvelope struct {
	User registerUser `json:"user"`
}

type updateEnvelope struct {
	User models.UserUpdate `json:"user"`
}

// Login exchanges email and password for a user carrying a fresh token.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	var env userEnvelope
	req := loginEnvelope{User: loginUser{Email: email, Password: password}}
	err := c.Request(ctx, http.MethodPost, "/users/login", nil, req, false, &env)
	return env.User, err
}

// Register creates an account and returns it with a fresh token.
func (c *Client) Register(ctx context.Context, username, email, password string) (models.User, error) {
	var env userEnvelope
	req := registerEnvelope{User: registerUser{Username: username, Email: email, Password: password}}
	err := c.Request(ctx, http.MethodPost, "/users", nil, req, false, &env)
	return env.User, err
}

func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var env userEnvelope
	err := c.Request(ctx, http.MethodGet, "/user", nil, nil, true, &env)
	return env.User, err
}

func (c *Client) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	var env userEnvelope
	err := c.Request(ctx, http.MethodPut, "/user", nil, updateEnvelope{User: update}, true, &env)
	return env.User, err
}

// UserForToken fetches the identity behind token, ignoring the configured
// CredentialSource. Used to validate a credential before trusting it.
func (c *Client) UserForToken(ctx context.Context, token string) (models.User, error) {
	return c.WithToken(token).CurrentUser(ctx)
}
