package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/conduit/internal/client/models"
)

type profileEnvelope struct {
	Profile models.Profile `json:"profile"`
}

func (c *Client) GetProfile(ctx context.Context, username string) (models.Profile, error) {
	var env profileEnvelope
	err := c.Request(ctx, http.MethodGet, "/profiles/"+segment(username), nil, nil, true, &env)
	return env.Profile, err
}

func (c *Client) FollowUser(ctx context.Context, username string) (models.Profile, error) {
	var env profileEnvelope
	err := c.Request(ctx, http.MethodPost, "/profiles/"+segment(username)+"/follow", nil, nil, true, &env)
	return env.Profile, err
}

func (c *Client) UnfollowUser(ctx context.Context, username string) (models.Profile, error) {
	var env profileEnvelope
	err := c.Request(ctx, http.MethodDelete, "/profiles/"+segment(username)+"/follow", nil, nil, true, &env)
	return env.Profile, err
}
