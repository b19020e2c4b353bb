package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmitrijs2005/conduit/internal/client/client"
	"github.com/dmitrijs2005/conduit/internal/client/collection/mocks"
	"github.com/dmitrijs2005/conduit/internal/client/models"
)

func TestProfileView_LoadAndToggleFollow(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockProfileAPI(ctrl)

	jake := models.Profile{Username: "jake", Bio: "I work at statefarm", Image: "https://i.example/jake.png"}
	api.EXPECT().GetProfile(gomock.Any(), "jake").Return(jake, nil)
	// the server's reply deliberately differs in other fields
	api.EXPECT().FollowUser(gomock.Any(), "jake").Return(models.Profile{Username: "jake", Following: true}, nil)
	api.EXPECT().UnfollowUser(gomock.Any(), "jake").Return(models.Profile{Username: "jake"}, nil)

	v := NewProfileView(api, nil)
	_, ok := v.Profile()
	require.False(t, ok)

	require.NoError(t, v.Mount(ctx, "jake"))
	p, ok := v.Profile()
	require.True(t, ok)
	assert.Equal(t, jake, p)

	followed, err := v.ToggleFollow(ctx)
	require.NoError(t, err)
	want := jake
	want.Following = true
	assert.Equal(t, want, followed)
	p, _ = v.Profile()
	assert.Equal(t, want, p)

	unfollowed, err := v.ToggleFollow(ctx)
	require.NoError(t, err)
	assert.Equal(t, jake, unfollowed)
}

func TestProfileView_ToggleFollow_Failure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockProfileAPI(ctrl)

	jake := models.Profile{Username: "jake"}
	api.EXPECT().GetProfile(gomock.Any(), "jake").Return(jake, nil)
	api.EXPECT().FollowUser(gomock.Any(), "jake").Return(models.Profile{}, &client.Error{Err: client.ErrUnauthorized})

	v := NewProfileView(api, nil)
	require.NoError(t, v.Mount(ctx, "jake"))

	_, err := v.ToggleFollow(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	p, _ := v.Profile()
	assert.False(t, p.Following)
}

func TestProfileView_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockProfileAPI(ctrl)
	api.EXPECT().GetProfile(gomock.Any(), "ghost").Return(models.Profile{}, &client.Error{Err: client.ErrNotFound, Status: 404})

	v := NewProfileView(api, nil)
	err := v.Mount(ctx, "ghost")
	require.True(t, errors.Is(err, client.ErrNotFound))
	assert.Equal(t, Failed, v.State().Status)

	_, err = v.ToggleFollow(ctx)
	require.ErrorIs(t, err, ErrNotMounted)
}
