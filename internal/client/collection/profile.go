package collection

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/conduit/internal/client/models"
	"github.com/dmitrijs2005/conduit/internal/logging"
)

func profileKey(p models.Profile) string { return p.Username }

// ProfileView holds a single profile, keyed by username.
type ProfileView struct {
	*Synchronizer[string, models.Profile]

	api ProfileAPI
}

func NewProfileView(api ProfileAPI, logger logging.Logger) *ProfileView {
	if logger == nil {
		logger = logging.Discard()
	}
	v := &ProfileView{api: api}
	v.Synchronizer = NewSynchronizer(v.fetch, profileKey, Unpaged, logger.With("component", "profile"))
	return v
}

func (v *ProfileView) fetch(ctx context.Context, username string, _, _ int) ([]models.Profile, int, error) {
	p, err := v.api.GetProfile(ctx, username)
	if err != nil {
		return nil, 0, err
	}
	return []models.Profile{p}, 1, nil
}

// Profile returns the loaded profile, if any.
func (v *ProfileView) Profile() (models.Profile, bool) {
	st := v.State()
	if st.Status != Loaded || len(st.Items) == 0 {
		return models.Profile{}, false
	}
	return st.Items[0], true
}

// ToggleFollow follows the loaded profile, or unfollows it if it is already
// followed. Only the Following flag of the held profile changes.
func (v *ProfileView) ToggleFollow(ctx context.Context) (models.Profile, error) {
	current, ok := v.Profile()
	if !ok {
		return models.Profile{}, ErrNotMounted
	}

	var (
		resp models.Profile
		err  error
	)
	if current.Following {
		resp, err = v.api.UnfollowUser(ctx, current.Username)
	} else {
		resp, err = v.api.FollowUser(ctx, current.Username)
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("toggle follow %s: %w", current.Username, err)
	}

	updated := current
	updated.Following = resp.Following
	v.Replace(current.Username, updated)
	return updated, nil
}
