package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/conduit/internal/client/collection"
)

// Profile shows a user and lists either their articles or, with
// "favorites", the articles they favorited.
func (a *App) Profile(ctx context.Context, args []string) error {
	const usage = usageError("profile <username> [favorites]")

	var mode collection.FeedMode
	switch {
	case len(args) == 1:
		mode = collection.ByAuthor(args[0])
	case len(args) == 2 && args[1] == "favorites":
		mode = collection.FavoritedBy(args[0])
	default:
		return usage
	}

	if err := a.profile.SetFilter(ctx, args[0]); err != nil {
		return err
	}
	return a.feed.SetFilter(ctx, mode)
}

// Follow follows the shown profile, or unfollows it.
func (a *App) Follow(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotSignedIn
	}
	p, err := a.profile.ToggleFollow(ctx)
	if err != nil {
		return err
	}
	if p.Following {
		fmt.Fprintf(a.out, "Following %s.\n", p.Username)
	} else {
		fmt.Fprintf(a.out, "Unfollowed %s.\n", p.Username)
	}
	return nil
}
