package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/conduit/internal/client/collection"
)

// parseFeedMode maps "feed" arguments to a mode. No arguments means the
// home feed for the current session.
func parseFeedMode(args []string, signedIn bool) (collection.FeedMode, error) {
	const usage = usageError("feed [mine|global|tag <t>|author <u>|favorited <u>]")

	if len(args) == 0 {
		if signedIn {
			return collection.Personal(), nil
		}
		return collection.Global(), nil
	}

	switch args[0] {
	case "mine":
		if len(args) != 1 {
			return collection.FeedMode{}, usage
		}
		return collection.Personal(), nil
	case "global":
		if len(args) != 1 {
			return collection.FeedMode{}, usage
		}
		return collection.Global(), nil
	case "tag", "author", "favorited":
		if len(args) != 2 {
			return collection.FeedMode{}, usage
		}
		switch args[0] {
		case "tag":
			return collection.ByTag(strings.TrimPrefix(args[1], "#")), nil
		case "author":
			return collection.ByAuthor(args[1]), nil
		default:
			return collection.FavoritedBy(args[1]), nil
		}
	}
	return collection.FeedMode{}, usage
}

func (a *App) Feed(ctx context.Context, args []string) error {
	mode, err := parseFeedMode(args, a.isLoggedIn())
	if err != nil {
		return err
	}
	return a.feed.SetFilter(ctx, mode)
}

func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("page <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usageError("page <n>")
	}
	return a.feed.SetPage(ctx, n)
}

func (a *App) Next(ctx context.Context) error {
	return a.feed.SetPage(ctx, a.feed.State().Page+1)
}

func (a *App) Prev(ctx context.Context) error {
	return a.feed.SetPage(ctx, a.feed.State().Page-1)
}

// Favorite toggles the favorite flag of an article on the current page.
func (a *App) Favorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("fav <slug>")
	}
	art, err := a.feed.ToggleFavorite(ctx, args[0])
	if err != nil {
		return err
	}
	verb := "Unfavorited"
	if art.Favorited {
		verb = "Favorited"
	}
	fmt.Fprintf(a.out, "%s %q (%d)\n", verb, art.Title, art.FavoritesCount)
	return nil
}

// Tags prints the popular tags on one line.
func (a *App) Tags(ctx context.Context) error {
	tags, err := a.articles.Tags(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Fprintln(a.out, "No tags are here... yet.")
		return nil
	}
	fmt.Fprintf(a.out, "Popular tags: #%s\n", strings.Join(tags, " #"))
	return nil
}
