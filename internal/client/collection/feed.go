package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/conduit/internal/client/client"
	"github.com/dmitrijs2005/conduit/internal/client/models"
	"github.com/dmitrijs2005/conduit/internal/logging"
)

// ErrCredentialRequired is returned for personal-feed requests and
// mutations made while signed out.
var ErrCredentialRequired = errors.New("sign in to see your feed")

type FeedKind int

const (
	KindGlobal FeedKind = iota
	KindPersonal
	KindTag
	KindAuthor
	KindFavorited
)

// FeedMode selects which articles a Feed lists. Exactly one kind is active;
// Arg holds the tag or username for the kinds that take one.
type FeedMode struct {
	Kind FeedKind
	Arg  string
}

func Global() FeedMode { return FeedMode{Kind: KindGlobal} }
func Personal() FeedMode { return FeedMode{Kind: KindPersonal} }
func ByTag(tag string) FeedMode { return FeedMode{Kind: KindTag, Arg: tag} }
func ByAuthor(user string) FeedMode { return FeedMode{Kind: KindAuthor, Arg: user} }
func FavoritedBy(user string) FeedMode { return FeedMode{Kind: KindFavorited, Arg: user} }

func (m FeedMode) String() string {
	switch m.Kind {
	case KindGlobal:
		return "global feed"
	case KindPersonal:
		return "your feed"
	case KindTag:
		return "#" + m.Arg
	case KindAuthor:
		return "articles by " + m.Arg
	case KindFavorited:
		return "favorited by " + m.Arg
	default:
		return fmt.Sprintf("FeedKind(%d)", int(m.Kind))
	}
}

// Query is the GET /articles query for m. The personal feed uses its own
// endpoint and only takes limit and offset.
func (m FeedMode) Query(limit, offset int) client.ArticleQuery {
	q := client.ArticleQuery{Limit: limit, Offset: offset}
	switch m.Kind {
	case KindTag:
		q.Tag = m.Arg
	case KindAuthor:
		q.Author = m.Arg
	case KindFavorited:
		q.Favorited = m.Arg
	}
	return q
}

// Feed is a paged list of articles.
type Feed struct {
	*Synchronizer[FeedMode, models.Article]

	api   ArticleAPI
	creds client.CredentialSource
}

func NewFeed(api ArticleAPI, creds client.CredentialSource, pageSize int, logger logging.Logger) *Feed {
	if logger == nil {
		logger = logging.Discard()
	}
	f := &Feed{api: api, creds: creds}
	f.Synchronizer = NewSynchronizer(f.fetch, models.ArticleSlug, pageSize, logger.With("component", "feed"))
	return f
}

func (f *Feed) signedIn() bool {
	return f.creds != nil && f.creds.Credential() != ""
}

func (f *Feed) fetch(ctx context.Context, mode FeedMode, limit, offset int) ([]models.Article, int, error) {
	var (
		page client.ArticlePage
		err  error
	)
	if mode.Kind == KindPersonal {
		if !f.signedIn() {
			return nil, 0, ErrCredentialRequired
		}
		page, err = f.api.Feed(ctx, limit, offset)
	} else {
		page, err = f.api.ListArticles(ctx, mode.Query(limit, offset))
	}
	if err != nil {
		return nil, 0, err
	}
	return page.Articles, page.ArticlesCount, nil
}

// ToggleFavorite favorites the article with slug, or unfavorites it if it
// already is. The page entry is replaced with the server's copy once the
// request succeeds; on failure nothing changes.
func (f *Feed) ToggleFavorite(ctx context.Context, slug string) (models.Article, error) {
	current, ok := f.Find(slug)
	if !ok {
		return models.Article{}, fmt.Errorf("%w: %s", ErrItemNotFound, slug)
	}
	if !f.signedIn() {
		return models.Article{}, ErrCredentialRequired
	}

	var (
		updated models.Article
		err     error
	)
	if current.Favorited {
		updated, err = f.api.UnfavoriteArticle(ctx, slug)
	} else {
		updated, err = f.api.FavoriteArticle(ctx, slug)
	}
	if err != nil {
		return models.Article{}, fmt.Errorf("toggle favorite %s: %w", slug, err)
	}

	f.Replace(slug, updated)
	return updated, nil
}
