package collection

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

import (
	"context"

	"github.com/dmitrijs2005/conduit/internal/client/client"
	"github.com/dmitrijs2005/conduit/internal/client/models"
)

// ArticleAPI is what a Feed needs from the remote client.
type ArticleAPI interface {
	ListArticles(ctx context.Context, q client.ArticleQuery) (client.ArticlePage, error)
	Feed(ctx context.Context, limit, offset int) (client.ArticlePage, error)
	FavoriteArticle(ctx context.Context, slug string) (models.Article, error)
	UnfavoriteArticle(ctx context.Context, slug string) (models.Article, error)
}

type CommentAPI interface {
	ListComments(ctx context.Context, slug string) ([]models.Comment, error)
	AddComment(ctx context.Context, slug, body string) (models.Comment, error)
	DeleteComment(ctx context.Context, slug string, id int) error
}

type ProfileAPI interface {
	GetProfile(ctx context.Context, username string) (models.Profile, error)
	FollowUser(ctx context.Context, username string) (models.Profile, error)
	UnfollowUser(ctx context.Context, username string) (models.Profile, error)
}
