package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/conduit/internal/client/models"
)

// ArticleQuery filters GET /articles. Empty strings are not sent.
type ArticleQuery struct {
	Tag       string
	Author    string
	Favorited string
	Limit     int
	Offset    int
}

func (q ArticleQuery) values() url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))
	if q.Tag != "" {
		v.Set("tag", q.Tag)
	}
	if q.Author != "" {
		v.Set("author", q.Author)
	}
	if q.Favorited != "" {
		v.Set("favorited", q.Favorited)
	}
	return v
}

// ArticlePage is one page of articles plus the size of the whole result.
type ArticlePage struct {
	Articles      []models.Article `json:"articles"`
	ArticlesCount int              `json:"articlesCount"`
}

type articleEnvelope struct {
	Article models.Article `json:"article"`
}

type draftEnvelope struct {
	Article models.ArticleDraft `json:"article"`
}

type commentEnvelope struct {
	Comment models.Comment `json:"comment"`
}

type commentsEnvelope struct {
	Comments []models.Comment `json:"comments"`
}

type newComment struct {
	Body string `json:"body"`
}

type newCommentEnvelope struct {
	Comment newComment `json:"comment"`
}

type tagsEnvelope struct {
	Tags []string `json:"tags"`
}

func (c *Client) ListArticles(ctx context.Context, q ArticleQuery) (ArticlePage, error) {
	var page ArticlePage
	err := c.Request(ctx, http.MethodGet, "/articles", q.values(), nil, true, &page)
	return page, err
}

// Feed lists articles by authors the current user follows.
func (c *Client) Feed(ctx context.Context, limit, offset int) (ArticlePage, error) {
	var page ArticlePage
	err := c.Request(ctx, http.MethodGet, "/articles/feed", ArticleQuery{Limit: limit, Offset: offset}.values(), nil, true, &page)
	return page, err
}

func (c *Client) GetArticle(ctx context.Context, slug string) (models.Article, error) {
	var env articleEnvelope
	err := c.Request(ctx, http.MethodGet, "/articles/"+segment(slug), nil, nil, true, &env)
	return env.Article, err
}

func (c *Client) CreateArticle(ctx context.Context, draft models.ArticleDraft) (models.Article, error) {
	var env articleEnvelope
	err := c.Request(ctx, http.MethodPost, "/articles", nil, draftEnvelope{Article: draft}, true, &env)
	return env.Article, err
}

func (c *Client) UpdateArticle(ctx context.Context, slug string, draft models.ArticleDraft) (models.Article, error) {
	var env articleEnvelope
	err := c.Request(ctx, http.MethodPut, "/articles/"+segment(slug), nil, draftEnvelope{Article: draft}, true, &env)
	return env.Article, err
}

func (c *Client) DeleteArticle(ctx context.Context, slug string) error {
	return c.Request(ctx, http.MethodDelete, "/articles/"+segment(slug), nil, nil, true, nil)
}

func (c *Client) FavoriteArticle(ctx context.Context, slug string) (models.Article, error) {
	var env articleEnvelope
	err := c.Request(ctx, http.MethodPost, "/articles/"+segment(slug)+"/favorite", nil, nil, true, &env)
	return env.Article, err
}

func (c *Client) UnfavoriteArticle(ctx context.Context, slug string) (models.Article, error) {
	var env articleEnvelope
	err := c.Request(ctx, http.MethodDelete, "/articles/"+segment(slug)+"/favorite", nil, nil, true, &env)
	return env.Article, err
}

func (c *Client) ListComments(ctx context.Context, slug string) ([]models.Comment, error) {
	var env commentsEnvelope
	err := c.Request(ctx, http.MethodGet, "/articles/"+segment(slug)+"/comments", nil, nil, true, &env)
	return env.Comments, err
}

func (c *Client) AddComment(ctx context.Context, slug, body string) (models.Comment, error) {
	var env commentEnvelope
	req := newCommentEnvelope{Comment: newComment{Body: body}}
	err := c.Request(ctx, http.MethodPost, "/articles/"+segment(slug)+"/comments", nil, req, true, &env)
	return env.Comment, err
}

func (c *Client) DeleteComment(ctx context.Context, slug string, id int) error {
	path := "/articles/" + segment(slug) + "/comments/" + strconv.Itoa(id)
	return c.Request(ctx, http.MethodDelete, path, nil, nil, true, nil)
}

func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var env tagsEnvelope
	err := c.Request(ctx, http.MethodGet, "/tags", nil, nil, false, &env)
	return env.Tags, err
}
