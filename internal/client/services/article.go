// Package services contains application services for the Conduit client
// that are not collections: single-article reads, the article editor and
// the tag list.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/conduit/internal/client/models"
	"github.com/dmitrijs2005/conduit/internal/logging"
)

// ArticleAPI is the part of the remote client the article service uses.
type ArticleAPI interface {
	GetArticle(ctx context.Context, slug string) (models.Article, error)
	CreateArticle(ctx context.Context, draft models.ArticleDraft) (models.Article, error)
	UpdateArticle(ctx context.Context, slug string, draft models.ArticleDraft) (models.Article, error)
	DeleteArticle(ctx context.Context, slug string) error
	Tags(ctx context.Context) ([]string, error)
}

// ArticleService covers the article page and the editor.
//
// Contract:
//   - Get: load one article by slug.
//   - Create/Update: submit a draft; tags are normalised first.
//   - Delete: remove an article the caller owns.
//   - Tags: list the popular tags shown next to the home feed.
type ArticleService interface {
	Get(ctx context.Context, slug string) (models.Article, error)
	Create(ctx context.Context, draft models.ArticleDraft) (models.Article, error)
	Update(ctx context.Context, slug string, draft models.ArticleDraft) (models.Article, error)
	Delete(ctx context.Context, slug string) error
	Tags(ctx context.Context) ([]string, error)
}

type articleService struct {
	api    ArticleAPI
	logger logging.Logger
}

func NewArticleService(api ArticleAPI, logger logging.Logger) ArticleService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &articleService{api: api, logger: logger.With("component", "articles")}
}

func (s *articleService) Get(ctx context.Context, slug string) (models.Article, error) {
	a, err := s.api.GetArticle(ctx, slug)
	if err != nil {
		return models.Article{}, fmt.Errorf("get article %s: %w", slug, err)
	}
	return a, nil
}

func (s *articleService) Create(ctx context.Context, draft models.ArticleDraft) (models.Article, error) {
	draft.TagList = NormalizeTags(draft.TagList)
	a, err := s.api.CreateArticle(ctx, draft)
	if err != nil {
		return models.Article{}, fmt.Errorf("create article: %w", err)
	}
	s.logger.Info(ctx, "article published", "slug", a.Slug)
	return a, nil
}

func (s *articleService) Update(ctx context.Context, slug string, draft models.ArticleDraft) (models.Article, error) {
	draft.TagList = NormalizeTags(draft.TagList)
	a, err := s.api.UpdateArticle(ctx, slug, draft)
	if err != nil {
		return models.Article{}, fmt.Errorf("update article %s: %w", slug, err)
	}
	s.logger.Info(ctx, "article updated", "slug", a.Slug)
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, slug string) error {
	if err := s.api.DeleteArticle(ctx, slug); err != nil {
		return fmt.Errorf("delete article %s: %w", slug, err)
	}
	s.logger.Info(ctx, "article deleted", "slug", slug)
	return nil
}

func (s *articleService) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.api.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	return tags, nil
}

// NormalizeTags trims tags, drops empty ones and removes duplicates while
// keeping first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ParseTags splits editor input on commas and whitespace.
func ParseTags(input string) []string {
	return NormalizeTags(strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	}))
}
