package models

import (
	"slices"
	"time"
)

// Article is identified by its slug. Favorited is relative to the caller.
type Article struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int       `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

// ArticleSlug is the key function used to patch article pages.
func ArticleSlug(a Article) string { return a.Slug }

// HasTag reports whether the article carries tag. Tags are an unordered set.
func (a Article) HasTag(tag string) bool {
	return slices.Contains(a.TagList, tag)
}

// ArticleDraft is the body of create and update requests.
type ArticleDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

// DraftFrom returns a draft prefilled with the article's editable fields.
func DraftFrom(a Article) ArticleDraft {
	return ArticleDraft{
		Title:       a.Title,
		Description: a.Description,
		Body:        a.Body,
		TagList:     slices.Clone(a.TagList),
	}
}

// Comment belongs to exactly one article; ID is unique within it.
type Comment struct {
	ID        int       `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Author    Profile   `json:"author"`
}

// CommentID is the key function used to patch comment lists.
func CommentID(c Comment) int { return c.ID }
