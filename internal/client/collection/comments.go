package collection

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/conduit/internal/client/models"
	"github.com/dmitrijs2005/conduit/internal/logging"
)

var ErrEmptyComment = errors.New("comment body is empty")

func commentKey(c models.Comment) string {
	return strconv.Itoa(models.CommentID(c))
}

// Comments lists the comments of one article, newest first as the server
// returns them. The filter is the article slug.
type Comments struct {
	*Synchronizer[string, models.Comment]

	api CommentAPI
}

func NewComments(api CommentAPI, logger logging.Logger) *Comments {
	if logger == nil {
		logger = logging.Discard()
	}
	c := &Comments{api: api}
	c.Synchronizer = NewSynchronizer(c.fetch, commentKey, Unpaged, logger.With("component", "comments"))
	return c
}

func (c *Comments) fetch(ctx context.Context, slug string, _, _ int) ([]models.Comment, int, error) {
	comments, err := c.api.ListComments(ctx, slug)
	if err != nil {
		return nil, 0, err
	}
	return comments, len(comments), nil
}

// Add posts a comment on the mounted article and puts the server's copy at
// the head of the list, provided that article is still the one mounted.
func (c *Comments) Add(ctx context.Context, body string) (models.Comment, error) {
	slug, ok := c.Filter()
	if !ok {
		return models.Comment{}, ErrNotMounted
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return models.Comment{}, ErrEmptyComment
	}

	comment, err := c.api.AddComment(ctx, slug, body)
	if err != nil {
		return models.Comment{}, fmt.Errorf("add comment to %s: %w", slug, err)
	}
	c.prependFor(slug, comment)
	return comment, nil
}

// Delete removes comment id from the mounted article once the server has
// deleted it. If another article was mounted meanwhile its list is left
// alone.
func (c *Comments) Delete(ctx context.Context, id int) error {
	slug, ok := c.Filter()
	if !ok {
		return ErrNotMounted
	}
	if err := c.api.DeleteComment(ctx, slug, id); err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	_, err := c.removeFor(ctx, slug, strconv.Itoa(id))
	return err
}
