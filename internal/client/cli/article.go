package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/conduit/internal/client/models"
	"github.com/dmitrijs2005/conduit/internal/client/services"
)

// Article prints an article and its comments.
func (a *App) Article(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("article <slug>")
	}
	art, err := a.articles.Get(ctx, args[0])
	if err != nil {
		return err
	}
	a.renderArticle(art)
	return a.comments.SetFilter(ctx, art.Slug)
}

func (a *App) Comments(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("comments <slug>")
	}
	return a.comments.SetFilter(ctx, args[0])
}

// ensureComments mounts the comments of slug unless they are already shown.
func (a *App) ensureComments(ctx context.Context, slug string) error {
	if cur, ok := a.comments.Filter(); ok && cur == slug {
		return nil
	}
	return a.comments.SetFilter(ctx, slug)
}

func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("comment <slug>")
	}
	if !a.isLoggedIn() {
		return errNotSignedIn
	}
	if err := a.ensureComments(ctx, args[0]); err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Write a comment...", a.out)
	if err != nil {
		return err
	}
	c, err := a.comments.Add(ctx, body)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Comment %d posted.\n", c.ID)
	return nil
}

func (a *App) Uncomment(ctx context.Context, args []string) error {
	const usage = usageError("uncomment <slug> <id>")
	if len(args) != 2 {
		return usage
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return usage
	}
	if !a.isLoggedIn() {
		return errNotSignedIn
	}
	if err := a.ensureComments(ctx, args[0]); err != nil {
		return err
	}
	if err := a.comments.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Comment %d deleted.\n", id)
	return nil
}

// editDraft prompts for every field of d, keeping the current value when
// the user just presses Enter.
func (a *App) editDraft(d models.ArticleDraft) (models.ArticleDraft, error) {
	var err error
	if d.Title, err = GetTextWithDefault(a.reader, "Article Title", d.Title, a.out); err != nil {
		return d, err
	}
	if d.Description, err = GetTextWithDefault(a.reader, "What's this article about?", d.Description, a.out); err != nil {
		return d, err
	}

	prompt := "Write your article (in markdown)"
	if d.Body != "" {
		prompt += ", empty keeps the current text"
	}
	body, err := GetMultiline(a.reader, prompt, a.out)
	if err != nil {
		return d, err
	}
	if body != "" {
		d.Body = body
	}

	tags, err := GetTextWithDefault(a.reader, "Enter tags", strings.Join(d.TagList, " "), a.out)
	if err != nil {
		return d, err
	}
	d.TagList = services.ParseTags(tags)
	return d, nil
}

// New opens an empty editor and publishes the article.
func (a *App) New(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotSignedIn
	}
	draft, err := a.editDraft(models.ArticleDraft{})
	if err != nil {
		return err
	}
	art, err := a.articles.Create(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Published %s\n", art.Slug)
	a.renderArticle(art)
	return nil
}

// Edit opens the editor prefilled with the article's current fields.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("edit <slug>")
	}
	if !a.isLoggedIn() {
		return errNotSignedIn
	}
	current, err := a.articles.Get(ctx, args[0])
	if err != nil {
		return err
	}
	draft, err := a.editDraft(models.DraftFrom(current))
	if err != nil {
		return err
	}
	art, err := a.articles.Update(ctx, current.Slug, draft)
	if err != nil {
		return err
	}
	a.feed.Replace(current.Slug, art)
	fmt.Fprintf(a.out, "Updated %s\n", art.Slug)
	return nil
}

// Delete removes an article after confirmation and drops it from the
// current page.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("delete <slug>")
	}
	if !a.isLoggedIn() {
		return errNotSignedIn
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete article %s?", args[0]), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if err := a.articles.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", args[0])
	_, err = a.feed.Remove(ctx, args[0])
	return err
}
