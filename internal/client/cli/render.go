package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/conduit/internal/client/collection"
	"github.com/dmitrijs2005/conduit/internal/client/models"
)

const dateLayout = "Mon Jan 02 2006"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(dateLayout)
}

func heart(favorited bool) string {
	if favorited {
		return "♥"
	}
	return "♡"
}

func (a *App) renderFeed(st collection.State[models.Article]) {
	if st.Status != collection.Loaded {
		return
	}
	mode, _ := a.feed.Filter()
	fmt.Fprintf(a.out, "== %s ==\n", mode)
	if len(st.Items) == 0 {
		fmt.Fprintln(a.out, "No articles are here... yet.")
		return
	}
	for _, art := range st.Items {
		fmt.Fprintf(a.out, "%s %-3d %s\n", heart(art.Favorited), art.FavoritesCount, art.Title)
		fmt.Fprintf(a.out, "        %s · %s · %s\n", art.Author.Username, formatDate(art.CreatedAt), art.Slug)
		if art.Description != "" {
			fmt.Fprintf(a.out, "        %s\n", art.Description)
		}
		if len(art.TagList) > 0 {
			fmt.Fprintf(a.out, "        #%s\n", strings.Join(art.TagList, " #"))
		}
	}
	if pages := st.Pages(); pages > 1 {
		fmt.Fprintf(a.out, "page %d of %d (%d articles)\n", st.Page, pages, st.Total)
	}
}

func (a *App) renderArticle(art models.Article) {
	fmt.Fprintf(a.out, "# %s\n", art.Title)
	fmt.Fprintf(a.out, "by %s on %s  %s %d\n", art.Author.Username, formatDate(art.CreatedAt), heart(art.Favorited), art.FavoritesCount)
	if len(art.TagList) > 0 {
		fmt.Fprintf(a.out, "#%s\n", strings.Join(art.TagList, " #"))
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, art.Body)
	fmt.Fprintln(a.out)
}

func (a *App) renderComments(st collection.State[models.Comment]) {
	if st.Status != collection.Loaded {
		return
	}
	slug, _ := a.comments.Filter()
	fmt.Fprintf(a.out, "-- %d comment(s) on %s --\n", st.Total, slug)
	for _, c := range st.Items {
		fmt.Fprintf(a.out, "[%d] %s · %s\n", c.ID, c.Author.Username, formatDate(c.CreatedAt))
		for _, line := range strings.Split(c.Body, "\n") {
			fmt.Fprintf(a.out, "    %s\n", line)
		}
	}
}

func (a *App) renderProfile(st collection.State[models.Profile]) {
	if st.Status != collection.Loaded || len(st.Items) == 0 {
		return
	}
	p := st.Items[0]
	follow := "not following"
	if p.Following {
		follow = "following"
	}
	fmt.Fprintf(a.out, "@%s (%s)\n", p.Username, follow)
	if p.Bio != "" {
		fmt.Fprintln(a.out, p.Bio)
	}
	if p.Image != "" {
		fmt.Fprintln(a.out, p.Image)
	}
}
