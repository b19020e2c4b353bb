package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/conduit/internal/client/client"
	"github.com/dmitrijs2005/conduit/internal/client/models"
)

// ---- fake Conduit API ----

type fakeServer struct {
	articles map[string]models.Article
	tags     []string

	LastDraft models.ArticleDraft
	LastAuth  string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeServer) routes(r chi.Router) {
	r.Get("/tags", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"tags": f.tags})
	})
	r.Get("/articles/{slug}", func(w http.ResponseWriter, r *http.Request) {
		a, ok := f.articles[chi.URLParam(r, "slug")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"errors": map[string][]string{"article": {"not found"}}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"article": a})
	})
	r.Post("/articles", func(w http.ResponseWriter, r *http.Request) {
		f.LastAuth = r.Header.Get("Authorization")
		var body struct {
			Article models.ArticleDraft `json:"article"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.LastDraft = body.Article
		if body.Article.Title == "" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": map[string][]string{
				"title": {"can't be blank"},
				"body":  {"can't be blank"},
			}})
			return
		}
		a := models.Article{Slug: "how-to-train-your-dragon", Title: body.Article.Title, TagList: body.Article.TagList}
		f.articles[a.Slug] = a
		writeJSON(w, http.StatusCreated, map[string]any{"article": a})
	})
	r.Put("/articles/{slug}", func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		var body struct {
			Article models.ArticleDraft `json:"article"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.LastDraft = body.Article
		a := f.articles[slug]
		a.Title, a.Body, a.TagList = body.Article.Title, body.Article.Body, body.Article.TagList
		f.articles[slug] = a
		writeJSON(w, http.StatusOK, map[string]any{"article": a})
	})
	r.Delete("/articles/{slug}", func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		delete(f.articles, slug)
		w.WriteHeader(http.StatusNoContent)
	})
}

func newService(t *testing.T, token string) (ArticleService, *fakeServer) {
	t.Helper()
	f := &fakeServer{
		articles: map[string]models.Article{
			"dragons": {Slug: "dragons", Title: "Dragons", TagList: []string{"dragons", "training"}},
		},
		tags: []string{"dragons", "training"},
	}
	r := chi.NewRouter()
	r.Route("/api", f.routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := client.New(client.Options{BaseURL: srv.URL, Credentials: client.StaticToken(token)})
	return NewArticleService(c, nil), f
}

// ---- tests ----

func TestArticleService_Get(t *testing.T) {
	svc, _ := newService(t, "")

	a, err := svc.Get(context.Background(), "dragons")
	require.NoError(t, err)
	assert.Equal(t, "Dragons", a.Title)
	assert.True(t, a.HasTag("training"))

	_, err = svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, client.ErrNotFound)
}

func TestArticleService_Create_NormalisesTags(t *testing.T) {
	svc, f := newService(t, "jwt")

	a, err := svc.Create(context.Background(), models.ArticleDraft{
		Title:   "How to train your dragon",
		Body:    "You have to believe",
		TagList: []string{" dragons ", "", "training", "dragons"},
	})
	require.NoError(t, err)
	assert.Equal(t, "how-to-train-your-dragon", a.Slug)
	assert.Equal(t, []string{"dragons", "training"}, f.LastDraft.TagList)
	assert.Equal(t, "Token jwt", f.LastAuth)
}

func TestArticleService_Create_ValidationErrors(t *testing.T) {
	svc, _ := newService(t, "jwt")

	_, err := svc.Create(context.Background(), models.ArticleDraft{})
	require.ErrorIs(t, err, client.ErrValidation)
	assert.Equal(t, []string{"body can't be blank", "title can't be blank"}, FormErrors(err))
}

func TestArticleService_Update(t *testing.T) {
	svc, f := newService(t, "jwt")

	draft := models.DraftFrom(models.Article{Title: "Dragons", TagList: []string{"dragons"}})
	draft.Body = "updated"
	a, err := svc.Update(context.Background(), "dragons", draft)
	require.NoError(t, err)
	assert.Equal(t, "updated", a.Body)
	assert.Equal(t, []string{"dragons"}, f.LastDraft.TagList)
}

func TestArticleService_Delete(t *testing.T) {
	svc, f := newService(t, "jwt")
	require.NoError(t, svc.Delete(context.Background(), "dragons"))
	assert.NotContains(t, f.articles, "dragons")

	anon, _ := newService(t, "")
	err := anon.Delete(context.Background(), "dragons")
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestArticleService_Tags(t *testing.T) {
	svc, _ := newService(t, "")
	tags, err := svc.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"dragons", "training"}, tags)
}

func TestArticleService_Unavailable(t *testing.T) {
	c := client.New(client.Options{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	svc := NewArticleService(c, nil)

	_, err := svc.Tags(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, []string{"the server could not be reached"}, FormErrors(err))
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"go", []string{"go"}},
		{"go, rust,go", []string{"go", "rust"}},
		{"  a  b\tc ", []string{"a", "b", "c"}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTags(tc.in))
		})
	}
}

func TestFormErrors(t *testing.T) {
	assert.Nil(t, FormErrors(nil))
	assert.Equal(t, []string{"plain"}, FormErrors(errors.New("plain")))
	assert.Equal(t, []string{"the server took too long to respond"},
		FormErrors(&client.Error{Err: client.ErrUnavailable, Cause: context.DeadlineExceeded}))
	assert.Equal(t, []string{"you need to sign in to do that"},
		FormErrors(&client.Error{Err: client.ErrUnauthorized, Status: 401}))
}
