package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/conduit/internal/client/models"
)

type seen struct {
	auth      string
	agent     string
	requestID string
	query     map[string]string
	body      map[string]any
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newServer mounts r under /api and returns a client pointed at it.
func newServer(t *testing.T, creds CredentialSource, mount func(r chi.Router)) *Client {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api", mount)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/", Credentials: creds})
}

func capture(s *seen, r *http.Request) {
	s.auth = r.Header.Get("Authorization")
	s.agent = r.Header.Get("User-Agent")
	s.requestID = r.Header.Get(requestIDHeader)
	s.query = map[string]string{}
	for k := range r.URL.Query() {
		s.query[k] = r.URL.Query().Get(k)
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&s.body)
	}
}

func TestRequest_AttachesTokenWhenAuthenticated(t *testing.T) {
	var got seen
	c := newServer(t, StaticToken("jwt.token.here"), func(r chi.Router) {
		r.Get("/user", func(w http.ResponseWriter, r *http.Request) {
			capture(&got, r)
			writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"username": "jake", "email": "jake@jake.jake"}})
		})
	})

	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jake", u.Username)
	assert.Equal(t, "Token jwt.token.here", got.auth)
	assert.Equal(t, defaultAgent, got.agent)
	assert.NotEmpty(t, got.requestID)
}

func TestRequest_OmitsHeaderWithoutCredential(t *testing.T) {
	var got seen
	c := newServer(t, nil, func(r chi.Router) {
		r.Get("/articles", func(w http.ResponseWriter, r *http.Request) {
			capture(&got, r)
			writeJSON(w, http.StatusOK, ArticlePage{})
		})
	})

	_, err := c.ListArticles(context.Background(), ArticleQuery{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, got.auth)
}

func TestRequest_OmitsHeaderForPublicEndpoints(t *testing.T) {
	var got seen
	c := newServer(t, StaticToken("t"), func(r chi.Router) {
		r.Get("/tags", func(w http.ResponseWriter, r *http.Request) {
			capture(&got, r)
			writeJSON(w, http.StatusOK, map[string]any{"tags": []string{"dragons", "go"}})
		})
	})

	tags, err := c.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"dragons", "go"}, tags)
	assert.Empty(t, got.auth)
}

func TestWithToken_OverridesSource(t *testing.T) {
	var got seen
	c := newServer(t, StaticToken("old"), func(r chi.Router) {
		r.Get("/user", func(w http.ResponseWriter, r *http.Request) {
			capture(&got, r)
			writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{}})
		})
	})

	_, err := c.WithToken("new").CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Token new", got.auth)
}

func TestListArticles_BuildsQuery(t *testing.T) {
	var got seen
	c := newServer(t, nil, func(r chi.Router) {
		r.Get("/articles", func(w http.ResponseWriter, r *http.Request) {
			capture(&got, r)
			writeJSON(w, http.StatusOK, map[string]any{
				"articles":      []map[string]any{{"slug": "a"}, {"slug": "b"}, {"slug": "c"}},
				"articlesCount": 3,
			})
		})
	})

	page, err := c.ListArticles(context.Background(), ArticleQuery{Tag: "go", Favorited: "jake", Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"limit": "10", "offset": "20", "tag": "go", "favorited": "jake"}, got.query)
	assert.Equal(t, 3, page.ArticlesCount)
	require.Len(t, page.Articles, 3)
	assert.Equal(t, "c", page.Articles[2].Slug)
}

func TestFeed_UsesFeedPath(t *testing.T) {
	var got seen
	c := newServer(t, StaticToken("t"), func(r chi.Router) {
		r.Get("/articles/feed", func(w http.ResponseWriter, r *http.Request) {
			capture(&got, r)
			writeJSON(w, http.StatusOK, ArticlePage{ArticlesCount: 0})
		})
	})

	_, err := c.Feed(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Equal(t, "Token t", got.auth)
	assert.Equal(t, map[string]string{"limit": "10", "offset": "10"}, got.query)
}

func TestFavoriteAndUnfavorite(t *testing.T) {
	var methods []string
	c := newServer(t, StaticToken("t"), func(r chi.Router) {
		fav := func(favorited bool, count int) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				methods = append(methods, r.Method+" "+chi.URLParam(r, "slug"))
				writeJSON(w, http.StatusOK, map[string]any{"article": map[string]any{
					"slug": chi.URLParam(r, "slug"), "favorited": favorited, "favoritesCount": count,
				}})
			}
		}
		r.Post("/articles/{slug}/favorite", fav(true, 1))
		r.Delete("/articles/{slug}/favorite", fav(false, 0))
	})

	a, err := c.FavoriteArticle(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, a.Favorited)
	assert.Equal(t, 1, a.FavoritesCount)

	a, err = c.UnfavoriteArticle(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, a.Favorited)

	assert.Equal(t, []string{"POST s1", "DELETE s1"}, methods)
}

func TestCreateArticle_SendsEnvelope(t *testing.T) {
	var got seen
	c := newServer(t, StaticToken("t"), func(r chi.Router) {
		r.Post("/articles", func(w http.ResponseWriter, r *http.Request) {
			capture(&got, r)
			writeJSON(w, http.StatusCreated, map[string]any{"article": map[string]any{"slug": "new-slug", "title": "New"}})
		})
	})

	a, err := c.CreateArticle(context.Background(), models.ArticleDraft{Title: "New", Description: "d", Body: "b", TagList: []string{"x"}})
	require.NoError(t, err)
	assert.Equal(t, "new-slug", a.Slug)

	inner, ok := got.body["article"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "New", inner["title"])
	assert.Equal(t, []any{"x"}, inner["tagList"])
}

func TestComments_AddAndDelete(t *testing.T) {
	var deleted string
	c := newServer(t, StaticToken("t"), func(r chi.Router) {
		r.Post("/articles/{slug}/comments", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			writeJSON(w, http.StatusOK, map[string]any{"comment": map[string]any{"id": 7, "body": body["comment"]["body"]}})
		})
		r.Delete("/articles/{slug}/comments/{id}", func(w http.ResponseWriter, r *http.Request) {
			deleted = chi.URLParam(r, "slug") + "/" + chi.URLParam(r, "id")
			w.WriteHeader(http.StatusOK)
		})
	})

	cm, err := c.AddComment(context.Background(), "s1", "nice")
	require.NoError(t, err)
	assert.Equal(t, 7, cm.ID)
	assert.Equal(t, "nice", cm.Body)

	require.NoError(t, c.DeleteComment(context.Background(), "s1", 7))
	assert.Equal(t, "s1/7", deleted)
}

func TestFollowUser(t *testing.T) {
	c := newServer(t, StaticToken("t"), func(r chi.Router) {
		r.Post("/profiles/{username}/follow", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"profile": map[string]any{"username": chi.URLParam(r, "username"), "following": true}})
		})
	})

	p, err := c.FollowUser(context.Background(), "jake")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{Username: "jake", Following: true}, p)
}

func TestRequest_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		kind   error
		fields map[string][]string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, kind: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, kind: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, kind: ErrNotFound},
		{
			name:   "validation",
			status: http.StatusUnprocessableEntity,
			body:   map[string]any{"errors": map[string][]string{"email or password": {"is invalid"}}},
			kind:   ErrValidation,
			fields: map[string][]string{"email or password": {"is invalid"}},
		},
		{name: "server error", status: http.StatusInternalServerError, kind: ErrUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newServer(t, nil, func(r chi.Router) {
				r.Post("/users/login", func(w http.ResponseWriter, r *http.Request) {
					writeJSON(w, tt.status, tt.body)
				})
			})

			_, err := c.Login(context.Background(), "a@b.com", "badpass")
			require.ErrorIs(t, err, tt.kind)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.fields, apiErr.Fields)
		})
	}
}

func TestRequest_NetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Options{BaseURL: url})
	_, err := c.Tags(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRequest_UndecodablePayloadIsUnexpected(t *testing.T) {
	c := newServer(t, nil, func(r chi.Router) {
		r.Get("/tags", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>"))
		})
	})

	_, err := c.Tags(context.Background())
	require.ErrorIs(t, err, ErrUnexpected)
}

func TestRequest_ContextCanceled(t *testing.T) {
	c := newServer(t, nil, func(r chi.Router) {
		r.Get("/tags", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"tags": []string{}})
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Tags(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCredentialFunc_ReadsAtRequestTime(t *testing.T) {
	token := ""
	var got seen
	c := newServer(t, CredentialFunc(func() string { return token }), func(r chi.Router) {
		r.Get("/user", func(w http.ResponseWriter, r *http.Request) {
			capture(&got, r)
			writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"username": "jake"}})
		})
	})

	_, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.auth)

	token = "late"
	_, err = c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Token late", got.auth)
}
