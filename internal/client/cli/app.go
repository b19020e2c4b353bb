package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/conduit/internal/client/client"
	"github.com/dmitrijs2005/conduit/internal/client/collection"
	"github.com/dmitrijs2005/conduit/internal/client/config"
	"github.com/dmitrijs2005/conduit/internal/client/models"
	"github.com/dmitrijs2005/conduit/internal/client/services"
	"github.com/dmitrijs2005/conduit/internal/client/session"
	"github.com/dmitrijs2005/conduit/internal/client/storage"
	"github.com/dmitrijs2005/conduit/internal/logging"
)

// Session is the part of session.Store the CLI uses.
type Session interface {
	Credential() string
	User() (models.User, bool)
	LastEmail(ctx context.Context) string
	Subscribe(l session.Listener)
	Login(ctx context.Context, email, password string) (models.User, error)
	Signup(ctx context.Context, username, email, password string) (models.User, error)
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
	Stored(ctx context.Context) (map[string]string, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// Deps are the collaborators an App renders and drives.
type Deps struct {
	Session  Session
	Articles services.ArticleService
	Feed     *collection.Feed
	Comments *collection.Comments
	Profile  *collection.ProfileView
	Logger   logging.Logger
}

type App struct {
	session  Session
	articles services.ArticleService
	feed     *collection.Feed
	comments *collection.Comments
	profile  *collection.ProfileView
	logger   logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// set by NewApp only
	db    *sql.DB
	store *session.Store

	mu       sync.Mutex
	signedIn bool
}

// NewApp opens the local database, restores the saved session and wires the
// API client, collections and services for an interactive session on
// stdin/stdout.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	var store *session.Store
	api := client.New(client.Options{
		BaseURL:     cfg.APIURL,
		Timeout:     cfg.RequestTimeout,
		Credentials: client.CredentialFunc(func() string { return store.Credential() }),
		Logger:      logger,
	})
	store = session.NewStore(db, api, logger)
	if err := store.Open(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	app := newApp(Deps{
		Session:  store,
		Articles: services.NewArticleService(api, logger),
		Feed:     collection.NewFeed(api, store, cfg.PageSize, logger),
		Comments: collection.NewComments(api, logger),
		Profile:  collection.NewProfileView(api, logger),
		Logger:   logger,
	}, os.Stdin, os.Stdout)
	app.db = db
	app.store = store
	return app, nil
}

func newApp(d Deps, in io.Reader, out io.Writer) *App {
	logger := d.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	a := &App{
		session:  d.Session,
		articles: d.Articles,
		feed:     d.Feed,
		comments: d.Comments,
		profile:  d.Profile,
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      &syncWriter{w: out},
		signedIn: d.Session.Credential() != "",
	}

	a.session.Subscribe(a.onSessionChange)
	a.feed.OnChange(a.renderFeed)
	a.comments.OnChange(a.renderComments)
	a.profile.OnChange(a.renderProfile)
	return a
}

// onSessionChange tells the user when a background revalidation signed them
// out.
func (a *App) onSessionChange(token string, _ *models.User) {
	a.mu.Lock()
	was := a.signedIn
	a.signedIn = token != ""
	a.mu.Unlock()

	if was && token == "" {
		fmt.Fprintln(a.out, "You have been signed out.")
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Credential() != ""
}

func (a *App) getStatus() string {
	s := "guest"
	if u, ok := a.session.User(); ok {
		s = u.Username
	} else if a.isLoggedIn() {
		s = "signed in"
	}
	if mode, ok := a.feed.Filter(); ok {
		st := a.feed.State()
		s = fmt.Sprintf("%s | %s p%d/%d", s, mode, st.Page, max(st.Pages(), 1))
	}
	return "(" + s + ")"
}

// Run shows the home feed and the popular tags, then reads commands until
// the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Conduit (type 'help' for commands)")

	report(a.home(ctx))
	report(a.Tags(ctx))

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(lineReader{a.reader}))
}

// home lists the personal feed when signed in and the global feed otherwise.
func (a *App) home(ctx context.Context) error {
	if a.isLoggedIn() {
		return a.feed.SetFilter(ctx, collection.Personal())
	}
	return a.feed.SetFilter(ctx, collection.Global())
}

// Close waits for background session work and releases the local database.
func (a *App) Close() error {
	if a.store != nil {
		a.store.Wait()
	}
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// syncWriter serialises output from the REPL and from session listeners,
// which run on their own goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
