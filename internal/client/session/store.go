package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/conduit/internal/client/models"
	"github.com/dmitrijs2005/conduit/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/conduit/internal/dbx"
	"github.com/dmitrijs2005/conduit/internal/logging"
)

const (
	credentialKey = "token"
	lastEmailKey  = "email"
)

// API is the part of the Conduit client the store talks to.
type API interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Register(ctx context.Context, username, email, password string) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	UserForToken(ctx context.Context, token string) (models.User, error)
}

// Listener is called after every credential or identity change. user is nil
// when no identity is known.
type Listener func(token string, user *models.User)

type Store struct {
	db     *sql.DB
	api    API
	logger logging.Logger
	now    func() time.Time

	// writeMu serialises credential writes (memory and storage together).
	writeMu sync.Mutex

	mu        sync.RWMutex
	token     string
	user      *models.User
	listeners []Listener

	refreshes sync.WaitGroup
}

func NewStore(db *sql.DB, api API, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{
		db:     db,
		api:    api,
		logger: logger.With("component", "session"),
		now:    time.Now,
	}
}

func (s *Store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Open loads the persisted credential. A token whose JWT expiry has passed is
// discarded without asking the server; any other token is revalidated in the
// background.
func (s *Store) Open(ctx context.Context) error {
	token, ok, err := s.repo(s.db).Get(ctx, credentialKey)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if !ok || token == "" {
		return nil
	}

	if expired(token, s.now()) {
		s.logger.Info(ctx, "stored credential expired, discarding")
		return s.SetCredential(ctx, "")
	}

	s.writeMu.Lock()
	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()
	s.startRefresh(ctx, token)
	s.writeMu.Unlock()

	s.notify()
	return nil
}

// expired reports whether token is a JWT with an exp claim in the past.
// Tokens that are not JWTs are left for the server to judge.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}

// Credential returns the current token or "" when signed out.
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the identity behind the current credential, if known.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// LastEmail returns the email of the most recent successful sign-in, used
// to prefill the login prompt.
func (s *Store) LastEmail(ctx context.Context) string {
	email, _, err := s.repo(s.db).Get(ctx, lastEmailKey)
	if err != nil {
		s.logger.Warn(ctx, "failed to read last email", "error", err)
	}
	return email
}

func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Wait blocks until all in-flight identity refreshes have finished.
func (s *Store) Wait() {
	s.refreshes.Wait()
}

// SetCredential replaces the credential, persisting it (or removing it when
// token is empty) before returning. A non-empty token triggers an
// asynchronous identity refresh.
func (s *Store) SetCredential(ctx context.Context, token string) error {
	return s.write(ctx, token, nil, "")
}

// Login signs in and stores the returned token and identity. On failure the
// store is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return models.User{}, classifyLogin(err)
	}
	if user.Token == "" {
		return models.User{}, fmt.Errorf("login: %w", errNoToken)
	}
	if err := s.write(ctx, user.Token, &user, email); err != nil {
		return models.User{}, err
	}
	s.logger.Info(ctx, "signed in", "username", user.Username)
	return user, nil
}

// Signup registers a new account and signs it in.
func (s *Store) Signup(ctx context.Context, username, email, password string) (models.User, error) {
	user, err := s.api.Register(ctx, username, email, password)
	if err != nil {
		return models.User{}, classifySignup(err)
	}
	if user.Token == "" {
		return models.User{}, fmt.Errorf("signup: %w", errNoToken)
	}
	if err := s.write(ctx, user.Token, &user, email); err != nil {
		return models.User{}, err
	}
	s.logger.Info(ctx, "signed up", "username", user.Username)
	return user, nil
}

// Logout forgets the credential and identity. It does not contact the server.
func (s *Store) Logout(ctx context.Context) error {
	return s.write(ctx, "", nil, "")
}

// UpdateUser saves account settings and adopts the identity the server
// returns, including a reissued token if there is one. If the credential
// changed while the request was in flight the response is not adopted and
// ErrSessionChanged is returned.
func (s *Store) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	before := s.Credential()
	user, err := s.api.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, fmt.Errorf("update user: %w", err)
	}

	s.writeMu.Lock()
	current := s.Credential()
	if current == "" || current != before {
		s.writeMu.Unlock()
		return models.User{}, ErrSessionChanged
	}
	token := user.Token
	if token == "" {
		token = current
	}
	err = s.persistLocked(ctx, token, &user, "")
	s.writeMu.Unlock()
	if err != nil {
		return models.User{}, err
	}

	s.notify()
	return user, nil
}

// Forget signs out and removes everything stored locally, including the
// last login email.
func (s *Store) Forget(ctx context.Context) error {
	s.writeMu.Lock()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Clear(ctx)
	})
	if err != nil {
		s.writeMu.Unlock()
		return fmt.Errorf("forget local session: %w", err)
	}
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.writeMu.Unlock()

	s.notify()
	return nil
}

// Stored returns the locally persisted keys and values. The credential is
// masked.
func (s *Store) Stored(ctx context.Context) (map[string]string, error) {
	values, err := s.repo(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	if tok, ok := values[credentialKey]; ok {
		values[credentialKey] = mask(tok)
	}
	return values, nil
}

func mask(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// write is the only path that changes the credential outside UpdateUser.
// user, when non-nil, is adopted as the identity; otherwise a non-empty
// token is revalidated.
func (s *Store) write(ctx context.Context, token string, user *models.User, email string) error {
	s.writeMu.Lock()
	err := s.persistLocked(ctx, token, user, email)
	s.writeMu.Unlock()
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// persistLocked must be called with writeMu held.
func (s *Store) persistLocked(ctx context.Context, token string, user *models.User, email string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if token == "" {
			if err := repo.Delete(ctx, credentialKey); err != nil {
				return err
			}
		} else if err := repo.Set(ctx, credentialKey, token); err != nil {
			return err
		}
		if email != "" {
			return repo.Set(ctx, lastEmailKey, email)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	if token != "" && user != nil {
		u := *user
		s.user = &u
	}
	s.mu.Unlock()

	if token != "" && user == nil {
		s.startRefresh(ctx, token)
	}
	return nil
}

// clearIf drops the credential only if it still equals token, so a
// rejection never removes a newer credential.
func (s *Store) clearIf(ctx context.Context, token string) {
	s.writeMu.Lock()
	if s.Credential() != token {
		s.writeMu.Unlock()
		return
	}
	if err := s.repo(s.db).Delete(ctx, credentialKey); err != nil {
		s.logger.Error(ctx, "failed to remove rejected credential", "error", err)
	}
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.writeMu.Unlock()

	s.notify()
}

func (s *Store) startRefresh(ctx context.Context, token string) {
	s.refreshes.Add(1)
	go s.refresh(context.WithoutCancel(ctx), token)
}

func (s *Store) refresh(ctx context.Context, token string) {
	defer s.refreshes.Done()

	user, err := s.api.UserForToken(ctx, token)

	if err != nil {
		s.logger.Warn(ctx, "credential rejected, signing out", "error", err)
		s.clearIf(ctx, token)
		return
	}

	s.mu.Lock()
	if s.token != token {
		s.mu.Unlock()
		s.logger.Debug(ctx, "discarding identity for superseded credential")
		return
	}
	s.user = &user
	s.mu.Unlock()

	s.notify()
}

func (s *Store) notify() {
	s.mu.RLock()
	token := s.token
	var user *models.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, l := range listeners {
		l(token, user)
	}
}
