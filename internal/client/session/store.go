// Package session keeps the client's authentication state: the persisted
// bearer token, the forced password reset flag and the current user.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/dmitrijs2005/taskdeck/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/taskdeck/internal/common"
	"github.com/dmitrijs2005/taskdeck/internal/dbx"
)

// State is a snapshot of the in-memory part of a Store.
type State struct {
	User                  *models.User
	PasswordResetRequired bool
}

// Store is the process-wide authentication state. The token lives only in
// the metadata table; the user record lives only in memory.
type Store struct {
	db *sql.DB

	mu          sync.RWMutex
	user        *models.User
	resetNeeded bool
	subs        map[int]func(State)
	nextSub     int
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, subs: map[int]func(State){}}
}

func (s *Store) repo(q dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(q)
}

// Load restores the reset flag persisted by an earlier run.
func (s *Store) Load(ctx context.Context) error {
	v, ok, err := s.repo(s.db).Get(ctx, common.PasswordResetStorageKey)
	if err != nil {
		return err
	}
	flag := false
	if ok {
		flag, _ = strconv.ParseBool(v)
	}
	s.update(func() { s.resetNeeded = flag })
	return nil
}

// Token returns the persisted bearer token, or "" when there is none.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, _, err := s.repo(s.db).Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return v, nil
}

// IsAuthenticated reports whether a token is stored. It reads storage on
// every call and never contacts the server.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

// SaveLogin persists the token and reset flag of a successful login or
// registration.
func (s *Store) SaveLogin(ctx context.Context, resp *models.AuthResponse) error {
	if resp == nil || resp.AccessToken == "" {
		return fmt.Errorf("save login: empty access token")
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, common.TokenStorageKey, resp.AccessToken); err != nil {
			return err
		}
		return r.Set(ctx, common.PasswordResetStorageKey, strconv.FormatBool(resp.PasswordResetRequired))
	})
	if err != nil {
		return fmt.Errorf("save login: %w", err)
	}
	s.update(func() { s.resetNeeded = resp.PasswordResetRequired })
	return nil
}

// SetPasswordResetRequired persists and publishes the reset flag.
func (s *Store) SetPasswordResetRequired(ctx context.Context, required bool) error {
	if err := s.repo(s.db).Set(ctx, common.PasswordResetStorageKey, strconv.FormatBool(required)); err != nil {
		return err
	}
	s.update(func() { s.resetNeeded = required })
	return nil
}

func (s *Store) SetUser(u *models.User) {
	var cp *models.User
	if u != nil {
		c := *u
		cp = &c
	}
	s.update(func() { s.user = cp })
}

// Clear forgets the token, the reset flag and the current user.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo(s.db).Delete(ctx, common.TokenStorageKey, common.PasswordResetStorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.update(func() {
		s.user = nil
		s.resetNeeded = false
	})
	return nil
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *models.User {
	return s.State().User
}

func (s *Store) PasswordResetRequired() bool {
	return s.State().PasswordResetRequired
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Subscribe calls fn with the current state and again after every change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	st := s.snapshot()
	s.mu.Unlock()

	fn(st)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshot must be called with mu held.
func (s *Store) snapshot() State {
	st := State{PasswordResetRequired: s.resetNeeded}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

func (s *Store) update(fn func()) {
	s.mu.Lock()
	fn()
	st := s.snapshot()
	subs := make([]func(State), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(st)
	}
}
