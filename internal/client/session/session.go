// Package session owns the authenticated-identity state of the client: the
// bearer token, the validated user profile, and their persistence across
// restarts.
//
// Invariant: the user is non-nil if and only if the token is non-empty and
// was validated against the remote API. Every operation terminates with the
// session either Authenticated or Anonymous, never in between.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/foodcourt/internal/client/models"
	"github.com/dmitrijs2005/foodcourt/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// invalidateTimeout bounds the detached logout call to the remote API.
const invalidateTimeout = 3 * time.Second

// API is the slice of the remote client the session store needs.
type API interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	InvalidateSession(ctx context.Context, token string) error
	SetToken(token string)
}

// Store is the single source of truth for "who is logged in". It pushes the
// current token into the API client on every transition so request
// authorization can never go stale.
type Store struct {
	api  API
	repo tokens.Repository
	log  logging.Logger

	token string
	user  *models.User
}

func NewStore(api API, repo tokens.Repository, log logging.Logger) *Store {
	return &Store{api: api, repo: repo, log: log}
}

// Restore loads a previously persisted token and validates it by fetching
// the user profile. Any failure (missing token, expired token, unreachable
// server) leaves the session anonymous with the stale token purged; Restore
// itself never fails.
func (s *Store) Restore(ctx context.Context) {
	token, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "could not read persisted token", "error", err)
		s.toAnonymous(ctx, false)
		return
	}
	if token == "" {
		s.toAnonymous(ctx, false)
		return
	}

	// The API issues JWTs; if the registered exp claim is already in the
	// past there is no point spending a round-trip on a fetch that can only
	// return 401. Tokens that do not parse as JWTs skip the pre-check.
	if expired, ok := tokenExpired(token); ok && expired {
		s.log.Info(ctx, "persisted token expired, starting anonymous")
		s.toAnonymous(ctx, true)
		return
	}

	s.api.SetToken(token)
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "persisted token rejected, starting anonymous", "error", err)
		s.toAnonymous(ctx, true)
		return
	}

	s.token = token
	s.user = user
	s.log.Info(ctx, "session restored", "user", user.Email)
}

// Login authenticates with the given credentials, persists the token, and
// fetches the user profile. If the profile fetch fails the token is purged
// before returning, so a failed login never leaves a token without a
// validated user.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Authenticate(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := s.repo.Set(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	s.api.SetToken(token)

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.toAnonymous(ctx, true)
		return fmt.Errorf("fetch profile: %w", err)
	}

	s.token = token
	s.user = user
	return nil
}

// Logout clears the session locally and synchronously; it always succeeds.
// Remote invalidation runs as a detached best-effort call whose failure is
// only logged.
func (s *Store) Logout(ctx context.Context) {
	token := s.token
	s.toAnonymous(ctx, true)

	if token == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
		defer cancel()
		if err := s.api.InvalidateSession(ctx, token); err != nil {
			s.log.Warn(ctx, "remote session invalidation failed", "error", err)
		}
	}()
}

// toAnonymous resets the in-memory state and the API client token, and,
// when purge is set, removes the persisted token as well.
func (s *Store) toAnonymous(ctx context.Context, purge bool) {
	if purge {
		if err := s.repo.Clear(ctx); err != nil {
			s.log.Warn(ctx, "could not purge persisted token", "error", err)
		}
	}
	s.token = ""
	s.user = nil
	s.api.SetToken("")
}

// IsAuthenticated reports whether a validated user is present.
func (s *Store) IsAuthenticated() bool {
	return s.user != nil
}

// IsAdmin is derived from the current user on every call; it is never
// cached separately.
func (s *Store) IsAdmin() bool {
	return s.user.IsAdmin()
}

// User returns the current profile, or nil when anonymous.
func (s *Store) User() *models.User {
	return s.user
}

// tokenExpired reports (expired, true) when the token parses as a JWT with
// an exp claim; ok is false when no verdict can be made locally.
func tokenExpired(token string) (bool, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, false
	}
	return exp.Before(time.Now()), true
}
