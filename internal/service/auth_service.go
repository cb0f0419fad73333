package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/garajhub/admin-panel/internal/config"
	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/repository"
	"github.com/gorilla/securecookie"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookieName is the cookie holding the encoded session ID.
const SessionCookieName = "garajhub_session"

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingField       = errors.New("username and password are required")
	ErrInvalidSession     = errors.New("invalid session")
)

// AuthService checks credentials against the admin registry and manages
// server-side sessions behind a signed cookie.
type AuthService struct {
	accounts  []model.AdminAccount
	byName    map[string]int
	dummyHash []byte

	sessions repository.SessionStore
	codec    *securecookie.SecureCookie
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger

	mu        sync.Mutex
	lastLogin map[string]time.Time
}

// NewAuthService creates a new AuthService. An empty SecretKey yields random
// cookie keys, so sessions do not survive a restart.
func NewAuthService(
	cfg *config.Config,
	accounts []model.AdminAccount,
	sessions repository.SessionStore,
	log zerolog.Logger,
) (*AuthService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("garajhub-unknown-admin"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}

	byName := make(map[string]int, len(accounts))
	for i, a := range accounts {
		byName[a.Username] = i
	}

	codec := securecookie.New(cookieKeys(cfg.SecretKey))
	codec.MaxAge(int(cfg.SessionTTL.Seconds()))

	return &AuthService{
		accounts:  accounts,
		byName:    byName,
		dummyHash: dummy,
		sessions:  sessions,
		codec:     codec,
		ttl:       cfg.SessionTTL,
		now:       time.Now,
		log:       log.With().Str("component", "auth_service").Logger(),
		lastLogin: make(map[string]time.Time),
	}, nil
}

// cookieKeys derives the hash and block keys from the secret.
func cookieKeys(secret string) ([]byte, []byte) {
	if secret == "" {
		return securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32)
	}
	hashKey := sha256.Sum256([]byte("hash:" + secret))
	blockKey := sha256.Sum256([]byte("block:" + secret))
	return hashKey[:], blockKey[:]
}

// Login verifies the credentials, creates a session and returns the encoded
// cookie value with the matched account.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.AdminAccount, error) {
	if username == "" || password == "" {
		return "", nil, ErrMissingField
	}

	idx, ok := s.byName[username]
	if !ok {
		// Burn the same bcrypt time for unknown users.
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return "", nil, ErrInvalidCredentials
	}
	account := s.accounts[idx]
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := s.now()
	id, err := s.sessions.Create(ctx, &model.Session{
		Authenticated: true,
		Username:      account.Username,
		Role:          account.Role,
		FullName:      account.FullName,
		CreatedAt:     now,
	}, s.ttl)
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	encoded, err := s.codec.Encode(SessionCookieName, id)
	if err != nil {
		_ = s.sessions.Delete(ctx, id)
		return "", nil, fmt.Errorf("encode cookie: %w", err)
	}

	s.mu.Lock()
	s.lastLogin[account.Username] = now
	s.mu.Unlock()

	s.log.Info().Str("username", account.Username).Msg("Admin logged in")
	return encoded, &account, nil
}

// Authenticate resolves a cookie value to its live session.
func (s *AuthService) Authenticate(ctx context.Context, cookie string) (*model.Session, error) {
	id, err := s.decode(cookie)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if !sess.Authenticated {
		return nil, ErrInvalidSession
	}
	return sess, nil
}

// Logout deletes the session behind cookie. Unknown or garbled cookies are ignored.
func (s *AuthService) Logout(ctx context.Context, cookie string) error {
	id, err := s.decode(cookie)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CheckAuth never fails; any lookup problem reads as logged out.
func (s *AuthService) CheckAuth(ctx context.Context, cookie string) (bool, *model.AdminSummary) {
	sess, err := s.Authenticate(ctx, cookie)
	if err != nil {
		if !errors.Is(err, ErrInvalidSession) {
			s.log.Warn().Err(err).Msg("Session lookup failed")
		}
		return false, nil
	}
	summary := sess.Summary()
	return true, &summary
}

// Admins lists the registry in its configured order with tracked last-login times.
func (s *AuthService) Admins() []model.AdminListItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.AdminListItem, 0, len(s.accounts))
	for i, a := range s.accounts {
		item := model.AdminListItem{
			ID:        i + 1,
			Username:  a.Username,
			FullName:  a.FullName,
			Email:     a.Email,
			Role:      a.Role,
			CreatedAt: a.CreatedAt,
		}
		if t, ok := s.lastLogin[a.Username]; ok {
			t := t
			item.LastLogin = &t
		}
		out = append(out, item)
	}
	return out
}

func (s *AuthService) decode(cookie string) (string, error) {
	if cookie == "" {
		return "", ErrInvalidSession
	}
	var id string
	if err := s.codec.Decode(SessionCookieName, cookie, &id); err != nil {
		return "", ErrInvalidSession
	}
	return id, nil
}
