package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
	"github.com/aussiebroadwan/ngxblog/pkg/cryptox"
	"github.com/aussiebroadwan/ngxblog/pkg/idx"
	"github.com/aussiebroadwan/ngxblog/pkg/jwtx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
)

type UserService struct {
	Store   store.Store
	Hasher  cryptox.Hasher
	Signer  jwtx.Signer
	Policy  PasswordPolicy
	Metrics *Metrics

	// Now is the clock used for token issuance.
	Now func() time.Time

	dummyOnce sync.Once
	dummy     cryptox.PasswordHash
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// NormalizeEmail lowercases and trims an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates a user with a freshly salted hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if err := requireFields("email", in.Email, "password", in.Password); err != nil {
		return domain.User{}, err
	}

	ph, err := s.Hasher.Hash(in.Password)
	if err != nil {
		l.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        NormalizeEmail(in.Email),
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: ph.Hash,
		Salt:         ph.Salt,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		l.Error("failed to create user", "error", err)
		return domain.User{}, err
	}

	l.Info("user registered", "user_id", u.ID)
	return u, nil
}

// Login verifies credentials and issues a session token. Unknown emails and
// wrong passwords both return ErrInvalidCredentials after doing the same
// amount of hashing work.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	if err := requireFields("email", email, "password", password); err != nil {
		return domain.User{}, "", err
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	switch {
	case errors.Is(err, store.ErrNotFound):
		dummy := s.dummyHash()
		s.Hasher.Verify(password, dummy.Hash, dummy.Salt)
		s.Metrics.login("invalid")
		return domain.User{}, "", ErrInvalidCredentials
	case err != nil:
		l.Error("failed to get user", "error", err)
		return domain.User{}, "", err
	}

	if !s.Hasher.Verify(password, u.PasswordHash, u.Salt) {
		s.Metrics.login("invalid")
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.Signer.Issue(jwtx.Identity{ID: u.ID, Username: u.Email}, s.now())
	if err != nil {
		l.Error("failed to issue token", "error", err)
		return domain.User{}, "", err
	}

	s.Metrics.login("ok")
	return u, token, nil
}

// GetByUsername returns the user a session token was issued to.
func (s *UserService) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(username))
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// ChangePassword replaces the password of username after checking the
// current one. The policy runs before any store access.
func (s *UserService) ChangePassword(ctx context.Context, username, current, next string) error {
	l := slogx.FromContext(ctx)

	if err := requireFields("password", current, "newpassword", next); err != nil {
		return err
	}
	if err := s.Policy.Check(next); err != nil {
		return err
	}

	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !s.Hasher.Verify(current, u.PasswordHash, u.Salt) {
		return ErrWrongPassword
	}

	ph, err := s.Hasher.Hash(next)
	if err != nil {
		l.Error("failed to hash password", "error", err)
		return err
	}
	if err := s.Store.Users().UpdatePassword(ctx, u.ID, ph.Hash, ph.Salt); err != nil {
		l.Error("failed to update password", "error", err)
		return err
	}

	l.Info("password changed", "user_id", u.ID)
	return nil
}

func (s *UserService) dummyHash() cryptox.PasswordHash {
	s.dummyOnce.Do(func() {
		s.dummy, _ = s.Hasher.Hash(cryptox.MustGenerateToken(cryptox.TokenSize128))
	})
	return s.dummy
}
