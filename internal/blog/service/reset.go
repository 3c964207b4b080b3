package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
	"github.com/aussiebroadwan/ngxblog/pkg/cryptox"
	"github.com/aussiebroadwan/ngxblog/pkg/mailx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
	"github.com/google/uuid"
)

const resetSubject = "Welcome to Ngx Blog"

// ResetService moves a user between "no reset pending" and "reset pending".
type ResetService struct {
	Store   store.Store
	Hasher  cryptox.Hasher
	Mail    *Dispatcher
	Metrics *Metrics

	// AppDomain prefixes the link sent in reset emails.
	AppDomain string

	// TTL expires pending resets. Zero keeps them until consumed.
	TTL time.Duration

	Now func() time.Time
}

func (s *ResetService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RequestReset stores a new reset id for email and returns it. An unknown
// email or an already pending reset both yield ErrResetNotFound. The id is
// only returned once it has been written.
func (s *ResetService) RequestReset(ctx context.Context, email string) (string, error) {
	token := uuid.NewString()

	ok, err := s.Store.Users().SetResetID(ctx, NormalizeEmail(email), token, s.now())
	if err != nil {
		return "", fmt.Errorf("store reset id: %w", err)
	}
	if !ok {
		return "", ErrResetNotFound
	}
	return token, nil
}

// StartReset requests a reset and hands the email to the dispatcher
// without waiting for delivery.
func (s *ResetService) StartReset(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)

	token, err := s.RequestReset(ctx, email)
	if err != nil {
		outcome := "error"
		if errors.Is(err, ErrResetNotFound) {
			outcome = "skipped"
		}
		s.Metrics.reset(outcome)
		return err
	}

	s.Metrics.reset("sent")
	l.Info("password reset requested", "reset_fp", cryptox.ShortFingerprint(token))
	if s.Mail != nil {
		s.Mail.Go(ctx, ResetMessage(s.AppDomain, NormalizeEmail(email), token))
	}
	return nil
}

// ResetMessage builds the email carrying the reset link.
func ResetMessage(appDomain, to, token string) mailx.Message {
	link := strings.TrimSuffix(appDomain, "/") + "/Article/" + token
	return mailx.Message{
		To:      to,
		Subject: resetSubject,
		Text:    "Hi Change your password ! " + link,
		HTML:    "<h1>Click <a href='" + link + "'>here</a> to change your password !</h1>",
	}
}

// IsTokenValid reports whether exactly one user holds token. Ids that are
// not UUIDs are rejected without a lookup.
func (s *ResetService) IsTokenValid(ctx context.Context, token string) (bool, error) {
	if _, err := uuid.Parse(token); err != nil {
		return false, nil
	}

	n, err := s.Store.Users().CountByResetID(ctx, token)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ConsumeToken sets a new password for the user holding token and clears
// the token in the same statement, so it works at most once.
func (s *ResetService) ConsumeToken(ctx context.Context, token, newPassword string) error {
	l := slogx.FromContext(ctx)

	if err := requireFields("password", newPassword, "resetId", token); err != nil {
		return err
	}
	if _, err := uuid.Parse(token); err != nil {
		return ErrResetNotFound
	}

	ph, err := s.Hasher.Hash(newPassword)
	if err != nil {
		l.Error("failed to hash password", "error", err)
		return err
	}

	ok, err := s.Store.Users().ConsumeResetID(ctx, token, ph.Hash, ph.Salt)
	if err != nil {
		l.Error("failed to consume reset id", "error", err)
		return err
	}
	if !ok {
		return ErrResetNotFound
	}

	l.Info("password reset completed", "reset_fp", cryptox.ShortFingerprint(token))
	return nil
}

// ExpireStale clears resets older than TTL.
func (s *ResetService) ExpireStale(ctx context.Context) (int64, error) {
	if s.TTL <= 0 {
		return 0, nil
	}
	return s.Store.Users().ClearStaleResetIDs(ctx, s.now().Add(-s.TTL))
}
