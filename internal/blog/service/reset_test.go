package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newResetService(t *testing.T) (*ResetService, *UserService) {
	t.Helper()

	st := newTestStore(t)
	users, _ := newUserService(t, st)
	_, err := users.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "Abcdef1!gh12"})
	require.NoError(t, err)

	return &ResetService{Store: st, Hasher: fastHasher, AppDomain: "https://blog.example.com/"}, users
}

func TestRequestReset(t *testing.T) {
	ctx := context.Background()
	svc, _ := newResetService(t)

	token, err := svc.RequestReset(ctx, "A@x.com")
	require.NoError(t, err)
	_, err = uuid.Parse(token)
	require.NoError(t, err)

	t.Run("at most one pending reset", func(t *testing.T) {
		_, err := svc.RequestReset(ctx, "a@x.com")
		require.ErrorIs(t, err, ErrResetNotFound)

		ok, err := svc.IsTokenValid(ctx, token)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.RequestReset(ctx, "nobody@x.com")
		require.ErrorIs(t, err, ErrResetNotFound)
	})
}

func TestIsTokenValid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newResetService(t)

	for _, token := range []string{"", "not-a-uuid", uuid.NewString()} {
		ok, err := svc.IsTokenValid(ctx, token)
		require.NoError(t, err)
		require.False(t, ok, token)
	}
}

func TestConsumeToken(t *testing.T) {
	ctx := context.Background()
	svc, users := newResetService(t)

	token, err := svc.RequestReset(ctx, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, svc.ConsumeToken(ctx, token, "Brandnew1!pass"))

	t.Run("single use", func(t *testing.T) {
		err := svc.ConsumeToken(ctx, token, "Another1!pass")
		require.ErrorIs(t, err, ErrResetNotFound)

		ok, err := svc.IsTokenValid(ctx, token)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("new password logs in", func(t *testing.T) {
		_, _, err := users.Login(ctx, "a@x.com", "Brandnew1!pass")
		require.NoError(t, err)
		_, _, err = users.Login(ctx, "a@x.com", "Abcdef1!gh12")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("a new reset can follow", func(t *testing.T) {
		_, err := svc.RequestReset(ctx, "a@x.com")
		require.NoError(t, err)
	})

	t.Run("malformed and blank", func(t *testing.T) {
		require.ErrorIs(t, svc.ConsumeToken(ctx, "nope", "x"), ErrResetNotFound)

		var ve *ValidationError
		require.ErrorAs(t, svc.ConsumeToken(ctx, "", "x"), &ve)
		require.ErrorAs(t, svc.ConsumeToken(ctx, uuid.NewString(), ""), &ve)
	})
}

func TestConsumeToken_Race(t *testing.T) {
	ctx := context.Background()
	svc, _ := newResetService(t)

	token, err := svc.RequestReset(ctx, "a@x.com")
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		notFound int
	)
	for range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := svc.ConsumeToken(ctx, token, "Brandnew1!pass")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrResetNotFound):
				notFound++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, 5, notFound)
}

func TestStartReset_DispatchesMail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newResetService(t)
	sender := &recordingSender{}
	svc.Mail = NewDispatcher(sender, slogx.Discard(), time.Second, nil)

	require.NoError(t, svc.StartReset(ctx, "a@x.com"))
	require.ErrorIs(t, svc.StartReset(ctx, "a@x.com"), ErrResetNotFound)
	require.NoError(t, svc.Mail.Wait(ctx))

	msgs := sender.sent()
	require.Len(t, msgs, 1)
	require.Equal(t, "a@x.com", msgs[0].To)
	require.Equal(t, "Welcome to Ngx Blog", msgs[0].Subject)
	require.Contains(t, msgs[0].Text, "https://blog.example.com/Article/")
}

func TestResetMessage(t *testing.T) {
	msg := ResetMessage("http://localhost:4200", "a@x.com", "abc")

	require.Equal(t, "Hi Change your password ! http://localhost:4200/Article/abc", msg.Text)
	require.Equal(t, "<h1>Click <a href='http://localhost:4200/Article/abc'>here</a> to change your password !</h1>", msg.HTML)
}

func TestExpireStale(t *testing.T) {
	ctx := context.Background()
	svc, _ := newResetService(t)

	now := time.Now()
	svc.Now = func() time.Time { return now.Add(-2 * time.Hour) }
	token, err := svc.RequestReset(ctx, "a@x.com")
	require.NoError(t, err)
	svc.Now = func() time.Time { return now }

	n, err := svc.ExpireStale(ctx)
	require.NoError(t, err)
	require.Zero(t, n, "no TTL keeps resets forever")

	svc.TTL = time.Hour
	n, err = svc.ExpireStale(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	ok, err := svc.IsTokenValid(ctx, token)
	require.NoError(t, err)
	require.False(t, ok)
}
