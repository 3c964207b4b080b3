package http_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/ngxblog/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	env.register("ada@example.com")

	rec := env.do(http.MethodPost, "/api/resetPassword", "", map[string]string{"email": "ada@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{}`, rec.Body.String())

	require.NoError(t, env.dispatch.Wait(context.Background()))
	msgs := env.mail.sent()
	require.Len(t, msgs, 1)
	require.Equal(t, "ada@example.com", msgs[0].To)
	require.Equal(t, "Welcome to Ngx Blog", msgs[0].Subject)

	const prefix = "https://blog.example.com/Article/"
	idx := strings.Index(msgs[0].Text, prefix)
	require.GreaterOrEqual(t, idx, 0, msgs[0].Text)
	resetID := strings.TrimSpace(msgs[0].Text[idx+len(prefix):])

	t.Run("second request while pending is silent", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/resetPassword", "", map[string]string{"email": "ada@example.com"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, env.dispatch.Wait(context.Background()))
		require.Len(t, env.mail.sent(), 1)
	})

	t.Run("id is pending", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/isResetIdOk/"+resetID, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"exist":true}`, rec.Body.String())
	})

	t.Run("blank password", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/resetChangePassword", "", map[string]string{"resetId": resetID})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, map[string]string{"password": "can't be blank"}, errorsOf(t, rec))
	})

	const next = "Reset-Pass-Word-3#"
	rec = env.do(http.MethodPost, "/api/resetChangePassword", "", map[string]string{"resetId": resetID, "password": next})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"result":"Success!"}`, rec.Body.String())

	t.Run("id is single use", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/resetChangePassword", "", map[string]string{"resetId": resetID, "password": next})
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "is invalid or has already been used", errorsOf(t, rec)["resetId"])

		rec = env.do(http.MethodGet, "/api/isResetIdOk/"+resetID, "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		var out blogsdk.ExistResponse
		decode(t, rec, &out)
		require.False(t, out.Exist)
	})

	t.Run("new password logs in", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/login", "", map[string]string{"email": "ada@example.com", "password": next})
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/resetPassword", "", map[string]string{"email": "nobody@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{}`, rec.Body.String())

	require.NoError(t, env.dispatch.Wait(context.Background()))
	require.Empty(t, env.mail.sent())
}

func TestIsResetIdOk_Malformed(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/isResetIdOk/not-a-uuid", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"exist":false}`, rec.Body.String())
}

func TestResetIDNeverLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	env := newTestEnvWithLogger(t, logger)
	env.register("ada@example.com")

	rec := env.do(http.MethodPost, "/api/resetPassword", "", map[string]string{"email": "ada@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, env.dispatch.Wait(context.Background()))

	msgs := env.mail.sent()
	require.Len(t, msgs, 1)
	const prefix = "https://blog.example.com/Article/"
	resetID := strings.TrimSpace(msgs[0].Text[strings.Index(msgs[0].Text, prefix)+len(prefix):])
	require.NotEmpty(t, resetID)

	rec = env.do(http.MethodGet, "/api/isResetIdOk/"+resetID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, "/api/resetChangePassword", "", map[string]string{"resetId": resetID, "password": "Reset-Pass-Word-3#"})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Contains(t, buf.String(), `"route":"GET /api/isResetIdOk/{resetId}"`)
	require.NotContains(t, buf.String(), resetID)
}
