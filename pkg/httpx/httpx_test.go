package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Wrap(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}, mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWriteErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusUnprocessableEntity, "email", "can't be blank")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"errors":{"email":"can't be blank"}}`, rec.Body.String())
}

func TestDecode(t *testing.T) {
	type creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")

		var c creds
		require.NoError(t, httpx.Decode(httptest.NewRecorder(), req, &c))
		require.Equal(t, creds{"a@x.com", "pw"}, c)
	})

	t.Run("form", func(t *testing.T) {
		form := url.Values{"email": {"b@x.com"}, "password": {"pw2"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var c creds
		require.NoError(t, httpx.Decode(httptest.NewRecorder(), req, &c))
		require.Equal(t, creds{"b@x.com", "pw2"}, c)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

		var c creds
		require.ErrorIs(t, httpx.Decode(httptest.NewRecorder(), req, &c), httpx.ErrEmptyBody)
	})

	t.Run("not an object", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1,2]`))

		_, err := httpx.DecodeFields(httptest.NewRecorder(), req)
		require.Error(t, err)
	})

	t.Run("wrong field type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":42}`))

		var c creds
		require.Error(t, httpx.Decode(httptest.NewRecorder(), req, &c))
	})
}

func TestRecover(t *testing.T) {
	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), httpx.Recover())

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "internal error", body.Errors["server"])
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := httpx.NewMetrics("test", reg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	h := httpx.Chain(mux, m.Middleware())

	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, 3.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET /items/{id}", "202")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("unmatched", "404")))
	require.Equal(t, 2, testutil.CollectAndCount(m.Duration))
}
