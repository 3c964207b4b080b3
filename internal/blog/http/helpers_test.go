package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	blogHTTP "github.com/aussiebroadwan/ngxblog/internal/blog/http"
	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/ngxblog/pkg/cryptox"
	"github.com/aussiebroadwan/ngxblog/pkg/jwtx"
	"github.com/aussiebroadwan/ngxblog/pkg/mailx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const strongPassword = "Correct-Horse-9!"

type testEnv struct {
	t        *testing.T
	store    *sqlite.Store
	handler  http.Handler
	signer   *jwtx.HS256Signer
	mail     *recordingSender
	blobs    *memBlobs
	dispatch *service.Dispatcher
	registry *prometheus.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithLogger(t, slogx.Discard())
}

func newTestEnvWithLogger(t *testing.T, logger *slog.Logger) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, verifier, err := jwtx.NewHS256([]byte("http-test-secret"), 0)
	require.NoError(t, err)

	schemas, err := service.LoadSchemas()
	require.NoError(t, err)

	hasher := cryptox.Hasher{Iterations: 1000, KeyLength: 64, SaltLength: 16}
	mail := &recordingSender{}
	blobs := &memBlobs{objects: map[string][]byte{}}
	dispatch := service.NewDispatcher(mail, logger, 0, nil)

	router := blogHTTP.NewRouter(verifier, "test", st, logger)
	router.UserService = &service.UserService{Store: st, Hasher: hasher, Signer: signer, Policy: service.DefaultPasswordPolicy}
	router.ResetService = &service.ResetService{Store: st, Hasher: hasher, Mail: dispatch, AppDomain: "https://blog.example.com"}
	router.DocumentService = &service.DocumentService{Store: st, Schemas: schemas}
	router.UploadService = &service.UploadService{Blobs: blobs}
	router.Registry = prometheus.NewRegistry()
	router.ApplyRoutes()

	return &testEnv{
		t:        t,
		store:    st,
		handler:  router,
		signer:   signer,
		mail:     mail,
		blobs:    blobs,
		dispatch: dispatch,
		registry: router.Registry,
	}
}

// do sends a JSON request and returns the recorder.
func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns a session token for it.
func (e *testEnv) register(email string) string {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/api/register", "", map[string]string{
		"email": email, "password": strongPassword, "fullName": "Test User",
	})
	require.Equal(e.t, http.StatusOK, rec.Code, rec.Body.String())

	rec = e.do(http.MethodPost, "/api/login", "", map[string]string{"email": email, "password": strongPassword})
	require.Equal(e.t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		User struct {
			Token string `json:"token"`
		} `json:"user"`
	}
	decode(e.t, rec, &out)
	require.NotEmpty(e.t, out.User.Token)
	return out.User.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorsOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, rec, &out)
	return out.Errors
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []mailx.Message
}

func (r *recordingSender) Send(ctx context.Context, msg mailx.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *recordingSender) sent() []mailx.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mailx.Message(nil), r.msgs...)
}

// memBlobs is an in-memory blobx.Store.
type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func (m *memBlobs) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = raw
	if m.types == nil {
		m.types = map[string]string{}
	}
	m.types[key] = contentType
	return "https://cdn.example.com/" + key, nil
}

func (m *memBlobs) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.objects))
	for k := range m.objects {
		out = append(out, k)
	}
	return out
}

func formBody(pairs ...string) (io.Reader, string) {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(pairs[i] + "=" + pairs[i+1])
	}
	return strings.NewReader(b.String()), "application/x-www-form-urlencoded"
}
