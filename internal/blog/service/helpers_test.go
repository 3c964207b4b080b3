package service

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/ngxblog/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/ngxblog/pkg/cryptox"
	"github.com/aussiebroadwan/ngxblog/pkg/jwtx"
	"github.com/aussiebroadwan/ngxblog/pkg/mailx"
	"github.com/stretchr/testify/require"
)

// fastHasher keeps the format of DefaultHasher with far fewer rounds.
var fastHasher = cryptox.Hasher{Iterations: 1000, KeyLength: 64, SaltLength: 16}

var testSecret = []byte("service-test-secret")

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newUserService(t *testing.T, st *sqlite.Store) (*UserService, *jwtx.HS256Verifier) {
	t.Helper()

	signer, verifier, err := jwtx.NewHS256(testSecret, 0)
	require.NoError(t, err)

	return &UserService{
		Store:  st,
		Hasher: fastHasher,
		Signer: signer,
		Policy: DefaultPasswordPolicy,
	}, verifier
}

// recordingSender keeps every message it is asked to send.
type recordingSender struct {
	mu   sync.Mutex
	msgs []mailx.Message
	err  error
}

func (r *recordingSender) Send(ctx context.Context, msg mailx.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return r.err
}

func (r *recordingSender) sent() []mailx.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mailx.Message(nil), r.msgs...)
}
