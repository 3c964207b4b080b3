package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeeping_ExpiresStaleResets(t *testing.T) {
	ctx := context.Background()
	svc, _ := newResetService(t)

	svc.Now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.RequestReset(ctx, "a@x.com")
	require.NoError(t, err)
	svc.Now = nil
	svc.TTL = time.Hour

	hk := NewHousekeepingService(svc, slogx.Discard(), time.Hour)
	hk.Start()
	require.Eventually(t, func() bool {
		ok, err := svc.IsTokenValid(ctx, token)
		return err == nil && !ok
	}, time.Second, 10*time.Millisecond)
	hk.Stop()
}

func TestNewHousekeepingService_DefaultInterval(t *testing.T) {
	hk := NewHousekeepingService(&ResetService{}, slogx.Discard(), 0)
	require.Equal(t, time.Hour, hk.Interval)
}
