package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/ngxblog/pkg/mailx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
)

const defaultMailTimeout = 30 * time.Second

// Dispatcher sends mail in the background. Failures are logged and
// counted but never reach the request that queued the message.
type Dispatcher struct {
	sender  mailx.Sender
	logger  *slog.Logger
	timeout time.Duration
	metrics *Metrics

	wg sync.WaitGroup
}

func NewDispatcher(sender mailx.Sender, logger *slog.Logger, timeout time.Duration, metrics *Metrics) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultMailTimeout
	}
	return &Dispatcher{sender: sender, logger: logger, timeout: timeout, metrics: metrics}
}

// Go sends msg on its own goroutine. The request context only contributes
// its logger; cancellation is detached so the send outlives the response.
func (d *Dispatcher) Go(ctx context.Context, msg mailx.Message) {
	logger := slogx.FromContext(ctx)
	if d.logger != nil && logger == slog.Default() {
		logger = d.logger
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.sender.Send(sendCtx, msg); err != nil {
			d.metrics.mail("error")
			logger.Error("failed to send email", "subject", msg.Subject, "error", err)
			return
		}
		d.metrics.mail("ok")
		logger.Debug("email sent", "subject", msg.Subject)
	}()
}

// Wait blocks until queued sends finish or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
