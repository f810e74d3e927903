package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
)

// activator is the slice of the account manager the poller drives.
type activator interface {
	Activate(ctx context.Context) error
	HasPassword() bool
}

// ActivationPoller retries account activation with capped exponential backoff
// while the app is foreground-active and the account is still unverified.
// Backgrounding cancels the in-flight cycle; the next foreground transition
// starts a fresh one with the backoff reset.
type ActivationPoller struct {
	accountID  string
	manager    activator
	accounts   store.AccountRepository
	foreground ForegroundSignal
	logger     *logger.Logger

	initialDelay time.Duration
	maxDelay     time.Duration

	// wait is swappable so tests can observe the generated delays instead
	// of sleeping through them.
	wait func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewActivationPoller builds the poller; initialDelay and maxDelay come from
// the worker config.
func NewActivationPoller(accountID string, manager activator, accounts store.AccountRepository, foreground ForegroundSignal, initialDelay, maxDelay time.Duration, log *logger.Logger) *ActivationPoller {
	return &ActivationPoller{
		accountID:    accountID,
		manager:      manager,
		accounts:     accounts,
		foreground:   foreground,
		logger:       log.GetChildLogger("activation-poller"),
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
		wait:         waitDelay,
	}
}

// Run follows foreground transitions until ctx is cancelled.
func (p *ActivationPoller) Run(ctx context.Context) {
	transitions, unsubscribe := p.foreground.Signal()
	defer unsubscribe()

	if p.foreground.IsForeground() {
		p.start(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			p.stop()
			return
		case active, ok := <-transitions:
			if !ok {
				p.stop()
				return
			}
			if active {
				p.start(ctx)
			} else {
				p.stop()
			}
		}
	}
}

func (p *ActivationPoller) start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	cycleCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.pollLoop(cycleCtx)
	}()
}

func (p *ActivationPoller) stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		p.wg.Wait()
	}
}

// pollLoop runs one polling cycle: attempt, wait, attempt, with the delay
// growing from initialDelay up to maxDelay. The cycle ends on success, on a
// hard error, when polling stops being useful, or when ctx is cancelled.
func (p *ActivationPoller) pollLoop(ctx context.Context) {
	backoff := retry.WithCappedDuration(p.maxDelay, retry.NewExponential(p.initialDelay))

	for {
		if ctx.Err() != nil {
			return
		}
		if !p.shouldPoll(ctx) {
			return
		}

		err := p.manager.Activate(ctx)
		switch {
		case err == nil:
			p.logger.Info().Str("account_id", p.accountID).Msg("account activated")
			return
		case errors.Is(err, adapter.ErrPendingActivation):
			delay, stopped := backoff.Next()
			if stopped {
				return
			}
			if err := p.wait(ctx, delay); err != nil {
				return
			}
		case errors.Is(err, ErrMissingAccount):
			return
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return
		default:
			// hard failure: give up until the next foreground transition
			p.logger.Warn().Err(err).Str("account_id", p.accountID).Msg("activation attempt failed")
			return
		}
	}
}

// shouldPoll reports whether another attempt can succeed: the account record
// exists, is still unverified and a password is held to authenticate with.
func (p *ActivationPoller) shouldPoll(ctx context.Context) bool {
	account, err := p.accounts.Get(ctx, p.accountID)
	if err != nil {
		return false
	}
	return !account.Verified && p.manager.HasPassword()
}

func waitDelay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
