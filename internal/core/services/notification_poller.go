package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/bank_portal/internal/platform/metrics"
	"github.com/robfig/cron/v3"
)

// UnreadFetcher reads the current unread notification count.
type UnreadFetcher func(ctx context.Context) (int, error)

// intervalSchedule fires every d, without cron.Every's rounding to whole seconds.
type intervalSchedule time.Duration

func (s intervalSchedule) Next(t time.Time) time.Time {
	return t.Add(time.Duration(s))
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)...)
}

// PollerOption configures a NotificationPoller.
type PollerOption func(*NotificationPoller)

// WithPollTimeout bounds each scheduled poll.
func WithPollTimeout(d time.Duration) PollerOption {
	return func(p *NotificationPoller) {
		p.timeout = d
	}
}

// WithOnUpdate is called after every successful poll with the fresh count.
func WithOnUpdate(fn func(count int)) PollerOption {
	return func(p *NotificationPoller) {
		p.onUpdate = fn
	}
}

// NotificationPoller refreshes an unread count on a fixed interval. Runs
// never overlap, and Stop disposes of it for good.
type NotificationPoller struct {
	cron     *cron.Cron
	fetch    UnreadFetcher
	logger   *slog.Logger
	timeout  time.Duration
	onUpdate func(count int)

	ctx    context.Context
	cancel context.CancelFunc

	inFlight atomic.Bool
	started  atomic.Bool
	stopped  atomic.Bool

	mu      sync.RWMutex
	count   int
	polled  bool
	lastErr error
}

// NewNotificationPoller creates a stopped poller. Call Start to schedule it.
func NewNotificationPoller(interval time.Duration, fetch UnreadFetcher, logger *slog.Logger, opts ...PollerOption) (*NotificationPoller, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", interval)
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &NotificationPoller{
		fetch:   fetch,
		logger:  logger,
		timeout: interval,
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(p)
	}

	cronLogger := slogCronLogger{logger: logger}
	p.cron = cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	p.cron.Schedule(intervalSchedule(interval), cron.FuncJob(p.scheduledPoll))
	return p, nil
}

// Start begins scheduled polling. It is a no-op after the first call or after Stop.
func (p *NotificationPoller) Start() {
	if p.stopped.Load() || !p.started.CompareAndSwap(false, true) {
		return
	}
	p.cron.Start()
}

func (p *NotificationPoller) scheduledPoll() {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	_, _ = p.Poll(ctx)
}

// Poll fetches the count now. When another poll is already running it
// returns the last known count without fetching.
func (p *NotificationPoller) Poll(ctx context.Context) (int, error) {
	if p.stopped.Load() {
		return p.Count()
	}
	if !p.inFlight.CompareAndSwap(false, true) {
		metrics.RecordNotificationPoll("skipped")
		return p.Count()
	}
	defer p.inFlight.Store(false)

	count, err := p.fetch(ctx)
	if err != nil {
		metrics.RecordNotificationPoll("error")
		if ctx.Err() == nil {
			p.logger.Warn("Notification poll failed", slog.String("error", err.Error()))
		}
		p.mu.Lock()
		p.lastErr = err
		p.mu.Unlock()
		return p.Count()
	}

	metrics.RecordNotificationPoll("ok")
	p.set(count)
	if p.onUpdate != nil && !p.stopped.Load() {
		p.onUpdate(count)
	}
	return count, nil
}

func (p *NotificationPoller) set(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count = count
	p.polled = true
	p.lastErr = nil
}

// Count returns the last known count. Before the first successful poll it
// returns the last poll error, if any.
func (p *NotificationPoller) Count() (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.polled && p.lastErr != nil {
		return 0, p.lastErr
	}
	return p.count, nil
}

// Stop cancels any running poll and unschedules the poller. The returned
// context is done once a running poll has returned. Stop may be called from
// inside a poll, in which case the caller must not wait on the result.
func (p *NotificationPoller) Stop() context.Context {
	p.stopped.Store(true)
	p.cancel()
	return p.cron.Stop()
}
