package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
)

// NotificationService reads the session user's inbox and keeps one unread
// count poller per session.
type NotificationService struct {
	BaseService
	api      gateways.Factory[gateways.NotificationsAPI]
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pollers map[string]*NotificationPoller
}

// NewNotificationService creates a NotificationService whose pollers run every interval.
func NewNotificationService(api gateways.Factory[gateways.NotificationsAPI], interval time.Duration, logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{
		api:      api,
		interval: interval,
		logger:   logger,
		pollers:  make(map[string]*NotificationPoller),
	}
}

var _ portssvc.NotificationSvc = (*NotificationService)(nil)

func (s *NotificationService) List(ctx context.Context, sess *domain.Session) ([]domain.Notification, error) {
	list, err := s.api(sess).UserNotifications(ctx, sess.User.ID)
	if err != nil {
		return nil, err
	}
	s.observe(sess.ID, list)
	return list, nil
}

func (s *NotificationService) Unread(ctx context.Context, sess *domain.Session) ([]domain.Notification, error) {
	return s.api(sess).UnreadNotifications(ctx, sess.User.ID)
}

func (s *NotificationService) MarkRead(ctx context.Context, sess *domain.Session, notificationID int64) ([]domain.Notification, error) {
	if err := s.api(sess).MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	return s.List(ctx, sess)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, sess *domain.Session) ([]domain.Notification, error) {
	if err := s.api(sess).MarkAllRead(ctx, sess.User.ID); err != nil {
		return nil, err
	}
	return s.List(ctx, sess)
}

func (s *NotificationService) Delete(ctx context.Context, sess *domain.Session, notificationID int64) ([]domain.Notification, error) {
	if err := s.api(sess).DeleteNotification(ctx, notificationID); err != nil {
		return nil, err
	}
	return s.List(ctx, sess)
}

// observe feeds a freshly read inbox into the session's poller, if any.
func (s *NotificationService) observe(sessionID string, list []domain.Notification) {
	s.mu.Lock()
	p, ok := s.pollers[sessionID]
	s.mu.Unlock()
	if ok {
		p.set(domain.UnreadCount(list))
	}
}

// UnreadCount polls once on first use and then leaves the count to the
// session's background poller.
func (s *NotificationService) UnreadCount(ctx context.Context, sess *domain.Session) (int, error) {
	s.mu.Lock()
	p, ok := s.pollers[sess.ID]
	if !ok {
		var err error
		p, err = s.newPoller(sess)
		if err != nil {
			s.mu.Unlock()
			return 0, err
		}
		s.pollers[sess.ID] = p
	}
	s.mu.Unlock()

	if ok {
		return p.Count()
	}
	count, err := p.Poll(ctx)
	p.Start()
	return count, err
}

func (s *NotificationService) newPoller(sess *domain.Session) (*NotificationPoller, error) {
	client := s.api(sess)
	userID := sess.User.ID
	fetch := func(ctx context.Context) (int, error) {
		list, err := client.UnreadNotifications(ctx, userID)
		if err != nil {
			return 0, err
		}
		return len(list), nil
	}
	logger := s.logger.With(slog.Int64("user_id", userID))
	return NewNotificationPoller(s.interval, fetch, logger)
}

// StopPolling disposes of the session's poller without waiting for a
// running poll, so it is safe to call from inside one.
func (s *NotificationService) StopPolling(sessionID string) {
	s.mu.Lock()
	p, ok := s.pollers[sessionID]
	delete(s.pollers, sessionID)
	s.mu.Unlock()
	if ok {
		p.Stop()
	}
}

// Close stops every poller and waits for running polls to return.
func (s *NotificationService) Close(ctx context.Context) {
	s.mu.Lock()
	pollers := s.pollers
	s.pollers = make(map[string]*NotificationPoller)
	s.mu.Unlock()

	for _, p := range pollers {
		select {
		case <-p.Stop().Done():
		case <-ctx.Done():
			return
		}
	}
}
