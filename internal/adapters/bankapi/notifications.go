package bankapi

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

func (c *Client) UserNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var ns []domain.Notification
	if err := c.get(ctx, "/notifications/user/"+pathID(userID), nil, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func (c *Client) UnreadNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var ns []domain.Notification
	if err := c.get(ctx, "/notifications/user/"+pathID(userID)+"/unread", nil, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func (c *Client) MarkRead(ctx context.Context, notificationID int64) error {
	return c.patch(ctx, "/notifications/"+pathID(notificationID)+"/read", nil, nil)
}

func (c *Client) MarkAllRead(ctx context.Context, userID int64) error {
	return c.patch(ctx, "/notifications/user/"+pathID(userID)+"/read-all", nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, notificationID int64) error {
	return c.delete(ctx, "/notifications/"+pathID(notificationID))
}
