package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
)

type notificationsResponse struct {
	Notifications []*model.Notification `json:"notifications"`
}

// ListNotifications fetches the user's feed. The backend returns it
// newest-first; the order is kept as delivered.
func (c *Client) ListNotifications(ctx context.Context, userID string) ([]*model.Notification, error) {
	var resp notificationsResponse
	path := fmt.Sprintf("/%s/notifications", userID)
	if err := c.do(ctx, "list notifications", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

// MarkNotificationRead flags one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	path := fmt.Sprintf("/%s/notifications/%s/read", userID, notificationID)
	return c.do(ctx, "mark notification read", http.MethodPut, path, nil, nil)
}
