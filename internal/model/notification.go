package model

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationAlert   NotificationType = "alert"
)

// Notification is an in-app message for one user. The backend returns the
// feed newest-first; the client keeps that order.
type Notification struct {
	ID        string           `json:"_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// HasUnread reports whether at least one notification is unread.
// Used for the badge indicator in the dashboard header.
func HasUnread(feed []*Notification) bool {
	for _, n := range feed {
		if !n.IsRead {
			return true
		}
	}
	return false
}
