package models

import "time"

// NotificationType classifies a notification record.
type NotificationType string

const (
	NotificationJobCreated   NotificationType = "job_created"
	NotificationJobUpdated   NotificationType = "job_updated"
	NotificationJobCompleted NotificationType = "job_completed"
	NotificationGeneric      NotificationType = "generic"
)

// Notification is a derived record generated on job mutations. Notifications
// are prepended to their collection (most-recent-first) and never deleted.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Timestamp time.Time        `json:"timestamp"`
}
