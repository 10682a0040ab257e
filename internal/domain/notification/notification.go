// internal/domain/notification/notification.go
package notification

import (
	"database/sql"
	"time"
)

// Kind tells what a notification was about.
type Kind string

const (
	KindStatusChange Kind = "STATUS_CHANGE" // homework review status moved
	KindError        Kind = "ERROR"         // a polling cycle failed
)

// Notification is one attempt to deliver a message to the chat.
// Corresponds to the 'bot_notifications' table.
type Notification struct {
	ID        int64
	Kind      Kind
	ChatID    int64
	Text      string
	Delivered bool
	ErrorText sql.NullString // delivery error, if any
	CreatedAt time.Time
}
