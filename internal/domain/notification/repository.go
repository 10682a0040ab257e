// internal/domain/notification/repository.go
package notification

import "context"

// Repository records notification attempts. It is write-only: the bot never
// reads its own history back.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
}
