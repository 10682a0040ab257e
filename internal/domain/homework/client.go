package homework

import "context"

// StatusClient fetches raw homework statuses updated since fromDate (unix seconds).
// The returned value is the decoded JSON body, not yet validated.
type StatusClient interface {
	GetStatuses(ctx context.Context, fromDate int64) (any, error)
}
