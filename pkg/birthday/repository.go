package birthday

import "context"

// Repository is the event store port. The collection is always read and
// written as one snapshot; last write wins, no concurrent-write arbitration.
type Repository interface {
	Load(ctx context.Context) ([]Birthday, error)
	Save(ctx context.Context, birthdays []Birthday) error
}
