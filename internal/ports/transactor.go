package ports

import "context"

// Transactor runs fn as one unit of work. Repositories called with the ctx passed to fn join the
// same transaction. A returned error or a panic rolls everything back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
