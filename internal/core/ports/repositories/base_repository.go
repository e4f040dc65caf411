package repositories

import "context"

// TransactionManager runs a function inside a single database transaction.
// The transaction travels in the returned context; repository methods called
// with that context join it. A non-nil error from fn rolls everything back.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
