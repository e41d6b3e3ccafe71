package repositories

import (
	"context"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTx runs fn inside a single storage transaction. The transaction travels in the
	// context handed to fn; repositories called with that context take part in it.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error
}
