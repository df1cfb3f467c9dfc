package repository

import (
	"context"
	"errors"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error other than an
// already closed transaction. Deferred on every transaction so that any early
// return leaves storage untouched.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, domain.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
