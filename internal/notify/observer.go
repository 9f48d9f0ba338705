package notify

import (
	"context"

	"go-payroll/internal/transaction"
)

// Action tags the change an observer is being told about.
type Action string

const (
	ActionAdd    Action = "Add"
	ActionDelete Action = "Delete"
)

// Observer receives transaction change events. Implementations must treat
// the call as fire-and-forget: a returned error is logged by the notifier
// and never reaches the operation that triggered it.
type Observer interface {
	OnTransaction(ctx context.Context, tx transaction.Transaction, action Action) error
}
