package notify

import (
	"context"
	"fmt"

	"go-payroll/internal/transaction"

	"go.uber.org/zap"
)

// TransactionLogger writes one human-readable line per transaction change to
// the operational log.
type TransactionLogger struct {
	logger *zap.Logger
}

func NewTransactionLogger(logger ...*zap.Logger) *TransactionLogger {
	l := zap.L().Named("transaction.audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transaction.audit")
	}
	return &TransactionLogger{logger: l}
}

func (t *TransactionLogger) OnTransaction(ctx context.Context, tx transaction.Transaction, action Action) error {
	t.logger.Info(fmt.Sprintf("Transaction %s: %s - %s USD on %s",
		action, tx.Type, tx.Amount.String(), tx.Date.Format(transaction.DateFormat)),
		zap.String("transaction_id", tx.ID.String()),
	)
	return nil
}
