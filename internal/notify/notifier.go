package notify

import (
	"context"
	"sync"

	"go-payroll/internal/transaction"

	"go.uber.org/zap"
)

// TransactionNotifier fans transaction change events out to its subscribers,
// sequentially and in subscription order. Subscriber failures and panics are
// contained here; the triggering operation always proceeds.
type TransactionNotifier struct {
	mu        sync.Mutex
	observers []Observer
	logger    *zap.Logger
}

func NewTransactionNotifier(logger ...*zap.Logger) *TransactionNotifier {
	l := zap.L().Named("notify")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify")
	}
	return &TransactionNotifier{logger: l}
}

// Subscribe appends the observer; subscribing one twice is a no-op.
func (n *TransactionNotifier) Subscribe(o Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, existing := range n.observers {
		if existing == o {
			return
		}
	}
	n.observers = append(n.observers, o)
}

// Unsubscribe removes the observer; removing a non-member is a no-op.
func (n *TransactionNotifier) Unsubscribe(o Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, existing := range n.observers {
		if existing == o {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers the event to every current subscriber and returns only
// after all of them ran.
func (n *TransactionNotifier) Notify(ctx context.Context, tx transaction.Transaction, action Action) {
	n.mu.Lock()
	observers := make([]Observer, len(n.observers))
	copy(observers, n.observers)
	n.mu.Unlock()

	for _, o := range observers {
		n.deliver(ctx, o, tx, action)
	}
}

func (n *TransactionNotifier) deliver(ctx context.Context, o Observer, tx transaction.Transaction, action Action) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("observer panicked",
				zap.String("action", string(action)),
				zap.String("transaction_id", tx.ID.String()),
				zap.Any("panic", r),
			)
		}
	}()

	if err := o.OnTransaction(ctx, tx, action); err != nil {
		n.logger.Warn("observer failed",
			zap.String("action", string(action)),
			zap.String("transaction_id", tx.ID.String()),
			zap.Error(err),
		)
	}
}
