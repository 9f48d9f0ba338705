package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/notify"
	"go-payroll/internal/transaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeObserver struct {
	name string
	fn   func(ctx context.Context, tx transaction.Transaction, action notify.Action) error
}

func (f *fakeObserver) OnTransaction(ctx context.Context, tx transaction.Transaction, action notify.Action) error {
	if f.fn != nil {
		return f.fn(ctx, tx, action)
	}
	return nil
}

func sampleTransaction() transaction.Transaction {
	return transaction.Transaction{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Amount:     decimal.NewFromInt(500),
		Date:       time.Now().UTC(),
		Type:       transaction.TypeBonus,
	}
}

func TestTransactionNotifier_DeliversInSubscriptionOrder(t *testing.T) {
	notifier := notify.NewTransactionNotifier(zap.NewNop())

	var order []string
	record := func(name string) *fakeObserver {
		return &fakeObserver{
			name: name,
			fn: func(ctx context.Context, tx transaction.Transaction, action notify.Action) error {
				order = append(order, name)
				return nil
			},
		}
	}

	notifier.Subscribe(record("first"))
	notifier.Subscribe(record("second"))
	notifier.Subscribe(record("third"))

	notifier.Notify(context.Background(), sampleTransaction(), notify.ActionAdd)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestTransactionNotifier_SubscribeTwiceDeliversOnce(t *testing.T) {
	notifier := notify.NewTransactionNotifier(zap.NewNop())

	calls := 0
	observer := &fakeObserver{
		fn: func(ctx context.Context, tx transaction.Transaction, action notify.Action) error {
			calls++
			return nil
		},
	}

	notifier.Subscribe(observer)
	notifier.Subscribe(observer)

	notifier.Notify(context.Background(), sampleTransaction(), notify.ActionAdd)

	assert.Equal(t, 1, calls)
}

func TestTransactionNotifier_Unsubscribe(t *testing.T) {
	notifier := notify.NewTransactionNotifier(zap.NewNop())

	calls := 0
	observer := &fakeObserver{
		fn: func(ctx context.Context, tx transaction.Transaction, action notify.Action) error {
			calls++
			return nil
		},
	}

	notifier.Subscribe(observer)
	notifier.Unsubscribe(observer)
	// Removing a non-member again stays a no-op.
	notifier.Unsubscribe(observer)

	notifier.Notify(context.Background(), sampleTransaction(), notify.ActionDelete)

	assert.Equal(t, 0, calls)
}

func TestTransactionNotifier_FailingObserverDoesNotStopOthers(t *testing.T) {
	notifier := notify.NewTransactionNotifier(zap.NewNop())

	var order []string
	notifier.Subscribe(&fakeObserver{
		name: "failing",
		fn: func(ctx context.Context, tx transaction.Transaction, action notify.Action) error {
			order = append(order, "failing")
			return errors.New("disk full")
		},
	})
	notifier.Subscribe(&fakeObserver{
		name: "after",
		fn: func(ctx context.Context, tx transaction.Transaction, action notify.Action) error {
			order = append(order, "after")
			return nil
		},
	})

	notifier.Notify(context.Background(), sampleTransaction(), notify.ActionAdd)

	assert.Equal(t, []string{"failing", "after"}, order)
}

func TestTransactionNotifier_PanickingObserverIsContained(t *testing.T) {
	notifier := notify.NewTransactionNotifier(zap.NewNop())

	var order []string
	notifier.Subscribe(&fakeObserver{
		name: "panicking",
		fn: func(ctx context.Context, tx transaction.Transaction, action notify.Action) error {
			order = append(order, "panicking")
			panic("boom")
		},
	})
	notifier.Subscribe(&fakeObserver{
		name: "after",
		fn: func(ctx context.Context, tx transaction.Transaction, action notify.Action) error {
			order = append(order, "after")
			return nil
		},
	})

	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), sampleTransaction(), notify.ActionAdd)
	})
	assert.Equal(t, []string{"panicking", "after"}, order)
}

func TestTransactionNotifier_NoSubscribers(t *testing.T) {
	notifier := notify.NewTransactionNotifier(zap.NewNop())

	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), sampleTransaction(), notify.ActionAdd)
	})
}
