package notify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/transaction"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type EventPublisher interface {
	PublishTransactionChanged(ctx context.Context, event events.TransactionChangedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishTransactionChanged(context.Context, events.TransactionChangedEvent) error {
	return nil
}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

type kafkaEventPublisher struct {
	writer *kafkago.Writer
}

func NewKafkaEventPublisher(writer *kafkago.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishTransactionChanged(
	ctx context.Context,
	event events.TransactionChangedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: events.TransactionChangedTopic,
		Key:   []byte(event.TransactionID),
		Value: payload,
	})
}

// TransactionUIUpdater pushes display refreshes to connected clients: it
// logs the refresh and hands the change to the live-update channel (Kafka
// when configured, noop otherwise).
type TransactionUIUpdater struct {
	publisher EventPublisher
	logger    *zap.Logger
}

func NewTransactionUIUpdater(publisher EventPublisher, logger ...*zap.Logger) *TransactionUIUpdater {
	l := zap.L().Named("ui.updater")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ui.updater")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &TransactionUIUpdater{publisher: publisher, logger: l}
}

func (u *TransactionUIUpdater) OnTransaction(ctx context.Context, tx transaction.Transaction, action Action) error {
	u.logger.Info("ui refresh pushed",
		zap.String("action", string(action)),
		zap.String("type", tx.Type),
		zap.String("transaction_id", tx.ID.String()),
	)

	return u.publisher.PublishTransactionChanged(ctx, events.TransactionChangedEvent{
		EventType:     "transaction_" + strings.ToLower(string(action)),
		TransactionID: tx.ID.String(),
		EmployeeID:    tx.EmployeeID.String(),
		Type:          tx.Type,
		Amount:        tx.Amount.String(),
		OccurredAt:    time.Now().UTC(),
	})
}
