package events

import "time"

const TransactionChangedTopic = "payroll.transaction.changed.v1"

type TransactionChangedEvent struct {
	EventType     string    `json:"event_type"`
	TransactionID string    `json:"transaction_id"`
	EmployeeID    string    `json:"employee_id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}
