package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for transaction dates, shared by responses
// and the report file.
const DateFormat = time.RFC3339

type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Date       time.Time       `gorm:"not null"`
	Type       string          `gorm:"not null"`
	TypeRef    *TransactionType `gorm:"foreignKey:Type;references:Name"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
