package employee

import (
	"time"

	"go-payroll/internal/transaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"not null"`
	Position string          `gorm:"not null"`
	Salary   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	// Display association only. Deleting an employee leaves its
	// transactions in place.
	Transactions []transaction.Transaction `gorm:"foreignKey:EmployeeID;constraint:-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
