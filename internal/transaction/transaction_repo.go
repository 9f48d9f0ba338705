package transaction

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=transaction_repo.go -destination=mock/transaction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Transaction) error
	FindByID(ctx context.Context, id string) (*Transaction, error)
	FindAll(ctx context.Context) ([]Transaction, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Transaction, error)
	SumAmountByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Transaction, error) {
	var t Transaction
	err := r.db.WithContext(ctx).
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindAll(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&transactions).Error
	return transactions, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Transaction, error) {
	var transactions []Transaction
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Find(&transactions).Error
	return transactions, err
}

func (r *repository) SumAmountByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
SELECT COALESCE(SUM(amount), 0)
FROM transactions
WHERE date >= ? AND date <= ?
`

	err := r.db.WithContext(ctx).Raw(query, from, to).Scan(&total).Error
	return total, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Transaction{}, "id = ?", id).Error
}
