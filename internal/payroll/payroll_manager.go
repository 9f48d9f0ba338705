package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/notify"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/transaction"
	txerrors "go-payroll/internal/transaction/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Notifier is the fan-out port; errors never surface through it.
type Notifier interface {
	Notify(ctx context.Context, tx transaction.Transaction, action notify.Action)
}

// Manager is the single entry point for every mutating payroll operation.
// Reads that need business rules (per-employee listing, payout totals) also
// live here; plain listings go through the feature Queries ports instead.
//
// Each mutating call opens its own transaction scope and releases it on every
// exit path. Observers are notified only after the change is durably
// committed, so they never see data that might be rolled back.
type Manager struct {
	db           *sql.DB
	employees    employee.Repository
	transactions transaction.Repository
	notifier     Notifier
	rdb          *redis.Client
	logger       *zap.Logger
}

func NewManager(
	db *sql.DB,
	employees employee.Repository,
	transactions transaction.Repository,
	notifier Notifier,
	rdb *redis.Client,
	logger ...*zap.Logger,
) *Manager {
	l := zap.L().Named("payroll.manager")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.manager")
	}
	return &Manager{
		db:           db,
		employees:    employees,
		transactions: transactions,
		notifier:     notifier,
		rdb:          rdb,
		logger:       l,
	}
}

func (m *Manager) AddEmployee(
	ctx context.Context,
	req employee.CreateEmployeeRequest,
) (employee.EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	m.logger.Debug("add employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("position", req.Position),
	)

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		m.logger.Error("add employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return employee.EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := m.employees.WithTx(tx)

	empl := &employee.Employee{
		ID:       uuid.New(),
		Name:     req.Name,
		Position: req.Position,
		Salary:   req.Salary,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		m.logger.Error("add employee persist failed", zap.Error(err))
		return employee.EmployeeResponse{}, employee.MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		m.logger.Error("add employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return employee.EmployeeResponse{}, err
	}

	m.invalidateEmployeeCache(ctx)

	m.logger.Info("add employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return employee.ToResponse(*empl), nil
}

func (m *Manager) DeleteEmployee(
	ctx context.Context,
	id string,
) (employee.EmployeeResponse, error) {
	m.logger.Debug("delete employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return employee.EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		m.logger.Error("delete employee begin tx failed", zap.Error(err))
		return employee.EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := m.employees.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, employee.MapRepositoryError(err)
	}

	// Transactions referencing this employee stay in place.
	if err := qtx.Delete(ctx, id); err != nil {
		m.logger.Error("delete employee failed", zap.Error(err))
		return employee.EmployeeResponse{}, employee.MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		m.logger.Error("delete employee commit failed", zap.Error(err))
		return employee.EmployeeResponse{}, err
	}

	m.invalidateEmployeeCache(ctx)

	m.logger.Info("delete employee success", zap.String("employee_id", id))

	return employee.ToResponse(*empl), nil
}

func (m *Manager) CreateTransaction(
	ctx context.Context,
	req transaction.CreateTransactionRequest,
) (transaction.TransactionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	m.logger.Debug("create transaction requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("type", req.Type),
	)

	if !req.Amount.IsPositive() {
		return transaction.TransactionResponse{}, txerrors.ErrInvalidAmount
	}
	if !transaction.IsValidType(req.Type) {
		return transaction.TransactionResponse{}, txerrors.ErrInvalidTransactionType
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return transaction.TransactionResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		m.logger.Error("create transaction begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return transaction.TransactionResponse{}, err
	}
	defer tx.Rollback()

	if _, err := m.employees.WithTx(tx).FindByID(ctx, req.EmployeeID); err != nil {
		return transaction.TransactionResponse{}, employee.MapRepositoryError(err)
	}

	t := &transaction.Transaction{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Amount:     req.Amount,
		Date:       time.Now().UTC(),
		Type:       req.Type,
	}

	if err := m.transactions.WithTx(tx).Create(ctx, t); err != nil {
		m.logger.Error("create transaction persist failed", zap.Error(err))
		return transaction.TransactionResponse{}, transaction.MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		m.logger.Error("create transaction commit failed", zap.String("request_id", rid), zap.Error(err))
		return transaction.TransactionResponse{}, err
	}

	// Notify only after the row is durable; observers never see data that
	// could still roll back.
	m.notifier.Notify(ctx, *t, notify.ActionAdd)

	m.logger.Info("create transaction success",
		zap.String("request_id", rid),
		zap.String("transaction_id", t.ID.String()),
		zap.String("type", t.Type),
		zap.String("amount", t.Amount.String()),
	)

	return transaction.ToResponse(*t), nil
}

func (m *Manager) GetTransactionsByEmployee(
	ctx context.Context,
	employeeID string,
) ([]transaction.TransactionResponse, error) {
	m.logger.Debug("get transactions by employee requested", zap.String("employee_id", employeeID))

	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	if _, err := m.employees.FindByID(ctx, employeeID); err != nil {
		return nil, employee.MapRepositoryError(err)
	}

	transactions, err := m.transactions.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		m.logger.Error("get transactions by employee failed", zap.Error(err))
		return nil, transaction.MapRepositoryError(err)
	}

	return transaction.ToListResponse(transactions), nil
}

func (m *Manager) GetTotalPayouts(
	ctx context.Context,
	from, to time.Time,
) (decimal.Decimal, error) {
	m.logger.Debug("get total payouts requested",
		zap.Time("from", from),
		zap.Time("to", to),
	)

	if !from.Before(to) || to.After(time.Now().UTC()) {
		return decimal.Zero, txerrors.ErrInvalidDatePeriod
	}

	total, err := m.transactions.SumAmountByPeriod(ctx, from, to)
	if err != nil {
		m.logger.Error("get total payouts failed", zap.Error(err))
		return decimal.Zero, transaction.MapRepositoryError(err)
	}

	return total, nil
}

func (m *Manager) DeleteTransaction(
	ctx context.Context,
	id string,
) (transaction.TransactionResponse, error) {
	m.logger.Debug("delete transaction requested", zap.String("transaction_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return transaction.TransactionResponse{}, txerrors.ErrInvalidTransactionID
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		m.logger.Error("delete transaction begin tx failed", zap.Error(err))
		return transaction.TransactionResponse{}, err
	}
	defer tx.Rollback()

	qtx := m.transactions.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		return transaction.TransactionResponse{}, transaction.MapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		m.logger.Error("delete transaction failed", zap.Error(err))
		return transaction.TransactionResponse{}, transaction.MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		m.logger.Error("delete transaction commit failed", zap.Error(err))
		return transaction.TransactionResponse{}, err
	}

	m.notifier.Notify(ctx, *t, notify.ActionDelete)

	m.logger.Info("delete transaction success",
		zap.String("transaction_id", id),
		zap.String("type", t.Type),
		zap.String("amount", t.Amount.String()),
	)

	return transaction.ToResponse(*t), nil
}

func (m *Manager) invalidateEmployeeCache(ctx context.Context) {
	if m.rdb == nil {
		return
	}
	if err := m.rdb.Del(ctx, employee.AllEmployeesCacheKey).Err(); err != nil {
		m.logger.Error("failed to invalidate employee cache",
			zap.Error(err),
			zap.String("key", employee.AllEmployeesCacheKey),
		)
	}
}
