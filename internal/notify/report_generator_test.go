package notify_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-payroll/internal/notify"
	"go-payroll/internal/transaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeTransactionSource struct {
	findAllFn func(ctx context.Context) ([]transaction.Transaction, error)
}

func (f *fakeTransactionSource) FindAll(ctx context.Context) ([]transaction.Transaction, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func reportLine(t transaction.Transaction) string {
	return fmt.Sprintf("%s: %s - %s USD", t.Date.Format(transaction.DateFormat), t.Type, t.Amount.String())
}

func TestTransactionReportGenerator_AddDeleteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TransactionReport.txt")
	gen := notify.NewTransactionReportGenerator(&fakeTransactionSource{}, path, zap.NewNop())

	ctx := context.Background()
	assert.NoError(t, gen.Seed(ctx))

	bonus := transaction.Transaction{
		ID:     uuid.New(),
		Amount: decimal.NewFromInt(100),
		Date:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		Type:   transaction.TypeBonus,
	}
	salary := transaction.Transaction{
		ID:     uuid.New(),
		Amount: decimal.NewFromInt(200),
		Date:   time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
		Type:   transaction.TypeSalary,
	}

	assert.NoError(t, gen.OnTransaction(ctx, bonus, notify.ActionAdd))
	assert.NoError(t, gen.OnTransaction(ctx, salary, notify.ActionAdd))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, reportLine(bonus)+"\n"+reportLine(salary), string(content))

	assert.NoError(t, gen.OnTransaction(ctx, bonus, notify.ActionDelete))

	content, err = os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, reportLine(salary), string(content))
}

func TestTransactionReportGenerator_SeedReplacesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TransactionReport.txt")

	existing := transaction.Transaction{
		ID:     uuid.New(),
		Amount: decimal.NewFromInt(300),
		Date:   time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC),
		Type:   transaction.TypeFine,
	}
	source := &fakeTransactionSource{
		findAllFn: func(ctx context.Context) ([]transaction.Transaction, error) {
			return []transaction.Transaction{existing}, nil
		},
	}
	gen := notify.NewTransactionReportGenerator(source, path, zap.NewNop())

	ctx := context.Background()
	assert.NoError(t, gen.Seed(ctx))

	// First change after seeding writes the seeded row plus the new one.
	added := transaction.Transaction{
		ID:     uuid.New(),
		Amount: decimal.NewFromInt(50),
		Date:   time.Date(2026, 7, 16, 12, 0, 0, 0, time.UTC),
		Type:   transaction.TypeBonus,
	}
	assert.NoError(t, gen.OnTransaction(ctx, added, notify.ActionAdd))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, reportLine(existing)+"\n"+reportLine(added), string(content))
}

func TestTransactionReportGenerator_SeedSourceError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TransactionReport.txt")
	source := &fakeTransactionSource{
		findAllFn: func(ctx context.Context) ([]transaction.Transaction, error) {
			return nil, errors.New("db unavailable")
		},
	}
	gen := notify.NewTransactionReportGenerator(source, path, zap.NewNop())

	err := gen.Seed(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db unavailable")
}

func TestTransactionReportGenerator_DeleteUnknownIDKeepsReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TransactionReport.txt")
	gen := notify.NewTransactionReportGenerator(&fakeTransactionSource{}, path, zap.NewNop())

	ctx := context.Background()
	kept := transaction.Transaction{
		ID:     uuid.New(),
		Amount: decimal.NewFromInt(100),
		Date:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		Type:   transaction.TypeSalary,
	}
	assert.NoError(t, gen.OnTransaction(ctx, kept, notify.ActionAdd))

	unknown := transaction.Transaction{ID: uuid.New()}
	assert.NoError(t, gen.OnTransaction(ctx, unknown, notify.ActionDelete))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, reportLine(kept), string(content))
}

func TestTransactionReportGenerator_UnwritablePathReturnsError(t *testing.T) {
	gen := notify.NewTransactionReportGenerator(&fakeTransactionSource{},
		filepath.Join(t.TempDir(), "missing", "TransactionReport.txt"), zap.NewNop())

	tx := transaction.Transaction{
		ID:     uuid.New(),
		Amount: decimal.NewFromInt(10),
		Date:   time.Now().UTC(),
		Type:   transaction.TypeFine,
	}

	err := gen.OnTransaction(context.Background(), tx, notify.ActionAdd)

	assert.Error(t, err)
}
