package notify

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"go-payroll/internal/transaction"

	"go.uber.org/zap"
)

// TransactionSource is the read port the report cache is seeded from.
type TransactionSource interface {
	FindAll(ctx context.Context) ([]transaction.Transaction, error)
}

// TransactionReportGenerator keeps an in-memory copy of all transactions and
// rewrites the full plain-text report file after every change. The cache is
// seeded once at startup via Seed; if the process restarts, Seed brings it
// back in line with the store.
type TransactionReportGenerator struct {
	mu           sync.Mutex
	source       TransactionSource
	path         string
	transactions []transaction.Transaction
	logger       *zap.Logger
}

func NewTransactionReportGenerator(source TransactionSource, path string, logger ...*zap.Logger) *TransactionReportGenerator {
	l := zap.L().Named("report.generator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.generator")
	}
	return &TransactionReportGenerator{
		source: source,
		path:   path,
		logger: l,
	}
}

// Seed replaces the cache with the store's current contents.
func (g *TransactionReportGenerator) Seed(ctx context.Context) error {
	transactions, err := g.source.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("seed transaction report cache: %w", err)
	}

	g.mu.Lock()
	g.transactions = transactions
	g.mu.Unlock()

	g.logger.Info("transaction report cache seeded", zap.Int("count", len(transactions)))
	return nil
}

func (g *TransactionReportGenerator) OnTransaction(ctx context.Context, tx transaction.Transaction, action Action) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch action {
	case ActionAdd:
		g.transactions = append(g.transactions, tx)
	case ActionDelete:
		kept := g.transactions[:0]
		for _, t := range g.transactions {
			if t.ID != tx.ID {
				kept = append(kept, t)
			}
		}
		g.transactions = kept
	}

	return g.writeReport()
}

func (g *TransactionReportGenerator) writeReport() error {
	lines := make([]string, 0, len(g.transactions))
	for _, t := range g.transactions {
		lines = append(lines, fmt.Sprintf("%s: %s - %s USD",
			t.Date.Format(transaction.DateFormat), t.Type, t.Amount.String()))
	}

	if err := g.writeFile(strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write transaction report: %w", err)
	}

	g.logger.Debug("transaction report updated", zap.Int("count", len(g.transactions)))
	return nil
}

func (g *TransactionReportGenerator) writeFile(content string) error {
	return os.WriteFile(g.path, []byte(content), 0o644)
}
