package transaction

import (
	"context"

	"go.uber.org/zap"
)

// Queries is the read-side port. Listing bypasses the payroll manager
// entirely and goes straight to the store.
//
//go:generate mockgen -source=transaction_queries.go -destination=mock/transaction_queries_mock.go -package=mock
type Queries interface {
	GetAll(ctx context.Context) ([]TransactionResponse, error)
}

type queries struct {
	repo   Repository
	logger *zap.Logger
}

func NewQueries(repo Repository, logger ...*zap.Logger) Queries {
	l := zap.L().Named("transaction.queries")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transaction.queries")
	}
	return &queries{repo: repo, logger: l}
}

func (q *queries) GetAll(ctx context.Context) ([]TransactionResponse, error) {
	transactions, err := q.repo.FindAll(ctx)
	if err != nil {
		q.logger.Error("get all transactions failed", zap.Error(err))
		return nil, MapRepositoryError(err)
	}

	return ToListResponse(transactions), nil
}
