package employee

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AllEmployeesCacheKey is invalidated by the payroll manager on every
// employee mutation.
const AllEmployeesCacheKey = "employees:all"

// Queries is the read-side port. Listing bypasses the payroll manager
// entirely and goes straight to the store, with an optional Redis cache in
// front.
//
//go:generate mockgen -source=employee_queries.go -destination=mock/employee_queries_mock.go -package=mock
type Queries interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
}

type queries struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewQueries(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Queries {
	l := zap.L().Named("employee.queries")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.queries")
	}
	return &queries{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (q *queries) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	if q.rdb != nil {
		if cached, err := q.rdb.Get(ctx, AllEmployeesCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// singleflight keeps a cold cache from stampeding the store
	v, err, _ := q.sf.Do(AllEmployeesCacheKey, func() (interface{}, error) {
		employees, err := q.repo.FindAll(ctx)
		if err != nil {
			q.logger.Error("get all employees failed", zap.Error(err))
			return nil, MapRepositoryError(err)
		}

		resp := ToListResponse(employees)

		if q.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				q.rdb.Set(ctx, AllEmployeesCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}
