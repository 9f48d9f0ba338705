package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRepository struct {
	findAllFn func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.findAllFn(ctx)
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error { return nil }

func TestQueries_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("maps entities to responses", func(t *testing.T) {
		repo := &fakeRepository{
			findAllFn: func(ctx context.Context) ([]employee.Employee, error) {
				return []employee.Employee{
					{ID: uuid.New(), Name: "Alice", Position: "Analyst", Salary: decimal.NewFromInt(1000)},
					{ID: uuid.New(), Name: "Bob", Position: "Clerk", Salary: decimal.NewFromInt(800)},
				}, nil
			},
		}
		queries := employee.NewQueries(repo, nil, zap.NewNop())

		resp, err := queries.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Alice", resp[0].Name)
		assert.True(t, resp[1].Salary.Equal(decimal.NewFromInt(800)))
	})

	t.Run("empty store returns empty list", func(t *testing.T) {
		repo := &fakeRepository{
			findAllFn: func(ctx context.Context) ([]employee.Employee, error) {
				return nil, nil
			},
		}
		queries := employee.NewQueries(repo, nil, zap.NewNop())

		resp, err := queries.GetAll(ctx)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("not found from the store maps to the typed error", func(t *testing.T) {
		repo := &fakeRepository{
			findAllFn: func(ctx context.Context) ([]employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		queries := employee.NewQueries(repo, nil, zap.NewNop())

		_, err := queries.GetAll(ctx)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("store failure passes through", func(t *testing.T) {
		repo := &fakeRepository{
			findAllFn: func(ctx context.Context) ([]employee.Employee, error) {
				return nil, errors.New("connection refused")
			},
		}
		queries := employee.NewQueries(repo, nil, zap.NewNop())

		_, err := queries.GetAll(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
