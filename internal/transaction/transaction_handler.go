package transaction

import (
	"context"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"
	txerrors "go-payroll/internal/transaction/errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Manager is the write-side port the handler drives, implemented by the
// payroll manager.
type Manager interface {
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	GetTransactionsByEmployee(ctx context.Context, employeeID string) ([]TransactionResponse, error)
	GetTotalPayouts(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	DeleteTransaction(ctx context.Context, id string) (TransactionResponse, error)
}

type Handler struct {
	manager Manager
	queries Queries
	logger  *zap.Logger
}

func NewHandler(manager Manager, queries Queries, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("transaction.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transaction.handler")
	}
	return &Handler{manager: manager, queries: queries, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("transaction request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) Add(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create transaction validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if err := req.Validate(); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.manager.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.queries.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetAllByEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	resp, err := h.manager.GetTransactionsByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetTotalAmountByPeriod(c *gin.Context) {
	from, err := parsePeriodParam(c.Query("from"))
	if err != nil {
		h.writeServiceError(c, txerrors.ErrInvalidDatePeriod)
		return
	}
	to, err := parsePeriodParam(c.Query("to"))
	if err != nil {
		h.writeServiceError(c, txerrors.ErrInvalidDatePeriod)
		return
	}

	total, err := h.manager.GetTotalPayouts(c.Request.Context(), from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, TotalAmountResponse{Amount: total})
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("transactionId")

	resp, err := h.manager.DeleteTransaction(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// parsePeriodParam accepts RFC 3339 timestamps and bare dates.
func parsePeriodParam(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
