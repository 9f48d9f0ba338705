package app

import (
	"context"
	"database/sql"

	"go-payroll/internal/employee"
	"go-payroll/internal/middleware"
	"go-payroll/internal/notify"
	"go-payroll/internal/payroll"
	"go-payroll/internal/transaction"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	kafkaWriter *kafkago.Writer,
	reportPath string,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	transactionRepo := transaction.NewRepository(gormDB)

	// --- Notifier & observers ---
	// Subscription order is delivery order: log line first, UI push second,
	// report rewrite last.
	publisher := notify.NewNoopEventPublisher()
	if kafkaWriter != nil {
		publisher = notify.NewKafkaEventPublisher(kafkaWriter)
	}

	notifier := notify.NewTransactionNotifier(logger)
	reportGenerator := notify.NewTransactionReportGenerator(transactionRepo, reportPath, logger)
	if err := reportGenerator.Seed(context.Background()); err != nil {
		return err
	}

	notifier.Subscribe(notify.NewTransactionLogger(logger))
	notifier.Subscribe(notify.NewTransactionUIUpdater(publisher, logger))
	notifier.Subscribe(reportGenerator)

	// --- Orchestration core ---
	manager := payroll.NewManager(db, employeeRepo, transactionRepo, notifier, rdb, logger)

	// --- Read side ---
	employeeQueries := employee.NewQueries(employeeRepo, rdb, logger)
	transactionQueries := transaction.NewQueries(transactionRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(manager, employeeQueries, logger)
	transactionHandler := transaction.NewHandler(manager, transactionQueries, logger)

	// --- Middleware & routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))
	router.Use(middleware.RateLimitByIP(50, 100))

	api := router.Group("")
	{
		employee.RegisterRoutes(api, employeeHandler)
		transaction.RegisterRoutes(api, transactionHandler)
	}

	return nil
}
