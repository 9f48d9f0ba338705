package app

import (
	"os"
	"strings"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/connection"
	"go-payroll/internal/transaction"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const defaultReportPath = "TransactionReport.txt"

// BuildApp sets up infrastructure, runs migrations and seeding, and
// registers every module on the router.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(
		&transaction.TransactionType{},
		&employee.Employee{},
		&transaction.Transaction{},
	); err != nil {
		return err
	}
	if err := transaction.SeedTypes(gormDB); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	}

	var kafkaWriter *kafkago.Writer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaWriter = &kafkago.Writer{
			Addr:     kafkago.TCP(strings.Split(brokers, ",")...),
			Balancer: &kafkago.LeastBytes{},
		}
	}

	reportPath := os.Getenv("REPORT_PATH")
	if reportPath == "" {
		reportPath = defaultReportPath
	}

	return registerModules(router, db, gormDB, rdb, kafkaWriter, reportPath, logger)
}
