// Package ledger reads the subscription and purchase ledgers.
// Mutations belong to the payment collaborator; the write helpers here only
// serve projections and fixtures.
package ledger

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the ledger database and migrates the read models.
func Open(driver, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported ledger driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ledger: %w", err)
	}
	if err = db.AutoMigrate(&SubscriptionModel{}, &PurchaseModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate ledger: %w", err)
	}
	return db, nil
}
