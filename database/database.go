package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"reviews/config"
	"reviews/models"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// driverName is a sqlite3 driver variant that keys the SQLCipher codec on
// every new connection before any other statement runs.
const driverName = "sqlite3_sqlcipher"

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// PRAGMA key must be the first statement on the connection.
			// A plain SQLite build ignores it and leaves the file unencrypted.
			passphrase := strings.ReplaceAll(config.AppConfig.DatabasePassphrase, "'", "''")
			_, err := conn.Exec(fmt.Sprintf("PRAGMA key = '%s';", passphrase), nil)
			return err
		},
	})
}

// ConnectDb opens the encrypted database file
func ConnectDb() {
	cfg := config.AppConfig

	// Foreign keys, WAL journaling and synchronous=NORMAL are applied per
	// connection through the DSN.
	dsn := fmt.Sprintf(
		"%s?_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL",
		cfg.DatabaseFile(),
	)

	gormLogger := logger.Default.LogMode(logger.Silent)
	if cfg.LogLevel == "debug" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	// SkipDefaultTransaction stays false so every mutating unit of work runs
	// inside an explicit BEGIN/COMMIT issued by GORM.
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: driverName,
		DSN:        dsn,
	}), &gorm.Config{Logger: gormLogger})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", cfg.DatabaseFile(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	Database = DbInstance{Db: db}
}

// HasTables reports whether the schema has been created already
func HasTables() bool {
	tables, err := Database.Db.Migrator().GetTables()
	if err != nil {
		log.Fatalf("Failed to enumerate tables: %v", err)
	}
	return len(tables) > 0
}

// Migrate creates the schema
func Migrate() {
	log.Println("Running Migrations...")

	err := Database.Db.AutoMigrate(
		&models.Reviewer{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
