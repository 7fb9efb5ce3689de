package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"snaccscore/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	maxOpenConns    = 50
	maxIdleConns    = 10
	connMaxLifetime = time.Hour
	connMaxIdleTime = 15 * time.Minute
)

func ConnectDatabase(cfg config.DatabaseConfig) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s "+
			"application_name=snaccscore TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Millisecond * 500, // Log queries slower than 500ms
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 newLogger,
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Connected to database successfully")
	log.Printf("Database connection pool: max open %d, max idle %d, lifetime %v, idle time %v",
		maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	DB = db
}

// MonitorDBConnections logs a warning whenever most pooled connections are busy.
func MonitorDBConnections(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sqlDB, err := DB.DB()
				if err != nil {
					continue
				}
				stats := sqlDB.Stats()
				if stats.InUse > maxOpenConns*3/4 {
					log.Printf("DB Connection Pool: InUse=%d, Idle=%d, Open=%d",
						stats.InUse, stats.Idle, stats.OpenConnections)
				}
			case <-stop:
				return
			}
		}
	}()
}
