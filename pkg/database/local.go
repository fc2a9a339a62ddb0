package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectLocal opens the embedded SQLite database backing the
// local-device store.
func ConnectLocal() *gorm.DB {
	path := os.Getenv("LOCAL_DB_PATH")
	if path == "" {
		path = "storefront.db"
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		log.Fatal("Failed to open local database. \n", err)
	}

	log.Println("Local database ready:", path)
	return db
}
