package main

import (
	"fmt"
	"log"
	"os"

	"github.com/blabla/messaging-backend/internal/config"
	"github.com/blabla/messaging-backend/internal/migration"
	pkglogger "github.com/blabla/messaging-backend/pkg/logger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Standalone migration runner for deploy pipelines where the API process
// should not own schema changes.
func main() {
	config.LoadDotEnv()
	pkglogger.Init()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	cfg, err := config.Load(fmt.Sprintf("configs/config.%s.yaml", env))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	pkglogger.Info("Migration complete")
}
