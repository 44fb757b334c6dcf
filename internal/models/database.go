package models

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	gorm_zerolog "github.com/wei840222/gorm-zerolog"
	"github.com/ynam/backend/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect connects to the database and migrates the schema. sqlite is the
// default, postgresql is used when a database host is configured.
func Connect(cfg config.Database) error {
	var db *gorm.DB
	var err error

	gormConfig := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: gorm_zerolog.New(),
	}

	if cfg.Host != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", cfg.Host, cfg.User, cfg.Password, cfg.Name)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	} else {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return fmt.Errorf("could not create database directory: %w", err)
			}
		}

		db, err = gorm.Open(sqlite.Open(cfg.Path+"?_pragma=foreign_keys(1)"), gormConfig)
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Category{}, Allocation{}, MonthConfig{}, Transaction{}, MatchRule{})
	if err != nil {
		return err
	}

	DB = db
	return nil
}
