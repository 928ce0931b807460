package database

import (
	"log"
	"os"
	"time"

	"github.com/reviewhub-api/config"
	"github.com/reviewhub-api/logger"
	"github.com/reviewhub-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize sets up the GORM database connection. Postgres is used when
// DATABASE_URL is set; otherwise the service falls back to a local sqlite
// file, which is enough for development.
func Initialize() {
	newLogger := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey on both backends; the review repository
	// depends on that for the one-review-per-author rule.
	gormConfig := &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	if dbURL := config.DatabaseURL(); dbURL != "" {
		db, err = gorm.Open(postgres.Open(dbURL), gormConfig)
		logger.Info("using postgres database")
	} else {
		path := config.SQLitePath()
		db, err = gorm.Open(sqlite.Open(path), gormConfig)
		logger.Warningf("no DATABASE_URL set, using sqlite database at %s", path)
	}
	if err != nil {
		logger.Errorf("failed to connect to database: %v", err)
		os.Exit(1)
	}
	DB = db

	sqlDB, err := DB.DB()
	if err != nil {
		logger.Errorf("failed to get SQL DB: %v", err)
		os.Exit(1)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(DB); err != nil {
		logger.Errorf("failed to auto migrate: %v", err)
		os.Exit(1)
	}

	logger.Info("connected to database")
}

// Migrate applies the schema for every entity. The title/genre join table
// is backed by the explicit GenreTitle model so its composite key stays
// under our control.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Title{}, "Genres", &models.GenreTitle{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Genre{},
		&models.Title{},
		&models.Review{},
		&models.Comment{},
	)
}
