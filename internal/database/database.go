package database

import (
	"log"
	"strings"

	"github.com/pathakanu/studyPlanner/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSQLitePath is used when neither a database URL nor a SQLite path is configured.
const DefaultSQLitePath = "studyplanner.db"

// New creates a GORM database connection.
// When databaseURL is provided PostgreSQL is used, otherwise SQLite is opened at sqlitePath.
func New(databaseURL, sqlitePath string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), gormConfig)
	} else {
		if sqlitePath == "" {
			sqlitePath = DefaultSQLitePath
		}
		db, err = gorm.Open(sqlite.Open(sqlitePath), gormConfig)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logBackend(db, sqlitePath)
	return db, nil
}

// Migrate creates the records table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Record{})
}

func logBackend(db *gorm.DB, sqlitePath string) {
	dialector := db.Dialector.Name()
	switch strings.ToLower(dialector) {
	case "postgres":
		log.Printf("database: connected to PostgreSQL")
	case "sqlite":
		log.Printf("database: using SQLite %s", sqlitePath)
	default:
		log.Printf("database: connected via %s", dialector)
	}
}
