package models

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"log"
	"os"
	"referral_backend/config"
	"strings"
	"time"
)

var DB *gorm.DB

var gormConfig = &gorm.Config{
	NamingStrategy: schema.NamingStrategy{
		SingularTable: true, // use singular table name, table for `Referral` would be `referral` with this option enabled
	},
	Logger: logger.New(
		log.Default(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	),
}

func InitDB() {
	remoteDB := func() (*gorm.DB, error) {
		return gorm.Open(dialector(config.Config.DbUrl), gormConfig)
	}
	sqliteDB := func() (*gorm.DB, error) {
		err := os.MkdirAll("data", 0755)
		if err != nil && !os.IsExist(err) {
			panic(err)
		}
		return gorm.Open(sqlite.Open("data/sqlite.db"), gormConfig)
	}
	memoryDB := func() (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormConfig)
	}

	var err error

	// connect to database with different mode
	switch config.Config.Mode {
	case "production":
		if config.Config.DbUrl == "" {
			panic("DB_URL is required in production mode")
		}
		DB, err = remoteDB()
	case "dev":
		if config.Config.DbUrl == "" {
			DB, err = sqliteDB()
		} else {
			DB, err = remoteDB()
		}
	case "test":
		DB, err = memoryDB()
	default:
		panic("unsupported mode")
	}

	if err != nil {
		panic(err)
	}

	if config.Config.Debug {
		DB = DB.Debug()
	}

	// migrate database
	err = DB.AutoMigrate(
		Referral{},
	)
	if err != nil {
		panic(err)
	}
}

// dialector picks the driver from the connection string:
// postgres urls go to pgx, everything else is treated as a mysql dsn
func dialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return mysql.Open(dsn)
}
