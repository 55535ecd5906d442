// Picks the GORM driver by DBDriver and applies the schema baseline.

package config

import (
	"github.com/rs/zerolog/log"

	"github.com/Thammasok/user-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// GORM drivers (one is opened depending on cfg.DBDriver).
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// maxOpenConns caps the shared connection pool. Requests needing a
// connection block until one is free; there is no explicit timeout beyond
// the driver's own.
const maxOpenConns = 5

// InitDB opens a database connection using the configured driver and
// applies auto-migration for the users table. Any failure here is fatal:
// the process must not serve traffic without storage.
func InitDB(cfg *Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	// Warn keeps GORM's own output readable; request logging is handled
	// by the HTTP middleware.
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			log.Fatal().Msg("mysql selected but mysql_dsn empty")
		}
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal().Msg("postgres selected but postgres_dsn empty")
		}
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			log.Fatal().Msg("sqlserver selected but sqlserver_dsn empty")
		}
		db, err = gorm.Open(sqlserver.Open(cfg.SQLServerDSN), gormCfg)
	default:
		log.Fatal().Str("driver", cfg.DBDriver).Msg("unknown db_driver")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("database connection error")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("database handle error")
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	// AutoMigrate keeps the users table (and its unique email index) in
	// step with the model. Enough for this service; there is no separate
	// migrations tooling.
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatal().Err(err).Msg("automigrate error")
	}

	log.Info().Str("driver", cfg.DBDriver).Msg("database connection established")
	return db
}
