package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// DSN builds the driver-specific data source name for env.
// For MySQL, RowsAffected reports matched rows so repeating an update is not a miss.
func (e Env) DSN() string {
	switch e.DBDriver {
	case DriverSQLite:
		if e.DBDSN != "" {
			return e.DBDSN
		}
		return "goods.sqlite3"
	default:
		if e.DBDSN != "" {
			cfg, err := mysql.ParseDSN(e.DBDSN)
			if err != nil {
				return e.DBDSN
			}
			cfg.ClientFoundRows = true
			return cfg.FormatDSN()
		}
		cfg := mysql.NewConfig()
		cfg.User = e.DBUser
		cfg.Passwd = e.DBPassword
		cfg.Net = "tcp"
		cfg.Addr = e.DBHost
		cfg.DBName = e.DBName
		cfg.ParseTime = true
		cfg.ClientFoundRows = true
		cfg.Timeout = 5 * time.Second
		cfg.ReadTimeout = 30 * time.Second
		cfg.WriteTimeout = 30 * time.Second
		cfg.Params = map[string]string{"charset": "utf8mb4"}
		return cfg.FormatDSN()
	}
}

// OpenDB opens and pings the pool described by env.
func OpenDB(env Env) (*sql.DB, error) {
	if env.DBDriver != DriverMySQL && env.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}

	db, err := sql.Open(env.DBDriver, env.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", env.DBDriver, err)
	}

	if env.DBDriver == DriverSQLite {
		// single writer; also keeps ":memory:" on one connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(10 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s: %w", env.DBDriver, err)
	}

	log.Printf("connected to %s database", env.DBDriver)
	return db, nil
}
