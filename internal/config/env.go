package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDriver      string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBDSN         string
	DBAutoMigrate bool
	DBSeedFile    string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		driver = DriverMySQL
	}

	return Env{
		AppAddr: appAddr,
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBDriver:      driver,
		DBHost:        envOr("DB_HOST", "127.0.0.1:3306"),
		DBUser:        envOr("DB_USER", "root"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        envOr("DB_NAME", "goods_db"),
		DBDSN:         strings.TrimSpace(os.Getenv("DB_DSN")),
		DBAutoMigrate: envBool("DB_AUTO_MIGRATE", true),
		DBSeedFile:    strings.TrimSpace(os.Getenv("DB_SEED_FILE")),

		CORSAllowedOrigins: splitList(envOr("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
