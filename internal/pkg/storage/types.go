package storage

import (
	"context"
	"fmt"
	"os"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func LoadConfiguration(_ context.Context) Config {
	return Config{
		host:     env("POSTGRES_HOST", ""),
		user:     env("POSTGRES_USER", ""),
		password: env("POSTGRES_PASSWORD", ""),
		port:     env("POSTGRES_PORT", "5432"),
		dbname:   env("POSTGRES_DBNAME", "flightadvisor"),
		sslmode:  env("POSTGRES_SSLMODE", "disable"),
	}
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
