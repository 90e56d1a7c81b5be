package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"results_api/pkg/application/connectors"
)

const (
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
)

var (
	ErrUnknownDriver  = errors.New("unknown database driver")
	ErrMissingSetting = errors.New("missing database setting")
)

// Database reads the connection settings shared with the existing deployment
// (DB_HOST, DB_USER, DB_PASSWORD, DB_DATABASE, DB_PORT).
type Database struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"mysql"`
	Host            string        `env:"DB_HOST"`
	User            string        `env:"DB_USER"`
	Password        string        `env:"DB_PASSWORD" json:"-"`
	Name            string        `env:"DB_DATABASE"`
	Port            int           `env:"DB_PORT"`
	TLS             bool          `env:"DB_TLS" envDefault:"true"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
	Pooled          bool          `env:"DB_POOLED" envDefault:"false"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
}

func (d Database) Validate() error {
	switch d.Driver {
	case connectors.DriverMySQL, connectors.DriverPostgres:
		for name, value := range map[string]string{
			"DB_HOST":     d.Host,
			"DB_USER":     d.User,
			"DB_DATABASE": d.Name,
		} {
			if value == "" {
				return fmt.Errorf("%s: %w", name, ErrMissingSetting)
			}
		}
	case connectors.DriverSQLite:
		if d.Name == "" {
			return fmt.Errorf("DB_DATABASE: %w", ErrMissingSetting)
		}
	default:
		return fmt.Errorf("%q: %w", d.Driver, ErrUnknownDriver)
	}

	return nil
}

// DSN renders the connection string for the configured driver. TLS, when
// enabled, always verifies the server certificate.
func (d Database) DSN() (string, error) {
	switch d.Driver {
	case connectors.DriverMySQL:
		cfg := mysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(d.Host, strconv.Itoa(d.port(defaultMySQLPort)))
		cfg.User = d.User
		cfg.Passwd = d.Password
		cfg.DBName = d.Name
		cfg.ParseTime = true
		cfg.Timeout = d.ConnectTimeout

		if d.TLS {
			cfg.TLSConfig = "true"
		}

		return cfg.FormatDSN(), nil
	case connectors.DriverPostgres:
		query := url.Values{}
		query.Set("sslmode", "disable")

		if d.TLS {
			query.Set("sslmode", "verify-full")
		}

		if d.ConnectTimeout > 0 {
			query.Set("connect_timeout", strconv.Itoa(int(d.ConnectTimeout.Seconds())))
		}

		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.User, d.Password),
			Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.port(defaultPostgresPort))),
			Path:     "/" + d.Name,
			RawQuery: query.Encode(),
		}

		return dsn.String(), nil
	case connectors.DriverSQLite:
		return d.Name, nil
	default:
		return "", fmt.Errorf("%q: %w", d.Driver, ErrUnknownDriver)
	}
}

func (d Database) port(fallback int) int {
	if d.Port == 0 {
		return fallback
	}

	return d.Port
}
