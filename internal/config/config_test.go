package config

import (
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	rq := require.New(t)

	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_DATABASE", "quiz")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	rq.NoError(err)

	rq.Equal("results-api", cfg.App.Name)
	rq.Equal(slog.LevelDebug, cfg.Log.Level)
	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal("mysql", cfg.Database.Driver)
	rq.True(cfg.Database.TLS)
	rq.False(cfg.Database.Pooled)
	rq.Equal(10*time.Second, cfg.Database.ConnectTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "Missing host",
			env:     map[string]string{"DB_USER": "app", "DB_DATABASE": "quiz"},
			wantErr: ErrMissingSetting,
		},
		{
			name:    "Unknown driver",
			env:     map[string]string{"DB_DRIVER": "oracle"},
			wantErr: ErrUnknownDriver,
		},
		{
			name:    "SQLite without file",
			env:     map[string]string{"DB_DRIVER": "sqlite"},
			wantErr: ErrMissingSetting,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDatabase_DSN_MySQL(t *testing.T) {
	rq := require.New(t)

	dsn, err := Database{
		Driver:         "mysql",
		Host:           "db.example.com",
		User:           "app",
		Password:       "p@ss",
		Name:           "quiz",
		TLS:            true,
		ConnectTimeout: 10 * time.Second,
	}.DSN()
	rq.NoError(err)

	cfg, err := mysql.ParseDSN(dsn)
	rq.NoError(err)
	rq.Equal("db.example.com:3306", cfg.Addr)
	rq.Equal("app", cfg.User)
	rq.Equal("p@ss", cfg.Passwd)
	rq.Equal("quiz", cfg.DBName)
	rq.Equal("true", cfg.TLSConfig)
	rq.True(cfg.ParseTime)
	rq.Equal(10*time.Second, cfg.Timeout)
}

func TestDatabase_DSN_Postgres(t *testing.T) {
	rq := require.New(t)

	dsn, err := Database{
		Driver:         "pgx",
		Host:           "db.example.com",
		User:           "app",
		Password:       "secret",
		Name:           "quiz",
		Port:           6432,
		TLS:            true,
		ConnectTimeout: 10 * time.Second,
	}.DSN()
	rq.NoError(err)

	u, err := url.Parse(dsn)
	rq.NoError(err)
	rq.Equal("db.example.com:6432", u.Host)
	rq.Equal("/quiz", u.Path)
	rq.Equal("verify-full", u.Query().Get("sslmode"))
	rq.Equal("10", u.Query().Get("connect_timeout"))
}

func TestDatabase_DSN_SQLite(t *testing.T) {
	dsn, err := Database{Driver: "sqlite", Name: "/tmp/results.db"}.DSN()
	require.NoError(t, err)
	require.Equal(t, "/tmp/results.db", dsn)
}
