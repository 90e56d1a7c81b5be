package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql" // mysql driver
	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"results_api/pkg/logx"
	"results_api/pkg/metrics"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

func init() { //nolint:gochecknoinits
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// SQL hands out database handles. By default every Acquire opens a fresh
// connection that Release closes again; with Pooled set, all callers share
// one lazily created pool and Release is a no-op.
type SQL struct {
	Driver          string
	DSN             string
	ConnectTimeout  time.Duration
	Pooled          bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration

	mu    sync.Mutex
	value *sqlx.DB
}

func (s *SQL) Acquire(ctx context.Context) (*sqlx.DB, error) {
	if s.Pooled {
		return s.pool(ctx)
	}

	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	return db, nil
}

func (s *SQL) Release(ctx context.Context, db *sqlx.DB) {
	if s.Pooled || db == nil {
		return
	}

	if err := db.Close(); err != nil {
		logger(ctx).Error("db.Close", slog.String(logx.FieldDriver, s.Driver), logx.Error(err))
	}
}

// Ping checks that a connection can be established and answers.
func (s *SQL) Ping(ctx context.Context) error {
	db, err := s.Acquire(ctx)
	if err != nil {
		return err
	}
	defer s.Release(ctx, db)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db.PingContext: %w", err)
	}

	return nil
}

func (s *SQL) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == nil {
		return
	}

	if err := s.value.Close(); err != nil {
		logger(ctx).Error("sqlClient.Close", logx.Error(err))
	}

	s.value = nil

	logger(ctx).Info("database pool closed", slog.String(logx.FieldDriver, s.Driver))
}

func (s *SQL) pool(ctx context.Context) (*sqlx.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value != nil {
		return s.value, nil
	}

	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(s.MaxOpenConns)
	db.SetMaxIdleConns(s.MaxIdleConns)
	db.SetConnMaxLifetime(s.ConnMaxLifetime)

	s.value = db

	logger(ctx).Info("database pool opened", slog.String(logx.FieldDriver, s.Driver))

	return s.value, nil
}

func (s *SQL) connect(ctx context.Context) (*sqlx.DB, error) {
	if s.ConnectTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.ConnectTimeout)
		defer cancel()
	}

	db, err := sqlx.ConnectContext(ctx, s.Driver, s.DSN)

	metrics.DBConnectionsOpened.WithLabelValues(s.Driver, lo.Ternary(err == nil, "ok", "error")).Inc()

	if err != nil {
		return nil, fmt.Errorf("sqlx.ConnectContext: %w", err)
	}

	logger(ctx).Debug("database connected", slog.String(logx.FieldDriver, s.Driver))

	return db, nil
}
