package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"results_api/internal/config"
	service "results_api/internal/domain/service/result"
	"results_api/internal/infrastructure/persistence"
	"results_api/internal/server"
	"results_api/pkg/application/connectors"
	"results_api/pkg/application/modules"
	"results_api/pkg/logx"
)

// NewHandler собирает цепочку connector -> repository -> service -> router.
// Используется и HTTP-сервером, и lambda-адаптером.
func NewHandler(cfg config.Config) (http.Handler, *connectors.SQL, error) {
	// 1. Database
	dsn, err := cfg.Database.DSN()
	if err != nil {
		return nil, nil, fmt.Errorf("database dsn: %w", err)
	}

	sql := &connectors.SQL{
		Driver:          cfg.Database.Driver,
		DSN:             dsn,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
		Pooled:          cfg.Database.Pooled,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	// 2. Repositories
	resultRepo := persistence.NewResultRepository(sql)

	// 3. Services
	resultService := service.NewResultService(resultRepo)

	// 4. HTTP
	srv := server.NewServer(
		server.NewResultsServer(resultService),
	)

	return srv.Handler(server.Options{LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen}), sql, nil
}

// Run поднимает API, probe и metrics серверы и ждёт их остановки.
func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	handler, sql, err := NewHandler(cfg)
	if err != nil {
		return err
	}
	defer sql.Close(ctx)

	log.Info("starting",
		slog.String(logx.FieldDriver, cfg.Database.Driver),
		slog.String(logx.FieldDatabase, cfg.Database.Name),
		slog.Bool("pooled", cfg.Database.Pooled),
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, handler)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready:         sql.Ping,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	log.Info("application stopping...")

	return nil
}
