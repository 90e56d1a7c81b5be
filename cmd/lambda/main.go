package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"results_api/internal/application"
	"results_api/internal/config"
	"results_api/pkg/contextx"
	"results_api/pkg/lambdax"
	"results_api/pkg/logx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", logx.Error(err))
		os.Exit(1)
	}

	log := logx.New(os.Stdout, cfg.Log.Level, cfg.Log.Format).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	handler, sql, err := application.NewHandler(cfg)
	if err != nil {
		log.Error("application.NewHandler", logx.Error(err))
		os.Exit(1)
	}

	// With DB_POOLED the pool outlives invocations; close it when the
	// runtime shuts the sandbox down.
	lambda.StartWithOptions(
		lambdax.NewAdapter(handler).Handle,
		lambda.WithEnableSIGTERM(func() {
			sql.Close(contextx.WithLogger(context.Background(), log))
		}),
	)
}
