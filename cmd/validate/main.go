package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"constraintsvc/internal/adapters/cli"
	"constraintsvc/internal/adapters/schemadoc"
	"constraintsvc/internal/config"
	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/domain/validation"
	"constraintsvc/internal/core/domain/validation/builtin"
	"constraintsvc/internal/platform/logger"
	"constraintsvc/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadBase()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log, err := logger.NewZapLogger(cfg.LoggerConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	registry := builtin.Registry()
	app := cli.NewApp(cli.Dependencies{
		Engine:  validation.NewEngine(registry),
		Decoder: schemadoc.NewDecoder(),
		Checker: schema.NewService(registry),
		Logger:  log,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Build:   version.Info(),
	})

	if err := app.Run(ctx, os.Args); err != nil {
		if errors.Is(err, cli.ErrValidationFailed) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return 0
}
