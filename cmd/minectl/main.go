package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/minectl/internal/logging"
	"github.com/danmuck/minectl/internal/mine"
	"github.com/danmuck/minectl/internal/observability"
	"github.com/danmuck/minectl/internal/server"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.ConfigureRuntime()
	observability.InitLogger("minectl")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "minectl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	catalog, err := resolveCatalog(cfg)
	if err != nil {
		return err
	}

	if cfg.Serve {
		srv := server.New("minectl", cfg.ServeAddr, catalog, cfg.CorsOrigins)
		return srv.Serve(ctx)
	}

	log.Debug().Float64("quantity", cfg.Quantity).Str("locale", cfg.Locale).Msg("operating mine")
	mine.New(stdout, catalog).Operate(cfg.Quantity)
	return nil
}
