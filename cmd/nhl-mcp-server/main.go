// Command nhl-mcp-server serves NHL data tools over the Model Context
// Protocol, as a stdio subprocess by default or over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/argotdev/nhl-mcp/internal/config"
	"github.com/argotdev/nhl-mcp/internal/nhlapi"
	"github.com/argotdev/nhl-mcp/internal/server"
)

var version = "dev"

func main() {
	// Logs go to stderr; stdout belongs to the stdio transport.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, os.Args[1:]); err != nil {
		logger.Error("nhl-mcp-server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, args []string) error {
	flags := flag.NewFlagSet("nhl-mcp-server", flag.ContinueOnError)
	var (
		transport   = flags.String("transport", "stdio", "transport: stdio or http")
		addr        = flags.String("addr", ":8080", "HTTP listen address (http transport)")
		mcpPath     = flags.String("path", "/mcp", "HTTP path for the MCP endpoint")
		configPath  = flags.String("config", "", "config file path (default: $XDG_CONFIG_HOME/nhl-mcp/config.yaml)")
		showVersion = flags.Bool("version", false, "print version and exit")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Printf("nhl-mcp-server %s\n", version)
		return nil
	}

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	clientOpts := []nhlapi.Option{nhlapi.WithLogger(logger)}
	if cfg.APIBaseURL != nil {
		clientOpts = append(clientOpts, nhlapi.WithBaseURL(*cfg.APIBaseURL))
	}
	if cfg.StatsAPIBaseURL != nil {
		clientOpts = append(clientOpts, nhlapi.WithStatsBaseURL(*cfg.StatsAPIBaseURL))
	}
	if cfg.Timeout != nil {
		clientOpts = append(clientOpts, nhlapi.WithTimeout(cfg.Timeout.Duration()))
	}
	if cfg.UserAgent != nil {
		clientOpts = append(clientOpts, nhlapi.WithUserAgent(*cfg.UserAgent))
	}

	core := server.NewCore(nhlapi.NewClient(clientOpts...), logger)
	opts := server.ServerOptions{Version: version}

	switch *transport {
	case "stdio":
		err := server.RunStdio(ctx, core, opts)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case "http":
		return serveHTTP(ctx, logger, core, *addr, *mcpPath, opts)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", *transport)
	}
}

func serveHTTP(ctx context.Context, logger *slog.Logger, core *server.Core, addr, mcpPath string, opts server.ServerOptions) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.NewHTTPHandler(core, mcpPath, opts),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mcp http server listening", "addr", addr, "path", mcpPath)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return httpServer.Shutdown(context.Background())
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
