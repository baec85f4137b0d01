// cmd/ispdb/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ispdb/internal/adapters/output"
	"ispdb/internal/adapters/resolver"
	"ispdb/internal/core/usecases"
	"ispdb/internal/platform/config"
	"ispdb/internal/platform/errors"
	"ispdb/internal/platform/httpclient"
	"ispdb/internal/platform/logx"
	"ispdb/internal/platform/ui"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// 1. Config
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "Try: ispdb -h for help")
		return exitUsage
	}

	if cfg.ShowVersion {
		config.PrintVersion(stdout, version, commit, date)
		return exitOK
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	// 2. Shared logger
	logger := logx.NewWriter(stderr, logx.LevelFor(cfg.Debug, cfg.Silent))
	logger.Debug("ispdb starting",
		"version", version,
		"email", cfg.Email,
		"timeout", cfg.Timeout,
		"format", format,
	)

	// 3. Transport adapters
	client, err := httpclient.New(httpclient.Config{
		Timeout:  cfg.Timeout,
		ProxyURL: cfg.ProxyURL,
	}, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	mx := resolver.New(resolver.Config{Servers: cfg.Resolvers}, logger)
	logger.Debug("adapters configured", "http", client.String(), "timeout", client.Timeout(), "resolvers", mx.Servers())

	writer, err := output.New(format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	var presenter ui.Presenter = ui.NewNoopPresenter()
	if cfg.Progress && !cfg.Silent {
		presenter = ui.NewPTermPresenter(stderr)
	}

	// 4. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// 5. Lookups
	runner := usecases.NewRunner(usecases.RunnerOptions{
		Pipeline: usecases.NewPipeline(usecases.PipelineOptions{
			Client:   client,
			Resolver: mx,
			Logger:   logger,
		}),
		Writer:    writer,
		Presenter: presenter,
		Logger:    logger,
		Silent:    cfg.Silent,
	})

	summary, err := runner.Run(ctx, cfg.Email, cfg.Protocols())
	if err != nil {
		logger.Err(err, "phase", "run")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	logger.Debug("ispdb finished", "queried", summary.Queried, "found", summary.Found)
	return exitOK
}

// rootContextWithSignals creates a root context cancelled on SIGINT/SIGTERM.
// The cancel function stops signal delivery and releases the watcher goroutine.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanup
}
