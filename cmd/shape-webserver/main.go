// Command shape-webserver serves a hello page on GET / and a not-found page
// for everything else, one request per connection.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shapestone/shape-webserver/internal/config"
	"github.com/shapestone/shape-webserver/internal/logging"
	"github.com/shapestone/shape-webserver/internal/server"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "shape-webserver:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("shape-webserver", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "addr", cfg.Address, "listen address")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of connection workers")
	fs.StringVar(&cfg.PagesDir, "pages", cfg.PagesDir, "directory with hello.html and 404.html (default: built-in pages)")
	fs.BoolVar(&cfg.StrictHeaders, "strict-headers", cfg.StrictHeaders, "reject header lines with an empty value")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console, json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx, cfg, log)
}
