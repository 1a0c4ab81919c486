// Command simcheck validates simulation documents.
//
// Usage:
//
//	simcheck validate [-print] FILE...
//	simcheck serve
//
// validate checks JSON or YAML files (picked by extension) and exits with
// status 1 if any of them is invalid. serve exposes the same check over HTTP.
// Settings come from the environment, see appConfig.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/simkit/pkg/config"
	"github.com/dmitrymomot/simkit/pkg/httpserver"
	"github.com/dmitrymomot/simkit/pkg/logger"
	"github.com/dmitrymomot/simkit/pkg/requestid"
	"github.com/dmitrymomot/simkit/pkg/simulation"
	"github.com/dmitrymomot/simkit/svc/validate"
)

var errUsage = errors.New("usage: simcheck validate [-print] FILE... | simcheck serve")

func main() {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "simcheck: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(context.Background(), cfg, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, cfg appConfig, args []string, stdout, stderr io.Writer) int {
	log := newLogger(cfg, stderr)
	opts := []simulation.Option{
		simulation.WithReservedNameChars(cfg.EnforceReservedNames),
		simulation.WithLogger(log),
	}

	if len(args) == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(stderr)
		printSim := fs.Bool("print", false, "print each valid simulation with default names filled in")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() == 0 {
			fmt.Fprintln(stderr, errUsage)
			return 2
		}
		return validateFiles(log, fs.Args(), *printSim, stdout, opts)

	case "serve":
		svc := validate.New(log, opts...)
		srv := httpserver.New(cfg.HTTP, log)
		if err := srv.Run(ctx, svc.Router()); err != nil {
			log.Error("server stopped", logger.Error(err))
			return 1
		}
		return 0
	}

	fmt.Fprintln(stderr, errUsage)
	return 2
}

func newLogger(cfg appConfig, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(cfg.Env, "simcheck"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}

func validateFiles(log *slog.Logger, paths []string, printSim bool, stdout io.Writer, opts []simulation.Option) int {
	failed := 0
	for _, path := range paths {
		start := time.Now()
		sim, err := validateFile(path, opts)
		log.Debug("validated", logger.Source(path), logger.Duration(time.Since(start)))
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "%s: INVALID: %s\n", path, describe(err))
			log.Warn("invalid simulation", logger.Source(path), logger.Error(err))
			continue
		}

		fmt.Fprintf(stdout, "%s: OK (%d structures, %d sources, %d monitors)\n",
			path, len(sim.Structures), len(sim.Sources), len(sim.Monitors))
		if printSim {
			format, _ := simulation.FormatFromPath(path)
			if err := sim.Encode(stdout, format); err != nil {
				log.Error("failed to print simulation", logger.Source(path), logger.Error(err))
			}
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func validateFile(path string, opts []simulation.Option) (*simulation.Simulation, error) {
	format, err := simulation.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return simulation.Decode(f, format, opts...)
}

func describe(err error) string {
	if f, ok := simulation.Explain(err); ok {
		return fmt.Sprintf("%s: %s", f.Path, f.Message)
	}
	return err.Error()
}
