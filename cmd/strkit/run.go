package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/strkit/pkg/config"
	"github.com/dmitrymomot/strkit/pkg/environment"
	"github.com/dmitrymomot/strkit/pkg/httpserver"
	"github.com/dmitrymomot/strkit/pkg/logger"
	"github.com/dmitrymomot/strkit/pkg/requestid"
	"github.com/dmitrymomot/strkit/pkg/strutil"
	"github.com/dmitrymomot/strkit/svc/textapi"
)

const (
	exitOK       = 0
	exitError    = 1
	exitUsage    = 2
	exitNotFound = 3
)

var errUsage = errors.New("usage error")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfg AppConfig
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	env := environment.Parse(cfg.Env)
	ctx = environment.WithContext(ctx, env)
	logOpts := []logger.Option{
		logger.WithEnvironment(env, "strkit"),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(logOpts...)

	fs := flag.NewFlagSet("strkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs.Output()) }
	output := fs.String("o", strutil.FirstNonBlank(cfg.Output, outputJSON), "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	if rest[0] == "serve" {
		return serve(ctx, log, env)
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		printUsage(stderr)
		return exitUsage
	}

	enc, err := newEncoder(*output)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	result, found, err := cmd.run(rest[1:])
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "usage: strkit %s %s\n", rest[0], cmd.usage)
		return exitUsage
	case err != nil:
		log.ErrorContext(ctx, "command failed", logger.Operation(rest[0]), logger.Error(err))
		return exitError
	}

	if err := enc(stdout, result); err != nil {
		log.ErrorContext(ctx, "write output", logger.Error(err))
		return exitError
	}

	log.DebugContext(ctx, "command finished", logger.Operation(rest[0]), slog.Bool("found", found))
	if !found {
		return exitNotFound
	}
	return exitOK
}

func serve(ctx context.Context, log *slog.Logger, env environment.Environment) int {
	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg, config.WithPrefix(envPrefix)); err != nil {
		log.ErrorContext(ctx, "load http config", logger.Error(err))
		return exitError
	}

	router := chi.NewRouter()
	router.Use(environment.Middleware(env))
	router.Mount("/", textapi.New(log).Handle())

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.ErrorContext(ctx, "http server failed", logger.Error(err))
		return exitError
	}
	return exitOK
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: strkit [-o json|yaml] <command> [args...]")
	fmt.Fprintln(w, "\ncommands:")
	fmt.Fprintln(w, "  serve")
	for _, name := range commandNames() {
		fmt.Fprintf(w, "  %s %s\n", name, strings.TrimSpace(commands[name].usage))
	}
}
