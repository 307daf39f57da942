// Package logger builds *slog.Logger instances for strkit binaries.
//
// New applies functional options on top of production-safe defaults (JSON,
// INFO, stdout) and wraps the handler with a decorator that runs context
// extractors on every record, so request-scoped values such as the request
// ID or the environment end up in the output without being passed around.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "strkit"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "request served", logger.Status(200), logger.Duration(d))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// The core string packages never log; only the HTTP service and the CLI do.
package logger
