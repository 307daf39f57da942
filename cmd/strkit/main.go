// Command strkit runs the strkit string primitives from the shell or serves
// them over HTTP.
//
//	strkit [-o json|yaml] <command> [args...]
//
// Commands:
//
//	serve                       start the HTTP API
//	param <url> <name>          single query parameter
//	params <url>                all query parameters of an absolute URL
//	template <tmpl> [values]    fill {placeholders}; "" counts as nil
//	id [keys]                   ":" joined identifier
//	urls <text>                 URLs found in text
//	domain <email>              domain part of an e-mail address
//	b64json <data>              decode base64 JSON
//
// Configuration comes from STRKIT_* environment variables (see AppConfig and
// httpserver.Config) and an optional .env file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
