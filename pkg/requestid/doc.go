// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware reuses a client supplied X-Request-ID when it is at most 128
// characters of [A-Za-z0-9_-], and otherwise generates a random UUID. The ID
// is echoed in the response header and stored in the request context, where
// FromContext and LoggerExtractor pick it up.
package requestid
