package textapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/strkit/pkg/httpserver"
	"github.com/dmitrymomot/strkit/pkg/logger"
	"github.com/dmitrymomot/strkit/pkg/requestid"
)

// DefaultMaxBodySize limits POST bodies (1MB).
const DefaultMaxBodySize int64 = 1 << 20

// Option configures the Service.
type Option func(*Service)

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBodySize = n
		}
	}
}

// Service serves the string primitives over HTTP.
type Service struct {
	log         *slog.Logger
	maxBodySize int64
}

// New creates a Service. A nil logger discards output.
func New(log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		log:         log.With(logger.Component("textapi")),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the service router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(accessLog(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(s.log))

	r.Route("/query", func(r chi.Router) {
		r.Get("/parameter", s.queryParameter)
		r.Get("/parameters", s.queryParameters)
	})
	r.Get("/template", s.template)
	r.Get("/combined-id", s.combinedID)
	r.Get("/email/domain", s.emailDomain)
	r.Post("/urls", s.extractURLs)
	r.Post("/b64json/decode", s.decodeBase64JSON)

	return r
}

func (s *Service) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "operation failed", logger.Operation(op), logger.Error(err))
	} else {
		s.log.DebugContext(r.Context(), "rejected input", logger.Operation(op), logger.Error(err))
	}
	writeJSON(w, status, Response{Error: &ErrorDetail{Code: code, Message: err.Error()}})
}
