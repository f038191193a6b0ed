package typecms

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/typecms/typecms/internal"
	"github.com/typecms/typecms/pkg/blob"
	"github.com/typecms/typecms/pkg/entity"
	"github.com/typecms/typecms/pkg/health"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/logger"
	"github.com/typecms/typecms/pkg/schema"
	"github.com/typecms/typecms/pkg/store"
)

// Type aliases - public API
type (
	// App serves the admin interface and JSON API for registered entities.
	// It is immutable after creation.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// EntityOption configures one entity registration.
	EntityOption = internal.EntityOption

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// Component is the interface for renderable page content.
	Component = internal.Component

	// HTTPError carries a status code and user-facing message through the
	// error chain to the error handler.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// ResponseWriter wraps http.ResponseWriter with status tracking.
	ResponseWriter = internal.ResponseWriter

	// ContextExtractor extracts a slog attribute from context.
	// Used with logger.New to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// New creates a new application with the given options.
//
// Example:
//
//	app := typecms.New(
//	    typecms.WithEntity(post),
//	    typecms.WithEntity(page),
//	    typecms.WithUploads(blob.NewDisk("./uploads")),
//	)
//
//	err := app.Run(":8080", typecms.Logger(slog))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithEntity registers an entity. Without options it is served from the app
// store with full CRUD routes; use WithSource to serve it from a custom
// source exposing only some capabilities.
func WithEntity(e *schema.Entity, opts ...EntityOption) Option {
	return internal.WithEntity(e, opts...)
}

// WithSource serves the entity from a custom source instead of the app
// store. Routes are mounted only for the capabilities the source implements.
func WithSource(source any) EntityOption {
	return internal.WithSource(source)
}

// WithEntityHooks installs lifecycle hooks on the default store-backed
// source. Ignored when WithSource is used; wrap the custom source instead.
func WithEntityHooks(h entity.Hooks) EntityOption {
	return internal.WithEntityHooks(h)
}

// WithExtExtractor sets the request-scoped extension extractor passed to the
// entity source and its hooks.
func WithExtExtractor(fn entity.ExtExtractor) EntityOption {
	return internal.WithExtExtractor(fn)
}

// WithStore sets the record store backing entities registered without an
// explicit source. Defaults to an in-memory store.
func WithStore(s store.Store) Option {
	return internal.WithStore(s)
}

// WithUploads sets the blob storage for file uploads and mounts the
// /uploads file serving route.
func WithUploads(s blob.Storage) Option {
	return internal.WithUploads(s)
}

// WithUploadLimit caps the size of one uploaded file in bytes.
func WithUploadLimit(n int64) Option {
	return internal.WithUploadLimit(n)
}

// WithLogger sets the application logger. Defaults to a noop logger.
//
// Example:
//
//	log := logger.New(slog.LevelInfo, middlewares.RequestIDExtractor())
//	typecms.New(
//	    typecms.WithLogger(log),
//	)
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithI18n sets the translation service used for admin chrome strings.
// Defaults to built-in English messages.
func WithI18n(svc *i18n.I18n) Option {
	return internal.WithI18n(svc)
}

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes alongside the admin.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithHealthChecks mounts /health/live and /health/ready probe endpoints.
// Readiness runs the given checks; liveness always answers OK.
//
// Example:
//
//	typecms.WithHealthChecks(health.Checks{
//	    "db": store.Healthcheck(pool),
//	})
func WithHealthChecks(checks health.Checks, opts ...health.Option) Option {
	return internal.WithHealthChecks(checks, opts...)
}

// WithStatic mounts a static file handler at the given pattern.
//
// Example:
//
//	//go:embed public
//	var assets embed.FS
//
//	typecms.New(
//	    typecms.WithStatic("/static/", http.FileServerFS(assets)),
//	)
func WithStatic(pattern string, h http.Handler) Option {
	return internal.WithStatic(pattern, h)
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// Run options

// Logger sets the server lifecycle logger.
// If nil, lifecycle logging is disabled.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// This applies to both the HTTP server and shutdown hooks.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function to run during server startup.
// Hooks are called in the order they were registered, before the listener
// opens. If any hook fails, the server does not start.
//
// Example:
//
//	typecms.StartupHook(func(ctx context.Context) error {
//	    return store.Migrate(ctx, pool, cfg, log)
//	})
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function to run during shutdown.
// Hooks are called in the order they were registered.
// Each hook receives a context with the shutdown timeout.
//
// Example:
//
//	typecms.ShutdownHook(func(ctx context.Context) error {
//	    pool.Close()
//	    return nil
//	})
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
// Useful for testing or when integrating with existing context hierarchies.
// Defaults to context.Background() if not set.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Errors

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// ErrBadRequest creates a 400 error.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

// ErrNotFound creates a 404 error.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

// ErrConflict creates a 409 error.
func ErrConflict(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrConflict(message, opts...)
}

// ErrInternal creates a 500 error.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// WithErrorTitle sets the page title shown on rendered error pages.
func WithErrorTitle(title string) HTTPErrorOption {
	return internal.WithTitle(title)
}

// WithErrorDetail adds a longer description shown under the message.
func WithErrorDetail(detail string) HTTPErrorOption {
	return internal.WithDetail(detail)
}

// WithError attaches the underlying error for logging and unwrapping.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// AsHTTPError extracts an *HTTPError from the error chain, or nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// Context helpers

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not found or type assertion
// fails.
//
// Example:
//
//	type tenantKey struct{}
//
//	tenant := typecms.ContextValue[string](c, tenantKey{})
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}
