package internal

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/typecms/typecms/pkg/blob"
	"github.com/typecms/typecms/pkg/entity"
	"github.com/typecms/typecms/pkg/formdecode"
	"github.com/typecms/typecms/pkg/health"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/logger"
	"github.com/typecms/typecms/pkg/render"
	"github.com/typecms/typecms/pkg/schema"
	"github.com/typecms/typecms/pkg/store"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
	defaultShutdownTimeout   = 30 * time.Second
)

// App serves the admin interface and JSON API for the registered entities.
// It is immutable after creation; all configuration happens in New.
type App struct {
	router                  chi.Router
	logger                  *slog.Logger
	i18n                    *i18n.I18n
	store                   store.Store
	uploads                 blob.Storage
	decoder                 *formdecode.Decoder
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	registrations           []*EntityRegistration
	middlewares             []Middleware
	handlers                []Handler
	staticRoutes            []staticRoute
	healthChecks            health.Checks
	healthOpts              []health.Option
	uploadLimit             int64
}

// staticRoute is a static file handler mount point.
type staticRoute struct {
	handler http.Handler
	pattern string
}

// EntityRegistration couples an entity schema with the source serving it
// and the request-scoped extension extractor its hooks expect.
type EntityRegistration struct {
	Schema *schema.Entity
	Source any
	Hooks  entity.Hooks
	Ext    entity.ExtExtractor
}

// New creates an App from the given options.
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.i18n == nil {
		a.i18n = defaultI18n()
	}
	if a.store == nil {
		a.store = store.NewMemory()
	}
	for _, reg := range a.registrations {
		if reg.Source == nil {
			reg.Source = entity.NewStoreBacked(reg.Schema, a.store, entity.WithHooks(reg.Hooks))
		}
	}

	var decodeOpts []formdecode.Option
	if a.uploadLimit > 0 {
		decodeOpts = append(decodeOpts, formdecode.WithMaxUploadBytes(a.uploadLimit))
	}
	a.decoder = formdecode.New(a.uploads, decodeOpts...)

	a.setupRoutes()
	return a
}

// Router returns the underlying chi.Router.
func (a *App) Router() chi.Router {
	return a.router
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := buildRunConfig(opts...)
	return runServer(runtimeConfig{
		handler:         a.router,
		address:         addr,
		logger:          cfg.logger,
		shutdownTimeout: cfg.shutdownTimeout,
		startupHooks:    cfg.startupHooks,
		shutdownHooks:   cfg.shutdownHooks,
		baseCtx:         cfg.baseCtx,
	})
}

// setupRoutes configures the router with middleware, assets, admin routes
// and application handlers.
func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}

	if a.healthChecks != nil {
		opts := append([]health.Option{health.WithLogger(a.logger)}, a.healthOpts...)
		a.router.Get("/health/live", health.LivenessHandler())
		a.router.Get("/health/ready", health.ReadinessHandler(a.healthChecks, opts...))
	}

	r := &routerAdapter{router: a.router, app: a}
	mountAssets(r)
	if a.uploads != nil {
		mountUploads(r, a.uploads)
	}
	for _, reg := range a.registrations {
		a.mountEntity(r, reg)
	}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// namesPlural lists the plural names of every registered entity, in
// registration order, for sidebar rendering.
func (a *App) namesPlural() []string {
	names := make([]string, 0, len(a.registrations))
	for _, reg := range a.registrations {
		names = append(names, reg.Schema.NamePlural())
	}
	return names
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's
// error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError is the single place request errors get logged and rendered.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		return
	}
	if a.errorHandler != nil {
		_ = a.errorHandler(c, err)
		return
	}
	_ = a.defaultErrorHandler(c, err)
}

func (a *App) defaultErrorHandler(c Context, err error) error {
	httpErr := AsHTTPError(err)
	if httpErr == nil {
		httpErr = ErrInternal("internal server error", WithError(err))
	}

	logErr := httpErr.Err
	if logErr == nil {
		logErr = httpErr
	}
	a.logger.ErrorContext(c.Context(), "request failed",
		slog.String("path", c.Request().URL.Path),
		slog.Int("status", httpErr.Code),
		slog.Any("error", logErr),
	)

	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return c.JSON(httpErr.Code, map[string]string{"error": httpErr.Message})
	}

	title := httpErr.Title
	if title == "" {
		title = httpErr.StatusText()
	}
	description := httpErr.Message
	if httpErr.Detail != "" {
		description += "\n" + httpErr.Detail
	}
	return c.Render(httpErr.Code, render.Component{Node: render.ErrorPage(title, description)})
}

// defaultI18n carries the English chrome strings so the admin works without
// any translation setup.
func defaultI18n() *i18n.I18n {
	svc, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", i18n.M{
			"entity-inputs-submit": "Save",
			"entity-list-add":      "Add new",
			"edit-entity-title":    "Edit {name}",
			"create-entity-title":  "Create new {name}",
			"image-alt-text":       "Alternative text",
		}),
	)
	if err != nil {
		panic(err)
	}
	return svc
}
