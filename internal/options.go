package internal

import (
	"log/slog"
	"net/http"

	"github.com/typecms/typecms/pkg/blob"
	"github.com/typecms/typecms/pkg/entity"
	"github.com/typecms/typecms/pkg/health"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/schema"
	"github.com/typecms/typecms/pkg/store"
)

// Option configures an App during New.
type Option func(*App)

// WithLogger sets the application logger. Defaults to a noop logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithI18n sets the translation service used for admin chrome strings.
// Defaults to built-in English messages.
func WithI18n(svc *i18n.I18n) Option {
	return func(a *App) {
		if svc != nil {
			a.i18n = svc
		}
	}
}

// WithStore sets the record store backing entities registered without an
// explicit source. Defaults to an in-memory store.
func WithStore(s store.Store) Option {
	return func(a *App) {
		if s != nil {
			a.store = s
		}
	}
}

// WithUploads sets the blob storage for file uploads and mounts the
// /uploads file serving route. Without it, file and image properties
// reject submissions.
func WithUploads(s blob.Storage) Option {
	return func(a *App) {
		if s != nil {
			a.uploads = s
		}
	}
}

// WithUploadLimit caps the size of one uploaded file in bytes.
func WithUploadLimit(n int64) Option {
	return func(a *App) {
		if n > 0 {
			a.uploadLimit = n
		}
	}
}

// WithMiddleware adds global middleware, applied in registration order.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers application handlers mounted after the admin
// routes.
func WithHandlers(handlers ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, handlers...)
	}
}

// WithErrorHandler overrides the default error rendering.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithNotFoundHandler sets the handler for unmatched routes.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets the handler for wrong-method requests.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks mounts /health/live and /health/ready. Readiness runs
// the given checks; liveness always answers OK.
func WithHealthChecks(checks health.Checks, opts ...health.Option) Option {
	return func(a *App) {
		if a.healthChecks == nil {
			a.healthChecks = make(health.Checks, len(checks))
		}
		for name, check := range checks {
			a.healthChecks[name] = check
		}
		a.healthOpts = append(a.healthOpts, opts...)
	}
}

// WithStatic mounts a static file handler at the given pattern.
func WithStatic(pattern string, h http.Handler) Option {
	return func(a *App) {
		if pattern != "" && h != nil {
			a.staticRoutes = append(a.staticRoutes, staticRoute{pattern: pattern, handler: h})
		}
	}
}

// EntityOption configures one entity registration.
type EntityOption func(*EntityRegistration)

// WithSource serves the entity from a custom source instead of the app
// store. Routes are mounted only for the capabilities the source
// implements.
func WithSource(source any) EntityOption {
	return func(r *EntityRegistration) { r.Source = source }
}

// WithEntityHooks installs lifecycle hooks on the default store-backed
// source. Ignored when WithSource is used; wrap the custom source instead.
func WithEntityHooks(h entity.Hooks) EntityOption {
	return func(r *EntityRegistration) { r.Hooks = h }
}

// WithExtExtractor sets the request-scoped extension extractor passed to
// the source and hooks.
func WithExtExtractor(fn entity.ExtExtractor) EntityOption {
	return func(r *EntityRegistration) { r.Ext = fn }
}

// WithEntity registers an entity. Without options it is served from the
// app store with full CRUD.
func WithEntity(e *schema.Entity, opts ...EntityOption) Option {
	return func(a *App) {
		if e == nil {
			return
		}
		reg := &EntityRegistration{Schema: e}
		for _, opt := range opts {
			opt(reg)
		}
		a.registrations = append(a.registrations, reg)
	}
}
