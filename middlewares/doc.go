// Package middlewares provides request middleware for typecms applications:
// request id propagation, panic recovery and language resolution.
//
// Middleware is applied globally via typecms.WithMiddleware or per route:
//
//	app := typecms.New(
//	    typecms.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.I18n(translations),
//	    ),
//	)
package middlewares
