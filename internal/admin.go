package internal

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/typecms/typecms/pkg/blob"
	"github.com/typecms/typecms/pkg/entity"
	"github.com/typecms/typecms/pkg/store"
)

// mountEntity wires the admin UI and JSON API routes for one registration.
// The capability check happens here, once: a source that cannot create gets
// no create routes, and so on.
func (a *App) mountEntity(r Router, reg *EntityRegistration) {
	caps := entity.CapabilitiesOf(reg.Source)
	ui := &uiHandler{app: a, reg: reg}
	api := &apiHandler{app: a, reg: reg}

	kebab := reg.Schema.KebabName()
	plural := reg.Schema.KebabNamePlural()

	if caps.List {
		r.GET("/"+plural, ui.list)
		r.GET("/api/v1/"+plural, api.list)
	}
	if caps.Create {
		r.GET("/"+plural+"/add", ui.add)
		r.POST("/"+plural+"/add", ui.create)
		r.POST("/api/v1/"+plural, api.create)
	}
	if caps.Get {
		r.GET("/"+kebab+"/{id}", ui.show)
		r.GET("/api/v1/"+kebab+"/{id}", api.get)
	}
	if caps.Update {
		r.POST("/"+kebab+"/{id}", ui.update)
		r.POST("/api/v1/"+kebab+"/{id}", api.update)
	}
	if caps.Delete {
		r.POST("/"+kebab+"/{id}/delete", ui.delete)
		r.DELETE("/api/v1/"+kebab+"/{id}", api.delete)
	}
}

// mountUploads serves stored files under the URL layout the file
// properties link to.
func mountUploads(r Router, storage blob.Storage) {
	r.GET("/uploads/{id}/{name}", func(c Context) error {
		key := c.Param("id") + "/" + c.Param("name")
		rc, err := storage.Get(c.Context(), key)
		if err != nil {
			return ErrNotFound("file not found", WithError(err))
		}
		defer rc.Close()

		ct := mime.TypeByExtension(path.Ext(c.Param("name")))
		if ct == "" {
			ct = "application/octet-stream"
		}
		c.SetHeader("Content-Type", ct)
		c.SetHeader("Cache-Control", "public, max-age=31536000, immutable")
		_, err = io.Copy(c.Response(), rc)
		return err
	})
}

// statusFor maps operation errors onto HTTP status codes: missing records
// are 404, conflicts 409, backend failures 500, extraction failures 401 and
// everything else (decode and hook rejections) 400.
func statusFor(err error) func(string, ...HTTPErrorOption) *HTTPError {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrConflict):
		return ErrConflict
	case errors.Is(err, store.ErrStore):
		return ErrInternal
	case errors.Is(err, entity.ErrExt):
		return func(msg string, opts ...HTTPErrorOption) *HTTPError {
			return NewHTTPError(http.StatusUnauthorized, msg, opts...)
		}
	default:
		return ErrBadRequest
	}
}

// opError renders an operation failure with a page title in the admin's
// voice, keeping the underlying error for the log.
func opError(title string, err error) *HTTPError {
	return statusFor(err)(err.Error(), WithTitle(title), WithError(err))
}

// apiError is opError without the page title; the JSON error body carries
// only the message.
func apiError(err error) *HTTPError {
	return statusFor(err)(err.Error(), WithError(err))
}
