package internal

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/typecms/typecms/pkg/entity"
	"github.com/typecms/typecms/pkg/schema"
)

// apiHandler serves the headless JSON API for one entity.
type apiHandler struct {
	app *App
	reg *EntityRegistration
}

func (h *apiHandler) list(c Context) error {
	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return apiError(err)
	}
	recs, err := h.reg.Source.(entity.Lister).List(c.Context(), ext)
	if err != nil {
		return apiError(err)
	}
	if recs == nil {
		recs = []schema.Record{}
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *apiHandler) get(c Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound("no such "+h.reg.Schema.Name(), WithError(err))
	}
	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return apiError(err)
	}
	rec, err := h.reg.Source.(entity.Getter).Get(c.Context(), ext, id)
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *apiHandler) create(c Context) error {
	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return apiError(err)
	}
	rec, err := h.decodeBody(c)
	if err != nil {
		return apiError(err)
	}
	created, err := h.reg.Source.(entity.Creator).Create(c.Context(), ext, rec)
	if err != nil {
		return apiError(err)
	}
	c.LogDebug("created entity",
		"entity", h.reg.Schema.Name(),
		"id", created[h.reg.Schema.IDField().Key()],
	)
	return c.JSON(http.StatusOK, created)
}

func (h *apiHandler) update(c Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound("no such "+h.reg.Schema.Name(), WithError(err))
	}
	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return apiError(err)
	}
	rec, err := h.decodeBody(c)
	if err != nil {
		return apiError(err)
	}
	updated, err := h.reg.Source.(entity.Updater).Update(c.Context(), ext, id, rec)
	if err != nil {
		return apiError(err)
	}
	c.LogDebug("updated entity", "entity", h.reg.Schema.Name(), "id", id)
	return c.JSON(http.StatusOK, updated)
}

func (h *apiHandler) delete(c Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound("no such "+h.reg.Schema.Name(), WithError(err))
	}
	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return apiError(err)
	}
	if err := h.reg.Source.(entity.Deleter).Delete(c.Context(), ext, id); err != nil {
		return apiError(err)
	}
	c.LogDebug("deleted entity", "entity", h.reg.Schema.Name(), "id", id)
	return c.NoContent(http.StatusNoContent)
}

// decodeBody reads a JSON body and converts it through the schema, so API
// clients get the same shape checks as form submissions.
func (h *apiHandler) decodeBody(c Context) (schema.Record, error) {
	var obj map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&obj); err != nil {
		return nil, err
	}
	return h.reg.Schema.DecodeJSON(obj)
}
