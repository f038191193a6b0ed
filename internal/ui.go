package internal

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/typecms/typecms/pkg/entity"
	"github.com/typecms/typecms/pkg/render"
)

// uiHandler serves the HTML admin pages for one entity.
type uiHandler struct {
	app *App
	reg *EntityRegistration
}

func (h *uiHandler) list(c Context) error {
	title := "Failed to list " + h.reg.Schema.TitleNamePlural()

	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return opError(title, err)
	}
	recs, err := h.reg.Source.(entity.Lister).List(c.Context(), ext)
	if err != nil {
		return opError(title, err)
	}
	page := render.EntityListPage(h.app.namesPlural(), h.reg.Schema, recs, c.Translator())
	return c.Render(http.StatusOK, render.Component{Node: page})
}

func (h *uiHandler) add(c Context) error {
	page := render.AddEntityPage(h.app.namesPlural(), h.reg.Schema, c.Translator())
	return c.Render(http.StatusOK, render.Component{Node: page})
}

func (h *uiHandler) create(c Context) error {
	title := "Failed to create new " + h.reg.Schema.TitleName()

	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return opError(title, err)
	}
	rec, err := h.app.decoder.Decode(c.Context(), c.Request(), h.reg.Schema)
	if err != nil {
		return opError(title, err)
	}
	created, err := h.reg.Source.(entity.Creator).Create(c.Context(), ext, rec)
	if err != nil {
		return opError(title, err)
	}

	c.LogDebug("created entity",
		"entity", h.reg.Schema.Name(),
		"id", created[h.reg.Schema.IDField().Key()],
	)
	return c.Redirect(http.StatusSeeOther, recordPath(h.reg, created))
}

func (h *uiHandler) show(c Context) error {
	title := "Failed to show " + h.reg.Schema.TitleName()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound("no such "+h.reg.Schema.Name(), WithTitle(title), WithError(err))
	}
	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return opError(title, err)
	}
	rec, err := h.reg.Source.(entity.Getter).Get(c.Context(), ext, id)
	if err != nil {
		return opError(title, err)
	}
	page := render.EntityPage(h.app.namesPlural(), h.reg.Schema, rec, c.Translator())
	return c.Render(http.StatusOK, render.Component{Node: page})
}

func (h *uiHandler) update(c Context) error {
	title := "Failed to update " + h.reg.Schema.TitleName()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound("no such "+h.reg.Schema.Name(), WithTitle(title), WithError(err))
	}
	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return opError(title, err)
	}
	rec, err := h.app.decoder.Decode(c.Context(), c.Request(), h.reg.Schema)
	if err != nil {
		return opError(title, err)
	}
	updated, err := h.reg.Source.(entity.Updater).Update(c.Context(), ext, id, rec)
	if err != nil {
		return opError(title, err)
	}

	c.LogDebug("updated entity", "entity", h.reg.Schema.Name(), "id", id)
	return c.Redirect(http.StatusSeeOther, recordPath(h.reg, updated))
}

func (h *uiHandler) delete(c Context) error {
	title := "Failed to delete " + h.reg.Schema.TitleName()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound("no such "+h.reg.Schema.Name(), WithTitle(title), WithError(err))
	}
	ext, err := entity.Extract(c.Context(), h.reg.Ext)
	if err != nil {
		return opError(title, err)
	}
	if err := h.reg.Source.(entity.Deleter).Delete(c.Context(), ext, id); err != nil {
		return opError(title, err)
	}

	c.LogDebug("deleted entity", "entity", h.reg.Schema.Name(), "id", id)
	return c.Redirect(http.StatusSeeOther, "/"+h.reg.Schema.KebabNamePlural())
}

func recordPath(reg *EntityRegistration, rec map[string]any) string {
	id, _ := rec[reg.Schema.IDField().Key()].(uuid.UUID)
	return "/" + reg.Schema.KebabName() + "/" + id.String()
}
