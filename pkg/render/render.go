// Package render builds the admin interface pages. Everything is plain
// HTML assembled with gomponents; the only client-side behavior lives in
// the small scripts the property inputs embed and in /js/enum.js.
package render

import (
	"strings"

	"github.com/google/uuid"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/typecms/typecms/pkg/caseconv"
	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/property"
	"github.com/typecms/typecms/pkg/schema"
)

// Document wraps page content in the HTML shell shared by every admin page.
func Document(body ...g.Node) g.Node {
	return html.Doctype(
		html.HTML(
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Link(html.Rel("icon"), html.Href("/favicon.png")),
				html.Link(html.Rel("stylesheet"), html.Type("text/css"), html.Href("/css/main.css")),
				html.Meta(html.Name("viewport"), g.Attr("content", "width=device-width, initial-scale=1")),
			),
			html.Body(body...),
		),
	)
}

// Sidebar lists every registered entity by plural name, highlighting the
// active one.
func Sidebar(namesPlural []string, active string) g.Node {
	links := make([]g.Node, 0, len(namesPlural))
	for _, name := range namesPlural {
		links = append(links, html.A(
			html.Href("/"+caseconv.Kebab(name)),
			g.If(name == active, html.Class("active")),
			g.Text(caseconv.Title(name)),
		))
	}
	return html.Nav(append([]g.Node{html.Class("cms-sidebar")}, links...)...)
}

// EntityForm renders the inputs of every form-visible field. A fresh form
// element id ties the datetime submit hooks to this form instance.
func EntityForm(e *schema.Entity, rec schema.Record, tr *i18n.Translator) g.Node {
	formID := uuid.New().String()
	fc := &property.FormContext{FormID: formID}

	rows := make([]g.Node, 0, len(e.Fields())+1)
	for _, f := range e.Inputs() {
		var value any
		if rec != nil {
			value = rec[f.Key()]
		}
		rows = append(rows, html.Div(
			html.Class("cms-prop-container"),
			html.Label(html.Class("cms-prop-label"), g.Text(f.HumanName)),
			f.Input().RenderInput(value, formname.Root(f.Key()), f.HumanName, f.Required(), fc, tr),
		))
	}
	rows = append(rows, html.Button(
		html.Class("cms-button"),
		html.Type("submit"),
		g.Text(tr.T("entity-inputs-submit")),
	))

	return html.Form(append([]g.Node{
		html.ID(formID),
		html.Class("cms-entity-form cms-add-form"),
		html.Method("post"),
		g.Attr("enctype", "multipart/form-data"),
	}, rows...)...)
}

// EntityListPage is the table view of all records of one entity.
func EntityListPage(namesPlural []string, e *schema.Entity, recs []schema.Record, tr *i18n.Translator) g.Node {
	head := make([]g.Node, 0, e.ColumnCount())
	for _, f := range e.Columns() {
		head = append(head, html.Th(g.Text(f.HumanName)))
	}

	rows := make([]g.Node, 0, len(recs)+1)
	rows = append(rows, html.Tr(head...))
	for _, rec := range recs {
		rows = append(rows, entityRow(e, rec, tr))
	}

	return Document(
		Sidebar(namesPlural, e.NamePlural()),
		html.Main(
			html.Header(
				html.Class("cms-header"),
				html.H1(g.Text(e.TitleNamePlural())),
				html.A(
					html.Href("/"+e.KebabNamePlural()+"/add"),
					html.Class("cms-button"),
					g.Text(tr.T("entity-list-add")),
				),
			),
			html.Table(append([]g.Node{html.Class("cms-entity-list")}, rows...)...),
		),
	)
}

// entityRow renders one record. Every cell links to the edit page.
func entityRow(e *schema.Entity, rec schema.Record, tr *i18n.Translator) g.Node {
	target := recordURL(e, rec)
	cells := make([]g.Node, 0, e.ColumnCount())
	for _, f := range e.Columns() {
		cells = append(cells, html.Td(
			g.Attr("onclick", `window.location = "`+target+`"`),
			f.Column().RenderColumn(rec[f.Key()], tr),
		))
	}
	return html.Tr(cells...)
}

func recordURL(e *schema.Entity, rec schema.Record) string {
	id, _ := rec[e.IDField().Key()].(uuid.UUID)
	return "/" + e.KebabName() + "/" + id.String()
}

// EntityPage is the edit view of one record.
func EntityPage(namesPlural []string, e *schema.Entity, rec schema.Record, tr *i18n.Translator) g.Node {
	return Document(
		Sidebar(namesPlural, e.NamePlural()),
		html.Main(
			html.H1(g.Text(tr.T("edit-entity-title", i18n.M{"name": e.TitleName()}))),
			EntityForm(e, rec, tr),
		),
	)
}

// AddEntityPage is the creation form.
func AddEntityPage(namesPlural []string, e *schema.Entity, tr *i18n.Translator) g.Node {
	return Document(
		Sidebar(namesPlural, e.NamePlural()),
		html.Main(
			html.H1(g.Text(tr.T("create-entity-title", i18n.M{"name": e.TitleName()}))),
			EntityForm(e, nil, tr),
		),
	)
}

// ErrorPage renders a human-readable failure, one paragraph line per
// message line.
func ErrorPage(title, description string) g.Node {
	var lines []g.Node
	for _, line := range strings.Split(description, "\n") {
		lines = append(lines, g.Text(line), html.Br())
	}
	return Document(
		html.Main(
			html.H1(g.Text(title)),
			html.P(lines...),
			html.A(html.Href("javascript:history.back()"), g.Text("Go Back")),
		),
	)
}
