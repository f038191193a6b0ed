package property

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// listScript powers the "+" button: it removes the inert template block from
// the DOM (so the template itself is never submitted), then clones it per
// click and rewrites the cloned control names to the next free index.
// Placeholders: button id, list id, template id, escaped name regex, name.
const listScript = `
const btn = document.getElementById("%s");
const list = document.getElementById("%s");
const template = document.getElementById("%s");
template.remove();
btn.addEventListener("click", (e) => {
    let el = template.cloneNode(true);
    el.removeAttribute("id");
    setIndex(el, list.childElementCount - 2);
    list.insertBefore(el, btn);
    e.preventDefault();
});
function setIndex(el, i) {
    for (const e of el.querySelectorAll("[name]")) {
        e.name = e.name.replace(/^%s\[[0-9]*\]/, "%s["+i+"]");
    }
    for (const e of el.querySelectorAll("[id]")) {
        e.id = e.id.replace(/^%s\[[0-9]*\]/, "%s["+i+"]");
    }
    for (const e of el.querySelectorAll("[for]")) {
        e.attributes.for.value = e.attributes.for.value.replace(/^%s\[[0-9]*\]/, "%s["+i+"]");
    }
}
`

// List is a homogeneous sequence of another property kind. Go
// representation: []any. An absent submission decodes to an empty list.
type List struct {
	// Elem renders and decodes each element.
	Elem Kind
}

// NewList creates a list property over the given element kind.
func NewList(elem Kind) List {
	return List{Elem: elem}
}

func (l List) RenderInput(value any, path formname.Path, humanName string, required bool, fc *FormContext, tr *i18n.Translator) g.Node {
	items, _ := value.([]any)
	btnID := uuid.NewString()
	listID := uuid.NewString()
	templateID := uuid.NewString()

	name := path.String()
	nameRe := regexp.QuoteMeta(name)
	script := fmt.Sprintf(listScript, btnID, listID, templateID, nameRe, name, nameRe, name, nameRe, name)

	children := make([]g.Node, 0, len(items)+3)
	for i, item := range items {
		children = append(children, html.FieldSet(
			html.Class("cms-list-element"),
			l.Elem.RenderInput(item, path.Index(i), humanName, required, fc, tr),
		))
	}
	children = append(children,
		html.FieldSet(
			html.ID(templateID),
			html.Class("cms-list-element"),
			l.Elem.RenderInput(nil, path.Index(0), humanName, required, fc, tr),
		),
		html.Button(html.ID(btnID), g.Text("+")),
		html.Script(html.Type("module"), g.Raw(script)),
	)

	return html.Div(html.Class("cms-list-input"), html.ID(listID), g.Group(children))
}

func (l List) DecodeForm(node qs.Node) (any, error) {
	if node == nil {
		return []any{}, nil
	}
	list, ok := node.(qs.List)
	if !ok {
		return nil, fmt.Errorf("%w: want list, got %T", ErrType, node)
	}
	items := make([]any, 0, len(list))
	for i, child := range list {
		item, err := l.Elem.DecodeForm(child)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (l List) DecodeJSON(v any) (any, error) {
	if v == nil {
		return []any{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want list, got %T", ErrType, v)
	}
	items := make([]any, 0, len(list))
	for i, child := range list {
		item, err := l.Elem.DecodeJSON(child)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
