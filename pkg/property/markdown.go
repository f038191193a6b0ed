package property

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// easyMDECDN is the editor bundle loaded by markdown inputs.
const easyMDECDN = "https://cdn.jsdelivr.net/npm/easymde/dist/easymde.min.js"

var (
	mdRenderer = goldmark.New()
	mdPolicy   = bluemonday.UGCPolicy()
)

// Markdown is a rich-text property edited with EasyMDE and rendered as
// sanitized HTML in columns. Go representation: string (raw markdown).
type Markdown struct{}

func (Markdown) RenderInput(value any, path formname.Path, humanName string, required bool, _ *FormContext, _ *i18n.Translator) g.Node {
	id := uuid.NewString()
	text, _ := value.(string)
	return html.Div(
		html.Class("cms-markdown-editor"),
		html.Div(html.Class("cms-markdown-buttons")),
		html.Textarea(
			html.Name(path.String()),
			html.Placeholder(humanName),
			html.ID(id),
			g.If(required, html.Required()),
			g.Text(text),
		),
		html.Script(html.Src(easyMDECDN)),
		html.Script(g.Raw(fmt.Sprintf(`new EasyMDE({ element: document.getElementById(%q) });`, id))),
	)
}

func (Markdown) RenderColumn(value any, _ *i18n.Translator) g.Node {
	text, _ := value.(string)
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(text), &buf); err != nil {
		return g.Text(text)
	}
	return g.Raw(string(mdPolicy.SanitizeBytes(buf.Bytes())))
}

func (Markdown) DecodeForm(node qs.Node) (any, error) {
	return formString(node)
}

func (Markdown) DecodeJSON(v any) (any, error) {
	return jsonString(v)
}
