package property

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// Text is a single-line string property. Go representation: string.
type Text struct{}

func (Text) RenderInput(value any, path formname.Path, humanName string, required bool, _ *FormContext, _ *i18n.Translator) g.Node {
	return html.Input(
		html.Type("text"),
		html.Name(path.String()),
		html.Placeholder(humanName),
		html.Class("cms-text-input"),
		g.Iff(value != nil, func() g.Node { return html.Value(value.(string)) }),
		g.If(required, html.Required()),
	)
}

func (Text) RenderColumn(value any, _ *i18n.Translator) g.Node {
	s, _ := value.(string)
	return g.Text(s)
}

func (Text) DecodeForm(node qs.Node) (any, error) {
	return formString(node)
}

func (Text) DecodeJSON(v any) (any, error) {
	return jsonString(v)
}

// formString extracts a scalar leaf from a form node.
func formString(node qs.Node) (string, error) {
	if node == nil {
		return "", ErrMissing
	}
	s, ok := node.(qs.String)
	if !ok {
		return "", fmt.Errorf("%w: want string, got %T", ErrType, node)
	}
	return string(s), nil
}

func jsonString(v any) (string, error) {
	if v == nil {
		return "", ErrMissing
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: want string, got %T", ErrType, v)
	}
	return s, nil
}
