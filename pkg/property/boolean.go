package property

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// Bool is a checkbox property. Go representation: bool. An unchecked box
// submits nothing, so an absent value decodes to false rather than an error.
type Bool struct{}

func (Bool) RenderInput(value any, path formname.Path, _ string, _ bool, _ *FormContext, _ *i18n.Translator) g.Node {
	checked, _ := value.(bool)
	return html.Input(
		html.Type("checkbox"),
		html.Name(path.String()),
		g.If(checked, html.Checked()),
	)
}

func (Bool) RenderColumn(value any, _ *i18n.Translator) g.Node {
	checked, _ := value.(bool)
	return html.Input(
		html.Type("checkbox"),
		html.Disabled(),
		g.If(checked, html.Checked()),
	)
}

func (Bool) DecodeForm(node qs.Node) (any, error) {
	if node == nil {
		return false, nil
	}
	s, ok := node.(qs.String)
	if !ok {
		return nil, fmt.Errorf("%w: want checkbox value, got %T", ErrType, node)
	}
	switch s {
	case "", "false", "off", "0":
		return false, nil
	default:
		// browsers submit "on"; accept any other truthy marker too
		return true, nil
	}
}

func (Bool) DecodeJSON(v any) (any, error) {
	if v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: want bool, got %T", ErrType, v)
	}
	return b, nil
}
