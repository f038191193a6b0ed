package property

import (
	g "maragu.dev/gomponents"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// Optional wraps another kind and makes absence a value instead of an
// error. Go representation: the inner value, or nil.
type Optional struct {
	Inner Kind
}

// NewOptional creates an optional property over the given inner kind.
func NewOptional(inner Kind) Optional {
	return Optional{Inner: inner}
}

// RenderInput delegates to the inner kind with required forced off.
func (o Optional) RenderInput(value any, path formname.Path, humanName string, _ bool, fc *FormContext, tr *i18n.Translator) g.Node {
	return o.Inner.RenderInput(value, path, humanName, false, fc, tr)
}

// RenderColumn renders nothing for absent values. The inner kind must
// implement Column; pkg/schema verifies that at registration.
func (o Optional) RenderColumn(value any, tr *i18n.Translator) g.Node {
	if value == nil {
		return nil
	}
	col, ok := o.Inner.(Column)
	if !ok {
		return nil
	}
	return col.RenderColumn(value, tr)
}

func (o Optional) DecodeForm(node qs.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	return o.Inner.DecodeForm(node)
}

func (o Optional) DecodeJSON(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return o.Inner.DecodeJSON(v)
}
