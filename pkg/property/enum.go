package property

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/typecms/typecms/pkg/caseconv"
	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// Variant is one alternative of an Enum.
type Variant struct {
	// Name is the snake_case wire value submitted by the selector.
	Name string

	// Content is the payload kind; nil for unit variants.
	Content Kind
}

// Enum is a tagged-union property: a selector choosing exactly one variant,
// with that variant's payload. Go representation: Union.
//
// The selector radio group binds to {name}[type] and every variant's content
// block binds to {name}[data]. Only the active block is enabled, so only one
// payload is submitted; on the way back in the decoder trusts the selector
// and ignores stray content for other variants.
type Enum struct {
	Variants []Variant
}

// NewEnum creates a tagged-union property from its variants.
func NewEnum(variants ...Variant) Enum {
	return Enum{Variants: variants}
}

func (e Enum) RenderInput(value any, path formname.Path, _ string, required bool, fc *FormContext, tr *i18n.Translator) g.Node {
	selected := 0
	var data any
	if u, ok := value.(Union); ok {
		for i, v := range e.Variants {
			if v.Name == u.Variant {
				selected = i
				data = u.Data
				break
			}
		}
	}

	selector := make([]g.Node, 0, 2*len(e.Variants))
	for i, v := range e.Variants {
		id := fmt.Sprintf("%s_radio-button_%s", path.String(), v.Name)
		selector = append(selector,
			html.Input(
				html.Type("radio"),
				html.Name(path.Tag().String()),
				html.Value(v.Name),
				html.ID(id),
				g.Attr("onchange", "cmsEnumInputOnchange(this)"),
				g.If(i == selected, html.Checked()),
			),
			html.Label(html.For(id), g.Text(caseconv.Title(v.Name))),
		)
	}

	contents := make([]g.Node, 0, len(e.Variants))
	for i, v := range e.Variants {
		class := "cms-enum-container"
		switch {
		case i < selected:
			class += " cms-enum-hidden cms-enum-hidden-left"
		case i > selected:
			class += " cms-enum-hidden cms-enum-hidden-right"
		}
		var inner g.Node
		if v.Content != nil {
			var val any
			if i == selected {
				val = data
			}
			inner = v.Content.RenderInput(val, path.Content(), caseconv.Title(v.Name), required, fc, tr)
		}
		contents = append(contents, html.FieldSet(
			html.Class(class),
			g.If(i != selected, html.Disabled()),
			inner,
		))
	}

	return g.Group([]g.Node{
		html.Div(html.Class("cms-enum-type"), g.Group(selector)),
		html.Div(html.Class("cms-enum-data"), g.Group(contents)),
		html.Script(html.Src("/js/enum.js")),
	})
}

func (e Enum) DecodeForm(node qs.Node) (any, error) {
	obj, err := formObject(node)
	if err != nil {
		return nil, err
	}
	tag, ok := obj[formname.TagMarker].(qs.String)
	if !ok {
		return nil, fmt.Errorf("%w: variant selector", ErrMissing)
	}
	variant, err := e.variant(string(tag))
	if err != nil {
		return nil, err
	}
	if variant.Content == nil {
		return Union{Variant: variant.Name}, nil
	}
	data, err := variant.Content.DecodeForm(obj[formname.ContentMarker])
	if err != nil {
		return nil, fmt.Errorf("variant %q: %w", variant.Name, err)
	}
	return Union{Variant: variant.Name, Data: data}, nil
}

func (e Enum) DecodeJSON(v any) (any, error) {
	obj, err := jsonObject(v)
	if err != nil {
		return nil, err
	}
	tag, ok := obj[formname.TagMarker].(string)
	if !ok {
		return nil, fmt.Errorf("%w: variant selector", ErrMissing)
	}
	variant, err := e.variant(tag)
	if err != nil {
		return nil, err
	}
	if variant.Content == nil {
		return Union{Variant: variant.Name}, nil
	}
	data, err := variant.Content.DecodeJSON(obj[formname.ContentMarker])
	if err != nil {
		return nil, fmt.Errorf("variant %q: %w", variant.Name, err)
	}
	return Union{Variant: variant.Name, Data: data}, nil
}

func (e Enum) variant(name string) (Variant, error) {
	for _, v := range e.Variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
