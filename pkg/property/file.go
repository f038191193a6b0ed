package property

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// File is an uploaded attachment. Go representation: FileRef.
//
// When an existing value is re-rendered, hidden {name}[id] and {name}[name]
// fields carry the stored reference, so submitting the form without a new
// upload keeps the previous file. The file input comes first in the markup:
// the decoder's first-write-wins rule then lets a fresh upload shadow the
// hidden fields.
type File struct{}

func (File) RenderInput(value any, path formname.Path, _ string, required bool, _ *FormContext, _ *i18n.Translator) g.Node {
	return g.Group([]g.Node{
		html.Input(
			html.Type("file"),
			html.Name(path.String()),
			g.If(required && value == nil, html.Required()),
		),
		g.Iff(value != nil, func() g.Node {
			f := value.(FileRef)
			return keepPrevious(path, f.ID, f.Name)
		}),
	})
}

func (File) RenderColumn(value any, _ *i18n.Translator) g.Node {
	f, ok := value.(FileRef)
	if !ok {
		return nil
	}
	return html.A(html.Href(fileURL(f.ID, f.Name)), g.Text(f.Name))
}

func (File) DecodeForm(node qs.Node) (any, error) {
	obj, err := formObject(node)
	if err != nil {
		return nil, err
	}
	return fileRefFrom(func(key string) (string, bool) {
		s, ok := obj[key].(qs.String)
		return string(s), ok
	})
}

func (File) DecodeJSON(v any) (any, error) {
	obj, err := jsonObject(v)
	if err != nil {
		return nil, err
	}
	return fileRefFrom(func(key string) (string, bool) {
		s, ok := obj[key].(string)
		return s, ok
	})
}

func fileRefFrom(get func(string) (string, bool)) (any, error) {
	id, okID := get("id")
	name, okName := get("name")
	if !okID || !okName || id == "" {
		return nil, fmt.Errorf("%w: file reference", ErrMissing)
	}
	return FileRef{ID: id, Name: name}, nil
}

// keepPrevious emits the hidden fields of the keep-previous contract.
func keepPrevious(path formname.Path, id, name string) g.Node {
	return g.Group([]g.Node{
		html.Input(html.Type("hidden"), html.Name(path.Field("id").String()), html.Value(id)),
		html.Input(html.Type("hidden"), html.Name(path.Field("name").String()), html.Value(name)),
	})
}

// fileURL builds the public path for a stored upload.
func fileURL(id, name string) string {
	return "/uploads/" + url.PathEscape(id) + "/" + url.PathEscape(name)
}

func formObject(node qs.Node) (qs.Object, error) {
	if node == nil {
		return nil, ErrMissing
	}
	obj, ok := node.(qs.Object)
	if !ok {
		return nil, fmt.Errorf("%w: want object, got %T", ErrType, node)
	}
	return obj, nil
}

func jsonObject(v any) (map[string]any, error) {
	if v == nil {
		return nil, ErrMissing
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: want object, got %T", ErrType, v)
	}
	return obj, nil
}
