package property

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// Image is an uploaded picture with alternative text. Go representation:
// ImageRef. The file part follows the same keep-previous contract as File.
type Image struct{}

func (Image) RenderInput(value any, path formname.Path, _ string, required bool, _ *FormContext, tr *i18n.Translator) g.Node {
	img, ok := value.(ImageRef)
	return html.FieldSet(
		html.Class("cms-image cms-prop-group"),
		html.Input(
			html.Type("file"),
			html.Accept("image/*"),
			html.Name(path.String()),
			g.If(required && !ok, html.Required()),
		),
		g.If(ok, keepPrevious(path, img.ID, img.Name)),
		html.Input(
			html.Type("text"),
			html.Name(path.Field("alt_text").String()),
			html.Placeholder(tr.T("image-alt-text")),
			html.Class("cms-text-input cms-prop-container"),
			g.If(ok, html.Value(img.AltText)),
		),
	)
}

func (Image) RenderColumn(value any, _ *i18n.Translator) g.Node {
	img, ok := value.(ImageRef)
	if !ok {
		return nil
	}
	return g.Group([]g.Node{
		html.A(html.Href(fileURL(img.ID, img.Name)), g.Text(img.Name)),
		g.Text(" (" + img.AltText + ")"),
	})
}

func (Image) DecodeForm(node qs.Node) (any, error) {
	obj, err := formObject(node)
	if err != nil {
		return nil, err
	}
	ref, err := fileRefFrom(func(key string) (string, bool) {
		s, ok := obj[key].(qs.String)
		return string(s), ok
	})
	if err != nil {
		return nil, err
	}
	f := ref.(FileRef)
	alt, _ := obj["alt_text"].(qs.String)
	return ImageRef{ID: f.ID, Name: f.Name, AltText: string(alt)}, nil
}

func (Image) DecodeJSON(v any) (any, error) {
	obj, err := jsonObject(v)
	if err != nil {
		return nil, err
	}
	ref, err := fileRefFrom(func(key string) (string, bool) {
		s, ok := obj[key].(string)
		return s, ok
	})
	if err != nil {
		return nil, err
	}
	f := ref.(FileRef)
	alt, _ := obj["alt_text"].(string)
	return ImageRef{ID: f.ID, Name: f.Name, AltText: alt}, nil
}
