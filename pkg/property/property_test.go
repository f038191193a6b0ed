package property_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/property"
	"github.com/typecms/typecms/pkg/qs"
)

func renderToString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func translator(t *testing.T) *i18n.Translator {
	t.Helper()
	inst, err := i18n.New(i18n.WithTranslations("en", map[string]any{
		"image-alt-text": "Alternative text",
	}))
	require.NoError(t, err)
	return i18n.NewTranslator(inst, "en")
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("render", func(t *testing.T) {
		t.Parallel()
		out := renderToString(t, property.Text{}.RenderInput("Hello", formname.Root("title"), "Title", true, &property.FormContext{FormID: "f"}, translator(t)))
		assert.Contains(t, out, `name="title"`)
		assert.Contains(t, out, `value="Hello"`)
		assert.Contains(t, out, `required`)
		assert.Contains(t, out, `placeholder="Title"`)
	})

	t.Run("render empty", func(t *testing.T) {
		t.Parallel()
		out := renderToString(t, property.Text{}.RenderInput(nil, formname.Root("title"), "Title", false, &property.FormContext{FormID: "f"}, translator(t)))
		assert.NotContains(t, out, "value=")
		assert.NotContains(t, out, "required")
	})

	t.Run("decode", func(t *testing.T) {
		t.Parallel()
		v, err := property.Text{}.DecodeForm(qs.String("Hello"))
		require.NoError(t, err)
		assert.Equal(t, "Hello", v)

		_, err = property.Text{}.DecodeForm(nil)
		assert.ErrorIs(t, err, property.ErrMissing)

		_, err = property.Text{}.DecodeForm(qs.Object{})
		assert.ErrorIs(t, err, property.ErrType)
	})
}

func TestBool(t *testing.T) {
	t.Parallel()

	t.Run("decode checkbox conventions", func(t *testing.T) {
		t.Parallel()
		for in, want := range map[string]bool{"on": true, "true": true, "1": true, "off": false, "false": false, "": false} {
			v, err := property.Bool{}.DecodeForm(qs.String(in))
			require.NoError(t, err)
			assert.Equal(t, want, v, "input %q", in)
		}

		v, err := property.Bool{}.DecodeForm(nil)
		require.NoError(t, err)
		assert.Equal(t, false, v)
	})

	t.Run("column renders disabled checkbox", func(t *testing.T) {
		t.Parallel()
		out := renderToString(t, property.Bool{}.RenderColumn(true, translator(t)))
		assert.Contains(t, out, "disabled")
		assert.Contains(t, out, "checked")
	})
}

func TestDateTime(t *testing.T) {
	t.Parallel()

	t.Run("decode rfc3339", func(t *testing.T) {
		t.Parallel()
		v, err := property.DateTime{}.DecodeForm(qs.String("2026-08-30T10:30:00Z"))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC), v)

		_, err = property.DateTime{}.DecodeForm(qs.String("yesterday"))
		assert.ErrorIs(t, err, property.ErrType)
	})

	t.Run("render emits hidden rfc3339 field", func(t *testing.T) {
		t.Parallel()
		ts := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
		out := renderToString(t, property.DateTime{}.RenderInput(ts, formname.Root("date"), "Date", true, &property.FormContext{FormID: "form-1"}, translator(t)))
		assert.Contains(t, out, `type="hidden"`)
		assert.Contains(t, out, `name="date"`)
		assert.Contains(t, out, "2026-08-30T10:30:00Z")
		assert.Contains(t, out, "form-1")
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	list := property.NewList(property.Text{})

	t.Run("render indices and template", func(t *testing.T) {
		t.Parallel()
		out := renderToString(t, list.RenderInput([]any{"a", "b"}, formname.Root("tags"), "Tags", true, &property.FormContext{FormID: "f"}, translator(t)))
		assert.Contains(t, out, `name="tags[0]"`)
		assert.Contains(t, out, `name="tags[1]"`)
		// template block plus clone script
		assert.Contains(t, out, "template.remove()")
		assert.Contains(t, out, `tags\[`)
	})

	t.Run("decode preserves order", func(t *testing.T) {
		t.Parallel()
		v, err := list.DecodeForm(qs.List{qs.String("a"), qs.String("b"), qs.String("c")})
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b", "c"}, v)
	})

	t.Run("absent decodes to empty list", func(t *testing.T) {
		t.Parallel()
		v, err := list.DecodeForm(nil)
		require.NoError(t, err)
		assert.Equal(t, []any{}, v)
	})
}

func TestEnum(t *testing.T) {
	t.Parallel()

	enum := property.NewEnum(
		property.Variant{Name: "text", Content: property.Markdown{}},
		property.Variant{Name: "separator"},
	)

	t.Run("decode selects variant by tag", func(t *testing.T) {
		t.Parallel()
		v, err := enum.DecodeForm(qs.Object{"type": qs.String("text"), "data": qs.String("Hi")})
		require.NoError(t, err)
		assert.Equal(t, property.Union{Variant: "text", Data: "Hi"}, v)
	})

	t.Run("unit variant ignores stray content", func(t *testing.T) {
		t.Parallel()
		v, err := enum.DecodeForm(qs.Object{"type": qs.String("separator"), "data": qs.String("stray")})
		require.NoError(t, err)
		assert.Equal(t, property.Union{Variant: "separator"}, v)
	})

	t.Run("unknown variant", func(t *testing.T) {
		t.Parallel()
		_, err := enum.DecodeForm(qs.Object{"type": qs.String("video")})
		assert.ErrorIs(t, err, property.ErrUnknownVariant)
	})

	t.Run("render binds selector and content markers", func(t *testing.T) {
		t.Parallel()
		out := renderToString(t, enum.RenderInput(property.Union{Variant: "separator"}, formname.Root("block"), "Block", false, &property.FormContext{FormID: "f"}, translator(t)))
		assert.Contains(t, out, `name="block[type]"`)
		assert.Contains(t, out, `name="block[data]"`)
		assert.Contains(t, out, `value="separator"`)
		// non-active variant content must be disabled
		assert.Contains(t, out, "disabled")
		assert.Contains(t, out, "/js/enum.js")
	})
}

func TestFile(t *testing.T) {
	t.Parallel()

	t.Run("existing value emits keep-previous hidden fields", func(t *testing.T) {
		t.Parallel()
		ref := property.FileRef{ID: "u-1", Name: "doc.pdf"}
		out := renderToString(t, property.File{}.RenderInput(ref, formname.Root("attachment"), "Attachment", true, &property.FormContext{FormID: "f"}, translator(t)))
		assert.Contains(t, out, `name="attachment[id]"`)
		assert.Contains(t, out, `value="u-1"`)
		assert.Contains(t, out, `name="attachment[name]"`)
		assert.Contains(t, out, `value="doc.pdf"`)
		// a stored value must not force a re-upload
		assert.NotContains(t, out, "required")
	})

	t.Run("decode needs id and name", func(t *testing.T) {
		t.Parallel()
		v, err := property.File{}.DecodeForm(qs.Object{"id": qs.String("u-1"), "name": qs.String("doc.pdf")})
		require.NoError(t, err)
		assert.Equal(t, property.FileRef{ID: "u-1", Name: "doc.pdf"}, v)

		_, err = property.File{}.DecodeForm(qs.Object{"name": qs.String("doc.pdf")})
		assert.ErrorIs(t, err, property.ErrMissing)
	})

	t.Run("column links to the upload path", func(t *testing.T) {
		t.Parallel()
		out := renderToString(t, property.File{}.RenderColumn(property.FileRef{ID: "u-1", Name: "doc.pdf"}, translator(t)))
		assert.Contains(t, out, `href="/uploads/u-1/doc.pdf"`)
	})
}

func TestImage(t *testing.T) {
	t.Parallel()

	t.Run("decode keeps alt text", func(t *testing.T) {
		t.Parallel()
		v, err := property.Image{}.DecodeForm(qs.Object{
			"id":       qs.String("u-2"),
			"name":     qs.String("cat.png"),
			"alt_text": qs.String("A cat"),
		})
		require.NoError(t, err)
		assert.Equal(t, property.ImageRef{ID: "u-2", Name: "cat.png", AltText: "A cat"}, v)
	})

	t.Run("render includes localized alt placeholder", func(t *testing.T) {
		t.Parallel()
		out := renderToString(t, property.Image{}.RenderInput(nil, formname.Root("cover"), "Cover", false, &property.FormContext{FormID: "f"}, translator(t)))
		assert.Contains(t, out, `name="cover[alt_text]"`)
		assert.Contains(t, out, "Alternative text")
		assert.Contains(t, out, `accept="image/*"`)
	})
}

func TestOptional(t *testing.T) {
	t.Parallel()

	opt := property.NewOptional(property.Text{})

	t.Run("absent is nil, not an error", func(t *testing.T) {
		t.Parallel()
		v, err := opt.DecodeForm(nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("present delegates to inner", func(t *testing.T) {
		t.Parallel()
		v, err := opt.DecodeForm(qs.String("x"))
		require.NoError(t, err)
		assert.Equal(t, "x", v)
	})

	t.Run("render drops required", func(t *testing.T) {
		t.Parallel()
		out := renderToString(t, opt.RenderInput(nil, formname.Root("subtitle"), "Subtitle", true, &property.FormContext{FormID: "f"}, translator(t)))
		assert.NotContains(t, out, "required")
	})
}

func TestMarkdownColumn(t *testing.T) {
	t.Parallel()

	out := renderToString(t, property.Markdown{}.RenderColumn("**bold** <script>alert(1)</script>", translator(t)))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<script>")
}
