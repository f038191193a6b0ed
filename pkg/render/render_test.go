package render_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/property"
	"github.com/typecms/typecms/pkg/render"
	"github.com/typecms/typecms/pkg/schema"
)

func renderToString(t *testing.T, node g.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

func translator(t *testing.T) *i18n.Translator {
	t.Helper()
	svc, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", i18n.M{
			"entity-inputs-submit": "Save",
			"entity-list-add":      "Add",
			"edit-entity-title":    "Edit {name}",
			"create-entity-title":  "Create {name}",
		}),
	)
	require.NoError(t, err)
	return i18n.NewTranslator(svc, "en")
}

func blogPost(t *testing.T) *schema.Entity {
	t.Helper()
	e, err := schema.New("blog_post",
		schema.WithIDField("id"),
		schema.WithField("title", property.Text{}),
		schema.WithField("draft", property.Bool{}),
	)
	require.NoError(t, err)
	return e
}

func TestDocument(t *testing.T) {
	t.Parallel()

	out := renderToString(t, render.Document())
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, `href="/css/main.css"`)
	assert.Contains(t, out, `charset="utf-8"`)
}

func TestSidebar(t *testing.T) {
	t.Parallel()

	out := renderToString(t, render.Sidebar([]string{"blog_posts", "pages"}, "pages"))
	assert.Contains(t, out, `class="cms-sidebar"`)
	assert.Contains(t, out, `href="/blog-posts"`)
	assert.Contains(t, out, ">Blog Posts</a>")
	assert.Contains(t, out, `href="/pages" class="active"`)
}

func TestEntityForm(t *testing.T) {
	t.Parallel()

	t.Run("empty form", func(t *testing.T) {
		t.Parallel()

		out := renderToString(t, render.EntityForm(blogPost(t), nil, translator(t)))
		assert.Contains(t, out, `class="cms-entity-form cms-add-form"`)
		assert.Contains(t, out, `enctype="multipart/form-data"`)
		assert.Contains(t, out, `name="title"`)
		assert.Contains(t, out, `name="draft"`)
		assert.Contains(t, out, ">Save</button>")
		// id field never renders an input
		assert.NotContains(t, out, `name="id"`)
	})

	t.Run("prefilled form", func(t *testing.T) {
		t.Parallel()

		rec := schema.Record{"title": "Hello", "draft": true}
		out := renderToString(t, render.EntityForm(blogPost(t), rec, translator(t)))
		assert.Contains(t, out, `value="Hello"`)
		assert.Contains(t, out, "checked")
	})
}

func TestEntityListPage(t *testing.T) {
	t.Parallel()

	e := blogPost(t)
	id := uuid.New()
	recs := []schema.Record{{"id": id, "title": "First", "draft": false}}

	out := renderToString(t, render.EntityListPage([]string{"blog_posts"}, e, recs, translator(t)))
	assert.Contains(t, out, "<h1>Blog Posts</h1>")
	assert.Contains(t, out, `href="/blog-posts/add"`)
	assert.Contains(t, out, ">Add</a>")
	assert.Contains(t, out, "<th>Title</th>")
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "/blog-post/"+id.String())
}

func TestEntityPage(t *testing.T) {
	t.Parallel()

	rec := schema.Record{"id": uuid.New(), "title": "Hello", "draft": false}
	out := renderToString(t, render.EntityPage([]string{"blog_posts"}, blogPost(t), rec, translator(t)))
	assert.Contains(t, out, "<h1>Edit Blog Post</h1>")
	assert.Contains(t, out, `value="Hello"`)
}

func TestAddEntityPage(t *testing.T) {
	t.Parallel()

	out := renderToString(t, render.AddEntityPage([]string{"blog_posts"}, blogPost(t), translator(t)))
	assert.Contains(t, out, "<h1>Create Blog Post</h1>")
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	out := renderToString(t, render.ErrorPage("Not Found", "no such record\ntry the list page"))
	assert.Contains(t, out, "<h1>Not Found</h1>")
	assert.Contains(t, out, "no such record<br>")
	assert.Contains(t, out, "Go Back")
}
