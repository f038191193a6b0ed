package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecms/typecms/pkg/property"
	"github.com/typecms/typecms/pkg/qs"
	"github.com/typecms/typecms/pkg/schema"
)

func newPost(t *testing.T) *schema.Entity {
	t.Helper()
	e, err := schema.New("post",
		schema.WithIDField("id"),
		schema.WithField("title", property.Text{}),
		schema.WithField("content", property.List{Elem: property.Markdown{}}),
		schema.WithField("draft", property.Bool{}),
	)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid entity", func(t *testing.T) {
		t.Parallel()

		e := newPost(t)
		assert.Equal(t, "post", e.Name())
		assert.Equal(t, "posts", e.NamePlural())
		assert.Equal(t, "id", e.IDField().Key())
		assert.Len(t, e.Fields(), 4)
	})

	t.Run("custom plural", func(t *testing.T) {
		t.Parallel()

		e, err := schema.New("category",
			schema.WithNamePlural("categories"),
			schema.WithIDField("id"),
			schema.WithField("name", property.Text{}),
		)
		require.NoError(t, err)
		assert.Equal(t, "categories", e.NamePlural())
	})

	t.Run("kebab and title names", func(t *testing.T) {
		t.Parallel()

		e, err := schema.New("blog_post",
			schema.WithIDField("id"),
			schema.WithField("title", property.Text{}),
		)
		require.NoError(t, err)
		assert.Equal(t, "blog-post", e.KebabName())
		assert.Equal(t, "blog-posts", e.KebabNamePlural())
		assert.Equal(t, "Blog Post", e.TitleName())
	})

	t.Run("no id field", func(t *testing.T) {
		t.Parallel()

		_, err := schema.New("post",
			schema.WithField("title", property.Text{}),
		)
		assert.ErrorIs(t, err, schema.ErrInvalid)
	})

	t.Run("two id fields", func(t *testing.T) {
		t.Parallel()

		_, err := schema.New("post",
			schema.WithIDField("id"),
			schema.WithIDField("uid"),
			schema.WithField("title", property.Text{}),
		)
		assert.ErrorIs(t, err, schema.ErrInvalid)
	})

	t.Run("duplicate wire names", func(t *testing.T) {
		t.Parallel()

		_, err := schema.New("post",
			schema.WithIDField("id"),
			schema.WithField("title", property.Text{}),
			schema.WithField("headline", property.Text{}, schema.Rename("title")),
		)
		assert.ErrorIs(t, err, schema.ErrInvalid)
	})

	t.Run("column-only kind needs skip input", func(t *testing.T) {
		t.Parallel()

		// UUID has no form input, so it must not be offered as one.
		_, err := schema.New("post",
			schema.WithIDField("id"),
			schema.WithField("ref", property.UUID{}),
		)
		assert.ErrorIs(t, err, schema.ErrInvalid)

		_, err = schema.New("post",
			schema.WithIDField("id"),
			schema.WithField("ref", property.UUID{}, schema.SkipInput()),
			schema.WithField("title", property.Text{}),
		)
		assert.NoError(t, err)
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		_, err := schema.New("post", schema.WithIDField("id"))
		assert.ErrorIs(t, err, schema.ErrInvalid)
	})
}

func TestField_Accessors(t *testing.T) {
	t.Parallel()

	e := newPost(t)

	t.Run("id excluded from inputs", func(t *testing.T) {
		t.Parallel()

		keys := make([]string, 0)
		for _, f := range e.Inputs() {
			keys = append(keys, f.Key())
		}
		assert.Equal(t, []string{"title", "content", "draft"}, keys)
	})

	t.Run("id included in columns", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 4, e.ColumnCount())
	})

	t.Run("human name defaults to title case", func(t *testing.T) {
		t.Parallel()

		e, err := schema.New("post",
			schema.WithIDField("id"),
			schema.WithField("published_at", property.DateTime{}),
			schema.WithField("title", property.Text{}, schema.HumanName("Headline")),
		)
		require.NoError(t, err)

		fields := e.Fields()
		assert.Equal(t, "Published At", fields[1].HumanName)
		assert.Equal(t, "Headline", fields[2].HumanName)
	})

	t.Run("required follows optionality", func(t *testing.T) {
		t.Parallel()

		e, err := schema.New("post",
			schema.WithIDField("id"),
			schema.WithField("title", property.Text{}),
			schema.WithField("subtitle", property.Optional{Inner: property.Text{}}),
		)
		require.NoError(t, err)

		fields := e.Fields()
		assert.True(t, fields[1].Required())
		assert.False(t, fields[2].Required())
	})
}

func TestEntity_DecodeForm(t *testing.T) {
	t.Parallel()

	e := newPost(t)

	t.Run("full submission", func(t *testing.T) {
		t.Parallel()

		form, err := qs.Parse([]byte("title=Hello&draft=on&content[0]=Hi"))
		require.NoError(t, err)

		rec, err := e.DecodeForm(form)
		require.NoError(t, err)
		assert.Equal(t, "Hello", rec["title"])
		assert.Equal(t, true, rec["draft"])
		assert.Equal(t, []any{"Hi"}, rec["content"])
	})

	t.Run("absent checkbox and list", func(t *testing.T) {
		t.Parallel()

		form, err := qs.Parse([]byte("title=Hello"))
		require.NoError(t, err)

		rec, err := e.DecodeForm(form)
		require.NoError(t, err)
		assert.Equal(t, false, rec["draft"])
		assert.Equal(t, []any{}, rec["content"])
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		form, err := qs.Parse([]byte("draft=on"))
		require.NoError(t, err)

		_, err = e.DecodeForm(form)
		require.ErrorIs(t, err, schema.ErrDecode)
		assert.Contains(t, err.Error(), `field "title"`)
	})

	t.Run("id never decoded from forms", func(t *testing.T) {
		t.Parallel()

		form, err := qs.Parse([]byte("title=Hello&id=019234aa-0000-7000-8000-000000000000"))
		require.NoError(t, err)

		rec, err := e.DecodeForm(form)
		require.NoError(t, err)
		_, ok := rec["id"]
		assert.False(t, ok)
	})

	t.Run("optional field left empty", func(t *testing.T) {
		t.Parallel()

		e, err := schema.New("post",
			schema.WithIDField("id"),
			schema.WithField("title", property.Text{}),
			schema.WithField("subtitle", property.Optional{Inner: property.Text{}}),
		)
		require.NoError(t, err)

		form, err := qs.Parse([]byte("title=Hello"))
		require.NoError(t, err)

		rec, err := e.DecodeForm(form)
		require.NoError(t, err)
		_, ok := rec["subtitle"]
		assert.False(t, ok)
	})
}

func TestEntity_DecodeJSON(t *testing.T) {
	t.Parallel()

	e := newPost(t)

	t.Run("full object with id", func(t *testing.T) {
		t.Parallel()

		rec, err := e.DecodeJSON(map[string]any{
			"id":      "019234aa-0000-7000-8000-000000000000",
			"title":   "Hello",
			"draft":   true,
			"content": []any{"Hi"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello", rec["title"])
		assert.NotNil(t, rec["id"])
	})

	t.Run("id absent", func(t *testing.T) {
		t.Parallel()

		rec, err := e.DecodeJSON(map[string]any{"title": "Hello"})
		require.NoError(t, err)
		_, ok := rec["id"]
		assert.False(t, ok)
	})

	t.Run("wrong value type", func(t *testing.T) {
		t.Parallel()

		_, err := e.DecodeJSON(map[string]any{"title": 42})
		require.ErrorIs(t, err, schema.ErrDecode)
		assert.Contains(t, err.Error(), `field "title"`)
	})

	t.Run("absent bool defaults false", func(t *testing.T) {
		t.Parallel()

		rec, err := e.DecodeJSON(map[string]any{"title": "Hello"})
		require.NoError(t, err)
		assert.Equal(t, false, rec["draft"])
	})
}
