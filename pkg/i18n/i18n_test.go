package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecms/typecms/pkg/i18n"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New()
		require.NoError(t, err)
		require.Equal(t, "en", inst.DefaultLanguage())
	})

	t.Run("custom default language", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New(i18n.WithDefaultLanguage("de"))
		require.NoError(t, err)
		require.Equal(t, "de", inst.DefaultLanguage())
	})

	t.Run("empty default language", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithDefaultLanguage(""))
		require.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("languages list has default first", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New(
			i18n.WithTranslations("de", map[string]any{"hello": "Hallo"}),
			i18n.WithTranslations("pl", map[string]any{"hello": "Czesc"}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "de", "pl"}, inst.Languages())
	})
}

func TestT(t *testing.T) {
	t.Parallel()

	inst, err := i18n.New(
		i18n.WithTranslations("en", map[string]any{
			"entity": map[string]any{
				"add":          "Add {name}",
				"submit":       "Save",
				"create-title": "Create new {name}",
			},
		}),
		i18n.WithTranslations("de", map[string]any{
			"entity": map[string]any{"submit": "Speichern"},
		}),
	)
	require.NoError(t, err)

	t.Run("nested keys flatten with dots", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Save", inst.T("en", "entity.submit"))
	})

	t.Run("placeholders", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Add Post", inst.T("en", "entity.add", i18n.M{"name": "Post"}))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Add Post", inst.T("de", "entity.add", i18n.M{"name": "Post"}))
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "nope.missing", inst.T("en", "nope.missing"))
	})

	t.Run("translator fixes language", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "de")
		assert.Equal(t, "Speichern", tr.T("entity.submit"))
		assert.Equal(t, "de", tr.Language())
	})
}

func TestWithYAMLFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/de.yaml": &fstest.MapFile{Data: []byte("entity:\n  submit: Speichern\n")},
		"locales/notes":   &fstest.MapFile{Data: []byte("ignore me")},
	}
	inst, err := i18n.New(i18n.WithYAMLFS(fsys, "locales"))
	require.NoError(t, err)
	assert.Equal(t, "Speichern", inst.T("de", "entity.submit"))

	_, err = i18n.New(i18n.WithYAMLFS(fsys, "missing"))
	require.ErrorIs(t, err, i18n.ErrLoadTranslations)
}

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	available := []string{"en", "de", "pl"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "de", "de"},
		{"region collapses to base", "de-AT,en;q=0.5", "de"},
		{"quality ordering", "pl;q=0.3,de;q=0.9", "de"},
		{"wildcard ignored", "*;q=1.0,pl;q=0.5", "pl"},
		{"no match falls back", "fr,es;q=0.8", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, available))
		})
	}
}
