package i18n

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithYAMLFS loads translations from every .yml/.yaml file in the given
// filesystem. The file name without extension is the language code, so
// "translations/de.yaml" provides German messages.
func WithYAMLFS(fsys fs.FS, dir string) Option {
	return func(i *I18n) error {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLoadTranslations, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := filepath.Ext(e.Name())
			if ext != ".yml" && ext != ".yaml" {
				continue
			}
			lang := strings.TrimSuffix(e.Name(), ext)
			if lang == "" {
				return fmt.Errorf("%w: %q has no language name", ErrLoadTranslations, e.Name())
			}
			data, err := fs.ReadFile(fsys, filepath.Join(dir, e.Name()))
			if err != nil {
				return fmt.Errorf("%w: %v", ErrLoadTranslations, err)
			}
			var messages map[string]any
			if err := yaml.Unmarshal(data, &messages); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrLoadTranslations, e.Name(), err)
			}
			flattenInto(i.translations, lang+":", messages)
		}
		return nil
	}
}
