package property

import (
	"errors"

	g "maragu.dev/gomponents"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// FormContext carries per-form rendering state. FormID is the id of the
// enclosing <form> element, needed by controls that hook its submit event.
type FormContext struct {
	FormID string
}

// Input renders an editable form control for a property value.
//
// value is the current value in the kind's Go representation, or nil when
// rendering an empty form. Implementations must tolerate nil.
type Input interface {
	RenderInput(value any, path formname.Path, humanName string, required bool, fc *FormContext, tr *i18n.Translator) g.Node
}

// Column renders a read-only list-page cell for a property value.
type Column interface {
	RenderColumn(value any, tr *i18n.Translator) g.Node
}

// Codec converts external representations into the kind's Go value.
//
// DecodeForm consumes a node from a parsed form submission; a nil node means
// the field was absent, which non-optional kinds reject. DecodeJSON consumes
// a generic JSON value (API bodies, store rows).
type Codec interface {
	DecodeForm(node qs.Node) (any, error)
	DecodeJSON(v any) (any, error)
}

// Kind is what a schema field carries: an editable, decodable property.
// Column is intentionally not part of Kind; composite kinds like lists have
// no sensible cell rendering and are skipped in columns instead.
type Kind interface {
	Input
	Codec
}

// Decode errors. Schema-level decoding wraps these with the field path.
var (
	// ErrMissing reports an absent value for a non-optional property.
	ErrMissing = errors.New("property: missing value")

	// ErrType reports a value of the wrong shape, e.g. a list where a
	// scalar was expected.
	ErrType = errors.New("property: unexpected value shape")

	// ErrUnknownVariant reports a tagged-union selector naming no
	// registered variant.
	ErrUnknownVariant = errors.New("property: unknown variant")
)

// FileRef references an uploaded file by storage id. The id addresses the
// upload directory; Name preserves the original filename for content-type
// inference on retrieval.
type FileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ImageRef is a FileRef with alternative text.
type ImageRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	AltText string `json:"alt_text"`
}

// Union is the value of a tagged-union property: exactly one active variant
// with an optional payload.
type Union struct {
	Variant string `json:"type"`
	Data    any    `json:"data,omitempty"`
}
