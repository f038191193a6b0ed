package schema

import (
	"errors"
	"fmt"

	"github.com/typecms/typecms/pkg/caseconv"
	"github.com/typecms/typecms/pkg/property"
)

// ErrInvalid reports a malformed entity definition. It is returned from New
// and is always fatal: the application must not start with a broken schema.
var ErrInvalid = errors.New("schema: invalid entity")

// Record is one entity value, keyed by wire field name. Values use the
// property kinds' Go representations.
type Record = map[string]any

// Field describes one property of an entity.
type Field struct {
	// Name is the snake_case field name.
	Name string

	// HumanName is the label shown in forms; defaults to Title Case of Name.
	HumanName string

	// Rename overrides the wire name used in forms, JSON and storage.
	Rename string

	// Kind decodes (and usually renders) the field's values.
	Kind property.Codec

	// ID marks the identifier field. Exactly one per entity.
	ID bool

	// SkipColumn hides the field on the list page.
	SkipColumn bool

	// SkipInput omits the field from forms.
	SkipInput bool
}

// Key returns the wire name: Rename when set, Name otherwise.
func (f Field) Key() string {
	if f.Rename != "" {
		return f.Rename
	}
	return f.Name
}

// Required reports whether a form submission must carry the field.
// Optional kinds opt out.
func (f Field) Required() bool {
	_, optional := f.Kind.(property.Optional)
	return !optional
}

// Input returns the field's form renderer. Valid for every field without
// SkipInput; New enforces that.
func (f Field) Input() property.Input {
	in, _ := f.Kind.(property.Input)
	return in
}

// Column returns the field's cell renderer. Valid for every field without
// SkipColumn; New enforces that.
func (f Field) Column() property.Column {
	col, _ := f.Kind.(property.Column)
	return col
}

// Entity is an immutable descriptor of one registered entity type.
type Entity struct {
	name       string
	namePlural string
	fields     []Field
	idIndex    int
}

// Option configures an entity during construction.
type Option func(*Entity) error

// New builds and validates an entity descriptor. The name must be a
// snake_case singular noun; the plural defaults to name + "s".
func New(name string, opts ...Option) (*Entity, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalid)
	}
	e := &Entity{name: name, idIndex: -1}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.namePlural == "" {
		e.namePlural = name + "s"
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// WithNamePlural overrides the default plural name.
func WithNamePlural(plural string) Option {
	return func(e *Entity) error {
		e.namePlural = plural
		return nil
	}
}

// WithField appends a property field.
func WithField(name string, kind property.Codec, opts ...FieldOption) Option {
	return func(e *Entity) error {
		f := Field{Name: name, Kind: kind}
		for _, opt := range opts {
			opt(&f)
		}
		if f.HumanName == "" {
			f.HumanName = caseconv.Title(name)
		}
		e.fields = append(e.fields, f)
		return nil
	}
}

// WithIDField appends the identifier field. It is a UUID, generated
// server-side, omitted from forms and shown as a column.
func WithIDField(name string) Option {
	return WithField(name, property.UUID{}, asID(), SkipInput())
}

// FieldOption configures a single field.
type FieldOption func(*Field)

// Rename overrides the field's wire name.
func Rename(wire string) FieldOption {
	return func(f *Field) { f.Rename = wire }
}

// HumanName overrides the form label.
func HumanName(label string) FieldOption {
	return func(f *Field) { f.HumanName = label }
}

// SkipColumn hides the field on the list page.
func SkipColumn() FieldOption {
	return func(f *Field) { f.SkipColumn = true }
}

// SkipInput omits the field from forms.
func SkipInput() FieldOption {
	return func(f *Field) { f.SkipInput = true }
}

func asID() FieldOption {
	return func(f *Field) { f.ID = true }
}

func (e *Entity) validate() error {
	if len(e.fields) == 0 {
		return fmt.Errorf("%w: entity %q has no fields", ErrInvalid, e.name)
	}
	seen := make(map[string]bool, len(e.fields))
	for i, f := range e.fields {
		if f.Name == "" {
			return fmt.Errorf("%w: entity %q: field %d has no name", ErrInvalid, e.name, i)
		}
		if seen[f.Key()] {
			return fmt.Errorf("%w: entity %q: duplicate field %q", ErrInvalid, e.name, f.Key())
		}
		seen[f.Key()] = true
		if f.Kind == nil {
			return fmt.Errorf("%w: entity %q: field %q has no kind", ErrInvalid, e.name, f.Name)
		}
		if !f.SkipInput {
			if _, ok := f.Kind.(property.Input); !ok {
				return fmt.Errorf("%w: entity %q: field %q cannot render an input; mark it SkipInput", ErrInvalid, e.name, f.Name)
			}
		}
		if !f.SkipColumn {
			if _, ok := f.Kind.(property.Column); !ok {
				return fmt.Errorf("%w: entity %q: field %q cannot render a column; mark it SkipColumn", ErrInvalid, e.name, f.Name)
			}
		}
		if f.ID {
			if e.idIndex >= 0 {
				return fmt.Errorf("%w: entity %q: more than one id field", ErrInvalid, e.name)
			}
			e.idIndex = i
		}
	}
	if e.idIndex < 0 {
		return fmt.Errorf("%w: entity %q has no id field", ErrInvalid, e.name)
	}
	return nil
}

// Name returns the singular snake_case name.
func (e *Entity) Name() string { return e.name }

// NamePlural returns the plural snake_case name.
func (e *Entity) NamePlural() string { return e.namePlural }

// KebabName returns the singular name in URL form.
func (e *Entity) KebabName() string { return caseconv.Kebab(e.name) }

// KebabNamePlural returns the plural name in URL form.
func (e *Entity) KebabNamePlural() string { return caseconv.Kebab(e.namePlural) }

// TitleName returns the singular name as a heading.
func (e *Entity) TitleName() string { return caseconv.Title(e.name) }

// TitleNamePlural returns the plural name as a heading.
func (e *Entity) TitleNamePlural() string { return caseconv.Title(e.namePlural) }

// Fields returns all fields in declaration order. Callers must not mutate
// the returned slice.
func (e *Entity) Fields() []Field { return e.fields }

// IDField returns the identifier field.
func (e *Entity) IDField() Field { return e.fields[e.idIndex] }

// Columns returns the fields shown on the list page, in order.
func (e *Entity) Columns() []Field {
	cols := make([]Field, 0, len(e.fields))
	for _, f := range e.fields {
		if !f.SkipColumn {
			cols = append(cols, f)
		}
	}
	return cols
}

// Inputs returns the fields rendered in forms, in order.
func (e *Entity) Inputs() []Field {
	ins := make([]Field, 0, len(e.fields))
	for _, f := range e.fields {
		if !f.SkipInput {
			ins = append(ins, f)
		}
	}
	return ins
}

// ColumnCount returns the number of list-page columns.
func (e *Entity) ColumnCount() int { return len(e.Columns()) }
