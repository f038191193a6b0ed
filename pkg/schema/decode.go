package schema

import (
	"errors"
	"fmt"

	"github.com/typecms/typecms/pkg/qs"
)

// ErrDecode reports a structurally valid submission that does not match the
// entity's schema: a missing required field or a value of the wrong shape.
var ErrDecode = errors.New("schema: cannot decode record")

// DecodeForm converts a parsed form tree into a Record. Input-skipped
// fields (including the id) are absent from the result; the caller supplies
// them. Missing required fields are an error unless the kind treats absence
// as a value (booleans, lists, optionals).
func (e *Entity) DecodeForm(form qs.Object) (Record, error) {
	rec := make(Record, len(e.fields))
	for _, f := range e.Inputs() {
		v, err := f.Kind.DecodeForm(form[f.Key()])
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrDecode, f.Key(), err)
		}
		if v == nil {
			continue
		}
		rec[f.Key()] = v
	}
	return rec, nil
}

// DecodeJSON converts a generic JSON object (an API body or a stored row)
// into a Record. The id field is decoded when present and left out when
// absent, so the same path serves both create bodies and rehydration.
func (e *Entity) DecodeJSON(obj map[string]any) (Record, error) {
	rec := make(Record, len(e.fields))
	for _, f := range e.fields {
		raw, present := obj[f.Key()]
		if !present {
			if f.ID || !f.Required() {
				continue
			}
			// booleans and lists default on absence, same as forms
			v, err := f.Kind.DecodeJSON(nil)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q: %v", ErrDecode, f.Key(), err)
			}
			if v != nil {
				rec[f.Key()] = v
			}
			continue
		}
		v, err := f.Kind.DecodeJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrDecode, f.Key(), err)
		}
		if v != nil {
			rec[f.Key()] = v
		}
	}
	return rec, nil
}
