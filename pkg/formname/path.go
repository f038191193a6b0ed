package formname

import (
	"strconv"
	"strings"
)

// Markers used by tagged-union properties. They are part of the wire
// contract: client-side scripts and the decoder both rely on them.
const (
	TagMarker     = "type"
	ContentMarker = "data"
)

// Path is an encoded position within a nested form. The zero value is not
// usable; construct one with Root.
//
// Path values are immutable: each derivation returns a new Path, so a parent
// can safely hand the same Path to several children.
type Path struct {
	name string
}

// Root starts a path at a top-level field name.
func Root(field string) Path {
	return Path{name: field}
}

// Field appends an object field segment: "name[field]".
func (p Path) Field(field string) Path {
	return Path{name: p.name + "[" + field + "]"}
}

// Index appends a list index segment: "name[3]".
func (p Path) Index(i int) Path {
	return Path{name: p.name + "[" + strconv.Itoa(i) + "]"}
}

// Tag appends the tagged-union selector marker: "name[type]".
func (p Path) Tag() Path {
	return p.Field(TagMarker)
}

// Content appends the tagged-union payload marker: "name[data]".
func (p Path) Content() Path {
	return p.Field(ContentMarker)
}

// String returns the encoded form-control name.
func (p Path) String() string {
	return p.name
}

// Base returns the top-level field name the path was rooted at.
func (p Path) Base() string {
	if i := strings.IndexByte(p.name, '['); i >= 0 {
		return p.name[:i]
	}
	return p.name
}
