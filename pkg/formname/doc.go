// Package formname encodes hierarchical field positions into the bracketed
// names used by HTML form controls.
//
// A path like Root("content").Index(2).Field("alt_text") encodes to
// "content[2][alt_text]". The same notation is used for list indices, object
// fields and tagged-union markers, so a submitted form parses back into the
// original tree shape with pkg/qs.
package formname
