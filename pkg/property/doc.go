// Package property implements the polymorphic rendering and decoding of
// entity fields: scalars, optionals, lists, tagged unions and file
// attachments.
//
// A property kind bundles three capabilities. Input renders an HTML form
// control bound to an encoded name path, Column renders a read-only cell for
// the list page, and the codec methods convert submitted form trees and JSON
// values back into typed Go values. The kind set is open: any type
// implementing these interfaces can be registered in a schema alongside the
// built-ins.
//
// Rendering is pure formatting and never fails; malformed schemas are
// rejected at registration time by pkg/schema.
package property
