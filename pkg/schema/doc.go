// Package schema describes entities: named, typed records assembled from
// property kinds. Descriptors are built once at process start through the
// builder API and are immutable afterwards, so request handlers share them
// without synchronization.
//
// All validation happens at construction. A malformed schema is a startup
// error; nothing here fails at request time.
package schema
