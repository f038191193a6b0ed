// Package qs parses flat, bracket-keyed query strings into nested values.
//
// A body like
//
//	title=Hello&content[0][type]=text&content[0][data]=Hi
//
// parses into an Object tree whose shape mirrors the bracket structure:
// objects for named segments, lists for numeric segments, strings at the
// leaves. This is the inverse of the name encoding in pkg/formname, so a
// rendered form round-trips through submission back into the same tree.
package qs
