package qs

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// DefaultMaxDepth is the default bracket nesting limit.
const DefaultMaxDepth = 5

// Node is one value in a parsed tree: String, Object or List.
type Node interface {
	node()
}

// String is a leaf value.
type String string

// Object maps field names to child nodes.
type Object map[string]Node

// List is an ordered sequence of child nodes.
type List []Node

func (String) node() {}
func (Object) node() {}
func (List) node()   {}

// ParseOption configures Parse.
type ParseOption func(*parser)

// WithMaxDepth overrides the bracket nesting limit.
func WithMaxDepth(n int) ParseOption {
	return func(p *parser) {
		p.maxDepth = n
	}
}

type parser struct {
	maxDepth int
}

// Parse decodes a bracket-keyed query string into an Object tree.
//
// Keys and values are percent-decoded before bracket splitting, matching the
// encoding produced by Buffer. Duplicate scalar keys are resolved
// first-write-wins. A group whose keys are all numeric becomes a List; a gap
// in the indices is an error.
func Parse(data []byte, opts ...ParseOption) (Object, error) {
	p := &parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}

	root := Object{}
	for pair := range strings.SplitSeq(string(data), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidKey, rawKey, err)
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			return nil, fmt.Errorf("%w: value for %q: %v", ErrInvalidKey, key, err)
		}
		segments, err := splitKey(key)
		if err != nil {
			return nil, err
		}
		if len(segments) > p.maxDepth+1 {
			return nil, fmt.Errorf("%w: %q", ErrDepthExceeded, key)
		}
		if err := insert(root, key, segments, val); err != nil {
			return nil, err
		}
	}
	return normalize(root)
}

// splitKey splits "a[b][0][c]" into ["a" "b" "0" "c"].
func splitKey(key string) ([]string, error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		if strings.IndexByte(key, ']') >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		if key == "" {
			return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
		}
		return []string{key}, nil
	}
	if open == 0 || strings.IndexByte(key[:open], ']') >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	segments := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		seg := rest[1:end]
		if seg == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptySegment, key)
		}
		segments = append(segments, seg)
		rest = rest[end+1:]
	}
	return segments, nil
}

// insert walks/creates intermediate objects and places the scalar at the
// leaf. Numeric segments stay object keys here; normalize converts them.
func insert(root Object, key string, segments []string, val string) error {
	cur := root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := cur[seg]
		if !ok {
			next := Object{}
			cur[seg] = next
			cur = next
			continue
		}
		next, ok := child.(Object)
		if !ok {
			return fmt.Errorf("%w: %q", ErrKeyConflict, key)
		}
		cur = next
	}
	last := segments[len(segments)-1]
	switch cur[last].(type) {
	case nil:
		cur[last] = String(val)
	case String:
		// first-write-wins on duplicate keys
	default:
		return fmt.Errorf("%w: %q", ErrKeyConflict, key)
	}
	return nil
}

// normalize converts all-numeric objects into dense lists, recursively.
func normalize(o Object) (Object, error) {
	for k, v := range o {
		child, ok := v.(Object)
		if !ok {
			continue
		}
		n, err := normalizeNode(child)
		if err != nil {
			return nil, fmt.Errorf("%v in %q", err, k)
		}
		o[k] = n
	}
	return o, nil
}

func normalizeNode(o Object) (Node, error) {
	indices := make([]int, 0, len(o))
	numeric := true
	for k := range o {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			numeric = false
			break
		}
		indices = append(indices, i)
	}
	if !numeric || len(o) == 0 {
		return normalize(o)
	}
	sort.Ints(indices)
	list := make(List, 0, len(indices))
	for want, got := range indices {
		if got != want {
			return nil, ErrSparseIndex
		}
		child := o[strconv.Itoa(got)]
		if obj, ok := child.(Object); ok {
			n, err := normalizeNode(obj)
			if err != nil {
				return nil, err
			}
			child = n
		}
		list = append(list, child)
	}
	return list, nil
}
