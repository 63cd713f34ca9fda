// Package extractor cuts a single key path out of a document.
package extractor

import (
	"github.com/mcncl/jsoncopy/internal/document"
	"github.com/mcncl/jsoncopy/internal/errors"
	"github.com/mcncl/jsoncopy/internal/keypath"
)

// Extract returns a fragment of doc containing only path. The fragment is
// a chain of single-key objects ending in the original value at path, which
// is shared with doc, not copied. An empty path returns doc itself.
//
// A segment missing from an object yields an errors.PathError wrapping
// ErrKeyNotFound; a segment looked up in a non-object yields one wrapping
// ErrInvalidPath. doc is never modified.
func Extract(doc document.Value, path keypath.Path) (document.Value, error) {
	if path.IsEmpty() {
		return doc, nil
	}
	fragment, err := extract(doc, path, path.String())
	if err != nil {
		return nil, err
	}
	return fragment, nil
}

func extract(current document.Value, path keypath.Path, full string) (*document.Object, error) {
	key, rest := path.Head()

	obj, ok := document.AsObject(current)
	if !ok {
		return nil, errors.NewInvalidPath(key, full, document.KindOf(current).String())
	}
	value, found := obj.Get(key)
	if !found {
		return nil, errors.NewKeyNotFound(key, full)
	}

	fragment := document.NewObject()
	if rest.IsEmpty() {
		fragment.Set(key, value)
		return fragment, nil
	}

	child, err := extract(value, rest, full)
	if err != nil {
		return nil, err
	}
	fragment.Set(key, child)
	return fragment, nil
}
