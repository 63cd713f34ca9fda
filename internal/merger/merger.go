// Package merger combines two JSON objects under a keep-or-overwrite policy.
package merger

import (
	"github.com/mcncl/jsoncopy/internal/document"
	"github.com/mcncl/jsoncopy/internal/keypath"
)

// Resolution records which side won a conflicting key
type Resolution string

const (
	KeptTarget Resolution = "kept target"
	TookSource Resolution = "took source"
)

// Conflict describes a key present on both sides with differing values that
// could not be merged structurally.
type Conflict struct {
	Path       keypath.Path
	Source     document.Value
	Target     document.Value
	Resolution Resolution
}

// Merger merges source objects into target objects. With Force unset every
// value already in the target survives; with Force set every source value
// overwrites the corresponding target value.
type Merger struct {
	Force     bool
	conflicts []Conflict
}

// NewMerger creates a new Merger with the given overwrite policy
func NewMerger(force bool) *Merger {
	return &Merger{Force: force}
}

// Merge is the pure form of (*Merger).Merge
func Merge(source, target *document.Object, force bool) *document.Object {
	return NewMerger(force).Merge(source, target)
}

// Merge returns a new object holding target's entries, in target's order,
// followed by keys only present in source, in source's order. Where both
// sides hold an object under the same key the two are merged recursively;
// any other clash is settled by the Force flag, replacing whole values.
// Neither argument is modified.
func (m *Merger) Merge(source, target *document.Object) *document.Object {
	return m.merge(nil, source, target)
}

// Conflicts returns the clashes seen by every Merge call on m so far
func (m *Merger) Conflicts() []Conflict {
	return m.conflicts
}

func (m *Merger) merge(path keypath.Path, source, target *document.Object) *document.Object {
	merged := target.Clone()

	source.Range(func(key string, value document.Value) bool {
		existing, exists := merged.Get(key)
		srcObj, srcIsObj := document.AsObject(value)
		dstObj, dstIsObj := document.AsObject(existing)

		switch {
		case exists && srcIsObj && dstIsObj:
			merged.Set(key, m.merge(childPath(path, key), srcObj, dstObj))
		case !exists:
			merged.Set(key, value)
		case m.Force:
			m.record(childPath(path, key), value, existing, TookSource)
			merged.Set(key, value)
		default:
			m.record(childPath(path, key), value, existing, KeptTarget)
		}
		return true
	})

	return merged
}

func (m *Merger) record(path keypath.Path, source, target document.Value, resolution Resolution) {
	if document.Equal(source, target) {
		return
	}
	m.conflicts = append(m.conflicts, Conflict{
		Path:       path,
		Source:     source,
		Target:     target,
		Resolution: resolution,
	})
}

func childPath(parent keypath.Path, key string) keypath.Path {
	path := make(keypath.Path, len(parent)+1)
	copy(path, parent)
	path[len(parent)] = key
	return path
}
