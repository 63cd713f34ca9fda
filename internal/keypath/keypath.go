// Package keypath parses dotted key paths such as "db.primary.host".
//
// Segments are separated by '.' with no escaping, so a key that itself
// contains a dot cannot be addressed. Empty segments ("a..b", "") are kept as
// empty-string keys rather than rejected.
package keypath

import (
	"strings"
)

// Separator splits a dotted key into segments.
const Separator = "."

// Path is an ordered list of object keys. An empty Path addresses the whole
// document.
type Path []string

// Parse splits a dotted key into a Path. Surrounding whitespace is trimmed.
func Parse(key string) Path {
	return Path(strings.Split(strings.TrimSpace(key), Separator))
}

// ParseAll parses every key in keys. Each value is one key, so a key may
// contain inner spaces, and a blank value parses to the empty key.
func ParseAll(keys []string) []Path {
	paths := make([]Path, 0, len(keys))
	for _, key := range keys {
		paths = append(paths, Parse(key))
	}
	return paths
}

// String joins the segments back into dotted form
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// IsEmpty reports whether p addresses the whole document
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Head returns the first segment and the remaining path
func (p Path) Head() (string, Path) {
	if len(p) == 0 {
		return "", nil
	}
	return p[0], p[1:]
}
