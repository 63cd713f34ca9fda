// Package assembler copies selected key paths from a source document into a
// target document.
//
// Every requested path is extracted from the source and the fragments are
// merged together without overwriting, so when two paths overlap the one
// listed first wins. The combined fragment is then merged into the target
// with the caller's force setting. No paths means the whole source is merged.
package assembler

import (
	"github.com/sirupsen/logrus"

	"github.com/mcncl/jsoncopy/internal/document"
	"github.com/mcncl/jsoncopy/internal/errors"
	"github.com/mcncl/jsoncopy/internal/extractor"
	"github.com/mcncl/jsoncopy/internal/keypath"
	"github.com/mcncl/jsoncopy/internal/logging"
	"github.com/mcncl/jsoncopy/internal/merger"
)

// Result is the outcome of a successful run
type Result struct {
	// Document is the merged target
	Document *document.Object
	// Fragment is what was taken from the source before merging into the
	// target. It is the source itself when no paths were given.
	Fragment *document.Object
	// Conflicts lists target values that differed from the source, and
	// which side was kept.
	Conflicts []merger.Conflict
}

// Assembler runs the extract-then-merge flow
type Assembler struct {
	Force  bool
	Logger logrus.FieldLogger
}

// NewAssembler creates an Assembler. A nil logger discards log output.
func NewAssembler(force bool, logger logrus.FieldLogger) *Assembler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Assembler{Force: force, Logger: logger}
}

// Assemble merges the given paths of source into target and returns the new
// target. Neither input is modified.
func Assemble(source, target *document.Object, paths []keypath.Path, force bool) (*document.Object, error) {
	result, err := NewAssembler(force, nil).Run(source, target, paths)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// Run extracts every path from source, then merges the combined fragment
// into target. It fails on the first path that does not resolve, before
// anything is merged into target.
func (a *Assembler) Run(source, target *document.Object, paths []keypath.Path) (*Result, error) {
	fragment := source
	if len(paths) > 0 {
		var err error
		fragment, err = a.collect(source, paths)
		if err != nil {
			return nil, err
		}
	}

	m := merger.NewMerger(a.Force)
	merged := m.Merge(fragment, target)

	for _, conflict := range m.Conflicts() {
		a.Logger.WithFields(logrus.Fields{
			"key":    conflict.Path.String(),
			"source": document.KindOf(conflict.Source).String(),
			"target": document.KindOf(conflict.Target).String(),
		}).Debugf("conflict: %s", conflict.Resolution)
	}
	a.Logger.WithFields(logrus.Fields{
		"keys":      len(merged.Keys()),
		"conflicts": len(m.Conflicts()),
		"force":     a.Force,
	}).Info("merged into target")

	return &Result{
		Document:  merged,
		Fragment:  fragment,
		Conflicts: m.Conflicts(),
	}, nil
}

// collect extracts each path and accumulates the fragments without
// overwriting, so earlier paths take precedence over later ones.
func (a *Assembler) collect(source *document.Object, paths []keypath.Path) (*document.Object, error) {
	accumulated := document.NewObject()
	for _, path := range paths {
		extracted, err := extractor.Extract(source, path)
		if err != nil {
			return nil, errors.NewPathError(path.String(), err)
		}
		fragment, ok := document.AsObject(extracted)
		if !ok {
			// only an empty path can return a non-object, and source is an object
			return nil, errors.NewMergeError("extracted fragment is not an object", errors.ErrNotObject)
		}
		a.Logger.WithField("key", path.String()).Debug("extracted key from source")
		accumulated = merger.Merge(fragment, accumulated, false)
	}
	return accumulated, nil
}
