package assembler

import (
	stderrors "errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mcncl/jsoncopy/internal/document"
	"github.com/mcncl/jsoncopy/internal/errors"
	"github.com/mcncl/jsoncopy/internal/parser"
)

// LoadSource reads the source document. Any failure is returned: without a
// source there is nothing to copy.
func LoadSource(path string) (*document.Object, error) {
	obj, err := parser.ParseObjectFile(path)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("source file not found or unreadable: %s", path), err)
	}
	return obj, nil
}

// LoadTarget reads the target document. A target that is missing, empty,
// unreadable, not JSON, or not an object is replaced by an empty object; the
// returned bool reports whether the file was loaded as-is. Failures other
// than a missing file are logged as warnings since the file is about to be
// overwritten.
func LoadTarget(path string, logger logrus.FieldLogger) (*document.Object, bool) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	obj, err := parser.ParseObjectFile(path)
	if err == nil {
		return obj, true
	}

	entry := logger.WithField("file", path)
	if stderrors.Is(err, errors.ErrFileNotFound) {
		entry.Info("target file does not exist, starting from an empty document")
	} else {
		entry.WithError(err).Warn("target file could not be loaded, starting from an empty document")
	}
	return document.NewObject(), false
}
