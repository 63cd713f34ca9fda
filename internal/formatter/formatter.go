package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mcncl/jsoncopy/internal/document"
)

// DefaultIndent is the indentation used for written documents
const DefaultIndent = "    "

// Formatter renders documents as JSON text in document order
type Formatter struct {
	// Indent is repeated once per nesting level. An empty Indent produces
	// compact single-line output.
	Indent string
	// EscapeHTML escapes <, > and & inside strings. Non-ASCII characters are
	// never escaped.
	EscapeHTML bool
}

// NewFormatter creates a new Formatter with four-space indentation
func NewFormatter() *Formatter {
	return &Formatter{Indent: DefaultIndent}
}

// Format returns v as JSON followed by a newline
func (f *Formatter) Format(v document.Value) ([]byte, error) {
	var compact bytes.Buffer
	if err := f.encode(&compact, v); err != nil {
		return nil, err
	}

	if f.Indent == "" {
		compact.WriteByte('\n')
		return compact.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", f.Indent); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (f *Formatter) encode(buf *bytes.Buffer, v document.Value) error {
	switch val := v.(type) {
	case *document.Object:
		buf.WriteByte('{')
		var err error
		first := true
		val.Range(func(key string, item document.Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err = f.encodeString(buf, key); err != nil {
				return false
			}
			buf.WriteByte(':')
			err = f.encode(buf, item)
			return err == nil
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
	case document.Array:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := f.encode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case document.String:
		return f.encodeString(buf, string(val))
	case document.Number:
		if !json.Valid([]byte(val)) {
			return fmt.Errorf("invalid number literal %q", string(val))
		}
		buf.WriteString(string(val))
	case document.Bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case document.Null, nil:
		buf.WriteString("null")
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
	return nil
}

// encodeString quotes s. json.Encoder always escapes U+2028 and U+2029, so
// the string is encoded in pieces around them and they are written raw.
func (f *Formatter) encodeString(buf *bytes.Buffer, s string) error {
	buf.WriteByte('"')
	for {
		i := strings.IndexAny(s, lineSeparators)
		piece := s
		if i >= 0 {
			piece = s[:i]
		}
		if err := f.encodePiece(buf, piece); err != nil {
			return err
		}
		if i < 0 {
			break
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		buf.WriteString(s[i : i+size])
		s = s[i+size:]
	}
	buf.WriteByte('"')
	return nil
}

const lineSeparators = "\u2028\u2029"

// encodePiece writes the escaped contents of s without surrounding quotes
func (f *Formatter) encodePiece(buf *bytes.Buffer, s string) error {
	if s == "" {
		return nil
	}
	var quoted bytes.Buffer
	enc := json.NewEncoder(&quoted)
	enc.SetEscapeHTML(f.EscapeHTML)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	text := strings.TrimSuffix(quoted.String(), "\n")
	buf.WriteString(text[1 : len(text)-1])
	return nil
}

// WriteFile formats v and replaces the contents of path with it. An existing
// file keeps its permissions.
func (f *Formatter) WriteFile(path string, v document.Value) error {
	data, err := f.Format(v)
	if err != nil {
		return err
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}
