package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors" // Standard errors package

	"github.com/mcncl/jsoncopy/internal/document"
	"github.com/mcncl/jsoncopy/internal/errors" // Custom errors package
)

// Parse decodes a single JSON value from reader. Object keys keep the order
// they appear in the input and numbers keep their original text. When a key
// repeats, the last value wins and the key keeps its first position.
func Parse(reader io.Reader) (document.Value, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Ensure numbers are read as json.Number

	tok, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) { // nothing but whitespace before EOF
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return nil, decodeError(err)
	}

	root, err := parseValue(decoder, tok)
	if err != nil {
		return nil, decodeError(err)
	}

	// Anything other than EOF after the root value is either a second value
	// or garbage.
	if _, err := decoder.Token(); err == nil {
		return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !stderrors.Is(err, io.EOF) {
		return nil, errors.NewParsingError("invalid trailing data after first JSON value", err)
	}

	return root, nil
}

func parseValue(decoder *json.Decoder, tok json.Token) (document.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(decoder)
		case '[':
			return parseArray(decoder)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case string:
		return document.String(t), nil
	case json.Number:
		return document.Number(t.String()), nil
	case bool:
		return document.Bool(t), nil
	case nil:
		return document.Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(decoder *json.Decoder) (*document.Object, error) {
	obj := document.NewObject()
	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
		}

		valueTok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		value, err := parseValue(decoder, valueTok)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	// consume the closing '}'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(decoder *json.Decoder) (document.Array, error) {
	arr := document.Array{}
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		value, err := parseValue(decoder, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	// consume the closing ']'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// decodeError maps decoder failures onto parsing errors
func decodeError(err error) error {
	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
			errors.ErrInvalidJSON,
		)
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (document.Value, error) {
	// An empty reader gives io.EOF, but whitespace-only strings are reported
	// the same way for a clearer message.
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (document.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		// Check if the file doesn't exist
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		_ = file.Close()
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.IsDir() {
		return nil, errors.NewInputError(
			fmt.Sprintf("'%s' is a directory", filePath),
			errors.ErrInvalidFilePath,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	doc, err := Parse(file)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to parse '%s'", filePath), err)
	}
	return doc, nil
}

// ParseObjectFile parses a file whose root must be a JSON object
func ParseObjectFile(filePath string) (*document.Object, error) {
	doc, err := ParseFile(filePath)
	if err != nil {
		return nil, err
	}
	obj, ok := document.AsObject(doc)
	if !ok {
		return nil, errors.NewInputError(
			fmt.Sprintf("file '%s' holds a JSON %s, not an object", filePath, document.KindOf(doc)),
			errors.ErrNotObject,
		)
	}
	return obj, nil
}
