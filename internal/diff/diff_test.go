package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Lines(t *testing.T) {
	before := "{\n    \"a\": 1,\n    \"b\": 2\n}\n"
	after := "{\n    \"a\": 1,\n    \"b\": 3,\n    \"c\": 4\n}\n"

	got := NewRenderer(false).Lines(before, after)

	expected := "  {\n" +
		"      \"a\": 1,\n" +
		"-     \"b\": 2\n" +
		"+     \"b\": 3,\n" +
		"+     \"c\": 4\n" +
		"  }\n"
	assert.Equal(t, expected, got)
}

func TestRenderer_LinesIdentical(t *testing.T) {
	doc := "{\n    \"a\": 1\n}\n"
	got := NewRenderer(false).Lines(doc, doc)
	assert.Equal(t, "  {\n      \"a\": 1\n  }\n", got)
}

func TestRenderer_LinesFromEmpty(t *testing.T) {
	got := NewRenderer(false).Lines("", "{}\n")
	assert.Equal(t, "+ {}\n", got)
}

func TestRenderer_Colors(t *testing.T) {
	got := NewRenderer(true).Lines("a\n", "b\n")
	assert.Contains(t, got, "\x1b[31m- a")
	assert.Contains(t, got, "\x1b[32m+ b")

	plain := NewRenderer(false).Lines("a\n", "b\n")
	assert.NotContains(t, plain, "\x1b[")
}

func TestChanged(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		expected      bool
	}{
		{"identical", `{"a": 1}`, `{"a": 1}`, false},
		{"formatting only", `{"a":1,"b":{"c":true}}`, "{\n    \"b\": {\"c\": true},\n    \"a\": 1\n}", false},
		{"value changed", `{"a": 1}`, `{"a": 2}`, true},
		{"key added", `{}`, `{"a": 1}`, true},
		{"nested key added", `{"a": {}}`, `{"a": {"b": 1}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed, err := Changed([]byte(tt.before), []byte(tt.after))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, changed)
		})
	}
}

func TestChanged_InvalidJSON(t *testing.T) {
	_, err := Changed([]byte(`{`), []byte(`{}`))
	assert.Error(t, err)
}
