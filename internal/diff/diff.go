// Package diff previews how a merge changes the target file.
package diff

import (
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Renderer prints line diffs of formatted documents
type Renderer struct {
	added   *color.Color
	removed *color.Color
}

// NewRenderer creates a Renderer, colouring added and removed lines when
// colors is set.
func NewRenderer(colors bool) *Renderer {
	r := &Renderer{
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.added, r.removed} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Lines returns a line-by-line diff of before and after. Removed lines are
// prefixed "- ", added lines "+ " and unchanged lines two spaces.
func (r *Renderer) Lines(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				out.WriteString(r.added.Sprint("+ " + line))
			case diffmatchpatch.DiffDelete:
				out.WriteString(r.removed.Sprint("- " + line))
			default:
				out.WriteString("  " + line)
			}
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Changed reports whether two JSON documents differ in content. Formatting
// and key order are ignored.
func Changed(before, after []byte) (bool, error) {
	patch, err := jsonpatch.CreateMergePatch(before, after)
	if err != nil {
		return false, fmt.Errorf("failed to compare documents: %w", err)
	}
	return strings.TrimSpace(string(patch)) != "{}", nil
}
