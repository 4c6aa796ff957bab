// Package diffview renders a character alignment of two sequences for
// terminal display.
package diffview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// View is a three-line alignment. Mid holds '|' under matched columns.
type View struct {
	Top, Mid, Bottom string
	Matches          int
	Distance         int
}

// Align diffs a against b character by character and lays the edit script
// out in columns, with '-' marking gaps.
func Align(a, b string) View {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMain(a, b, false)

	var top, mid, bot strings.Builder
	matches := 0
	for _, d := range diffs {
		n := len(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			top.WriteString(d.Text)
			mid.WriteString(strings.Repeat("|", n))
			bot.WriteString(d.Text)
			matches += n
		case diffmatchpatch.DiffDelete:
			top.WriteString(d.Text)
			mid.WriteString(strings.Repeat(" ", n))
			bot.WriteString(strings.Repeat("-", n))
		case diffmatchpatch.DiffInsert:
			top.WriteString(strings.Repeat("-", n))
			mid.WriteString(strings.Repeat(" ", n))
			bot.WriteString(d.Text)
		}
	}
	return View{
		Top:      top.String(),
		Mid:      mid.String(),
		Bottom:   bot.String(),
		Matches:  matches,
		Distance: dmp.DiffLevenshtein(diffs),
	}
}

// Lines wraps the view into blocks of at most width columns, separated by a
// blank line. A width below 1 disables wrapping.
func (v View) Lines(width int) []string {
	n := len(v.Top)
	if width < 1 || width >= n {
		return []string{v.Top, v.Mid, v.Bottom}
	}
	var out []string
	for i := 0; i < n; i += width {
		j := min(i+width, n)
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, v.Top[i:j], v.Mid[i:j], v.Bottom[i:j])
	}
	return out
}
