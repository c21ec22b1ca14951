package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// NewlineMarker is appended to every line when the two sides of a textual
// diff disagree on the presence of a trailing newline.
const NewlineMarker = "↵"

// escapedMarker stands for a NewlineMarker found in the compared text.
const escapedMarker = `\u21b5`

// contextLines is the number of unchanged lines kept around each change.
const contextLines = 3

// LineKind tells on which side of a textual diff a line is present.
type LineKind int

const (
	// LineContext is present in both the actual and the expected text.
	LineContext LineKind = iota
	// LineRemoved is present only in the actual text ("got").
	LineRemoved
	// LineAdded is present only in the expected text.
	LineAdded
)

// Prefix returns the unified diff prefix of the kind.
func (k LineKind) Prefix() string {
	switch k {
	case LineRemoved:
		return "-"
	case LineAdded:
		return "+"
	default:
		return " "
	}
}

// Line is one content line of a unified diff.
type Line struct {
	Kind LineKind
	Text string
}

// String renders the line the way a unified diff would print it.
func (l Line) String() string {
	return l.Kind.Prefix() + l.Text
}

// Lines computes the content lines of a unified diff turning actual into
// expected. Headers and hunk locations are not part of the result: the diff
// is meant to be read, never applied.
func Lines(expected, actual string) []Line {
	newline := "\n"
	if strings.HasSuffix(expected, "\n") != strings.HasSuffix(actual, "\n") {
		newline = NewlineMarker + "\n"
		// A marker already present in the text must not read as a newline.
		expected = strings.ReplaceAll(expected, NewlineMarker, escapedMarker)
		actual = strings.ReplaceAll(actual, NewlineMarker, escapedMarker)
	}

	got := splitLines(strings.ReplaceAll(actual, "\n", newline))
	want := splitLines(strings.ReplaceAll(expected, "\n", newline))

	var lines []Line
	matcher := difflib.NewMatcher(got, want)
	for _, group := range matcher.GetGroupedOpCodes(contextLines) {
		for _, op := range group {
			switch op.Tag {
			case 'e':
				lines = appendLines(lines, LineContext, got[op.I1:op.I2])
			case 'd':
				lines = appendLines(lines, LineRemoved, got[op.I1:op.I2])
			case 'i':
				lines = appendLines(lines, LineAdded, want[op.J1:op.J2])
			case 'r':
				lines = appendLines(lines, LineRemoved, got[op.I1:op.I2])
				lines = appendLines(lines, LineAdded, want[op.J1:op.J2])
			}
		}
	}
	return lines
}

func appendLines(lines []Line, kind LineKind, texts []string) []Line {
	for _, text := range texts {
		lines = append(lines, Line{Kind: kind, Text: text})
	}
	return lines
}

// splitLines splits s on newlines, dropping the terminator of the last line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
