package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineStrings(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.String())
	}
	return out
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		want     []string
	}{
		{
			name:     "identical texts",
			expected: "a\nb\n",
			actual:   "a\nb\n",
			want:     []string{},
		},
		{
			name:     "one changed line",
			expected: "a\nb\n",
			actual:   "a\nc\n",
			want:     []string{" a", "-c", "+b"},
		},
		{
			name:     "single line output",
			expected: "bye\n",
			actual:   "hi\n",
			want:     []string{"-hi", "+bye"},
		},
		{
			name:     "missing trailing newline is made visible",
			expected: "abc",
			actual:   "abc\n",
			want:     []string{"-abc" + NewlineMarker, "+abc"},
		},
		{
			name:     "newline marker on every line",
			expected: "a\nb\n",
			actual:   "a\nb",
			want:     []string{" a" + NewlineMarker, "-b", "+b" + NewlineMarker},
		},
		{
			name:     "literal marker in the text is escaped",
			expected: "a" + NewlineMarker,
			actual:   "a\n",
			want:     []string{"-a" + NewlineMarker, `+a\u21b5`},
		},
		{
			name:     "literal marker kept when newlines agree",
			expected: "a" + NewlineMarker + "\n",
			actual:   "b\n",
			want:     []string{"-b", "+a" + NewlineMarker},
		},
		{
			name:     "empty actual",
			expected: "x\n",
			actual:   "",
			want:     []string{"+x" + NewlineMarker},
		},
		{
			name:     "context is limited to three lines",
			expected: "1\n2\n3\n4\n5\n6\nX\n",
			actual:   "1\n2\n3\n4\n5\n6\n7\n",
			want:     []string{" 4", " 5", " 6", "-7", "+X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineStrings(Lines(tt.expected, tt.actual)))
		})
	}
}

func TestTextualDiff_LiteralMarkerMismatch(t *testing.T) {
	d := TextualDiff{Name: "Standard outputs", Expected: "a" + NewlineMarker, Actual: "a\n"}

	require.Len(t, d.Lines(), 2)
	assert.Contains(t, d.String(), `+a\u21b5`)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "plain text with spaces", Escape("plain text with spaces"))
	assert.Equal(t, "héllo ✔", Escape("héllo ✔"))
	assert.Equal(t, `a\tb`, Escape("a\tb"))
	assert.Equal(t, `\x1b[31mred`, Escape("\x1b[31mred"))
	assert.Equal(t, `line\r`, Escape("line\r"))
}

func TestValueDiff(t *testing.T) {
	d := ValueDiff{Name: "Return codes", Expected: 0, Actual: 1}

	assert.Equal(t, "Return codes differ\nExpected 0, got 1", d.String())

	rendered := d.Render()
	assert.Contains(t, rendered, "Return codes differ")
	assert.Contains(t, rendered, "Expected ")
	assert.Contains(t, rendered, ", got ")
}

func TestTextualDiff(t *testing.T) {
	d := TextualDiff{Name: "Standard outputs", Expected: "bye\n", Actual: "hi\n"}

	assert.Equal(t, "Standard outputs differ\n--- got\n+++ expected\n-hi\n+bye", d.String())

	rendered := d.Render()
	assert.Contains(t, rendered, "Standard outputs differ")
	assert.Contains(t, rendered, "--- got")
	assert.Contains(t, rendered, "+++ expected")
	assert.Contains(t, rendered, "hi")
	assert.Contains(t, rendered, "bye")
}

func TestTextualDiff_EscapesControlCharacters(t *testing.T) {
	d := TextualDiff{Name: "Standard errors", Expected: "ok\n", Actual: "\x1b[2Jok\n"}

	assert.NotContains(t, d.String(), "\x1b")
	assert.NotContains(t, d.Render(), "\x1b[2J")
	assert.Contains(t, d.String(), `-\x1b[2Jok`)
}

func TestMessage(t *testing.T) {
	m := NewMessage("No such file or directory: %s", "./missing")
	assert.Equal(t, "No such file or directory: ./missing", m.String())
	require.Contains(t, m.Render(), "No such file or directory: ")
	assert.Contains(t, m.Render(), "./missing")

	timeout := NewMessage("%s timeout exceeded.", "0.5s")
	assert.Equal(t, "0.5s timeout exceeded.", timeout.String())
}
