package diff

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Discrepancy is the report of one failed comparison.
type Discrepancy interface {
	// Render returns the discrepancy styled for a terminal.
	Render() string
	// String returns the discrepancy as plain text, for machine-readable reports.
	String() string
}

// ValueDiff reports two scalar values that differ.
type ValueDiff struct {
	Name     string
	Expected any
	Actual   any
}

func (d ValueDiff) title() string {
	return d.Name + " differ"
}

// Render implements Discrepancy.
func (d ValueDiff) Render() string {
	body := "Expected " + expectedStyle.Render(formatValue(d.Expected)) +
		", got " + actualStyle.Render(formatValue(d.Actual))
	return panel(d.title(), body)
}

// String implements Discrepancy.
func (d ValueDiff) String() string {
	return fmt.Sprintf("%s\nExpected %s, got %s", d.title(), formatValue(d.Expected), formatValue(d.Actual))
}

func formatValue(v any) string {
	return Escape(fmt.Sprint(v))
}

// TextualDiff reports two multi-line texts that differ, shown as a unified diff
// from the actual text to the expected one.
type TextualDiff struct {
	Name     string
	Expected string
	Actual   string
}

func (d TextualDiff) title() string {
	return d.Name + " differ"
}

// Lines returns the content lines of the diff.
func (d TextualDiff) Lines() []Line {
	return Lines(d.Expected, d.Actual)
}

// Render implements Discrepancy.
func (d TextualDiff) Render() string {
	lines := d.Lines()

	width := runewidth.StringWidth("+++ expected")
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		text := Escape(line.Text)
		if w := runewidth.StringWidth(text) + 1; w > width {
			width = w
		}
		switch line.Kind {
		case LineRemoved:
			rendered = append(rendered, removedPrefixStyle.Render("-")+removedTextStyle.Render(text))
		case LineAdded:
			rendered = append(rendered, addedPrefixStyle.Render("+")+addedTextStyle.Render(text))
		default:
			rendered = append(rendered, " "+text)
		}
	}

	var b strings.Builder
	b.WriteString(actualStyle.Render("--- got"))
	b.WriteString("\n")
	b.WriteString(expectedStyle.Render("+++ expected"))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", width)))
	for _, line := range rendered {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return panel(d.title(), b.String())
}

// String implements Discrepancy.
func (d TextualDiff) String() string {
	var b strings.Builder
	b.WriteString(d.title())
	b.WriteString("\n--- got\n+++ expected")
	for _, line := range d.Lines() {
		b.WriteString("\n")
		b.WriteString(line.Kind.Prefix())
		b.WriteString(Escape(line.Text))
	}
	return b.String()
}

// Message is a free-form report produced by the engine itself, such as a
// missing binary or an exceeded timeout. Format holds a single %s verb that
// is replaced by the emphasized Subject.
type Message struct {
	Format  string
	Subject string
}

// NewMessage returns a Message emphasizing subject inside format.
func NewMessage(format, subject string) Message {
	return Message{Format: format, Subject: subject}
}

// Render implements Discrepancy.
func (m Message) Render() string {
	return fmt.Sprintf(m.Format, emphasisStyle.Render(Escape(m.Subject)))
}

// String implements Discrepancy.
func (m Message) String() string {
	return fmt.Sprintf(m.Format, m.Subject)
}
