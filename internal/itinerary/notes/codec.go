// Package notes converts between itinerary records and the plain-text session
// notes field. Notes written before itineraries existed have no header and are
// returned as freeform text.
package notes

import (
	"strings"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/store"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/templates"
)

// Parsed is the result of Codec.Parse
type Parsed struct {
	Data            domain.ItineraryData
	AdditionalNotes string
	// Recognized is false when no separator or header was found
	Recognized bool
}

// Codec is the note converter of one booking mode
type Codec struct {
	layout layout
}

// Mode returns the booking mode of the codec
func (c *Codec) Mode() domain.Mode {
	return c.layout.mode
}

// Header returns the mode header line
func (c *Codec) Header() string {
	return c.layout.header
}

// Format renders freeform notes followed by the itinerary block
func (c *Codec) Format(data domain.ItineraryData, freeform string) string {
	var b strings.Builder

	if notes := strings.TrimSpace(freeform); notes != "" {
		b.WriteString(notes)
		b.WriteString("\n\n")
	}
	b.WriteString(Separator)
	b.WriteString("\n")
	b.WriteString(c.layout.header)

	for _, line := range c.layout.lines {
		switch line.kind {
		case lineFlag:
			writeInline(&b, line.label, yesNo(data.Flag(line.key)))

		case lineInline:
			if value := singleLine(data.Text(line.key)); value != "" {
				writeInline(&b, line.label, value)
			}

		case lineBlock:
			if value := strings.TrimSpace(data.Text(line.key)); value != "" {
				writeBlock(&b, line.label, value)
			}

		case lineDropoff:
			if data.Flag(line.sameAsKey) {
				writeBlock(&b, line.label, SameAsPickupText)
				continue
			}
			if value := strings.TrimSpace(data.Text(line.key)); value != "" {
				writeBlock(&b, line.label, value)
			}
		}
	}

	return b.String()
}

// Parse splits text at the first separator or header line. Text before it is
// returned as additional notes; the lines after it are scanned for known
// labels. Unknown lines are skipped.
func (c *Codec) Parse(text string) Parsed {
	lines := splitLines(text)

	start := c.findBlock(lines)
	if start < 0 {
		return Parsed{
			Data:            domain.NewItineraryData(),
			AdditionalNotes: text,
		}
	}

	additional := strings.TrimSpace(strings.Join(lines[:start], "\n"))

	body := start + 1
	if strings.TrimSpace(lines[start]) == Separator && body < len(lines) &&
		strings.TrimSpace(lines[body]) == c.layout.header {
		body++
	}

	recovered := c.scan(lines[body:])

	tpl, _ := templates.GetTemplateForMode(c.layout.mode)
	return Parsed{
		Data:            store.Patch(store.Initialize(tpl), recovered),
		AdditionalNotes: additional,
		Recognized:      true,
	}
}

// ExtractAdditionalNotes returns only the freeform part of text
func (c *Codec) ExtractAdditionalNotes(text string) string {
	return c.Parse(text).AdditionalNotes
}

func (c *Codec) findBlock(lines []string) int {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == Separator || trimmed == c.layout.header {
			return i
		}
	}
	return -1
}

// scan reads labels in layout order. A line matching a label at or before the
// last one read belongs to the previous value, as Format never repeats a label.
func (c *Codec) scan(lines []string) domain.ItineraryData {
	data := domain.NewItineraryData()
	last := -1

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}

		idx, rest, ok := c.matchLabel(trimmed, last)
		if !ok {
			if c.sameAsKey() != "" && isSameAsPickup(trimmed) {
				data = data.WithFlag(c.sameAsKey(), true)
			}
			continue
		}
		last = idx
		line := c.layout.lines[idx]

		if line.kind == lineFlag {
			data = data.WithFlag(line.key, store.ParseFlag(rest))
			continue
		}

		value := rest
		if value == "" && (line.kind == lineBlock || line.kind == lineDropoff) {
			var consumed int
			value, consumed = c.readBlock(lines[i+1:], idx)
			i += consumed
		}

		if line.kind == lineDropoff && isSameAsPickup(value) {
			data = data.WithFlag(line.sameAsKey, true)
			continue
		}
		data = data.WithText(line.key, value)
	}

	return data
}

// readBlock collects value lines up to the next label placed after the
// label at index after
func (c *Codec) readBlock(lines []string, after int) (string, int) {
	collected := make([]string, 0)
	consumed := 0

	for _, line := range lines {
		if _, _, ok := c.matchLabel(strings.TrimSpace(line), after); ok {
			break
		}
		collected = append(collected, strings.TrimRight(line, " \t\r"))
		consumed++
	}

	return strings.TrimSpace(strings.Join(collected, "\n")), consumed
}

// matchLabel finds the label trimmed starts with among the lines placed
// after index after
func (c *Codec) matchLabel(trimmed string, after int) (int, string, bool) {
	lower := strings.ToLower(trimmed)
	for i := after + 1; i < len(c.layout.lines); i++ {
		prefix := strings.ToLower(c.layout.lines[i].label) + ":"
		if strings.HasPrefix(lower, prefix) {
			return i, strings.TrimSpace(trimmed[len(prefix):]), true
		}
	}
	return 0, "", false
}

func (c *Codec) sameAsKey() domain.FieldKey {
	for _, line := range c.layout.lines {
		if line.kind == lineDropoff {
			return line.sameAsKey
		}
	}
	return ""
}

func isSameAsPickup(s string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(SameAsPickupText))
}

func writeInline(b *strings.Builder, label, value string) {
	b.WriteString("\n")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
}

func writeBlock(b *strings.Builder, label, value string) {
	b.WriteString("\n")
	b.WriteString(label)
	b.WriteString(":\n")
	b.WriteString(value)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// singleLine folds line breaks of an inline value into spaces
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// splitLines keeps the \r of CRLF text so the freeform part comes back as written
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
