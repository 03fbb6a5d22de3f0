package render

import "strings"

// TextDisplay is an in-memory Display. Each Append starts a new line.
type TextDisplay struct {
	lines []string
}

// NewTextDisplay returns an empty display.
func NewTextDisplay() *TextDisplay {
	return &TextDisplay{}
}

func (d *TextDisplay) Clear() { d.lines = d.lines[:0] }

func (d *TextDisplay) Append(text string) { d.lines = append(d.lines, text) }

func (d *TextDisplay) SetText(text string) { d.lines = append(d.lines[:0], text) }

// Text returns the current content.
func (d *TextDisplay) Text() string { return strings.Join(d.lines, "\n") }
