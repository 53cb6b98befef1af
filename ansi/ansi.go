// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ansi/ansi.go
// Summary: Escape-sequence generation - styled text back into VT100 bytes.
// Usage: Render for one-shot output, Writer for streams with style tracking.
// Notes: The inverse of the parser package; round-tripping generated output
//        through a Performer reproduces the same cell styles.

package ansi

import (
	"strconv"

	"github.com/framegrace/texelvt/parser"
)

// Style is the full SGR state applied to a span of text.
type Style struct {
	FG   parser.Color
	BG   parser.Color
	Attr parser.Attribute
}

// DefaultStyle is the terminal's reset state.
var DefaultStyle = Style{FG: parser.DefaultFG, BG: parser.DefaultBG}

// IsDefault reports whether the style equals the reset state.
func (s Style) IsDefault() bool { return s == DefaultStyle }

const (
	csi   = "\x1b["
	reset = "\x1b[0m"
)

// attrCodes pairs each attribute bit with its SGR set and clear codes.
var attrCodes = []struct {
	bit        parser.Attribute
	set, clear int
}{
	{parser.AttrBold, 1, 22},
	{parser.AttrDim, 2, 22},
	{parser.AttrItalic, 3, 23},
	{parser.AttrUnderline, 4, 24},
	{parser.AttrBlink, 5, 25},
	{parser.AttrReverse, 7, 27},
	{parser.AttrHidden, 8, 28},
	{parser.AttrStrikethrough, 9, 29},
}

// Render produces the byte sequence for text in the given style: the SGR
// prefix reaching the style from default, the text itself, and a closing
// reset. An unstyled span renders as the bare text.
func Render(text string, style Style) []byte {
	return AppendRender(nil, text, style)
}

// AppendRender appends Render's output to dst and returns the extended
// slice, so callers building frames can reuse one buffer.
func AppendRender(dst []byte, text string, style Style) []byte {
	if style.IsDefault() {
		return append(dst, text...)
	}
	dst = appendTransition(dst, DefaultStyle, style)
	dst = append(dst, text...)
	return append(dst, reset...)
}

// appendTransition appends the minimal SGR sequence moving from one style to
// another. Equal styles append nothing.
func appendTransition(dst []byte, from, to Style) []byte {
	if from == to {
		return dst
	}
	// Falling back to default colors mid-stream has no dedicated code for
	// every case, so a full reset followed by a rebuild from default is both
	// minimal and always correct.
	if (to.FG == parser.DefaultFG && from.FG != to.FG) ||
		(to.BG == parser.DefaultBG && from.BG != to.BG) {
		dst = append(dst, reset...)
		from = DefaultStyle
		if from == to {
			return dst
		}
	}

	dst = append(dst, csi...)
	first := len(dst)

	sep := func() {
		if len(dst) > first {
			dst = append(dst, ';')
		}
	}

	// Bold and dim share clear code 22, which drops both; emit it once and
	// treat both as cleared so the loop below re-asserts any survivor.
	if from.Attr&^to.Attr&(parser.AttrBold|parser.AttrDim) != 0 {
		sep()
		dst = strconv.AppendInt(dst, 22, 10)
		from.Attr &^= parser.AttrBold | parser.AttrDim
	}
	for _, ac := range attrCodes {
		was, want := from.Attr&ac.bit != 0, to.Attr&ac.bit != 0
		if was == want {
			continue
		}
		sep()
		if want {
			dst = strconv.AppendInt(dst, int64(ac.set), 10)
		} else {
			dst = strconv.AppendInt(dst, int64(ac.clear), 10)
		}
	}
	if from.FG != to.FG {
		sep()
		dst = appendColor(dst, to.FG, false)
	}
	if from.BG != to.BG {
		sep()
		dst = appendColor(dst, to.BG, true)
	}
	return append(dst, 'm')
}

// appendColor appends the SGR parameter run selecting one color.
func appendColor(dst []byte, c parser.Color, background bool) []byte {
	base := 30
	if background {
		base = 40
	}
	switch c.Mode {
	case parser.ColorModeDefault:
		dst = strconv.AppendInt(dst, int64(base+9), 10)
	case parser.ColorModeStandard:
		if c.Value < 8 {
			dst = strconv.AppendInt(dst, int64(base+int(c.Value)), 10)
		} else { // bright variants live at 90/100
			dst = strconv.AppendInt(dst, int64(base+60+int(c.Value)-8), 10)
		}
	case parser.ColorMode256:
		dst = strconv.AppendInt(dst, int64(base+8), 10)
		dst = append(dst, ";5;"...)
		dst = strconv.AppendInt(dst, int64(c.Value), 10)
	case parser.ColorModeRGB:
		dst = strconv.AppendInt(dst, int64(base+8), 10)
		dst = append(dst, ";2;"...)
		dst = strconv.AppendInt(dst, int64(c.R), 10)
		dst = append(dst, ';')
		dst = strconv.AppendInt(dst, int64(c.G), 10)
		dst = append(dst, ';')
		dst = strconv.AppendInt(dst, int64(c.B), 10)
	}
	return dst
}
