// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/cell.go
// Summary: Cell, color and attribute types for the offscreen buffer.
// Usage: Consumed by the terminal core when decoding VT sequences.
// Notes: Keeps parsing concerns isolated from rendering.

package parser

// Attribute is a bitmask of SGR text attributes.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	names := []struct {
		bit  Attribute
		name string
	}{
		{AttrBold, "bold"},
		{AttrDim, "dim"},
		{AttrItalic, "italic"},
		{AttrUnderline, "underline"},
		{AttrBlink, "blink"},
		{AttrReverse, "reverse"},
		{AttrHidden, "hidden"},
		{AttrStrikethrough, "strikethrough"},
	}
	var result string
	for _, n := range names {
		if a&n.bit == 0 {
			continue
		}
		if result != "" {
			result += "|"
		}
		result += n.name
	}
	if result == "" {
		return "unknown"
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // Default terminal color
	ColorModeStandard                  // The basic 16 ANSI colors
	ColorMode256                       // 256-color palette
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Holds the color code for Standard (0-15) and 256-mode (0-255)
	R, G, B uint8 // Holds the values for RGB mode
}

// Predefined default colors for convenience.
var (
	DefaultFG = Color{Mode: ColorModeDefault}
	DefaultBG = Color{Mode: ColorModeDefault}
)

// CellKind distinguishes the three states a grid coordinate can be in.
type CellKind uint8

const (
	// CellVoid marks a cell that has never been painted.
	CellVoid CellKind = iota
	// CellText holds a displayable rune.
	CellText
	// CellSpacer occupies the trailing column of a wide (2-column) rune.
	CellSpacer
)

// Cell represents a single character cell on the screen.
type Cell struct {
	Kind CellKind
	Rune rune
	FG   Color
	BG   Color
	Attr Attribute
}

// IsBlank reports whether the cell displays as empty space.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case CellVoid:
		return true
	case CellText:
		return c.Rune == ' ' || c.Rune == 0
	}
	return false
}

// Pos is a zero-based (row, column) grid coordinate.
type Pos struct {
	Row, Col int
}
