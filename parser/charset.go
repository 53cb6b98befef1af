// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/charset.go
// Summary: Character set selection and the DEC special graphics table.
// Usage: Applied by placeChar before a rune reaches the grid.

package parser

// Charset identifies the active character translation table.
type Charset int

const (
	// CharsetASCII passes runes through unchanged.
	CharsetASCII Charset = iota
	// CharsetDECGraphics maps a fixed alphabet to line-drawing glyphs.
	CharsetDECGraphics
)

// decGraphics is the VT100 special graphics table for 0x60-0x7e.
// The table is the one rxvt and st ship; entries left zero pass through.
var decGraphics = [31]rune{
	'◆', '▒', '␉', '␌', '␍', '␊', '°', '±', // ` - g
	'␤', '␋', '┘', '┐', '┌', '└', '┼', '⎺', // h - o
	'⎻', '─', '⎼', '⎽', '├', '┤', '┴', '┬', // p - w
	'│', '≤', '≥', 'π', '≠', '£', '·', // x - ~
}

// translate maps a rune through the active character set.
func (cs Charset) translate(r rune) rune {
	if cs == CharsetDECGraphics && r >= '`' && r <= '~' {
		if g := decGraphics[r-'`']; g != 0 {
			return g
		}
	}
	return r
}
