// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_sgr.go
// Summary: SGR (Select Graphic Rendition) - text attributes and colors.
// Usage: Part of the OffscreenBuffer operation set.

package parser

// handleSGR processes SGR escape sequences: attribute on/off pairs, the
// 16 standard colors, the 256-color palette and 24-bit RGB.
func (b *OffscreenBuffer) handleSGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == 0:
			b.ResetAttributes()
		case p == 1:
			b.SetAttribute(AttrBold)
		case p == 2:
			b.SetAttribute(AttrDim)
		case p == 3:
			b.SetAttribute(AttrItalic)
		case p == 4:
			b.SetAttribute(AttrUnderline)
		case p == 5:
			b.SetAttribute(AttrBlink)
		case p == 7:
			b.SetAttribute(AttrReverse)
		case p == 8:
			b.SetAttribute(AttrHidden)
		case p == 9:
			b.SetAttribute(AttrStrikethrough)
		case p == 22:
			b.ClearAttribute(AttrBold | AttrDim)
		case p == 23:
			b.ClearAttribute(AttrItalic)
		case p == 24:
			b.ClearAttribute(AttrUnderline)
		case p == 25:
			b.ClearAttribute(AttrBlink)
		case p == 27:
			b.ClearAttribute(AttrReverse)
		case p == 28:
			b.ClearAttribute(AttrHidden)
		case p == 29:
			b.ClearAttribute(AttrStrikethrough)
		case p >= 30 && p <= 37:
			b.currentFG = Color{Mode: ColorModeStandard, Value: uint8(p - 30)}
		case p == 39:
			b.currentFG = DefaultFG
		case p >= 40 && p <= 47:
			b.currentBG = Color{Mode: ColorModeStandard, Value: uint8(p - 40)}
		case p == 49:
			b.currentBG = DefaultBG
		case p == 38: // Set extended foreground color
			if i+2 < len(params) && params[i+1] == 5 { // 256-color palette
				b.currentFG = Color{Mode: ColorMode256, Value: uint8(params[i+2])}
				i += 2
			} else if i+4 < len(params) && params[i+1] == 2 { // RGB true-color
				b.currentFG = Color{Mode: ColorModeRGB, R: uint8(params[i+2]), G: uint8(params[i+3]), B: uint8(params[i+4])}
				i += 4
			}
		case p == 48: // Set extended background color
			if i+2 < len(params) && params[i+1] == 5 {
				b.currentBG = Color{Mode: ColorMode256, Value: uint8(params[i+2])}
				i += 2
			} else if i+4 < len(params) && params[i+1] == 2 {
				b.currentBG = Color{Mode: ColorModeRGB, R: uint8(params[i+2]), G: uint8(params[i+3]), B: uint8(params[i+4])}
				i += 4
			}
		case p >= 90 && p <= 97: // Bright foreground
			b.currentFG = Color{Mode: ColorModeStandard, Value: uint8(p - 90 + 8)}
		case p >= 100 && p <= 107: // Bright background
			b.currentBG = Color{Mode: ColorModeStandard, Value: uint8(p - 100 + 8)}
		default:
			b.logf("parser: ignoring SGR code %d", p)
		}
		i++
	}
}

// SetAttribute sets a text attribute bit.
func (b *OffscreenBuffer) SetAttribute(a Attribute) { b.currentAttr |= a }

// ClearAttribute clears a text attribute bit.
func (b *OffscreenBuffer) ClearAttribute(a Attribute) { b.currentAttr &^= a }

// ResetAttributes resets all text attributes and colors to defaults.
func (b *OffscreenBuffer) ResetAttributes() {
	b.currentFG = DefaultFG
	b.currentBG = DefaultBG
	b.currentAttr = 0
}
