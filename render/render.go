// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/render.go
// Summary: tcell adapter - converts parser cells into backend draw state.
// Usage: Wrap a tcell.Screen (or any surface) and call Draw each frame.
// Notes: The parser stays backend-agnostic; all tcell knowledge lives here.

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelvt/parser"
)

// Palette maps the 256 indexed colors plus the default foreground (256) and
// background (257) to concrete RGB values.
type Palette [258]tcell.Color

// DefaultPalette returns the standard xterm 256-color palette with a
// white-on-black default.
func DefaultPalette() Palette {
	var p Palette
	// First 16 ANSI colors.
	ansi := [16][3]int32{
		{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
		{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
		{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, c := range ansi {
		p[i] = tcell.NewRGBColor(c[0], c[1], c[2])
	}

	// 6x6x6 color cube.
	levels := [6]int32{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = tcell.NewRGBColor(levels[r], levels[g], levels[b])
				i++
			}
		}
	}

	// Grayscale ramp.
	for j := 0; j < 24; j++ {
		gray := int32(8 + j*10)
		p[i] = tcell.NewRGBColor(gray, gray, gray)
		i++
	}

	p[256] = p[15] // default foreground
	p[257] = p[0]  // default background
	return p
}

// Renderer draws an OffscreenBuffer onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	palette Palette
}

// NewRenderer creates a renderer with the default palette.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, palette: DefaultPalette()}
}

// SetPalette replaces the color palette.
func (r *Renderer) SetPalette(p Palette) { r.palette = p }

// color resolves a parser color against the palette; slot selects the
// default entry (256 for foreground, 257 for background).
func (r *Renderer) color(c parser.Color, slot int) tcell.Color {
	switch c.Mode {
	case parser.ColorModeDefault:
		return r.palette[slot]
	case parser.ColorModeStandard, parser.ColorMode256:
		return r.palette[c.Value]
	case parser.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}

// Style converts one cell's style state into a tcell style.
func (r *Renderer) Style(cell parser.Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(r.color(cell.FG, 256)).
		Background(r.color(cell.BG, 257))
	style = style.Bold(cell.Attr&parser.AttrBold != 0)
	style = style.Dim(cell.Attr&parser.AttrDim != 0)
	style = style.Italic(cell.Attr&parser.AttrItalic != 0)
	style = style.Underline(cell.Attr&parser.AttrUnderline != 0)
	style = style.Blink(cell.Attr&parser.AttrBlink != 0)
	style = style.Reverse(cell.Attr&parser.AttrReverse != 0)
	style = style.StrikeThrough(cell.Attr&parser.AttrStrikethrough != 0)
	return style
}

// Draw paints the buffer's grid and cursor onto the screen. Spacer cells are
// skipped; tcell derives the width of the preceding wide rune itself. Show
// must be called by the owner of the frame loop.
func (r *Renderer) Draw(buffer *parser.OffscreenBuffer) {
	width, height := buffer.Size()
	// Voids take the palette's defaults so never-painted and erased regions
	// share one background.
	voidStyle := r.Style(parser.Cell{})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := buffer.CellAt(y, x)
			switch cell.Kind {
			case parser.CellSpacer:
				continue
			case parser.CellVoid:
				r.screen.SetContent(x, y, ' ', nil, voidStyle)
			default:
				ch := cell.Rune
				if cell.Attr&parser.AttrHidden != 0 {
					ch = ' '
				}
				r.screen.SetContent(x, y, ch, nil, r.Style(cell))
			}
		}
	}
	if buffer.CursorVisible() {
		pos := buffer.Cursor()
		r.screen.ShowCursor(pos.Col, pos.Row)
	} else {
		r.screen.HideCursor()
	}
}
