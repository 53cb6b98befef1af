// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_print.go
// Summary: Printing runes into the grid - width, wrapping, wide-char spacers.
// Usage: Part of the OffscreenBuffer operation set.

package parser

import (
	"github.com/mattn/go-runewidth"
)

// placeChar writes one printable rune at the cursor using the current style
// and advances the cursor by its display width. Wrapping follows DECAWM:
// with auto-wrap on, printing past the right margin continues at column 0 of
// the next row (scrolling the region if needed); with auto-wrap off the
// cursor holds at the last column and subsequent prints overwrite it.
func (b *OffscreenBuffer) placeChar(r rune) {
	r = b.charset.translate(r)
	width := runewidth.RuneWidth(r)
	if width == 0 {
		// Combining marks and other zero-width runes have no cell of
		// their own; they are absorbed.
		return
	}

	if b.wrapNext {
		b.wrapNext = false
		b.cursor.Col = 0
		b.LineFeed()
	}

	// A wide rune cannot start in the last column. With wrapping enabled it
	// moves to the next line; without it there is nowhere to paint both
	// halves, so the print is dropped and the cursor holds.
	if width == 2 && b.cursor.Col == b.width-1 {
		if !b.autoWrapMode {
			return
		}
		b.clearWidePair(b.cursor.Row, b.cursor.Col)
		b.cells[b.cursor.Row][b.cursor.Col] = b.blankCell()
		b.cursor.Col = 0
		b.LineFeed()
	}

	b.lastGraphicChar = r
	row, col := b.cursor.Row, b.cursor.Col

	if b.insertMode {
		b.shiftRowRight(row, col, width)
	}

	b.clearWidePair(row, col)
	b.cells[row][col] = Cell{Kind: CellText, Rune: r, FG: b.currentFG, BG: b.currentBG, Attr: b.currentAttr}
	if width == 2 {
		b.clearWidePair(row, col+1)
		b.cells[row][col+1] = Cell{Kind: CellSpacer, FG: b.currentFG, BG: b.currentBG, Attr: b.currentAttr}
	}

	if col+width > b.width-1 {
		b.cursor.Col = b.width - 1
		if b.autoWrapMode {
			b.wrapNext = true
		}
	} else {
		b.cursor.Col = col + width
	}
}

// clearWidePair blanks the partner cell when (row, col) holds half of a wide
// rune, so no orphaned head or spacer survives an overwrite.
func (b *OffscreenBuffer) clearWidePair(row, col int) {
	c := b.cells[row][col]
	switch {
	case c.Kind == CellSpacer && col > 0:
		b.cells[row][col-1] = b.blankCell()
	case c.Kind == CellText && col+1 < b.width && b.cells[row][col+1].Kind == CellSpacer:
		b.cells[row][col+1] = b.blankCell()
	}
}

// shiftRowRight makes room for n cells at col by shifting the rest of the
// row right; cells pushed past the right edge are discarded.
func (b *OffscreenBuffer) shiftRowRight(row, col, n int) {
	line := b.cells[row]
	copy(line[col+n:], line[col:])
	for i := col; i < col+n && i < b.width; i++ {
		line[i] = b.blankCell()
	}
	// A spacer shifted into the first moved column lost its head.
	if col+n < b.width && line[col+n].Kind == CellSpacer {
		line[col+n] = b.blankCell()
	}
	// A head shifted against the right edge lost its spacer.
	last := b.width - 1
	if line[last].Kind == CellText && runewidth.RuneWidth(line[last].Rune) == 2 {
		line[last] = b.blankCell()
	}
}
