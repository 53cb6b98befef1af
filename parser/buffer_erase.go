// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_erase.go
// Summary: Erase in display (ED) and erase in line (EL), plus DECALN.
// Usage: Part of the OffscreenBuffer operation set.

package parser

// EraseDisplay (ED, CSI J): mode 0 erases from the cursor to the end of the
// screen, mode 1 from the start of the screen through the cursor, mode 2 the
// entire screen. Unknown modes are logged and ignored.
func (b *OffscreenBuffer) EraseDisplay(mode int) {
	b.wrapNext = false
	switch mode {
	case 0:
		b.EraseLine(0)
		for y := b.cursor.Row + 1; y < b.height; y++ {
			b.fillRow(y)
		}
	case 1:
		b.EraseLine(1)
		for y := 0; y < b.cursor.Row; y++ {
			b.fillRow(y)
		}
	case 2:
		for y := 0; y < b.height; y++ {
			b.fillRow(y)
		}
	default:
		b.logf("parser: unsupported ED mode %d", mode)
	}
}

// EraseLine (EL, CSI K): mode 0 erases from the cursor to the end of the
// row, mode 1 from the start of the row through the cursor, mode 2 the whole
// row. Cells outside the named scope are untouched.
func (b *OffscreenBuffer) EraseLine(mode int) {
	b.wrapNext = false
	var start, end int // inclusive range
	switch mode {
	case 0:
		start, end = b.cursor.Col, b.width-1
	case 1:
		start, end = 0, b.cursor.Col
	case 2:
		start, end = 0, b.width-1
	default:
		b.logf("parser: unsupported EL mode %d", mode)
		return
	}
	row := b.cursor.Row
	b.clearWidePair(row, start)
	b.clearWidePair(row, end)
	for x := start; x <= end; x++ {
		b.cells[row][x] = b.blankCell()
	}
}

// Alignment (DECALN, ESC # 8) fills the screen with 'E', resets the margins
// and homes the cursor. A display-alignment aid from the VT100.
func (b *OffscreenBuffer) Alignment() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.cells[y][x] = Cell{Kind: CellText, Rune: 'E', FG: DefaultFG, BG: DefaultBG}
		}
	}
	b.marginsSet = false
	b.SetCursorPos(0, 0)
}
