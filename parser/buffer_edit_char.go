// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_edit_char.go
// Summary: Character-level editing - insert, delete, erase, repeat.
// Usage: Part of the OffscreenBuffer operation set.

package parser

// InsertCharacters (ICH) shifts cells from the cursor rightward by n and
// fills the gap with blanks. Cells pushed past the right edge are discarded.
// Only the current row is affected.
func (b *OffscreenBuffer) InsertCharacters(n int) {
	if n < 1 || b.cursor.Col >= b.width {
		return
	}
	if n > b.width-b.cursor.Col {
		n = b.width - b.cursor.Col
	}
	b.wrapNext = false
	b.shiftRowRight(b.cursor.Row, b.cursor.Col, n)
}

// DeleteCharacters (DCH) removes n cells at the cursor, shifting the rest of
// the row left and blank-filling the right edge.
func (b *OffscreenBuffer) DeleteCharacters(n int) {
	if n < 1 || b.cursor.Col >= b.width {
		return
	}
	if n > b.width-b.cursor.Col {
		n = b.width - b.cursor.Col
	}
	b.wrapNext = false
	line := b.cells[b.cursor.Row]
	col := b.cursor.Col

	// Deleting half of a wide pair leaves the other half orphaned.
	b.clearWidePair(b.cursor.Row, col)
	if col+n < b.width && line[col+n].Kind == CellSpacer {
		line[col+n] = b.blankCell()
	}

	copy(line[col:], line[col+n:])
	for i := b.width - n; i < b.width; i++ {
		line[i] = b.blankCell()
	}
}

// EraseCharacters (ECH) overwrites n cells at the cursor with blanks.
// Nothing shifts.
func (b *OffscreenBuffer) EraseCharacters(n int) {
	if n < 1 || b.cursor.Col >= b.width {
		return
	}
	if n > b.width-b.cursor.Col {
		n = b.width - b.cursor.Col
	}
	b.wrapNext = false
	row, col := b.cursor.Row, b.cursor.Col
	b.clearWidePair(row, col)
	b.clearWidePair(row, col+n-1)
	for i := col; i < col+n; i++ {
		b.cells[row][i] = b.blankCell()
	}
}

// RepeatCharacter (REP) prints the last graphic character n more times.
func (b *OffscreenBuffer) RepeatCharacter(n int) {
	if b.lastGraphicChar == 0 {
		return
	}
	for i := 0; i < n; i++ {
		b.placeChar(b.lastGraphicChar)
	}
}
