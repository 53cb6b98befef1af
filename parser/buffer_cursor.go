// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_cursor.go
// Summary: Cursor positioning, relative movement and save/restore.
// Usage: Part of the OffscreenBuffer operation set.

package parser

// SetCursorPos moves the cursor to (row, col), clamping to the grid.
// Motion never leaves the cursor outside [0,height) x [0,width).
func (b *OffscreenBuffer) SetCursorPos(row, col int) {
	if col < 0 {
		col = 0
	}
	if col >= b.width {
		col = b.width - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= b.height {
		row = b.height - 1
	}
	if row != b.cursor.Row || col != b.cursor.Col {
		b.wrapNext = false
	}
	b.cursor = Pos{Row: row, Col: col}
}

// CursorPosition implements CUP/HPA-style absolute addressing with 1-based
// protocol coordinates. In origin mode the coordinates are relative to the
// scroll region and clamped inside it.
func (b *OffscreenBuffer) CursorPosition(row, col int) {
	row--
	col--
	if b.originMode {
		row += b.top()
		if row > b.bottom() {
			row = b.bottom()
		}
	}
	b.SetCursorPos(row, col)
}

// CursorHorizontalAbsolute implements CHA (CSI G), 1-based column.
func (b *OffscreenBuffer) CursorHorizontalAbsolute(col int) {
	b.SetCursorPos(b.cursor.Row, col-1)
}

// VerticalPositionAbsolute implements VPA (CSI d), 1-based row.
func (b *OffscreenBuffer) VerticalPositionAbsolute(row int) {
	row--
	if b.originMode {
		row += b.top()
		if row > b.bottom() {
			row = b.bottom()
		}
	}
	b.SetCursorPos(row, b.cursor.Col)
}

// MoveCursorUp moves the cursor n rows up. When the cursor starts at or
// below the top margin it stops there; otherwise it clamps to the grid edge.
func (b *OffscreenBuffer) MoveCursorUp(n int) {
	limit := 0
	if b.cursor.Row >= b.top() {
		limit = b.top()
	}
	row := b.cursor.Row - n
	if row < limit {
		row = limit
	}
	b.SetCursorPos(row, b.cursor.Col)
}

// MoveCursorDown moves the cursor n rows down, stopping at the bottom margin
// when the cursor starts inside the region.
func (b *OffscreenBuffer) MoveCursorDown(n int) {
	limit := b.height - 1
	if b.cursor.Row <= b.bottom() {
		limit = b.bottom()
	}
	row := b.cursor.Row + n
	if row > limit {
		row = limit
	}
	b.SetCursorPos(row, b.cursor.Col)
}

// MoveCursorForward moves the cursor n columns right, clamped to the grid.
func (b *OffscreenBuffer) MoveCursorForward(n int) {
	b.SetCursorPos(b.cursor.Row, b.cursor.Col+n)
}

// MoveCursorBackward moves the cursor n columns left, clamped to the grid.
func (b *OffscreenBuffer) MoveCursorBackward(n int) {
	b.SetCursorPos(b.cursor.Row, b.cursor.Col-n)
}

// SaveCursor snapshots the cursor into the single saved slot (ESC 7).
// A later save overwrites an earlier one; there is no stack.
func (b *OffscreenBuffer) SaveCursor() {
	saved := b.cursor
	b.savedCursor = &saved
}

// RestoreCursor recalls the saved snapshot (ESC 8). Restoring when nothing
// was saved leaves the cursor unchanged.
func (b *OffscreenBuffer) RestoreCursor() {
	b.wrapNext = false
	if b.savedCursor == nil {
		return
	}
	b.SetCursorPos(b.savedCursor.Row, b.savedCursor.Col)
}

// SetCursorVisible sets the cursor visibility state (DECTCEM).
func (b *OffscreenBuffer) SetCursorVisible(visible bool) {
	b.cursorVisible = visible
}
