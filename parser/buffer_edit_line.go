// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_edit_line.go
// Summary: Whole-line editing - insert and delete within the scroll region.
// Usage: Part of the OffscreenBuffer operation set.

package parser

// InsertLines (IL) inserts n blank rows at the cursor, pushing rows between
// the cursor and the bottom margin down. Rows pushed past the margin are
// discarded. A cursor outside the scroll region makes this a no-op.
func (b *OffscreenBuffer) InsertLines(n int) {
	if n < 1 || b.cursor.Row < b.top() || b.cursor.Row > b.bottom() {
		return
	}
	b.wrapNext = false
	b.scrollRegionBy(-n, b.cursor.Row, b.bottom())
}

// DeleteLines (DL) removes n rows at the cursor, pulling rows up from below
// and blank-filling the bottom of the scroll region.
func (b *OffscreenBuffer) DeleteLines(n int) {
	if n < 1 || b.cursor.Row < b.top() || b.cursor.Row > b.bottom() {
		return
	}
	b.wrapNext = false
	b.scrollRegionBy(n, b.cursor.Row, b.bottom())
}
