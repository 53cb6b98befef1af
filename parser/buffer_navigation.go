// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_navigation.go
// Summary: C0-driven motion - line feed, carriage return, tabs, index ops.
// Usage: Part of the OffscreenBuffer operation set.

package parser

// LineFeed moves the cursor down one row, scrolling the region up by one
// line when the cursor sits on the bottom margin.
func (b *OffscreenBuffer) LineFeed() {
	b.wrapNext = false
	if b.cursor.Row == b.bottom() {
		b.scrollRegionBy(1, b.top(), b.bottom())
	} else if b.cursor.Row < b.height-1 {
		b.SetCursorPos(b.cursor.Row+1, b.cursor.Col)
	}
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (b *OffscreenBuffer) CarriageReturn() {
	b.wrapNext = false
	b.cursor.Col = 0
}

// Backspace moves the cursor one column left, stopping at column 0.
func (b *OffscreenBuffer) Backspace() {
	b.wrapNext = false
	if b.cursor.Col > 0 {
		b.SetCursorPos(b.cursor.Row, b.cursor.Col-1)
	}
}

// Tab moves the cursor to the next tab stop, or the last column when none
// remain.
func (b *OffscreenBuffer) Tab() {
	b.wrapNext = false
	for x := b.cursor.Col + 1; x < b.width; x++ {
		if b.tabStops[x] {
			b.SetCursorPos(b.cursor.Row, x)
			return
		}
	}
	b.SetCursorPos(b.cursor.Row, b.width-1)
}

// TabForward (CHT) moves the cursor forward n tab stops.
func (b *OffscreenBuffer) TabForward(n int) {
	for i := 0; i < n; i++ {
		b.Tab()
	}
}

// TabBackward (CBT) moves the cursor backward n tab stops, stopping at
// column 0.
func (b *OffscreenBuffer) TabBackward(n int) {
	b.wrapNext = false
	for i := 0; i < n; i++ {
		found := false
		for x := b.cursor.Col - 1; x >= 0; x-- {
			if b.tabStops[x] {
				b.SetCursorPos(b.cursor.Row, x)
				found = true
				break
			}
		}
		if !found {
			b.SetCursorPos(b.cursor.Row, 0)
			break
		}
	}
}

// SetTabStop (HTS) sets a tab stop at the cursor column.
func (b *OffscreenBuffer) SetTabStop() {
	b.tabStops[b.cursor.Col] = true
}

// ClearTabStop (TBC): mode 0 clears the stop at the cursor, mode 3 clears
// all stops. Other modes are ignored.
func (b *OffscreenBuffer) ClearTabStop(mode int) {
	switch mode {
	case 0:
		delete(b.tabStops, b.cursor.Col)
	case 3:
		b.tabStops = make(map[int]bool)
	}
}

// Index (ESC D) moves the cursor down one row, scrolling at the bottom
// margin; identical to LineFeed.
func (b *OffscreenBuffer) Index() {
	b.LineFeed()
}

// ReverseIndex (ESC M) moves the cursor up one row, scrolling the region
// down when the cursor sits on the top margin.
func (b *OffscreenBuffer) ReverseIndex() {
	b.wrapNext = false
	if b.cursor.Row == b.top() {
		b.scrollRegionBy(-1, b.top(), b.bottom())
	} else if b.cursor.Row > 0 {
		b.SetCursorPos(b.cursor.Row-1, b.cursor.Col)
	}
}

// NextLine (ESC E) is Index followed by a carriage return.
func (b *OffscreenBuffer) NextLine() {
	b.Index()
	b.CarriageReturn()
}
