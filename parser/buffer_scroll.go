// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_scroll.go
// Summary: Scroll-region row shifting for SU/SD and index operations.
// Usage: Part of the OffscreenBuffer operation set.

package parser

// scrollRegionBy shifts rows inside [top, bottom] by n: positive n scrolls
// up (content moves toward the top), negative scrolls down. Newly exposed
// rows are blank-filled; rows outside the region are untouched.
func (b *OffscreenBuffer) scrollRegionBy(n, top, bottom int) {
	if n == 0 || top > bottom {
		return
	}
	b.wrapNext = false
	span := bottom - top + 1
	if n > span {
		n = span
	}
	if -n > span {
		n = -span
	}
	if n > 0 { // up
		for y := top; y <= bottom-n; y++ {
			copy(b.cells[y], b.cells[y+n])
		}
		for y := bottom - n + 1; y <= bottom; y++ {
			b.fillRow(y)
		}
	} else { // down
		n = -n
		for y := bottom; y >= top+n; y-- {
			copy(b.cells[y], b.cells[y-n])
		}
		for y := top; y < top+n; y++ {
			b.fillRow(y)
		}
	}
}

// fillRow blank-fills an entire row with the current-style blank.
func (b *OffscreenBuffer) fillRow(row int) {
	blank := b.blankCell()
	for x := range b.cells[row] {
		b.cells[row][x] = blank
	}
}

// ScrollUp (CSI S) moves all rows within the scroll region up by n lines.
func (b *OffscreenBuffer) ScrollUp(n int) {
	b.scrollRegionBy(n, b.top(), b.bottom())
}

// ScrollDown (CSI T) moves all rows within the scroll region down by n lines.
func (b *OffscreenBuffer) ScrollDown(n int) {
	b.scrollRegionBy(-n, b.top(), b.bottom())
}
