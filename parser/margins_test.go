// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/margins_test.go
// Summary: Tests for DECSTBM scroll regions and origin mode.
// Usage: Run with `go test`.

package parser

import (
	"testing"
)

// TestSetMargins tests DECSTBM - ESC[<top>;<bottom>r
func TestSetMargins(t *testing.T) {
	t.Run("sets region and homes cursor", func(t *testing.T) {
		h := NewTestHarness(t, 20, 10)
		h.buffer.SetCursorPos(5, 5)
		h.SendSeq("\x1b[3;7r")
		h.AssertScrollRegion(t, 3, 7)
		h.AssertCursor(t, 0, 0)
	})

	t.Run("no params resets to full screen", func(t *testing.T) {
		h := NewTestHarness(t, 20, 10)
		h.SendSeq("\x1b[3;7r")
		h.SendSeq("\x1b[r")
		h.AssertFullScreenRegion(t)
	})

	t.Run("invalid requests keep previous region", func(t *testing.T) {
		invalid := []string{
			"\x1b[7;3r",  // inverted
			"\x1b[5;5r",  // single row
			"\x1b[2;99r", // bottom past the grid
		}
		for _, seq := range invalid {
			h := NewTestHarness(t, 20, 10)
			h.SendSeq("\x1b[3;7r")
			h.SendSeq(seq)
			h.AssertScrollRegion(t, 3, 7)
		}
	})

	t.Run("full-range request clears the region", func(t *testing.T) {
		h := NewTestHarness(t, 20, 10)
		h.SendSeq("\x1b[3;7r")
		h.SendSeq("\x1b[1;10r")
		h.AssertFullScreenRegion(t)
	})
}

// TestLineFeedScrollsRegion: LF on the bottom margin scrolls only the
// region; rows outside are untouched.
func TestLineFeedScrollsRegion(t *testing.T) {
	h := NewTestHarness(t, 10, 5)
	h.SendText("AAA\r\nBBB\r\nCCC\r\nDDD\r\nEEE")
	h.SendSeq("\x1b[2;4r")
	h.SendSeq("\x1b[4;1H") // bottom margin row
	h.SendSeq("\n")
	h.AssertText(t, 0, 0, "AAA")
	h.AssertText(t, 0, 1, "CCC")
	h.AssertText(t, 0, 2, "DDD")
	h.AssertLineBlank(t, 3)
	h.AssertText(t, 0, 4, "EEE")
	h.AssertCursor(t, 0, 3)
}

// TestReverseIndexScrollsRegion: RI on the top margin scrolls the region
// down.
func TestReverseIndexScrollsRegion(t *testing.T) {
	h := NewTestHarness(t, 10, 5)
	h.SendText("AAA\r\nBBB\r\nCCC\r\nDDD\r\nEEE")
	h.SendSeq("\x1b[2;4r")
	h.SendSeq("\x1b[2;1H") // top margin row
	h.SendSeq("\x1bM")
	h.AssertText(t, 0, 0, "AAA")
	h.AssertLineBlank(t, 1)
	h.AssertText(t, 0, 2, "BBB")
	h.AssertText(t, 0, 3, "CCC")
	h.AssertText(t, 0, 4, "EEE")
	h.AssertCursor(t, 0, 1)
}

// TestLineFeedBelowRegion: LF below the bottom margin moves without
// scrolling, clamped to the screen.
func TestLineFeedBelowRegion(t *testing.T) {
	h := NewTestHarness(t, 10, 5)
	h.SendText("AAA\r\nBBB\r\nCCC\r\nDDD\r\nEEE")
	h.SendSeq("\x1b[2;3r")
	h.SendSeq("\x1b[4;1H")
	h.SendSeq("\n")
	h.AssertCursor(t, 0, 4)
	h.SendSeq("\n")
	h.AssertCursor(t, 0, 4)
	h.AssertText(t, 0, 4, "EEE")
}

// TestMarginAwareMovement: CUU/CUD stop at the margins when the cursor
// starts inside the region, but cross them when it starts outside.
func TestMarginAwareMovement(t *testing.T) {
	h := NewTestHarness(t, 20, 10)
	h.SendSeq("\x1b[3;7r")

	h.buffer.SetCursorPos(4, 0) // inside region
	h.SendSeq("\x1b[99A")
	h.AssertCursor(t, 0, 2) // stops at top margin

	h.buffer.SetCursorPos(4, 0)
	h.SendSeq("\x1b[99B")
	h.AssertCursor(t, 0, 6) // stops at bottom margin

	h.buffer.SetCursorPos(8, 0) // below region
	h.SendSeq("\x1b[99B")
	h.AssertCursor(t, 0, 9) // clamps to screen edge instead
}

// TestOriginMode tests DECOM - ESC[?6h / ESC[?6l
func TestOriginMode(t *testing.T) {
	t.Run("CUP is region-relative", func(t *testing.T) {
		h := NewTestHarness(t, 20, 10)
		h.SendSeq("\x1b[3;7r")
		h.SendSeq("\x1b[?6h")
		h.AssertCursor(t, 0, 2) // homed to region origin
		h.SendSeq("\x1b[2;5H")
		h.AssertCursor(t, 4, 3) // row 2 of the region = absolute row 3
	})

	t.Run("CUP cannot leave the region", func(t *testing.T) {
		h := NewTestHarness(t, 20, 10)
		h.SendSeq("\x1b[3;7r")
		h.SendSeq("\x1b[?6h")
		h.SendSeq("\x1b[99;1H")
		h.AssertCursor(t, 0, 6) // clamped to bottom margin
	})

	t.Run("reset restores absolute addressing", func(t *testing.T) {
		h := NewTestHarness(t, 20, 10)
		h.SendSeq("\x1b[3;7r")
		h.SendSeq("\x1b[?6h")
		h.SendSeq("\x1b[?6l")
		h.AssertCursor(t, 0, 0)
		h.SendSeq("\x1b[9;1H")
		h.AssertCursor(t, 0, 8)
	})
}
