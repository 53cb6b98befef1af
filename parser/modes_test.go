// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/modes_test.go
// Summary: Tests for mode switching, soft reset and full reset.
// Usage: Run with `go test`.

package parser

import (
	"testing"
)

// TestCursorVisibility tests DECTCEM - ESC[?25h / ESC[?25l
func TestCursorVisibility(t *testing.T) {
	h := NewTestHarness(t, 20, 5)
	if !h.buffer.CursorVisible() {
		t.Fatal("cursor should start visible")
	}
	h.SendSeq("\x1b[?25l")
	if h.buffer.CursorVisible() {
		t.Error("cursor should be hidden after DECTCEM reset")
	}
	h.SendSeq("\x1b[?25h")
	if !h.buffer.CursorVisible() {
		t.Error("cursor should be visible after DECTCEM set")
	}
}

// TestUnknownModesIgnored: unrecognized modes never disturb buffer state.
func TestUnknownModesIgnored(t *testing.T) {
	h := NewTestHarness(t, 20, 5)
	h.SendText("abc")
	h.SendSeq("\x1b[?1049h") // alt screen, unsupported here
	h.SendSeq("\x1b[?2004h") // bracketed paste
	h.SendSeq("\x1b[20h")    // LNM
	h.AssertText(t, 0, 0, "abc")
	h.AssertCursor(t, 3, 0)
}

// TestSoftReset tests DECSTR - ESC[!p
func TestSoftReset(t *testing.T) {
	h := NewTestHarness(t, 20, 10)
	h.SendText("hello")
	h.SendSeq("\x1b[1;31m")
	h.SendSeq("\x1b[3;7r")
	h.SendSeq("\x1b[?25l")
	h.SendSeq("\x1b[4h")
	h.buffer.SetCursorPos(5, 5)

	h.SendSeq("\x1b[!p")

	// Screen content survives, everything else resets.
	h.AssertText(t, 0, 0, "hello")
	h.AssertCursor(t, 5, 5)
	h.AssertFullScreenRegion(t)
	if !h.buffer.CursorVisible() {
		t.Error("soft reset should re-enable the cursor")
	}
	fg, bg, attr := h.buffer.CurrentStyle()
	if fg != DefaultFG || bg != DefaultBG || attr != 0 {
		t.Errorf("soft reset should clear SGR state, got fg=%+v bg=%+v attr=%v", fg, bg, attr)
	}
}

// TestFullReset tests RIS - ESC c
func TestFullReset(t *testing.T) {
	h := NewTestHarness(t, 20, 10)
	h.SendText("hello")
	h.SendSeq("\x1b[1;31m")
	h.SendSeq("\x1b[3;7r")
	h.SendSeq("\x1b7")
	h.SendSeq("\x1b(0")
	h.buffer.SetCursorPos(5, 5)

	h.SendSeq("\x1bc")

	for y := 0; y < 10; y++ {
		h.AssertLineBlank(t, y)
	}
	h.AssertCursor(t, 0, 0)
	h.AssertFullScreenRegion(t)
	if h.buffer.ActiveCharset() != CharsetASCII {
		t.Error("reset should restore the ASCII charset")
	}
	// The saved cursor is gone: restore is now a no-op.
	h.buffer.SetCursorPos(4, 4)
	h.SendSeq("\x1b8")
	h.AssertCursor(t, 4, 4)
}

// TestResetIdempotent: a second RIS leaves the state identical.
func TestResetIdempotent(t *testing.T) {
	h := NewTestHarness(t, 20, 10)
	h.SendText("noise\x1b[5;31m\x1b[2;8r")
	h.SendSeq("\x1bc")
	first := h.Dump()
	h.SendSeq("\x1bc")
	if second := h.Dump(); first != second {
		t.Errorf("reset not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

// TestKeypadModesAbsorbed: ESC = and ESC > parse cleanly and do nothing.
func TestKeypadModesAbsorbed(t *testing.T) {
	h := NewTestHarness(t, 20, 5)
	h.SendText("ab")
	h.SendSeq("\x1b=\x1b>")
	h.SendText("cd")
	h.AssertText(t, 0, 0, "abcd")
}

// TestTabStops tests HTS (ESC H), TBC (ESC[<n>g), CHT and CBT.
func TestTabStops(t *testing.T) {
	t.Run("default stops every 8", func(t *testing.T) {
		h := NewTestHarness(t, 40, 5)
		h.SendSeq("\t")
		h.AssertCursor(t, 8, 0)
		h.SendSeq("\t")
		h.AssertCursor(t, 16, 0)
	})

	t.Run("tab past last stop goes to right edge", func(t *testing.T) {
		h := NewTestHarness(t, 20, 5)
		h.buffer.SetCursorPos(0, 17)
		h.SendSeq("\t")
		h.AssertCursor(t, 19, 0)
	})

	t.Run("set custom stop", func(t *testing.T) {
		h := NewTestHarness(t, 40, 5)
		h.buffer.SetCursorPos(0, 3)
		h.SendSeq("\x1bH")
		h.SendSeq("\r\t")
		h.AssertCursor(t, 3, 0)
	})

	t.Run("clear stop at cursor", func(t *testing.T) {
		h := NewTestHarness(t, 40, 5)
		h.buffer.SetCursorPos(0, 8)
		h.SendSeq("\x1b[g")
		h.SendSeq("\r\t")
		h.AssertCursor(t, 16, 0)
	})

	t.Run("clear all stops", func(t *testing.T) {
		h := NewTestHarness(t, 40, 5)
		h.SendSeq("\x1b[3g")
		h.SendSeq("\t")
		h.AssertCursor(t, 39, 0)
	})

	t.Run("CHT moves n stops forward", func(t *testing.T) {
		h := NewTestHarness(t, 40, 5)
		h.SendSeq("\x1b[2I")
		h.AssertCursor(t, 16, 0)
	})

	t.Run("CBT moves n stops backward", func(t *testing.T) {
		h := NewTestHarness(t, 40, 5)
		h.buffer.SetCursorPos(0, 20)
		h.SendSeq("\x1b[2Z")
		h.AssertCursor(t, 8, 0)
	})
}

// TestNextLine tests NEL - ESC E
func TestNextLine(t *testing.T) {
	h := NewTestHarness(t, 20, 5)
	h.SendText("abc")
	h.SendSeq("\x1bE")
	h.AssertCursor(t, 0, 1)
}
