// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/testharness.go
// Summary: Test harness for control sequence testing.
// Usage: Used by test files to send sequences and verify buffer state.
// Notes: Provides helpers for systematic testing of all control sequences.

package parser

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"
)

// TestHarness provides utilities for testing OffscreenBuffer operations.
type TestHarness struct {
	buffer    *OffscreenBuffer
	performer *Performer

	// Queues drained by the most recent SendSeq call.
	Events  []OscEvent
	Replies [][]byte
}

// NewTestHarness creates a harness with the specified terminal size.
// Diagnostics are discarded to keep test output clean.
func NewTestHarness(t *testing.T, width, height int) *TestHarness {
	t.Helper()
	quiet := log.New(io.Discard, "", 0)
	buffer, err := NewOffscreenBuffer(width, height, WithLogger(quiet))
	if err != nil {
		t.Fatalf("NewOffscreenBuffer(%d, %d): %v", width, height, err)
	}
	return &TestHarness{
		buffer:    buffer,
		performer: NewPerformer(buffer),
	}
}

// SendSeq sends a byte sequence through the performer and records the
// drained queues. Example: h.SendSeq("\x1b[5A") sends "cursor up 5".
func (h *TestHarness) SendSeq(seq string) {
	h.Events, h.Replies = h.performer.ApplyBytes([]byte(seq))
}

// SendText sends printable text (no control sequences).
func (h *TestHarness) SendText(text string) {
	h.SendSeq(text)
}

// GetCell returns the cell at the specified (col, row) position.
func (h *TestHarness) GetCell(x, y int) Cell {
	return h.buffer.CellAt(y, x)
}

// GetCursor returns the current cursor position as (col, row).
func (h *TestHarness) GetCursor() (x, y int) {
	pos := h.buffer.Cursor()
	return pos.Col, pos.Row
}

// AssertCursor verifies the cursor is at the expected (col, row).
func (h *TestHarness) AssertCursor(t *testing.T, expectedX, expectedY int) {
	t.Helper()
	actualX, actualY := h.GetCursor()
	if actualX != expectedX || actualY != expectedY {
		t.Errorf("Cursor position: expected (%d,%d), got (%d,%d)",
			expectedX, expectedY, actualX, actualY)
	}
}

// AssertRune verifies that a cell contains the expected rune (ignores style).
func (h *TestHarness) AssertRune(t *testing.T, x, y int, expectedRune rune) {
	t.Helper()
	actual := h.GetCell(x, y)
	if actual.Rune != expectedRune {
		t.Errorf("Cell[%d,%d] rune: expected %q, got %q", x, y, expectedRune, actual.Rune)
	}
}

// AssertText verifies a run of cells starting at (x, y) matches expectedText.
func (h *TestHarness) AssertText(t *testing.T, x, y int, expectedText string) {
	t.Helper()
	for i, expectedRune := range expectedText {
		h.AssertRune(t, x+i, y, expectedRune)
	}
}

// AssertRow verifies the full display text of a row.
func (h *TestHarness) AssertRow(t *testing.T, y int, expected string) {
	t.Helper()
	actual := h.buffer.RowText(y)
	if actual != expected {
		t.Errorf("Row %d: expected %q, got %q", y, expected, actual)
	}
}

// AssertBlank verifies that a cell displays as blank.
func (h *TestHarness) AssertBlank(t *testing.T, x, y int) {
	t.Helper()
	actual := h.GetCell(x, y)
	if !actual.IsBlank() {
		t.Errorf("Cell[%d,%d] should be blank, got %q", x, y, actual.Rune)
	}
}

// AssertLineBlank verifies an entire row is blank.
func (h *TestHarness) AssertLineBlank(t *testing.T, y int) {
	t.Helper()
	width, _ := h.buffer.Size()
	for x := 0; x < width; x++ {
		h.AssertBlank(t, x, y)
	}
}

// AssertScrollRegion verifies the margins match the expected 1-based values.
func (h *TestHarness) AssertScrollRegion(t *testing.T, expectedTop, expectedBottom int) {
	t.Helper()
	top, bottom, ok := h.buffer.ScrollRegion()
	if !ok {
		t.Errorf("Scroll region: expected [%d,%d], got full screen", expectedTop, expectedBottom)
		return
	}
	if top != expectedTop || bottom != expectedBottom {
		t.Errorf("Scroll region: expected [%d,%d], got [%d,%d]",
			expectedTop, expectedBottom, top, bottom)
	}
}

// AssertFullScreenRegion verifies no scroll region is configured.
func (h *TestHarness) AssertFullScreenRegion(t *testing.T) {
	t.Helper()
	if top, bottom, ok := h.buffer.ScrollRegion(); ok {
		t.Errorf("Scroll region: expected full screen, got [%d,%d]", top, bottom)
	}
}

// Dump returns a visual representation of the grid for debugging.
func (h *TestHarness) Dump() string {
	width, height := h.buffer.Size()
	cursorX, cursorY := h.GetCursor()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Terminal %dx%d (cursor at %d,%d)\n", width, height, cursorX, cursorY))
	sb.WriteString(strings.Repeat("=", width) + "\n")
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := h.GetCell(x, y)
			switch {
			case x == cursorX && y == cursorY:
				sb.WriteString("[")
			case cell.Kind == CellText && cell.Rune != 0:
				sb.WriteRune(cell.Rune)
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString(fmt.Sprintf(" |%d\n", y))
	}
	sb.WriteString(strings.Repeat("=", width) + "\n")
	return sb.String()
}

// Reset resets the terminal to initial state (ESC c).
func (h *TestHarness) Reset() {
	h.SendSeq("\x1bc")
}
