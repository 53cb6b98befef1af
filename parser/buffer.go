// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer.go
// Summary: OffscreenBuffer - the in-memory model of one virtual terminal.
// Usage: Mutated exclusively by Performer-driven operations.
// Notes: Single-threaded by design; one buffer per terminal session.

package parser

import (
	"fmt"
	"log"
	"strings"
)

// OffscreenBuffer holds the full state of one virtual terminal: the grid of
// cells, cursor, scroll margins, active character set, accumulated style and
// the pending notification queues. It is created once per session with a
// fixed size and mutated synchronously by the Performer.
type OffscreenBuffer struct {
	width, height int
	cells         [][]Cell

	cursor      Pos
	savedCursor *Pos // nil when nothing has been saved; last save wins

	currentFG, currentBG Color
	currentAttr          Attribute
	charset              Charset
	lastGraphicChar      rune

	tabStops      map[int]bool
	cursorVisible bool
	wrapNext      bool
	autoWrapMode  bool
	insertMode    bool
	originMode    bool

	// Scroll region, 0-based inclusive. Only meaningful when marginsSet;
	// an unset region means the full screen scrolls.
	marginTop, marginBottom int
	marginsSet              bool

	oscEvents []OscEvent
	replies   [][]byte

	logger *log.Logger
}

// Option configures an OffscreenBuffer at construction.
type Option func(*OffscreenBuffer)

// WithLogger directs the buffer's diagnostics to the given logger.
// The default logger writes to the process-wide log output.
func WithLogger(l *log.Logger) Option {
	return func(b *OffscreenBuffer) { b.logger = l }
}

// NewOffscreenBuffer creates a terminal model of the given size.
// Invalid dimensions are the only hard failure in this package; everything
// downstream assumes a valid grid.
func NewOffscreenBuffer(width, height int, opts ...Option) (*OffscreenBuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("parser: invalid buffer size %dx%d", width, height)
	}
	b := &OffscreenBuffer{
		width:         width,
		height:        height,
		currentFG:     DefaultFG,
		currentBG:     DefaultBG,
		tabStops:      make(map[int]bool),
		cursorVisible: true,
		autoWrapMode:  true,
		logger:        log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.cells = makeGrid(width, height)
	for i := 0; i < width; i += 8 {
		b.tabStops[i] = true
	}
	return b, nil
}

func makeGrid(width, height int) [][]Cell {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return cells
}

// Size returns the grid dimensions as (width, height).
func (b *OffscreenBuffer) Size() (int, int) { return b.width, b.height }

// Cursor returns the current cursor position.
func (b *OffscreenBuffer) Cursor() Pos { return b.cursor }

// CursorVisible reports whether the cursor should be drawn.
func (b *OffscreenBuffer) CursorVisible() bool { return b.cursorVisible }

// ActiveCharset returns the character set currently applied to printed runes.
func (b *OffscreenBuffer) ActiveCharset() Charset { return b.charset }

// CurrentStyle returns the accumulated SGR state applied to new prints.
func (b *OffscreenBuffer) CurrentStyle() (fg, bg Color, attr Attribute) {
	return b.currentFG, b.currentBG, b.currentAttr
}

// CellAt returns the cell at (row, col), or a void cell when out of bounds.
func (b *OffscreenBuffer) CellAt(row, col int) Cell {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return Cell{}
	}
	return b.cells[row][col]
}

// Grid returns a copy of the visible grid. The buffer remains the sole owner
// of its cell data; callers may not alias into it.
func (b *OffscreenBuffer) Grid() [][]Cell {
	grid := make([][]Cell, b.height)
	for y := range grid {
		grid[y] = make([]Cell, b.width)
		copy(grid[y], b.cells[y])
	}
	return grid
}

// RowText returns the display text of a row, spacers and voids as spaces.
// Intended for tests and diagnostics.
func (b *OffscreenBuffer) RowText(row int) string {
	if row < 0 || row >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[row] {
		if c.Kind == CellText && c.Rune != 0 {
			sb.WriteRune(c.Rune)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Resize grows or shrinks the grid, preserving the overlapping region.
// Newly exposed cells are void. Supplied by the window layer, never by the
// byte stream.
func (b *OffscreenBuffer) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("parser: invalid buffer size %dx%d", width, height)
	}
	if width == b.width && height == b.height {
		return nil
	}
	next := makeGrid(width, height)
	rows := min(b.height, height)
	cols := min(b.width, width)
	for y := 0; y < rows; y++ {
		copy(next[y][:cols], b.cells[y][:cols])
	}
	b.cells = next
	b.width = width
	b.height = height

	// The old region may no longer fit; full screen is the only safe state.
	b.marginsSet = false
	b.wrapNext = false
	b.SetCursorPos(b.cursor.Row, b.cursor.Col)
	if b.savedCursor != nil {
		saved := *b.savedCursor
		saved.Row = min(saved.Row, height-1)
		saved.Col = min(saved.Col, width-1)
		b.savedCursor = &saved
	}
	return nil
}

// Reset implements RIS (ESC c): grid to blanks, cursor home, saved cursor
// cleared, ASCII charset, full-screen margins and default style, together.
func (b *OffscreenBuffer) Reset() {
	b.cells = makeGrid(b.width, b.height)
	b.cursor = Pos{}
	b.savedCursor = nil
	b.charset = CharsetASCII
	b.marginsSet = false
	b.currentFG = DefaultFG
	b.currentBG = DefaultBG
	b.currentAttr = 0
	b.cursorVisible = true
	b.wrapNext = false
	b.autoWrapMode = true
	b.insertMode = false
	b.originMode = false
	b.lastGraphicChar = 0
	b.tabStops = make(map[int]bool)
	for i := 0; i < b.width; i += 8 {
		b.tabStops[i] = true
	}
}

// --- Scroll region ---

// top returns the effective 0-based top margin.
func (b *OffscreenBuffer) top() int {
	if b.marginsSet {
		return b.marginTop
	}
	return 0
}

// bottom returns the effective 0-based bottom margin (inclusive).
func (b *OffscreenBuffer) bottom() int {
	if b.marginsSet {
		return b.marginBottom
	}
	return b.height - 1
}

// ScrollRegion reports the configured margins as 1-based (top, bottom).
// ok is false when no region is set and the full screen scrolls.
func (b *OffscreenBuffer) ScrollRegion() (top, bottom int, ok bool) {
	if !b.marginsSet {
		return 0, 0, false
	}
	return b.marginTop + 1, b.marginBottom + 1, true
}

// SetMargins implements DECSTBM. Parameters are 1-based; zero values take
// their defaults (1 and height), so "CSI r" resets to full screen. A request
// with bottom <= top or bottom beyond the grid is rejected and the previous
// region is kept.
func (b *OffscreenBuffer) SetMargins(top, bottom int) {
	if top == 0 {
		top = 1
	}
	if bottom == 0 {
		bottom = b.height
	}
	if top == 1 && bottom == b.height {
		b.marginsSet = false
		b.SetCursorPos(0, 0)
		return
	}
	if top < 1 || bottom <= top || bottom > b.height {
		b.logf("parser: rejecting invalid scroll margins %d;%d (height %d)", top, bottom, b.height)
		return
	}
	b.marginTop = top - 1
	b.marginBottom = bottom - 1
	b.marginsSet = true
	// DECSTBM homes the cursor (to the region origin in origin mode).
	if b.originMode {
		b.SetCursorPos(b.marginTop, 0)
	} else {
		b.SetCursorPos(0, 0)
	}
}

// --- Notification queues ---

func (b *OffscreenBuffer) enqueueOsc(ev OscEvent) {
	b.oscEvents = append(b.oscEvents, ev)
}

func (b *OffscreenBuffer) enqueueReply(reply []byte) {
	b.replies = append(b.replies, reply)
}

// drainQueues empties and returns both pending queues in insertion order.
func (b *OffscreenBuffer) drainQueues() ([]OscEvent, [][]byte) {
	events, replies := b.oscEvents, b.replies
	b.oscEvents = nil
	b.replies = nil
	return events, replies
}

// blankCell is the fill used by erase and shift operations; it carries the
// current background like a real terminal's erase does.
func (b *OffscreenBuffer) blankCell() Cell {
	return Cell{Kind: CellText, Rune: ' ', FG: b.currentFG, BG: b.currentBG}
}

func (b *OffscreenBuffer) logf(format string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}
