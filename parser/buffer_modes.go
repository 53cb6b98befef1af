// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_modes.go
// Summary: ANSI (SM/RM) and DEC private mode handling, plus soft reset.
// Usage: Part of the OffscreenBuffer operation set.

package parser

// processANSIMode handles SM/RM without the '?' prefix. Unrecognized mode
// numbers are logged and otherwise ignored; unknown modes are never an
// error.
func (b *OffscreenBuffer) processANSIMode(command rune, params []int) {
	set := command == 'h'
	for _, mode := range params {
		switch mode {
		case 4: // IRM - Insert/Replace Mode
			b.insertMode = set
		default:
			b.logf("parser: ignoring ANSI mode %d%c", mode, command)
		}
	}
}

// processPrivateMode handles DECSET/DECRST (CSI ? ... h/l).
func (b *OffscreenBuffer) processPrivateMode(command rune, params []int) {
	set := command == 'h'
	for _, mode := range params {
		switch mode {
		case 6: // DECOM - Origin Mode
			b.originMode = set
			if set {
				b.SetCursorPos(b.top(), 0)
			} else {
				b.SetCursorPos(0, 0)
			}
		case 7: // DECAWM - Auto-Wrap Mode
			b.autoWrapMode = set
			if !set {
				b.wrapNext = false
			}
		case 25: // DECTCEM - Text Cursor Enable
			b.SetCursorVisible(set)
		default:
			b.logf("parser: ignoring private mode ?%d%c", mode, command)
		}
	}
}

// SoftReset (DECSTR, CSI ! p) resets modes, margins, saved cursor and SGR
// state without clearing the screen or moving the cursor.
func (b *OffscreenBuffer) SoftReset() {
	saved := b.cursor
	b.savedCursor = nil
	b.insertMode = false
	b.originMode = false
	b.autoWrapMode = true
	b.wrapNext = false
	b.cursorVisible = true
	b.marginsSet = false
	b.charset = CharsetASCII
	b.currentFG = DefaultFG
	b.currentBG = DefaultBG
	b.currentAttr = 0
	b.SetCursorPos(saved.Row, saved.Col)
}
