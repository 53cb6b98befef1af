// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ansi/writer.go
// Summary: Streaming escape-sequence writer with previous-style tracking.
// Usage: Wrap the pty or output stream; WriteStyled emits only the SGR
//        transition needed since the last write.

package ansi

import (
	"io"
)

// Writer emits styled text to an underlying stream, tracking the last style
// it sent so consecutive spans in the same style cost no extra bytes.
type Writer struct {
	w    io.Writer
	cur  Style
	buf  []byte
	open bool // a non-default style is active on the stream
}

// NewWriter wraps an output stream. The stream is assumed to start in the
// default (reset) style.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, cur: DefaultStyle, buf: make([]byte, 0, 256)}
}

// WriteStyled writes text in the given style, emitting the minimal SGR
// transition from the previously written style.
func (w *Writer) WriteStyled(text string, style Style) error {
	w.buf = appendTransition(w.buf[:0], w.cur, style)
	w.buf = append(w.buf, text...)
	w.cur = style
	w.open = !style.IsDefault()
	_, err := w.w.Write(w.buf)
	return err
}

// Write passes raw bytes through unchanged. The caller owns any escape
// sequences inside; style tracking is not updated.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Reset returns the stream to the default style. A no-op when the stream is
// already there.
func (w *Writer) Reset() error {
	if !w.open {
		return nil
	}
	w.cur = DefaultStyle
	w.open = false
	_, err := io.WriteString(w.w, reset)
	return err
}

// Style returns the style most recently written to the stream.
func (w *Writer) Style() Style { return w.cur }
