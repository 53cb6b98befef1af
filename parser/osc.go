// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/osc.go
// Summary: Operating System Command events (title, icon, hyperlink).
// Usage: Events are queued on the OffscreenBuffer and drained by ApplyBytes.

package parser

// OscEventKind identifies the application-level event an OSC sequence produced.
type OscEventKind int

const (
	// OscSetTitleIcon sets both window title and icon name (OSC 0).
	OscSetTitleIcon OscEventKind = iota
	// OscSetIcon sets the icon name only (OSC 1).
	OscSetIcon
	// OscSetTitle sets the window title only (OSC 2).
	OscSetTitle
	// OscHyperlinkStart opens a hyperlink region (OSC 8 with a URI).
	OscHyperlinkStart
	// OscHyperlinkEnd closes the current hyperlink region (OSC 8 with an
	// empty URI).
	OscHyperlinkEnd
)

func (k OscEventKind) String() string {
	switch k {
	case OscSetTitleIcon:
		return "set-title-icon"
	case OscSetIcon:
		return "set-icon"
	case OscSetTitle:
		return "set-title"
	case OscHyperlinkStart:
		return "hyperlink-start"
	case OscHyperlinkEnd:
		return "hyperlink-end"
	}
	return "unknown"
}

// OscEvent is one notification produced by a complete OSC sequence.
// Exactly one event is queued per recognized sequence.
type OscEvent struct {
	Kind    OscEventKind
	Payload string // title text, icon name, or hyperlink URI
	Params  string // hyperlink parameter list (e.g. "id=xyz"), empty otherwise
}
