// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/performer.go
// Summary: Byte-stream lexer and dispatcher driving the OffscreenBuffer.
// Usage: Feed raw pty output to ApplyBytes; drain the returned queues.
// Notes: Lexer state survives across calls, so sequences split between
//        reads are never lost.

package parser

import (
	"log"
	"strconv"
	"strings"
	"unicode/utf8"
)

// State is the lexer state between bytes.
type State int

const (
	StateGround State = iota
	StateEscape
	StateEscapeHash
	StateCSI
	StateOSC
	StateOSCEscape
	StateCharset
)

const (
	maxOscLength = 4096
	maxCSIParams = 32
	maxParamVal  = 1 << 20
)

// Performer tokenizes a VT100/ANSI byte stream and applies each recognized
// event to exactly one OffscreenBuffer. Malformed runs are discarded with a
// diagnostic and never leave the buffer partially mutated.
type Performer struct {
	buffer *OffscreenBuffer
	state  State

	params        []int
	currentParam  int
	paramOverflow bool
	privateMark   byte
	intermediate  byte

	oscBuf      []byte
	oscOverflow bool

	pending []byte // trailing bytes of an incomplete UTF-8 rune

	logger *log.Logger
}

// PerformerOption configures a Performer at construction.
type PerformerOption func(*Performer)

// WithDiagnostics directs the performer's diagnostics to the given logger.
func WithDiagnostics(l *log.Logger) PerformerOption {
	return func(p *Performer) { p.logger = l }
}

// NewPerformer creates a performer bound to one terminal model. The
// performer inherits the buffer's logger unless overridden.
func NewPerformer(buffer *OffscreenBuffer, opts ...PerformerOption) *Performer {
	p := &Performer{
		buffer: buffer,
		state:  StateGround,
		params: make([]int, 0, 16),
		oscBuf: make([]byte, 0, 128),
		logger: buffer.logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Buffer returns the terminal model this performer drives.
func (p *Performer) Buffer() *OffscreenBuffer { return p.buffer }

// ApplyBytes consumes all complete events in data, mutating the buffer in
// place, and returns the drained notification queues: OSC-derived
// application events and DSR/DA replies for the caller to transmit back.
// Partial trailing sequences are held for the next call.
func (p *Performer) ApplyBytes(data []byte) ([]OscEvent, [][]byte) {
	for i := 0; i < len(data); {
		consumed := p.step(data[i])
		if consumed {
			i++
		}
	}
	return p.buffer.drainQueues()
}

// step processes one byte; it returns false when the byte must be
// re-examined in the new state (an ESC aborting an OSC body).
func (p *Performer) step(c byte) bool {
	switch p.state {
	case StateGround:
		p.stepGround(c)
	case StateEscape:
		p.stepEscape(c)
	case StateEscapeHash:
		p.state = StateGround
		if c == '8' {
			p.buffer.Alignment()
		} else {
			p.logf("parser: unhandled ESC # %q", c)
		}
	case StateCSI:
		p.stepCSI(c)
	case StateOSC:
		if c == 0x07 {
			p.finishOSC()
			p.state = StateGround
		} else if c == 0x1b {
			p.state = StateOSCEscape
		} else if len(p.oscBuf) >= maxOscLength {
			p.oscOverflow = true
		} else {
			p.oscBuf = append(p.oscBuf, c)
		}
	case StateOSCEscape:
		if c == '\\' { // ST
			p.finishOSC()
			p.state = StateGround
		} else {
			p.logf("parser: OSC aborted by ESC %q, discarding", c)
			p.oscBuf = p.oscBuf[:0]
			p.oscOverflow = false
			p.state = StateEscape
			return false
		}
	case StateCharset:
		p.state = StateGround
		switch c {
		case 'B':
			p.buffer.charset = CharsetASCII
		case '0':
			p.buffer.charset = CharsetDECGraphics
		default:
			p.logf("parser: unhandled charset designator %q", c)
		}
	}
	return true
}

func (p *Performer) stepGround(c byte) {
	if len(p.pending) > 0 && (c < 0x80 || c >= 0xc0) {
		// Anything but a continuation byte means the pending rune never
		// completes.
		p.dropPending()
	}
	switch {
	case c == 0x1b:
		p.state = StateEscape
	case c == '\n', c == '\v', c == '\f':
		p.buffer.LineFeed()
	case c == '\r':
		p.buffer.CarriageReturn()
	case c == '\b':
		p.buffer.Backspace()
	case c == '\t':
		p.buffer.Tab()
	case c < 0x20 || c == 0x7f:
		// Remaining C0 controls (BEL, SO, SI, ...) are absorbed.
	case c < 0x80:
		p.buffer.placeChar(rune(c))
	default:
		p.pending = append(p.pending, c)
		if !utf8.FullRune(p.pending) {
			if len(p.pending) >= utf8.UTFMax {
				p.dropPending()
			}
			return
		}
		r, size := utf8.DecodeRune(p.pending)
		if r == utf8.RuneError && size <= 1 {
			p.dropPending()
			return
		}
		p.pending = p.pending[:0]
		p.buffer.placeChar(r)
	}
}

func (p *Performer) dropPending() {
	p.logf("parser: dropping malformed UTF-8 run % x", p.pending)
	p.pending = p.pending[:0]
}

func (p *Performer) stepEscape(c byte) {
	p.state = StateGround
	switch c {
	case '[':
		p.state = StateCSI
		p.params = p.params[:0]
		p.currentParam = 0
		p.paramOverflow = false
		p.privateMark = 0
		p.intermediate = 0
	case ']':
		p.state = StateOSC
		p.oscBuf = p.oscBuf[:0]
		p.oscOverflow = false
	case '(':
		p.state = StateCharset
	case '#':
		p.state = StateEscapeHash
	case '7':
		p.buffer.SaveCursor()
	case '8':
		p.buffer.RestoreCursor()
	case 'D':
		p.buffer.Index()
	case 'M':
		p.buffer.ReverseIndex()
	case 'E':
		p.buffer.NextLine()
	case 'H':
		p.buffer.SetTabStop()
	case 'c':
		p.buffer.Reset()
	case '=', '>', '\\':
		// Keypad modes and stray ST: nothing to do.
	default:
		p.logf("parser: unhandled ESC sequence %q", c)
	}
}

func (p *Performer) stepCSI(c byte) {
	switch {
	case c >= '0' && c <= '9':
		if p.currentParam < maxParamVal {
			p.currentParam = p.currentParam*10 + int(c-'0')
		}
	case c == ';' || c == ':':
		p.pushParam()
	case c >= '<' && c <= '?':
		p.privateMark = c
	case c >= ' ' && c <= '/':
		p.intermediate = c
	case c >= '@' && c <= '~':
		p.pushParam()
		p.state = StateGround
		if p.paramOverflow {
			p.logf("parser: discarding CSI %q with too many parameters", c)
			return
		}
		p.dispatchCSI(rune(c))
	default:
		// A control byte has no business inside a CSI sequence; drop the
		// whole run without touching the buffer.
		p.logf("parser: malformed CSI aborted by byte %#02x", c)
		p.state = StateGround
	}
}

func (p *Performer) pushParam() {
	if len(p.params) >= maxCSIParams {
		p.paramOverflow = true
		return
	}
	p.params = append(p.params, p.currentParam)
	p.currentParam = 0
}

// dispatchCSI maps a complete CSI sequence onto one buffer operation.
func (p *Performer) dispatchCSI(command rune) {
	b := p.buffer
	params := p.params
	param := func(i, def int) int {
		if i < len(params) && params[i] != 0 {
			return params[i]
		}
		return def
	}

	if p.intermediate == '!' && command == 'p' { // DECSTR
		b.SoftReset()
		return
	}
	if p.intermediate != 0 {
		p.logf("parser: unhandled CSI intermediate %q final %q", p.intermediate, command)
		return
	}

	switch p.privateMark {
	case 0:
	case '?':
		switch command {
		case 'h', 'l':
			b.processPrivateMode(command, params)
		default:
			p.logf("parser: unhandled private CSI ?%q", command)
		}
		return
	case '>':
		if command == 'c' {
			b.SecondaryDeviceAttributes()
		} else {
			p.logf("parser: unhandled private CSI >%q", command)
		}
		return
	default:
		p.logf("parser: unhandled private CSI %q%q", p.privateMark, command)
		return
	}

	switch command {
	case 'A':
		b.MoveCursorUp(param(0, 1))
	case 'B':
		b.MoveCursorDown(param(0, 1))
	case 'C':
		b.MoveCursorForward(param(0, 1))
	case 'D':
		b.MoveCursorBackward(param(0, 1))
	case 'E': // CNL
		b.MoveCursorDown(param(0, 1))
		b.CarriageReturn()
	case 'F': // CPL
		b.MoveCursorUp(param(0, 1))
		b.CarriageReturn()
	case 'G', '`': // CHA / HPA
		b.CursorHorizontalAbsolute(param(0, 1))
	case 'H', 'f': // CUP
		b.CursorPosition(param(0, 1), param(1, 1))
	case 'd': // VPA
		b.VerticalPositionAbsolute(param(0, 1))
	case 'a': // HPR
		b.MoveCursorForward(param(0, 1))
	case 'e': // VPR
		b.MoveCursorDown(param(0, 1))
	case 'I': // CHT
		b.TabForward(param(0, 1))
	case 'Z': // CBT
		b.TabBackward(param(0, 1))
	case 'J':
		b.EraseDisplay(param(0, 0))
	case 'K':
		b.EraseLine(param(0, 0))
	case '@':
		b.InsertCharacters(param(0, 1))
	case 'P':
		b.DeleteCharacters(param(0, 1))
	case 'X':
		b.EraseCharacters(param(0, 1))
	case 'b':
		b.RepeatCharacter(param(0, 1))
	case 'L':
		b.InsertLines(param(0, 1))
	case 'M':
		b.DeleteLines(param(0, 1))
	case 'S':
		b.ScrollUp(param(0, 1))
	case 'T':
		b.ScrollDown(param(0, 1))
	case 'r': // DECSTBM
		b.SetMargins(param(0, 0), param(1, 0))
	case 'h', 'l':
		b.processANSIMode(command, params)
	case 'm':
		b.handleSGR(params)
	case 'n':
		b.DeviceStatusReport(param(0, 0))
	case 'c':
		b.DeviceAttributes()
	case 's':
		b.SaveCursor()
	case 'u':
		b.RestoreCursor()
	case 'g':
		b.ClearTabStop(param(0, 0))
	case 'q', 't':
		// DECSCA and window manipulation: absorbed.
	default:
		p.logf("parser: unhandled CSI sequence %q, params %v", command, params)
	}
}

// finishOSC turns a complete OSC body into exactly one queued event.
func (p *Performer) finishOSC() {
	body := p.oscBuf
	p.oscBuf = p.oscBuf[:0]
	if p.oscOverflow {
		p.oscOverflow = false
		p.logf("parser: discarding oversized OSC sequence")
		return
	}
	parts := strings.SplitN(string(body), ";", 2)
	code, err := strconv.Atoi(parts[0])
	if err != nil {
		p.logf("parser: malformed OSC code %q", parts[0])
		return
	}
	payload := ""
	if len(parts) == 2 {
		payload = parts[1]
	}
	switch code {
	case 0:
		p.buffer.enqueueOsc(OscEvent{Kind: OscSetTitleIcon, Payload: payload})
	case 1:
		p.buffer.enqueueOsc(OscEvent{Kind: OscSetIcon, Payload: payload})
	case 2:
		p.buffer.enqueueOsc(OscEvent{Kind: OscSetTitle, Payload: payload})
	case 8:
		link := strings.SplitN(payload, ";", 2)
		if len(link) != 2 {
			p.logf("parser: malformed OSC 8 payload %q", payload)
			return
		}
		ev := OscEvent{Kind: OscHyperlinkStart, Params: link[0], Payload: link[1]}
		if link[1] == "" {
			ev.Kind = OscHyperlinkEnd
		}
		p.buffer.enqueueOsc(ev)
	default:
		p.logf("parser: ignoring OSC code %d", code)
	}
}

func (p *Performer) logf(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
