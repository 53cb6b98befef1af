// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/report_test.go
// Summary: Tests for DSR and DA reply queuing.
// Usage: Run with `go test`.

package parser

import (
	"testing"
)

// TestCursorPositionReport tests DSR 6 - ESC[6n
func TestCursorPositionReport(t *testing.T) {
	h := NewTestHarness(t, 80, 24)
	h.buffer.SetCursorPos(4, 2)
	h.SendSeq("\x1b[6n")
	if len(h.Replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(h.Replies))
	}
	if got := string(h.Replies[0]); got != "\x1b[5;3R" {
		t.Errorf("CPR: expected %q, got %q", "\x1b[5;3R", got)
	}
}

// TestStatusReport tests DSR 5 - ESC[5n
func TestStatusReport(t *testing.T) {
	h := NewTestHarness(t, 80, 24)
	h.SendSeq("\x1b[5n")
	if len(h.Replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(h.Replies))
	}
	if got := string(h.Replies[0]); got != "\x1b[0n" {
		t.Errorf("status report: expected %q, got %q", "\x1b[0n", got)
	}
}

// TestDeviceAttributes tests DA (ESC[c) and DA2 (ESC[>c)
func TestDeviceAttributes(t *testing.T) {
	h := NewTestHarness(t, 80, 24)
	h.SendSeq("\x1b[c")
	if len(h.Replies) != 1 {
		t.Fatalf("DA: expected 1 reply, got %d", len(h.Replies))
	}
	if got := string(h.Replies[0]); got != "\x1b[?62;22c" {
		t.Errorf("DA: expected %q, got %q", "\x1b[?62;22c", got)
	}
	h.SendSeq("\x1b[>c")
	if len(h.Replies) != 1 {
		t.Fatalf("DA2: expected 1 reply, got %d", len(h.Replies))
	}
	if got := string(h.Replies[0]); got != "\x1b[>1;100;0c" {
		t.Errorf("DA2: expected %q, got %q", "\x1b[>1;100;0c", got)
	}
}

// TestRepliesDrainInOrder: multiple reports in one call come back in
// sequence order, and the queue is empty afterwards.
func TestRepliesDrainInOrder(t *testing.T) {
	h := NewTestHarness(t, 80, 24)
	h.SendSeq("\x1b[5n\x1b[2;2H\x1b[6n")
	if len(h.Replies) != 2 {
		t.Fatalf("expected 2 replies, got %d", len(h.Replies))
	}
	if got := string(h.Replies[0]); got != "\x1b[0n" {
		t.Errorf("first reply: got %q", got)
	}
	if got := string(h.Replies[1]); got != "\x1b[2;2R" {
		t.Errorf("second reply: got %q", got)
	}
	h.SendSeq("")
	if len(h.Replies) != 0 {
		t.Errorf("queue should be empty after draining, got %d replies", len(h.Replies))
	}
}

// TestCPRReportsAbsoluteInOriginMode: the position report uses absolute
// screen coordinates regardless of DECOM.
func TestCPRReportsAbsoluteInOriginMode(t *testing.T) {
	h := NewTestHarness(t, 80, 24)
	h.SendSeq("\x1b[5;10r")
	h.SendSeq("\x1b[?6h")
	h.SendSeq("\x1b[6n") // cursor homed to region origin, absolute row 5
	if len(h.Replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(h.Replies))
	}
	if got := string(h.Replies[0]); got != "\x1b[5;1R" {
		t.Errorf("CPR in origin mode: expected %q, got %q", "\x1b[5;1R", got)
	}
}

// TestUnknownDSRNoReply: unsupported DSR parameters produce nothing.
func TestUnknownDSRNoReply(t *testing.T) {
	h := NewTestHarness(t, 80, 24)
	h.SendSeq("\x1b[99n")
	if len(h.Replies) != 0 {
		t.Errorf("expected no reply for unknown DSR, got %d", len(h.Replies))
	}
}
