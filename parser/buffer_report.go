// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/buffer_report.go
// Summary: Device status reports and device attribute replies.
// Usage: Replies are queued for the caller to transmit; the buffer never
//        writes to the byte stream itself.

package parser

import "fmt"

// DeviceStatusReport (DSR, CSI n): parameter 5 queues a "terminal OK" reply,
// parameter 6 queues the cursor position in 1-based protocol coordinates.
// Anything else is logged as unsupported and produces no reply.
func (b *OffscreenBuffer) DeviceStatusReport(param int) {
	switch param {
	case 5:
		b.enqueueReply([]byte("\x1b[0n"))
	case 6:
		b.enqueueReply(fmt.Appendf(nil, "\x1b[%d;%dR", b.cursor.Row+1, b.cursor.Col+1))
	default:
		b.logf("parser: unsupported DSR parameter %d", param)
	}
}

// DeviceAttributes (DA, CSI c) queues the primary identification reply.
// We claim a VT220 with color support.
func (b *OffscreenBuffer) DeviceAttributes() {
	b.enqueueReply([]byte("\x1b[?62;22c"))
}

// SecondaryDeviceAttributes (DA2, CSI > c) queues the secondary
// identification reply: VT220-class, firmware 100, keyboard 0.
func (b *OffscreenBuffer) SecondaryDeviceAttributes() {
	b.enqueueReply([]byte("\x1b[>1;100;0c"))
}
