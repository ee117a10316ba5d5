// Package diag copies a formatted crash diagnostic to the system
// clipboard so it can be pasted directly into a bug report. It is only
// ever called from a command's top-level recover handler, never from
// within the core emulation packages.
package diag

import (
	"fmt"

	"golang.design/x/clipboard"
)

// CopyPanic formats the recovered panic value and the CPU program
// counter at the time of the crash, and copies the result to the
// clipboard as plain text. Errors from clipboard.Init are returned
// rather than swallowed, since a caller may want to fall back to
// printing the diagnostic instead.
func CopyPanic(recovered interface{}, pc uint16) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("diag: clipboard unavailable: %w", err)
	}
	text := fmt.Sprintf("gb-emulator crash\nPC: %#04x\npanic: %v\n", pc, recovered)
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
