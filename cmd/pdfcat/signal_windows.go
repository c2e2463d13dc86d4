//go:build windows

package main

import "os"

// shutdownSignals abort a run in progress; no output file is written.
// syscall.SIGTERM is not delivered on Windows.
var shutdownSignals = []os.Signal{os.Interrupt}
