//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals abort a run in progress; no output file is written.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
