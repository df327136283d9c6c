package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.Mutex
	crashReset func()
	crashExit  = os.Exit
)

// SetCrashReset registers the terminal restore function run before a crash report
// Pass nil to clear it, e.g. after the screen has been finalized
func SetCrashReset(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashReset = fn
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	reset := crashReset
	crashMu.Unlock()

	// Restore terminal to sane state before writing to stderr
	if reset != nil {
		reset()
	}

	// Use \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
