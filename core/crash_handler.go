package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal to a sane state
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
)

// SetCrashTerminal registers the terminal to restore before a crash report is printed
func SetCrashTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()
	if t != nil {
		t.Fini()
	}

	// Terminal is out of raw mode after Fini, plain newlines are safe
	fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Recover is deferred at the top of goroutines that touch the terminal
// Panics are routed to HandleCrash so the terminal is restored first
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}
