package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	debugEnabled bool
	debugMu      sync.Mutex
	debugFile    *os.File
)

// EnableDebugLogging switches the session log on. Off by default so a
// normal run never touches the filesystem.
func EnableDebugLogging(enabled bool) {
	debugEnabled = enabled
}

// DebugLogf records an informational line in the session log.
func DebugLogf(format string, args ...any) {
	debugWrite("debug", format, args...)
}

// DebugWarnf records a degraded-but-running condition (audio init failed,
// sync offline) so a log can be scanned for trouble without reading every
// line.
func DebugWarnf(format string, args ...any) {
	debugWrite("warn", format, args...)
}

func debugWrite(level, format string, args ...any) {
	if !debugEnabled {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugFile == nil {
		path := filepath.Join(os.TempDir(), "tetrs-debug.log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			// Unwritable temp dir: stay quiet for the rest of the session.
			debugEnabled = false
			return
		}
		debugFile = file
		_, _ = fmt.Fprintf(debugFile, "%s [debug] session start pid=%d\n",
			time.Now().Format(time.RFC3339), os.Getpid())
	}
	message := strings.ReplaceAll(fmt.Sprintf(format, args...), "\n", " ")
	_, _ = fmt.Fprintf(debugFile, "%s [%s] %s\n", time.Now().Format(time.RFC3339), level, message)
}
