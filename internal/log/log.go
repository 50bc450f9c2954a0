// Package log is a minimal leveled key-value logger writing to stderr.
// Operation boundaries (store calls, imports, skipped events) log here so
// engine packages never print to stdout themselves.
package log

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var (
	mu       sync.Mutex
	minLevel = LevelInfo
	out      = os.Stderr
)

func SetLevel(l Level) {
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

func Debug(msg string, kv ...any) { write(LevelDebug, "DEBUG", msg, kv...) }

func Info(msg string, kv ...any) { write(LevelInfo, "INFO", msg, kv...) }

func Error(msg string, err error, kv ...any) {
	write(LevelError, "ERROR", msg, append([]any{"err", err}, kv...)...)
}

func write(l Level, tag, msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}
	line := time.Now().Format(time.RFC3339) + " [" + tag + "] " + msg
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		line += " " + key + "=" + fmt.Sprint(kv[i+1])
	}
	fmt.Fprintln(out, line)
}
