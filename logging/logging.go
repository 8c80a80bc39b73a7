// Package logging sets up apex/log for the cachesolve command.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/apex/log"
)

// EnvLevel names the environment variable consulted by ResolveLevel.
const EnvLevel = "CACHESOLVE_LOG"

// Init installs a Handler writing to w and sets the level of the apex/log
// package logger.
func Init(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	log.SetHandler(NewHandler(w))
	log.SetLevel(lvl)

	return nil
}

// ResolveLevel picks the first non-empty of flag, $CACHESOLVE_LOG and
// fallback.
func ResolveLevel(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvLevel); env != "" {
		return env
	}

	return fallback
}

// Handler formats entries as "LEVEL message key=value ..." lines.
type Handler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHandler returns a Handler writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

// HandleLog implements the log.Handler interface.
func (h *Handler) HandleLog(e *log.Entry) error {
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(e.Level.String()))
	sb.WriteByte(' ')
	sb.WriteString(e.Message)

	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(&sb, " %s=%v", k, e.Fields[k])
	}
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())

	return err
}
