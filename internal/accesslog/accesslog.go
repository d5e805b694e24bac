// Package accesslog writes the one-line console record emitted for every
// file request.
package accesslog

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

const arrow = "⟶ "

var (
	okMark   = color.New(color.FgGreen)
	failMark = color.New(color.FgRed, color.Bold)
	query    = color.New(color.FgGreen)
	missing  = color.New(color.FgRed)
	sep      = color.New(color.FgMagenta, color.Bold)
	rootDir  = color.New(color.FgYellow)
	resolved = color.New(color.FgBlue)
)

// Logger serializes records so concurrent requests never interleave
// within a line.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
}

// New returns a Logger on out. A nil out means color.Output, which is
// stdout. fatih/color already drops escapes when stdout is not a
// terminal or NO_COLOR is set.
func New(out io.Writer) *Logger {
	if out == nil {
		out = color.Output
	}

	return &Logger{out: out}
}

// Hit records a request that resolved to path under root.
func (l *Logger) Hit(requested, root, path string) {
	l.write(fmt.Sprintf("%s %s %s %s %s %s\n",
		okMark.Sprint("✓"),
		query.Sprint(requested),
		sep.Sprint(arrow),
		rootDir.Sprint(root),
		sep.Sprint(arrow),
		resolved.Sprint(path),
	))
}

// Miss records a request that matched nothing.
func (l *Logger) Miss(requested string) {
	l.write(fmt.Sprintf("%s %s\n", failMark.Sprint("✘ "), missing.Sprint(requested)))
}

func (l *Logger) write(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.out, line)
}
