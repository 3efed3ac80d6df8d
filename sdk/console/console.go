// Package console writes user facing command output.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console prints informational lines to out and error lines to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer
	info   *color.Color
	err    *color.Color
	warn   *color.Color
}

// New creates a Console writing to the given streams. Nil streams default to
// stdout and stderr.
func New(out, errOut io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Console{
		out:    out,
		errOut: errOut,
		info:   color.New(color.FgGreen),
		err:    color.New(color.FgRed),
		warn:   color.New(color.FgYellow),
	}
}

// Info prints a success or progress line.
func (c *Console) Info(format string, args ...any) {
	c.info.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Warn prints a non fatal notice.
func (c *Console) Warn(format string, args ...any) {
	c.warn.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Error prints a failure line to the error stream.
func (c *Console) Error(format string, args ...any) {
	c.err.Fprintln(c.errOut, fmt.Sprintf(format, args...))
}

// NoColor disables ANSI colors for every Console in the process.
func NoColor() {
	color.NoColor = true
}
