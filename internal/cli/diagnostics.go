package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticInfo
	DiagnosticVerbose
)

// Diagnostics provides structured, user-friendly terminal output
type Diagnostics struct {
	level    DiagnosticLevel
	output   io.Writer
	errorOut io.Writer
}

// NewDiagnostics creates a diagnostics system writing to stdout/stderr
func NewDiagnostics(level DiagnosticLevel) *Diagnostics {
	return &Diagnostics{
		level:    level,
		output:   os.Stdout,
		errorOut: os.Stderr,
	}
}

// NewQuietDiagnostics creates a diagnostics system that only shows errors
func NewQuietDiagnostics() *Diagnostics {
	return NewDiagnostics(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostics system with full output
func NewVerboseDiagnostics() *Diagnostics {
	return NewDiagnostics(DiagnosticVerbose)
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgBlue)
	verboseColor = color.New(color.FgHiBlack)
	headerColor  = color.New(color.Bold)
)

// Error outputs error messages (always shown unless silent)
func (d *Diagnostics) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		errorColor.Fprint(d.errorOut, "ERROR ")
		fmt.Fprintf(d.errorOut, format+"\n", args...)
	}
}

// Info outputs informational messages
func (d *Diagnostics) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		infoColor.Fprint(d.output, "INFO ")
		fmt.Fprintf(d.output, format+"\n", args...)
	}
}

// Success outputs success messages with emphasis
func (d *Diagnostics) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		successColor.Fprint(d.output, "OK ")
		fmt.Fprintf(d.output, format+"\n", args...)
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *Diagnostics) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		verboseColor.Fprintf(d.output, format+"\n", args...)
	}
}

// Section creates a prominent section header
func (d *Diagnostics) Section(title string) {
	if d.level >= DiagnosticInfo {
		headerColor.Fprintf(d.output, "%s\n", title)
	}
}

// List outputs a bulleted list item
func (d *Diagnostics) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "  - "+format+"\n", args...)
	}
}

// Print outputs a plain line regardless of color settings
func (d *Diagnostics) Print(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, format+"\n", args...)
	}
}

// SetOutput redirects all non-error output, for tests
func (d *Diagnostics) SetOutput(w io.Writer) {
	d.output = w
}

// SetErrorOutput redirects error output, for tests
func (d *Diagnostics) SetErrorOutput(w io.Writer) {
	d.errorOut = w
}
