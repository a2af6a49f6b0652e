// Package diagnostic provides structured diagnostics for the dartify
// pipeline. Recoverable issues are collected here and surfaced after all
// source units are processed; one unit's diagnostics never block another.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Code is a stable machine-readable identifier for a diagnostic class.
type Code string

const (
	CodeUnsupportedSyntax Code = "D1001" // syntax kind the resolver cannot express
	CodeDepthExceeded     Code = "D1002" // recursion ceiling hit, degraded to dynamic
	CodeHoistCollision    Code = "D2001" // generated name clashed with a top-level name
	CodeMergeConflict     Code = "D3001" // mixed-kind declarations sharing one name
	CodeHoistMerge        Code = "D3002" // hoisted interface clashed during transformation
	CodeParseFailure      Code = "D4001" // source unit could not be parsed
	CodeInternalFault     Code = "D5001" // unexpected fault inside a pass
	CodeConfigInvalid     Code = "D6001" // configuration file rejected
)

// Diagnostic represents a structured diagnostic record.
type Diagnostic struct {
	Severity Severity
	Code     Code
	File     string // source file path
	Line     int    // 1-based line number (0 = unknown)
	Column   int    // 1-based column number (0 = unknown)
	Message  string
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.File != "" {
		sb.WriteString(d.File)
		if d.Line > 0 {
			fmt.Fprintf(&sb, ":%d", d.Line)
			if d.Column > 0 {
				fmt.Fprintf(&sb, ":%d", d.Column)
			}
		}
		sb.WriteString(" - ")
	}

	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")

	if d.Code != "" {
		sb.WriteString("[")
		sb.WriteString(string(d.Code))
		sb.WriteString("] ")
	}

	sb.WriteString(d.Message)
	return sb.String()
}

// Collector collects diagnostics across a whole run.
type Collector struct {
	diagnostics []Diagnostic
	quiet       bool // if true, suppress warnings and infos
}

// NewCollector creates a new diagnostic collector.
func NewCollector(quiet bool) *Collector {
	return &Collector{quiet: quiet}
}

// Warn adds a warning diagnostic.
func (c *Collector) Warn(code Code, file string, line, column int, message string) {
	if c == nil || c.quiet {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		File:     file,
		Line:     line,
		Column:   column,
		Message:  message,
	})
}

// Warnf adds a formatted warning diagnostic.
func (c *Collector) Warnf(code Code, file string, line, column int, format string, args ...any) {
	c.Warn(code, file, line, column, fmt.Sprintf(format, args...))
}

// Error adds an error diagnostic.
func (c *Collector) Error(code Code, file string, line, column int, message string) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		File:     file,
		Line:     line,
		Column:   column,
		Message:  message,
	})
}

// Errorf adds a formatted error diagnostic.
func (c *Collector) Errorf(code Code, file string, line, column int, format string, args ...any) {
	c.Error(code, file, line, column, fmt.Sprintf(format, args...))
}

// Diagnostics returns all collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

// HasErrors returns true if any error-level diagnostics exist.
func (c *Collector) HasErrors() bool {
	if c == nil {
		return false
	}
	for _, d := range c.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error diagnostics.
func (c *Collector) ErrorCount() int {
	return c.count(SeverityError)
}

// WarningCount returns the number of warning diagnostics.
func (c *Collector) WarningCount() int {
	return c.count(SeverityWarning)
}

func (c *Collector) count(sev Severity) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, d := range c.diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// FormatAll formats all diagnostics as a multi-line string.
func (c *Collector) FormatAll() string {
	if c == nil || len(c.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range c.diagnostics {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary returns a terse count like "2 error(s), 1 warning(s)".
func (c *Collector) Summary() string {
	if c == nil {
		return ""
	}
	warnings := c.WarningCount()
	errors := c.ErrorCount()

	parts := []string{}
	if errors > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", errors))
	}
	if warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", warnings))
	}
	if len(parts) == 0 {
		return "no issues"
	}
	return strings.Join(parts, ", ")
}
