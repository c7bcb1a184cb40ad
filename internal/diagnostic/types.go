package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"jsonschema2crateo/internal/common"
)

// Diagnostic codes emitted by the translator.
const (
	CodeClassCollision  = "class_collision"
	CodeUnknownType     = "unknown_type"
	CodeMissingRoot     = "missing_root_dataset"
	CodeSkippedNode     = "skipped_node"
	CodeMissingLabel    = "missing_label"
	CodeUnexpandedID    = "unexpanded_identifier"
	CodeVocabularyUnset = "vocabulary_unavailable"
)

// Diagnostics holds all diagnostic information from a translation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Class identifies which profile class this relates to (if any).
	Class string
	// Property identifies which property or graph node this relates to (if any).
	Property string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, class, property string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Class: class, Property: property})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, class, property string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Class: class, Property: property})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, class, property string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Class: class, Property: property})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Escalate turns every warning into an error. Used by strict mode.
func (d *Diagnostics) Escalate() {
	for _, w := range d.Warnings {
		w.Severity = SeverityError
		d.Errors = append(d.Errors, w)
	}

	d.Warnings = nil
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Log writes every diagnostic to logger at a level matching its severity.
func (d *Diagnostics) Log(ctx context.Context, logger *slog.Logger) {
	if logger == nil {
		return
	}

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			logger.Log(ctx, diag.Severity.level(), diag.Message,
				slog.String("code", diag.Code),
				slog.String("class", diag.Class),
				slog.String("property", diag.Property),
				slog.Any("suggestions", diag.Suggestions))
		}
	}
}

func (s Severity) level() slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Class != "" {
		prefix = append(prefix, "["+d.Class+"]")
	}

	if d.Property != "" {
		prefix = append(prefix, d.Property)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
