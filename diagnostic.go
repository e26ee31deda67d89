package cgrammar

import "sort"

// Severity classifies a Diagnostic, per spec.md §6 "Diagnostic format".
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Diagnostic is the (severity, span, message) triple the lexer and
// parser collect instead of ever failing outright. No diagnostic kills
// the parse; the producing component always returns a best-effort
// result alongside the diagnostics it appended.
type Diagnostic struct {
	Severity Severity
	Span     Span
	Message  string
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// Sink collects diagnostics in emission order and can sort them by
// span start on request, per spec.md §5 "Diagnostics are stable-ordered
// by span start".
type Sink struct {
	diags []Diagnostic
}

// NewSink creates an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Error appends an error-severity diagnostic.
func (s *Sink) Error(span Span, message string) {
	s.diags = append(s.diags, Diagnostic{Severity: SeverityError, Span: span, Message: message})
}

// Warning appends a warning-severity diagnostic.
func (s *Sink) Warning(span Span, message string) {
	s.diags = append(s.diags, Diagnostic{Severity: SeverityWarning, Span: span, Message: message})
}

// Note appends a note-severity diagnostic.
func (s *Sink) Note(span Span, message string) {
	s.diags = append(s.diags, Diagnostic{Severity: SeverityNote, Span: span, Message: message})
}

// Append adds a diagnostic produced elsewhere (e.g. surfaced from a
// ParsingError) to the sink.
func (s *Sink) Append(d Diagnostic) {
	s.diags = append(s.diags, d)
}

// Diagnostics returns the diagnostics collected so far, stable-sorted
// by span start.
func (s *Sink) Diagnostics() []Diagnostic {
	sort.SliceStable(s.diags, func(i, j int) bool {
		return s.diags[i].Span.Start < s.diags[j].Span.Start
	})
	return s.diags
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
