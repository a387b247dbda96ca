package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report.
	WriteReport(r *Report) error

	// Close writes any pending output.
	Close() error
}

// NewReportWriter returns a JSON or text writer.
func NewReportWriter(w io.Writer, jsonFormat bool) ReportWriter {
	if jsonFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes reports as readable text, immediately.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes the report's header, board, moves and legal moves.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder

	if r.Name != "" {
		fmt.Fprintf(&sb, "== %s ==\n", r.Name)
	}
	if r.Error != "" {
		fmt.Fprintf(&sb, "error: %s\n\n", r.Error)
		_, err := io.WriteString(tw.w, sb.String())
		return err
	}

	for i, rank := range r.Board {
		fmt.Fprintf(&sb, "%d %s\n", 8-i, strings.Join(strings.Split(rank, ""), " "))
	}
	if len(r.Board) > 0 {
		sb.WriteString("  a b c d e f g h\n")
	}

	if len(r.Moves) > 0 {
		names := make([]string, 0, len(r.Moves))
		for _, e := range r.Moves {
			names = append(names, e.String())
		}
		fmt.Fprintf(&sb, "moves: %s\n", strings.Join(names, " "))
	}
	fmt.Fprintf(&sb, "ply %d, %s to move: %s\n", r.Ply, r.ToMove, r.Status)

	for _, from := range origins(r.Legal) {
		fmt.Fprintf(&sb, "  %s: %s\n", from, strings.Join(r.Legal[from], " "))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Games []*Report `json:"games"`
}

// JSONWriter buffers reports and writes them as one JSON document on Close.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport buffers a report.
func (jw *JSONWriter) WriteReport(r *Report) error {
	jw.reports = append(jw.reports, r)
	return nil
}

// Close writes all buffered reports.
func (jw *JSONWriter) Close() error {
	out := &JSONOutput{Games: jw.reports}
	if out.Games == nil {
		out.Games = []*Report{}
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)
	jw.reports = jw.reports[:0]
	return err
}
