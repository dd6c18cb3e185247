// Package output formats analysis results and played games as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/negamax-chess-go/internal/worker"
)

// ResultWriter is the interface for writing batch analysis results.
type ResultWriter interface {
	// WriteResult writes a single result.
	WriteResult(r worker.ProcessResult) error

	// Flush writes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases the writer. For batch writers (like JSON),
	// this also writes any pending output.
	Close() error
}

// TextWriter writes one tab-separated line per result:
// line number, status, move, score and node count.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes r immediately.
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	var err error
	switch {
	case r.Error != nil:
		_, err = fmt.Fprintf(tw.w, "%d\terror\t%v\n", r.Index+1, r.Error)
	case !r.Found:
		_, err = fmt.Fprintf(tw.w, "%d\t%s\t-\n", r.Index+1, r.Status)
	default:
		_, err = fmt.Fprintf(tw.w, "%d\t%s\t%s\t%d\t%d\n",
			r.Index+1, r.Status, r.Move.Notation(), r.Score, r.Nodes)
	}
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format. It buffers results and writes
// them as a single document on Close or Flush, unless created with
// NewJSONWriterSingle.
type JSONWriter struct {
	w       io.Writer
	results []JSONResult
	single  bool // write each result as its own JSON object
	written bool // a document has been written
}

// NewJSONWriter creates a JSON writer that batches results into one array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each result
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteResult buffers r (or writes it immediately in single mode).
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	jr := ResultToJSON(r)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(jr)
	}
	jw.results = append(jw.results, jr)
	return nil
}

// Flush writes all buffered results as a JSON document. The first flush
// always writes one, with an empty results array if nothing was buffered.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.results) == 0 && jw.written) {
		return nil
	}

	results := jw.results
	if results == nil {
		results = []JSONResult{}
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONBatch{Results: results})
	jw.written = true

	jw.results = jw.results[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// WriteAll writes every result to rw and closes it.
func WriteAll(rw ResultWriter, results []worker.ProcessResult) error {
	for _, r := range results {
		if err := rw.WriteResult(r); err != nil {
			return err
		}
	}
	return rw.Close()
}
