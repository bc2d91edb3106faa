package output

import (
	"io"
	"sync"

	"github.com/wafexport/wafexport/pkg/jsonutil"
	"github.com/wafexport/wafexport/pkg/waf"
)

// Compile-time interface checks.
var (
	_ Writer = (*JSONWriter)(nil)
	_ Writer = (*JSONLWriter)(nil)
)

// JSONWriter buffers bindings and writes a single indented JSON array on
// Close. Safe for concurrent use.
type JSONWriter struct {
	w        io.Writer
	mu       sync.Mutex
	bindings []waf.Binding
	closed   bool
}

// NewJSONWriter creates a JSON array writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, bindings: []waf.Binding{}}
}

// WriteBinding buffers one binding.
func (jw *JSONWriter) WriteBinding(b waf.Binding) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()
	jw.bindings = append(jw.bindings, b)
	return nil
}

// Flush is a no-op; the array is only complete on Close.
func (jw *JSONWriter) Flush() error { return nil }

// Close writes the buffered array. An export with zero rows still writes
// a valid empty array.
func (jw *JSONWriter) Close() error {
	jw.mu.Lock()
	defer jw.mu.Unlock()
	if jw.closed {
		return nil
	}
	jw.closed = true

	data, err := jsonutil.MarshalIndent(jw.bindings, "", "  ")
	if err != nil {
		return err
	}
	if _, err := jw.w.Write(data); err != nil {
		return err
	}
	if _, err := io.WriteString(jw.w, "\n"); err != nil {
		return err
	}
	if closer, ok := jw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// JSONLWriter streams bindings as newline-delimited JSON, one object per
// line, so rows can be processed by jq/grep as they are produced. Safe for
// concurrent use.
type JSONLWriter struct {
	w  io.Writer
	mu sync.Mutex
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: w}
}

// WriteBinding writes one binding as a single JSON line.
func (jw *JSONLWriter) WriteBinding(b waf.Binding) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	data, err := jsonutil.Marshal(b)
	if err != nil {
		return err
	}
	if _, err := jw.w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(jw.w, "\n")
	return err
}

// Flush is a no-op; every row is written eagerly.
func (jw *JSONLWriter) Flush() error { return nil }

// Close closes the underlying writer if it implements io.Closer.
func (jw *JSONLWriter) Close() error {
	if closer, ok := jw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
