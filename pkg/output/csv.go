package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"sync"

	"github.com/wafexport/wafexport/pkg/waf"
)

// Compile-time interface check.
var _ Writer = (*CSVWriter)(nil)

// UTF-8 BOM for Excel compatibility.
const utf8BOM = "\xEF\xBB\xBF"

// CSVWriter writes bindings as CSV rows, one per binding, with a fixed
// five-column header. Safe for concurrent use.
type CSVWriter struct {
	w         io.Writer
	csvWriter *csv.Writer
	mu        sync.Mutex
	opts      CSVOptions
}

// CSVOptions configures the CSV writer behavior.
type CSVOptions struct {
	// OmitHeader suppresses the header row.
	OmitHeader bool

	// Delimiter sets the field delimiter character.
	// Default is comma when zero value.
	Delimiter rune

	// ExcelCompatible adds a UTF-8 BOM so Excel displays Unicode
	// (e.g. non-ASCII route patterns) correctly.
	ExcelCompatible bool

	// SanitizeFormulas prevents CSV injection by prefixing dangerous
	// leading characters (= + - @ TAB CR). Route patterns and firewall
	// names are operator-controlled input to the spreadsheet.
	SanitizeFormulas bool

	// TruncateAt limits field length (0 = no limit).
	TruncateAt int
}

// sanitizeForCSV prevents formula execution in spreadsheets.
func sanitizeForCSV(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// truncateField truncates a field to the specified rune length.
func truncateField(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen > 3 {
		return string(runes[:maxLen-3]) + "..."
	}
	return string(runes[:maxLen])
}

// NewCSVWriter creates a CSV writer. Unless OmitHeader is set, the header
// row is written immediately.
func NewCSVWriter(w io.Writer, opts CSVOptions) *CSVWriter {
	if opts.ExcelCompatible {
		_, _ = w.Write([]byte(utf8BOM))
	}

	csvWriter := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		csvWriter.Comma = opts.Delimiter
	}

	cw := &CSVWriter{
		w:         w,
		csvWriter: csvWriter,
		opts:      opts,
	}

	if !opts.OmitHeader {
		_ = csvWriter.Write(Columns)
		csvWriter.Flush()
	}

	return cw
}

// WriteBinding writes one binding as a CSV row.
func (cw *CSVWriter) WriteBinding(b waf.Binding) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	fields := row(b)
	for i, field := range fields {
		if cw.opts.SanitizeFormulas {
			field = sanitizeForCSV(field)
		}
		if cw.opts.TruncateAt > 0 {
			field = truncateField(field, cw.opts.TruncateAt)
		}
		fields[i] = field
	}
	return cw.csvWriter.Write(fields)
}

// Flush flushes the CSV writer's internal buffer.
func (cw *CSVWriter) Flush() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.csvWriter.Flush()
	return cw.csvWriter.Error()
}

// Close flushes the writer. If the underlying writer implements io.Closer,
// it is closed as well.
func (cw *CSVWriter) Close() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	cw.csvWriter.Flush()
	if err := cw.csvWriter.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	if closer, ok := cw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
