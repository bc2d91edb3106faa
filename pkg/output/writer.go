// Package output provides report writers for resolved WAF bindings:
// CSV (the default), JSON, JSONL, and a terminal table.
package output

import (
	"fmt"
	"io"

	"github.com/wafexport/wafexport/pkg/waf"
)

// Writer is the interface all binding writers implement.
type Writer interface {
	// WriteBinding writes one resolved binding row.
	WriteBinding(b waf.Binding) error

	// Flush ensures all buffered rows are written.
	Flush() error

	// Close finalizes the output and releases any resources.
	Close() error
}

// Format names accepted by NewWriter.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatTable = "table"
)

// Options bundles per-format writer options for the factory.
type Options struct {
	CSV   CSVOptions
	Table TableConfig
}

// NewWriter creates a writer for the named format. An unknown format is a
// caller (usage) error.
func NewWriter(format string, w io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatCSV:
		return NewCSVWriter(w, opts.CSV), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatTable:
		return NewTableWriter(w, opts.Table), nil
	default:
		return nil, fmt.Errorf("output: unknown format %q (want csv, json, jsonl, or table)", format)
	}
}

// Columns is the fixed header of the tabular formats, one column per
// Binding field, in row order.
var Columns = []string{"namespace", "lb_name", "route", "waf_name", "waf_mode"}

// row flattens a binding in column order.
func row(b waf.Binding) []string {
	return []string{b.Namespace, b.LoadBalancer, b.Route, b.Firewall, b.Mode}
}
