package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/wafexport/wafexport/pkg/defaults"
	"github.com/wafexport/wafexport/pkg/waf"
)

// Compile-time interface check.
var _ Writer = (*TableWriter)(nil)

// boxChars contains Unicode box-drawing characters.
var boxChars = struct {
	TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical string
}{
	"┌", "┐", "└", "┘", "─", "│",
}

// asciiChars contains ASCII fallback characters for box drawing.
var asciiChars = struct {
	TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical string
}{
	"+", "+", "+", "+", "-", "|",
}

// ANSI codes for mode colorization.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
)

// TableConfig configures the table writer behavior.
type TableConfig struct {
	// ColorEnabled enables ANSI color output.
	// If not explicitly set, auto-detected from the terminal.
	ColorEnabled bool

	// DisableUnicode switches to ASCII box-drawing characters.
	DisableUnicode bool

	// Width sets the table width (0 = auto-detect from terminal).
	Width int
}

// TableWriter buffers bindings and renders an aligned terminal table on
// Close, with the mode column colorized (blocking red, monitoring amber,
// disabled dim). Safe for concurrent use.
type TableWriter struct {
	w        io.Writer
	mu       sync.Mutex
	config   TableConfig
	bindings []waf.Binding
	chars    *struct {
		TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical string
	}
}

// NewTableWriter creates a table writer. Color support is auto-detected
// unless explicitly enabled.
func NewTableWriter(w io.Writer, config TableConfig) *TableWriter {
	if !config.ColorEnabled {
		config.ColorEnabled = detectColorSupport(w)
	}
	chars := &boxChars
	if config.DisableUnicode {
		chars = &asciiChars
	}
	return &TableWriter{
		w:      w,
		config: config,
		chars:  chars,
	}
}

// detectColorSupport checks if the writer supports ANSI colors.
func detectColorSupport(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// WriteBinding buffers one binding.
func (tw *TableWriter) WriteBinding(b waf.Binding) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.bindings = append(tw.bindings, b)
	return nil
}

// Flush is a no-op; the table is rendered on Close.
func (tw *TableWriter) Flush() error { return nil }

// Close renders the buffered table.
func (tw *TableWriter) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	tw.render()
	if closer, ok := tw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// render writes the full table.
func (tw *TableWriter) render() {
	widths := tw.columnWidths()

	total := 1
	for _, w := range widths {
		total += w + 3
	}
	line := tw.chars.Horizontal

	fmt.Fprintf(tw.w, "%s%s%s\n", tw.chars.TopLeft, strings.Repeat(line, total-2), tw.chars.TopRight)
	tw.printRow(Columns, widths, true)
	fmt.Fprintf(tw.w, "%s%s%s\n", tw.chars.Vertical, strings.Repeat(line, total-2), tw.chars.Vertical)
	for _, b := range tw.bindings {
		tw.printRow(row(b), widths, false)
	}
	fmt.Fprintf(tw.w, "%s%s%s\n", tw.chars.BottomLeft, strings.Repeat(line, total-2), tw.chars.BottomRight)
	fmt.Fprintf(tw.w, "%d binding(s)\n", len(tw.bindings))
}

// printRow writes one row with padded cells; the mode cell is colorized.
func (tw *TableWriter) printRow(cells []string, widths []int, header bool) {
	var sb strings.Builder
	sb.WriteString(tw.chars.Vertical)
	for i, cell := range cells {
		text := truncateField(cell, widths[i])
		padded := text + strings.Repeat(" ", widths[i]-displayWidth(text))
		if tw.config.ColorEnabled {
			if header {
				padded = ansiBold + padded + ansiReset
			} else if i == len(cells)-1 {
				padded = tw.colorMode(text) + strings.Repeat(" ", widths[i]-displayWidth(text))
			}
		}
		sb.WriteString(" " + padded + " " + tw.chars.Vertical)
	}
	fmt.Fprintln(tw.w, sb.String())
}

// colorMode returns the mode cell with its status color.
func (tw *TableWriter) colorMode(mode string) string {
	switch mode {
	case string(waf.ModeBlocking):
		return ansiRed + mode + ansiReset
	case string(waf.ModeMonitoring):
		return ansiYellow + mode + ansiReset
	case defaults.NotApplicable:
		return ansiDim + mode + ansiReset
	default:
		return mode
	}
}

// columnWidths sizes each column to its widest cell, then shrinks the
// route column if the table would overflow the terminal.
func (tw *TableWriter) columnWidths() []int {
	widths := make([]int, len(Columns))
	for i, c := range Columns {
		widths[i] = displayWidth(c)
	}
	for _, b := range tw.bindings {
		for i, cell := range row(b) {
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	max := tw.config.Width
	if max == 0 {
		max = terminalWidth(tw.w)
	}
	if max > 0 {
		total := 1
		for _, w := range widths {
			total += w + 3
		}
		// The route column (index 2) is the only unbounded one.
		const minRoute = 8
		if over := total - max; over > 0 && widths[2]-over >= minRoute {
			widths[2] -= over
		}
	}
	return widths
}

// terminalWidth returns the terminal width for w, or 0 when w is not a
// terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			return width
		}
	}
	return 0
}

// displayWidth is the printable width of a cell (rune count; the table
// holds config identifiers, not wide glyphs).
func displayWidth(s string) int {
	return len([]rune(s))
}
