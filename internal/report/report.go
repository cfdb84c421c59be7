// Package report lays out tasks as a table of columns. Every column is
// measured for every row before anything is written, widths are negotiated
// against the available width, and multi-line cells are aligned row by row.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/twiced-technology-gmbh/taskreport/internal/column"
	"github.com/twiced-technology-gmbh/taskreport/internal/logging"
	"github.com/twiced-technology-gmbh/taskreport/internal/textfmt"
)

// gap separates adjacent columns.
const gap = " "

// Options configures a report.
type Options struct {
	// Width is the total width available to the table. 0 leaves every
	// column at its maximum.
	Width int
	// Theme paints the header and cells. The zero value paints nothing.
	Theme Theme
	// Logger receives width negotiation at DEBUG level. Nil discards it.
	Logger *slog.Logger
}

// Report renders records through a fixed set of columns.
type Report struct {
	columns []column.Column
	width   int
	theme   Theme
	logger  *slog.Logger
}

// New creates a report over the given columns.
func New(columns []column.Column, opts Options) *Report {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Report{
		columns: columns,
		width:   opts.Width,
		theme:   opts.Theme,
		logger:  logger,
	}
}

// Columns returns the report's columns in display order.
func (r *Report) Columns() []column.Column {
	return r.columns
}

// Measure computes the width range of every column across all rows. The
// header label is part of each column's range.
func (r *Report) Measure(rows []column.Record) ([]column.WidthRange, error) {
	ranges := make([]column.WidthRange, len(r.columns))
	for i, col := range r.columns {
		label := textfmt.Width(col.Label())
		ranges[i] = column.WidthRange{Min: label, Max: label}
		for _, rec := range rows {
			wr, err := col.Measure(rec)
			if err != nil {
				return nil, err
			}
			ranges[i].Min = max(ranges[i].Min, wr.Min)
			ranges[i].Max = max(ranges[i].Max, wr.Max)
		}
	}
	return ranges, nil
}

// Widths negotiates a width per column. Every column starts at its maximum;
// while the table is wider than the available width, the column with the
// most room above its minimum gives up one cell. Columns never go below
// their minimum, so the table may still overflow.
func (r *Report) Widths(ranges []column.WidthRange) []int {
	widths := make([]int, len(ranges))
	total := len(gap) * max(len(ranges)-1, 0)
	for i, wr := range ranges {
		widths[i] = wr.Max
		total += wr.Max
	}

	for r.width > 0 && total > r.width {
		widest := -1
		slack := 0
		for i, wr := range ranges {
			if s := widths[i] - wr.Min; s > slack {
				widest, slack = i, s
			}
		}
		if widest < 0 {
			r.logger.Debug("report overflows", "total", total, "available", r.width)
			break
		}
		widths[widest]--
		total--
	}

	for i, col := range r.columns {
		r.logger.Debug("column width",
			"column", col.Name(),
			"min", ranges[i].Min,
			"max", ranges[i].Max,
			"width", widths[i])
	}
	return widths
}

// Write measures all rows, negotiates widths and writes the header and rows.
// Nothing is written when a column fails to measure.
func (r *Report) Write(w io.Writer, rows []column.Record) error {
	ranges, err := r.Measure(rows)
	if err != nil {
		return err
	}
	widths := r.Widths(ranges)

	var b strings.Builder
	r.writeHeader(&b, widths)
	for _, rec := range rows {
		r.writeRow(&b, rec, widths)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func (r *Report) writeHeader(b *strings.Builder, widths []int) {
	cells := make([]string, len(r.columns))
	for i, col := range r.columns {
		label := col.Label()
		cells[i] = label + strings.Repeat(" ", max(widths[i]-textfmt.Width(label), 0))
	}
	b.WriteString(r.theme.header(strings.TrimRight(strings.Join(cells, gap), " ")))
	b.WriteByte('\n')
}

func (r *Report) writeRow(b *strings.Builder, rec column.Record, widths []int) {
	cells := make([][]string, len(r.columns))
	height := 1
	for i, col := range r.columns {
		cells[i] = col.Render(rec, widths[i], r.theme.cell(col.Name(), rec))
		height = max(height, len(cells[i]))
	}

	parts := make([]string, len(r.columns))
	for line := range height {
		for i := range r.columns {
			if line < len(cells[i]) {
				parts[i] = cells[i][line]
			} else {
				parts[i] = strings.Repeat(" ", widths[i])
			}
		}
		writeLine(b, strings.Join(parts, gap))
	}
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}
