package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/kobune/eightatena/internal/metrics"
)

// User-visible input errors. Everything else returned by Convert wraps an
// IO/CSV error or a SchemaError.
var (
	ErrEmptyInput = errors.New("input is empty")
	ErrNoHeader   = errors.New("input has no header row")
)

// Convert reads an Eight CSV/TSV export from r and writes the Atena
// Shokunin CSV to w: UTF-8, comma-delimited, one fixed 61-column header
// row. The input delimiter is sniffed from the header line (tab wins when
// the line holds at least as many tabs as commas); a UTF-8 BOM is
// tolerated.
func (c *Converter) Convert(r io.Reader, w io.Writer) (Stats, error) {
	start := time.Now()
	stats, err := c.convert(r, w)
	metrics.ConversionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues("error").Inc()
		return stats, err
	}
	metrics.ConversionsTotal.WithLabelValues("ok").Inc()
	metrics.ConversionRows.Add(float64(stats.Rows))
	return stats, nil
}

func (c *Converter) convert(r io.Reader, w io.Writer) (Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Stats{}, fmt.Errorf("reading input: %w", err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	if strings.TrimSpace(text) == "" {
		return Stats{}, ErrEmptyInput
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = sniffDelimiter(text)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return Stats{}, ErrNoHeader
	}
	header = lo.Map(header, func(h string, _ int) string { return strings.TrimSpace(h) })
	if len(lo.Filter(header, func(h string, _ int) bool { return h != "" })) == 0 {
		return Stats{}, ErrNoHeader
	}

	fixed := lo.SliceToMap(EightFixedHeaders, func(h string) (string, struct{}) { return h, struct{}{} })
	flags := lo.Filter(header, func(h string, _ int) bool {
		_, isFixed := fixed[h]
		return h != "" && !isFixed
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(AtenaHeaders); err != nil {
		return Stats{}, fmt.Errorf("writing header: %w", err)
	}

	stats := Stats{}
	for num := 1; ; num++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("reading row %d: %w", num, err)
		}
		fields := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				fields[h] = rec[i]
			}
		}
		out, err := c.convertRow(row{fields: fields, flags: flags, num: num})
		if err != nil {
			return stats, err
		}
		if err := cw.Write(out); err != nil {
			return stats, fmt.Errorf("writing row %d: %w", num, err)
		}
		stats.Rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return stats, fmt.Errorf("flushing output: %w", err)
	}
	return stats, nil
}

// sniffDelimiter inspects the first line only: Eight exports come as both
// CSV and TSV, and a tab-heavy header is the reliable tell.
func sniffDelimiter(text string) rune {
	line, _, _ := strings.Cut(text, "\n")
	if tabs := strings.Count(line, "\t"); tabs > 0 && tabs >= strings.Count(line, ",") {
		return '\t'
	}
	return ','
}
