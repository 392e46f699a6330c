package market

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVSource reads daily bars from a CSV file with columns
// date,open,high,low,close,volume. A header row is optional. Useful for
// offline and deterministic backtest runs.
type CSVSource struct {
	Path string
}

// NewCSVSource returns a PriceSource backed by a CSV file.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// GetPriceHistory returns the last `days` bars for the symbol. The file is
// assumed to hold a single symbol; the symbol argument is ignored beyond
// error messages.
func (s *CSVSource) GetPriceHistory(ctx context.Context, symbol string, days int) ([]Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("market: open bars for %s: %w", symbol, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	firstRow, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var bars []Bar

	hasHeader := len(firstRow) > 0 && strings.EqualFold(strings.TrimSpace(firstRow[0]), "date")
	if !hasHeader {
		b, err := parseBarRow(firstRow)
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		b, err := parseBarRow(row)
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	if days > 0 && len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func parseBarRow(row []string) (Bar, error) {
	if len(row) < 5 {
		return Bar{}, fmt.Errorf("market: bad row (need at least date,open,high,low,close): %v", row)
	}

	ds := strings.TrimSpace(row[0])
	date, err := time.Parse("2006-01-02", ds)
	if err != nil {
		t2, err2 := time.Parse(time.RFC3339, ds)
		if err2 != nil {
			return Bar{}, fmt.Errorf("market: bad date %q: %w", row[0], err)
		}
		date = t2
	}

	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
		if err != nil {
			return Bar{}, fmt.Errorf("market: bad value %q: %w", row[i+1], err)
		}
		vals[i] = v
	}

	var volume int64
	if len(row) > 5 {
		volume, err = strconv.ParseInt(strings.TrimSpace(row[5]), 10, 64)
		if err != nil {
			return Bar{}, fmt.Errorf("market: bad volume %q: %w", row[5], err)
		}
	}

	return Bar{
		Date:   date,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: volume,
	}, nil
}
