package repo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// CSV header names. Volume is optional: older exports do not carry it.
const (
	colCafe        = "Cafe"
	colName        = "Name"
	colCategory    = "Category"
	colTemperature = "Temperature"
	colCalories    = "Calories (kcal)"
	colCaffeine    = "Caffeine (mg)"
	colSugar       = "Sugar (g)"
	colFat         = "Fat (g)"
	colSodium      = "Sodium (mg)"
	colPrice       = "Price (KRW)"
	colVolume      = "Volume (ml)"
)

var requiredColumns = []string{
	colCafe, colName, colCategory, colTemperature,
	colCalories, colCaffeine, colSugar, colFat, colSodium, colPrice,
}

// numericColumns maps CSV headers to the attribute they populate.
var numericColumns = map[string]domain.Attribute{
	colCalories: domain.AttrCalories,
	colCaffeine: domain.AttrCaffeine,
	colSugar:    domain.AttrSugar,
	colFat:      domain.AttrFat,
	colSodium:   domain.AttrSodium,
	colPrice:    domain.AttrPrice,
	colVolume:   domain.AttrVolume,
}

// ErrMalformedCSV is returned for header or cell errors.
var ErrMalformedCSV = errors.New("malformed catalog csv")

// CSVSource reads the catalog from a CSV file with a header row.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CatalogSource over the file at path.
func NewCSVSource(path string) contracts.CatalogSource {
	return &CSVSource{path: path}
}

// LoadItems reads every row in file order.
func (s *CSVSource) LoadItems(ctx context.Context) ([]domain.Item, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog csv: %w", err)
	}
	defer f.Close()

	items, err := ReadItems(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return items, nil
}

// ReadItems parses CSV rows from r. Numeric cells may be written as floats
// ("12.0"); values truncate toward zero. Empty numeric cells read as 0.
func ReadItems(ctx context.Context, r io.Reader) ([]domain.Item, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: missing header", ErrMalformedCSV)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}
	reader.FieldsPerRecord = len(header)

	items := make([]domain.Item, 0, 256)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCSV, line, err)
		}

		item, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedCSV, col)
		}
	}
	return index, nil
}

func parseRecord(record []string, index map[string]int) (domain.Item, error) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	values := make(map[domain.Attribute]int, len(numericColumns))
	for col, attr := range numericColumns {
		v, err := parseNumber(cell(col))
		if err != nil {
			return domain.Item{}, fmt.Errorf("%w: column %q: %v", ErrMalformedCSV, col, err)
		}
		values[attr] = v
	}

	return domain.NewItem(
		cell(colCafe),
		cell(colName),
		cell(colCategory),
		cell(colTemperature),
		values[domain.AttrCalories],
		values[domain.AttrCaffeine],
		values[domain.AttrSugar],
		values[domain.AttrFat],
		values[domain.AttrSodium],
		values[domain.AttrVolume],
		values[domain.AttrPrice],
	)
}

func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return int(f), nil
}
