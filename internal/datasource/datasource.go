// Package datasource supplies the rows the pagekit CLI pages through:
// either a generated demo data set or records read from a CSV file.
package datasource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"pagekit/internal/pagination"
)

// Row is a single displayable record.
type Row struct {
	ID        string    `json:"id"         yaml:"id"`
	Name      string    `json:"name"       yaml:"name"`
	Category  string    `json:"category"   yaml:"category"`
	Amount    float64   `json:"amount"     yaml:"amount"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// csvFieldCount is the number of columns in a CSV record: name, category,
// amount. The ID and timestamp are assigned on read.
const csvFieldCount = 3

// ErrEmptyCSV is returned when the input contains a header but no records.
var ErrEmptyCSV = errors.New("csv input contains no records")

// demo vocabulary for generated rows.
var (
	demoNames      = []string{"alder", "birch", "cedar", "fir", "hazel", "juniper", "larch", "maple", "oak", "pine", "rowan", "spruce", "willow", "yew"}
	demoCategories = []string{"hardware", "software", "services", "travel", "facilities"}
)

// Generate produces n deterministic demo rows for the given seed. The same
// (n, seed) pair always yields the same rows, which keeps paginated CLI
// output reproducible across runs.
func Generate(n int, seed int64) []Row {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Demo data, not crypto.
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	rows := make([]Row, n)
	for i := range rows {
		created := base.Add(time.Duration(i) * time.Hour)
		rows[i] = Row{
			ID:        ulid.MustNew(ulid.Timestamp(created), rng).String(),
			Name:      fmt.Sprintf("%s-%03d", demoNames[rng.Intn(len(demoNames))], i+1),
			Category:  demoCategories[rng.Intn(len(demoCategories))],
			Amount:    float64(rng.Intn(100000)) / 100,
			CreatedAt: created,
		}
	}
	return rows
}

// ReadCSV reads rows from CSV input with a "name,category,amount" header.
// Each record is assigned a fresh ULID. Malformed records fail the whole
// read; partial data sets would silently skew pagination counts.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = csvFieldCount

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCSV
		}
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	if header[0] != "name" || header[1] != "category" || header[2] != "amount" {
		return nil, fmt.Errorf("unexpected csv header %v, want [name category amount]", header)
	}

	now := time.Now().UTC()
	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv record: %w", err)
		}

		amount, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q: %w", record[2], err)
		}

		rows = append(rows, Row{
			ID:        ulid.Make().String(),
			Name:      record[0],
			Category:  record[1],
			Amount:    amount,
			CreatedAt: now,
		})
	}
	if len(rows) == 0 {
		return nil, ErrEmptyCSV
	}
	return rows, nil
}

// NewSorter returns a sorter over Row keyed by the field names accepted on
// the command line.
func NewSorter() *pagination.Sorter[Row] {
	return pagination.NewSorter(map[string]pagination.LessFunc[Row]{
		"name":     func(a, b Row) bool { return a.Name < b.Name },
		"category": func(a, b Row) bool { return a.Category < b.Category },
		"amount":   func(a, b Row) bool { return a.Amount < b.Amount },
		"created":  func(a, b Row) bool { return a.CreatedAt.Before(b.CreatedAt) },
	})
}
