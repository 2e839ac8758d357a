// Package dataset reads book titles and (ISBN, title) pairs from CSV files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	isbnField  = 0
	titleField = 2
	minFields  = 3
)

type Pair struct {
	ISBN  string
	Title string
}

type Dataset struct {
	Titles []string
	Pairs  []Pair
}

func (d Dataset) Empty() bool {
	return len(d.Titles) == 0
}

// Sample is used in place of a dataset that couldn't be loaded.
func Sample() Dataset {
	return Dataset{
		Titles: []string{"Book A", "Book B", "Book C", "Book D", "Book E"},
		Pairs: []Pair{
			{ISBN: "001", Title: "Book A"},
			{ISBN: "002", Title: "Book B"},
			{ISBN: "003", Title: "Book C"},
		},
	}
}

// Load reads the CSV file at path from fs.
// On failure it returns an empty Dataset along with the error.
func Load(fs afero.Fs, path string) (Dataset, error) {
	file, err := fs.Open(filepath.Clean(path))
	if err != nil {
		return Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	ds, err := Parse(file)
	if err != nil {
		return Dataset{}, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	return ds, nil
}

// Parse reads CSV rows from r. The first row is a header and is skipped,
// as are rows with fewer than 3 fields. Field 0 is the ISBN and field 2
// the title, both with surrounding quotes trimmed.
func Parse(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, nil
		}

		return Dataset{}, fmt.Errorf("read header: %w", err)
	}

	var ds Dataset
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("read row: %w", err)
		}

		if len(row) < minFields {
			continue
		}

		isbn := strings.Trim(row[isbnField], `"`)
		title := strings.Trim(row[titleField], `"`)

		ds.Titles = append(ds.Titles, title)
		ds.Pairs = append(ds.Pairs, Pair{ISBN: isbn, Title: title})
	}

	return ds, nil
}
