// Package dataset turns multi-channel ECG recordings into labelled,
// fixed-length training segments.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadCSV reads every data row of a CSV file.
//
// The first record is a header and is skipped. Blank lines are ignored. A
// line with a field that is not a number is logged and skipped; the rest of
// the file still loads.
func LoadCSV(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	rows, err := ReadCSV(file, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", path, err)
	}
	return rows, nil
}

// ReadCSV is LoadCSV over an arbitrary reader; name is only used in log lines.
func ReadCSV(r io.Reader, name string) ([][]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var rows [][]float64
	header := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				header = false
				log.Printf("dataset: %s: skipping line %d: %v", name, parseErr.Line, parseErr.Err)
				continue
			}
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		row, err := parseRow(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			log.Printf("dataset: %s: skipping line %d: %v", name, line, err)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string) ([]float64, error) {
	row := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		row[i] = v
	}
	return row, nil
}

// LoadDir concatenates every *.csv regular file directly inside dir, in name
// order. Files that fail to load are logged and skipped; an unreadable
// directory is an error.
func LoadDir(dir string) ([][]float64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	var all [][]float64
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
			continue
		}
		rows, err := LoadCSV(path)
		if err != nil {
			log.Printf("dataset: skipping %s: %v", path, err)
			continue
		}
		all = append(all, rows...)
	}
	return all, nil
}
