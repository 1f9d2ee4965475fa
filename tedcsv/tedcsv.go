// Package tedcsv is a thin encoding/csv-based adapter for the
// external-collaborator CSV round-trip contract described in §6: the
// core only accepts an ordered column-name list plus an ordered
// row-data stream and calls addRow; parsing and type coercion are this
// package's job, not the core's.
package tedcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// RowAdder is the contract the core exposes for loading: a row of
// already-coerced column values to append.
type RowAdder interface {
	AddRow(row ...any) error
}

// ColumnType names how to coerce one CSV field.
type ColumnType int

const (
	String ColumnType = iota
	Int
	Float
	Bool
)

// Load reads a CSV stream via r (its header row names columns,
// discarded — column order is taken from types, matching the core's
// ordered column-name-list contract) and calls table.AddRow once per
// data row, after coercing each field per types.
func Load(r io.Reader, types []ColumnType, table RowAdder) error {
	reader := csv.NewReader(r)
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("tedcsv: reading header: %w", err)
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("tedcsv: reading row: %w", err)
		}
		if len(record) != len(types) {
			return fmt.Errorf("tedcsv: row has %d fields, expected %d", len(record), len(types))
		}
		row := make([]any, len(record))
		for i, field := range record {
			v, err := coerce(field, types[i])
			if err != nil {
				return fmt.Errorf("tedcsv: field %d (%q): %w", i, field, err)
			}
			row[i] = v
		}
		if err := table.AddRow(row...); err != nil {
			return fmt.Errorf("tedcsv: AddRow: %w", err)
		}
	}
}

func coerce(field string, t ColumnType) (any, error) {
	switch t {
	case String:
		return field, nil
	case Int:
		return strconv.Atoi(field)
	case Float:
		return strconv.ParseFloat(field, 64)
	case Bool:
		return strconv.ParseBool(field)
	default:
		return nil, fmt.Errorf("unknown column type %d", t)
	}
}

// Dump writes every row currently in rows (in the order given) as CSV
// to w, with header as the first record.
func Dump(w io.Writer, header []string, rows [][]any) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("tedcsv: writing header: %w", err)
	}
	record := make([]string, len(header))
	for _, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("tedcsv: row has %d columns, expected %d", len(row), len(header))
		}
		for i, v := range row {
			record[i] = fmt.Sprintf("%v", v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("tedcsv: writing row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
