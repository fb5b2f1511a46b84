// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a dense row-major float32 matrix of columns,
// the raw data store behind plot data. Columns are appended or replaced
// whole and read back through [Cursor] and [Column] views, which do not
// depend on the storage layout.
package table

import (
	"fmt"

	"cogentcore.org/trase/base/errors"
	"cogentcore.org/trase/base/metadata"
	"golang.org/x/exp/constraints"
)

var (
	// ErrDimensionMismatch is returned when a column length does not
	// match the number of rows in the table.
	ErrDimensionMismatch = errors.New("table: dimension mismatch")

	// ErrIndexOutOfRange is returned for a column index that is not
	// present in the table.
	ErrIndexOutOfRange = errors.New("table: index out of range")
)

// Number is the set of value types that can be stored into a column.
// Values are converted to float32 on the way in.
type Number interface {
	constraints.Integer | constraints.Float
}

// Table is a matrix of float32 values in row major order.
// A Table can be shared by several plot data sets; it does no
// locking, so concurrent mutation must be serialized by the caller.
type Table struct {
	// values in row major order: value (row, col) is at row*cols + col.
	values []float32

	rows int
	cols int

	// Meta is misc metadata for the table, e.g., its Name.
	Meta metadata.Data
}

// NewTable returns a new, empty Table.
// Can pass an optional name which sets metadata.
func NewTable(name ...string) *Table {
	dt := &Table{}
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// Metadata returns the metadata for the table.
func (dt *Table) Metadata() *metadata.Data { return &dt.Meta }

// Rows returns the number of rows.
func (dt *Table) Rows() int { return dt.rows }

// Cols returns the number of columns.
func (dt *Table) Cols() int { return dt.cols }

// IsValidColumn returns an error wrapping [ErrIndexOutOfRange]
// if i is not an existing column.
func (dt *Table) IsValidColumn(i int) error {
	if i < 0 || i >= dt.cols {
		return fmt.Errorf("column %d not in [0..%d): %w", i, dt.cols, ErrIndexOutOfRange)
	}
	return nil
}

// At returns the value at given row and column. It panics if
// either is out of range, like a slice index.
func (dt *Table) At(row, col int) float32 {
	if col < 0 || col >= dt.cols {
		panic(fmt.Sprintf("table.Table.At: column %d out of range [0..%d)", col, dt.cols))
	}
	if row < 0 || row >= dt.rows {
		panic(fmt.Sprintf("table.Table.At: row %d out of range [0..%d)", row, dt.rows))
	}
	return dt.values[row*dt.cols+col]
}

// AddColumn appends a new column to the table, copying and converting
// the given values. The first column defines the number of rows; after
// that, a column with a different length returns an error wrapping
// [ErrDimensionMismatch] and the table is unchanged.
func AddColumn[T Number](dt *Table, values []T) error {
	n := len(values)
	if dt.cols > 0 && n != dt.rows {
		return fmt.Errorf("table.AddColumn: column has %d values, table has %d rows: %w", n, dt.rows, ErrDimensionMismatch)
	}
	if dt.cols == 0 {
		dt.rows = n
	}
	nc := dt.cols + 1
	nv := make([]float32, dt.rows*nc)
	for r := range dt.rows {
		copy(nv[r*nc:r*nc+dt.cols], dt.values[r*dt.cols:(r+1)*dt.cols])
		nv[r*nc+dt.cols] = float32(values[r])
	}
	dt.values = nv
	dt.cols = nc
	return nil
}

// SetColumn overwrites column i in place with the given values.
// It returns an error wrapping [ErrIndexOutOfRange] if i is not an
// existing column, or [ErrDimensionMismatch] if the length is not
// the number of rows. The table is unchanged on error.
func SetColumn[T Number](dt *Table, i int, values []T) error {
	if err := dt.IsValidColumn(i); err != nil {
		return fmt.Errorf("table.SetColumn: %w", err)
	}
	if len(values) != dt.rows {
		return fmt.Errorf("table.SetColumn: column has %d values, table has %d rows: %w", len(values), dt.rows, ErrDimensionMismatch)
	}
	for r, v := range values {
		dt.values[r*dt.cols+i] = float32(v)
	}
	return nil
}

// Begin returns a [Cursor] at the first row of column i.
func (dt *Table) Begin(i int) (Cursor, error) {
	if err := dt.IsValidColumn(i); err != nil {
		return Cursor{}, fmt.Errorf("table.Table.Begin: %w", err)
	}
	return Cursor{table: dt, col: i}, nil
}

// End returns a [Cursor] one past the last row of column i.
func (dt *Table) End(i int) (Cursor, error) {
	if err := dt.IsValidColumn(i); err != nil {
		return Cursor{}, fmt.Errorf("table.Table.End: %w", err)
	}
	return Cursor{table: dt, col: i, pos: dt.rows}, nil
}

// Column returns a [Column] view of column i.
func (dt *Table) Column(i int) (Column, error) {
	if err := dt.IsValidColumn(i); err != nil {
		return Column{}, fmt.Errorf("table.Table.Column: %w", err)
	}
	return Column{table: dt, col: i}, nil
}
