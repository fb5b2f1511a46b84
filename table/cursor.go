// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "iter"

// Cursor addresses one value of a table column by (column, position).
// It reads through the table on every access rather than holding a
// pointer into its storage, so appending columns to the table (which
// re-lays the row major values) does not invalidate it.
type Cursor struct {
	table *Table
	col   int
	pos   int
}

// Col returns the column index of the cursor.
func (cr Cursor) Col() int { return cr.col }

// Pos returns the row position of the cursor.
func (cr Cursor) Pos() int { return cr.pos }

// Value returns the value under the cursor.
// It panics if the cursor is at or past the end of the column.
func (cr Cursor) Value() float32 {
	return cr.table.At(cr.pos, cr.col)
}

// Next returns a cursor at the following row.
func (cr Cursor) Next() Cursor {
	cr.pos++
	return cr
}

// Advance returns a cursor n rows further on (n may be negative).
func (cr Cursor) Advance(n int) Cursor {
	cr.pos += n
	return cr
}

// Equal returns true if both cursors address the same value
// of the same column of the same table.
func (cr Cursor) Equal(o Cursor) bool {
	return cr.table == o.table && cr.col == o.col && cr.pos == o.pos
}

// Less returns true if cr is before o in the same column.
func (cr Cursor) Less(o Cursor) bool {
	return cr.pos < o.pos
}

// Sub returns the number of rows between o and cr (cr - o).
func (cr Cursor) Sub(o Cursor) int {
	return cr.pos - o.pos
}

// Column is a read-only view of a single table column.
// Its length tracks the table, so it is always current.
type Column struct {
	table *Table
	col   int
}

// Index returns the column index in the table.
func (cl Column) Index() int { return cl.col }

// Len returns the number of values in the column.
func (cl Column) Len() int {
	if cl.table == nil {
		return 0
	}
	return cl.table.rows
}

// At returns the value at given row.
func (cl Column) At(row int) float32 {
	return cl.table.At(row, cl.col)
}

// Values returns a copy of the column values.
func (cl Column) Values() []float32 {
	vs := make([]float32, cl.Len())
	for i := range vs {
		vs[i] = cl.At(i)
	}
	return vs
}

// All returns an iterator over the (row, value) pairs of the column.
// Values are read lazily, and the iterator can be ranged over again.
func (cl Column) All() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		for i := 0; i < cl.Len(); i++ {
			if !yield(i, cl.At(i)) {
				return
			}
		}
	}
}
