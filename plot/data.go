// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"maps"

	"cogentcore.org/trase/base/errors"
	"cogentcore.org/trase/table"
)

var (
	// ErrUnassignedAesthetic is returned when reading the column or
	// limits of an aesthetic that has not been set.
	ErrUnassignedAesthetic = errors.New("plot: unassigned aesthetic")

	// ErrDegenerateLimits flags a zero width data range (Min == Max).
	// Mappings handle it by sending values to the display midpoint.
	ErrDegenerateLimits = errors.New("plot: degenerate limits")

	// ErrInvalidRange is returned for a range with Min > Max.
	ErrInvalidRange = errors.New("plot: invalid range")

	// ErrInvalidAesthetic is returned for a value outside of [Aesthetics].
	// Errors from setting one also wrap [ErrIndexOutOfRange].
	ErrInvalidAesthetic = errors.New("plot: invalid aesthetic")

	// ErrDimensionMismatch is [table.ErrDimensionMismatch].
	ErrDimensionMismatch = table.ErrDimensionMismatch

	// ErrIndexOutOfRange is [table.ErrIndexOutOfRange].
	ErrIndexOutOfRange = table.ErrIndexOutOfRange
)

// Data binds a [table.Table] of raw data to a set of [Aesthetics]:
// each assigned aesthetic maps to one column of the table, and has
// its min / max range recorded in the [Limits].
//
// The table can be shared by several Data values (e.g., one per plot
// layer), and outlives any of them. Data does no locking: mutation of
// a shared table must be serialized by the caller.
type Data struct {
	table *table.Table

	// columns maps assigned aesthetics to table column indexes.
	columns map[Aesthetics]int

	limits Limits

	// err is the first error from a fluent setter.
	err error
}

// NewData returns a new, empty Data with its own table.
func NewData() *Data {
	return NewDataFrom(table.NewTable())
}

// NewDataFrom returns a new Data with no aesthetics assigned, using
// the given (possibly shared) table for its columns.
func NewDataFrom(dt *table.Table) *Data {
	return &Data{table: dt, columns: map[Aesthetics]int{}}
}

// Set sets the data for aesthetic a. If a has not yet been set, a new
// column is added to the table; otherwise the existing column is
// overwritten in place. The limits of a (only) are recomputed from the
// values. A length that does not match the table rows returns an error
// wrapping [ErrDimensionMismatch], leaving d unchanged.
func Set[T table.Number](d *Data, a Aesthetics, values []T) error {
	if !a.IsValid() {
		return fmt.Errorf("plot.Set: %w %d: %w", ErrInvalidAesthetic, a, ErrIndexOutOfRange)
	}
	col, ok := d.columns[a]
	if ok {
		if err := table.SetColumn(d.table, col, values); err != nil {
			return fmt.Errorf("plot.Set %s: %w", a, err)
		}
	} else {
		if err := table.AddColumn(d.table, values); err != nil {
			return fmt.Errorf("plot.Set %s: %w", a, err)
		}
		col = d.table.Cols() - 1
		d.columns[a] = col
	}
	cl := errors.Log1(d.table.Column(col))
	d.limits.Fit(a, cl.All())
	return nil
}

// SetRange sets the limits of aesthetic a directly, without adding any
// data. This is for data that is implicitly defined over a range, e.g.,
// histogram bins of regular width. Returns an error wrapping
// [ErrInvalidRange] if min > max.
func (d *Data) SetRange(a Aesthetics, mn, mx float32) error {
	if !a.IsValid() {
		return fmt.Errorf("plot.Data.SetRange: %w %d: %w", ErrInvalidAesthetic, a, ErrIndexOutOfRange)
	}
	if !(mn <= mx) {
		return fmt.Errorf("plot.Data.SetRange %s: [%v, %v]: %w", a, mn, mx, ErrInvalidRange)
	}
	d.limits.Set(a, mn, mx)
	return nil
}

// keep records the first error of a fluent call chain.
func (d *Data) keep(err error) *Data {
	if err != nil && d.err == nil {
		d.err = errors.Log(err)
	}
	return d
}

// Err returns the first error from the fluent setters
// ([Data.X], [Data.XRange], etc), or nil.
func (d *Data) Err() error {
	return d.err
}

// X sets the [X] aesthetic data. See [Set]; errors are available from [Data.Err].
func (d *Data) X(values []float32) *Data { return d.keep(Set(d, X, values)) }

// Y sets the [Y] aesthetic data. See [Set]; errors are available from [Data.Err].
func (d *Data) Y(values []float32) *Data { return d.keep(Set(d, Y, values)) }

// Color sets the [Color] aesthetic data. See [Set]; errors are available from [Data.Err].
func (d *Data) Color(values []float32) *Data { return d.keep(Set(d, Color, values)) }

// Size sets the [Size] aesthetic data. See [Set]; errors are available from [Data.Err].
func (d *Data) Size(values []float32) *Data { return d.keep(Set(d, Size, values)) }

// XRange sets the [X] limits. See [Data.SetRange].
func (d *Data) XRange(mn, mx float32) *Data { return d.keep(d.SetRange(X, mn, mx)) }

// YRange sets the [Y] limits. See [Data.SetRange].
func (d *Data) YRange(mn, mx float32) *Data { return d.keep(d.SetRange(Y, mn, mx)) }

// ColorRange sets the [Color] limits. See [Data.SetRange].
func (d *Data) ColorRange(mn, mx float32) *Data { return d.keep(d.SetRange(Color, mn, mx)) }

// SizeRange sets the [Size] limits. See [Data.SetRange].
func (d *Data) SizeRange(mn, mx float32) *Data { return d.keep(d.SetRange(Size, mn, mx)) }

// Has returns true if aesthetic a has a data column.
func (d *Data) Has(a Aesthetics) bool {
	_, ok := d.columns[a]
	return ok
}

func (d *Data) column(a Aesthetics) (int, error) {
	col, ok := d.columns[a]
	if !ok {
		return 0, fmt.Errorf("no column for %s: %w", a, ErrUnassignedAesthetic)
	}
	return col, nil
}

// Begin returns a cursor at the start of the column for aesthetic a,
// or an error wrapping [ErrUnassignedAesthetic] if a has not been set.
func (d *Data) Begin(a Aesthetics) (table.Cursor, error) {
	col, err := d.column(a)
	if err != nil {
		return table.Cursor{}, fmt.Errorf("plot.Data.Begin: %w", err)
	}
	return d.table.Begin(col)
}

// End returns a cursor one past the end of the column for aesthetic a,
// or an error wrapping [ErrUnassignedAesthetic] if a has not been set.
func (d *Data) End(a Aesthetics) (table.Cursor, error) {
	col, err := d.column(a)
	if err != nil {
		return table.Cursor{}, fmt.Errorf("plot.Data.End: %w", err)
	}
	return d.table.End(col)
}

// Column returns a view of the column for aesthetic a,
// or an error wrapping [ErrUnassignedAesthetic] if a has not been set.
func (d *Data) Column(a Aesthetics) (table.Column, error) {
	col, err := d.column(a)
	if err != nil {
		return table.Column{}, fmt.Errorf("plot.Data.Column: %w", err)
	}
	return d.table.Column(col)
}

// Rows returns the number of rows in the table.
func (d *Data) Rows() int { return d.table.Rows() }

// Cols returns the number of columns in the table, which includes
// any columns added through other Data sharing the table.
func (d *Data) Cols() int { return d.table.Cols() }

// Limits returns the min / max limits of the data. Only the
// dimensions of aesthetics that have been set are meaningful.
func (d *Data) Limits() Limits { return d.limits }

// Table returns the underlying (possibly shared) table.
func (d *Data) Table() *table.Table { return d.table }

// Clone returns a new Data with a copy of the aesthetic mapping and
// limits, sharing the same table.
func (d *Data) Clone() *Data {
	return &Data{table: d.table, columns: maps.Clone(d.columns), limits: d.limits, err: d.err}
}
