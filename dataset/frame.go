// SPDX-License-Identifier: MIT

// Package dataset turns tabular data into a design matrix and response vector.
//
// A Frame can be built from literal rows (NewFrame) or from any database/sql
// query (Query). Open registers the DuckDB and PostgreSQL drivers, so a CSV
// file can be fed to the selector straight from DuckDB:
//
//	db, _ := dataset.Open(ctx, dataset.DriverDuckDB, "")
//	f, _ := dataset.Query(ctx, db, "SELECT * FROM read_csv_auto('data.csv')", "y", dataset.WithIntercept())
package dataset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvreg/matrix"
)

// InterceptName labels the ones column added by WithIntercept.
const InterceptName = "(intercept)"

var (
	// ErrUnknownColumn is returned when the response column is not among the names.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrNoRows is returned for an empty input.
	ErrNoRows = errors.New("dataset: no rows")

	// ErrNullValue is returned when a cell is NULL.
	ErrNullValue = errors.New("dataset: NULL value")

	// ErrNoPredictors is returned when only the response column remains.
	ErrNoPredictors = errors.New("dataset: no predictor columns")

	// ErrUnsupportedValue is returned for a cell that is not numeric.
	ErrUnsupportedValue = errors.New("dataset: non-numeric value")
)

// Frame is a design matrix with named columns plus its response.
type Frame struct {
	Names    []string // column names of X, in order
	Response string
	X        *matrix.Dense[float64]
	Y        *matrix.Vector[float64]
}

// NewFrame splits rows into predictors and the response column.
//
// names labels every column of rows, the response included; predictors keep
// their relative order. With WithIntercept a ones column named InterceptName
// becomes column 0.
//
// Errors: ErrNoRows, ErrUnknownColumn, ErrNoPredictors, matrix.ErrBadShape
// (ragged rows or len(names) mismatch), matrix.ErrNaNInf.
func NewFrame(names []string, rows [][]float64, response string, opts ...Option) (*Frame, error) {
	o := gatherOptions(opts...)

	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	ri := slices.Index(names, response)
	if ri < 0 {
		return nil, fmt.Errorf("response %q: %w", response, ErrUnknownColumn)
	}
	if len(names) < 2 && !o.intercept {
		return nil, ErrNoPredictors
	}

	offset := 0
	if o.intercept {
		offset = 1
	}
	cols := len(names) - 1 + offset
	preds := make([][]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		if len(r) != len(names) {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(r), len(names), matrix.ErrBadShape)
		}
		row := make([]float64, 0, cols)
		if o.intercept {
			row = append(row, 1)
		}
		row = append(row, r[:ri]...)
		row = append(row, r[ri+1:]...)
		preds[i] = row
		ys[i] = r[ri]
	}

	x, err := matrix.NewDenseFrom(preds)
	if err != nil {
		return nil, fmt.Errorf("design: %w", err)
	}
	y, err := matrix.NewVectorFrom(ys)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	out := make([]string, 0, cols)
	if o.intercept {
		out = append(out, InterceptName)
	}
	out = append(out, names[:ri]...)
	out = append(out, names[ri+1:]...)

	return &Frame{Names: out, Response: response, X: x, Y: y}, nil
}
