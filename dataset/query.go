// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	_ "github.com/lib/pq"
	"github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"
)

// Supported database/sql driver names.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// ErrUnknownDriver is returned by Open for a driver other than DuckDB or PostgreSQL.
var ErrUnknownDriver = errors.New("dataset: unknown driver")

// Open connects to DuckDB ("" is an in-memory database) or PostgreSQL and
// verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if driver != DriverDuckDB && driver != DriverPostgres {
		return nil, fmt.Errorf("%q: %w", driver, ErrUnknownDriver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}

// cell scans one numeric column value.
// DuckDB DECIMAL and HUGEINT values are narrowed from their exact big-number
// form. Text (PostgreSQL NUMERIC, VARCHAR) is parsed as an exact decimal, or
// as a big float when it carries more digits than a decimal holds.
type cell struct {
	v     float64
	valid bool
}

func (c *cell) Scan(src any) error {
	c.valid = true
	switch v := src.(type) {
	case nil:
		c.valid = false
	case float64:
		c.v = v
	case float32:
		c.v = float64(v)
	case int64:
		c.v = float64(v)
	case int32:
		c.v = float64(v)
	case int16:
		c.v = float64(v)
	case int8:
		c.v = float64(v)
	case int:
		c.v = float64(v)
	case uint64:
		c.v = float64(v)
	case uint32:
		c.v = float64(v)
	case uint16:
		c.v = float64(v)
	case uint8:
		c.v = float64(v)
	case bool:
		if v {
			c.v = 1
		} else {
			c.v = 0
		}
	case duckdb.Decimal:
		c.v = v.Float64()
	case *big.Int:
		if v == nil {
			c.valid = false
			break
		}
		c.v, _ = new(big.Float).SetInt(v).Float64()
	case []byte:
		return c.parse(string(v))
	case string:
		return c.parse(v)
	case fmt.Stringer:
		return c.parse(v.String())
	default:
		return fmt.Errorf("%T: %w", src, ErrUnsupportedValue)
	}

	return nil
}

func (c *cell) parse(s string) error {
	if d, err := decimal.Parse(s); err == nil {
		if f, ok := d.Float64(); ok {
			c.v = f
			return nil
		}
	}
	// beyond decimal's 19 digits
	bf, ok := new(big.Float).SetString(s)
	if !ok || bf.IsInf() {
		return fmt.Errorf("%q: %w", s, ErrUnsupportedValue)
	}
	c.v, _ = bf.Float64()

	return nil
}

// Query runs query on db and builds a Frame from every returned column,
// response included.
//
// Errors: ErrNoRows, ErrNullValue, ErrUnknownColumn, ErrUnsupportedValue,
// the errors of NewFrame, and driver errors.
func Query(ctx context.Context, db *sql.DB, query, response string, opts ...Option) (*Frame, error) {
	o := gatherOptions(opts...)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var (
		data  [][]float64
		cells = make([]cell, len(names))
		dest  = make([]any, len(names))
	)
	for j := range cells {
		dest[j] = &cells[j]
	}
	for rows.Next() {
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("row %d: %w", len(data), err)
		}
		rec := make([]float64, len(names))
		for j, c := range cells {
			if !c.valid {
				return nil, fmt.Errorf("row %d column %q: %w", len(data), names[j], ErrNullValue)
			}
			rec[j] = c.v
		}
		data = append(data, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	f, err := NewFrame(names, data, response, opts...)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("frame loaded",
		zap.Int("rows", f.X.Rows()),
		zap.Strings("columns", f.Names),
		zap.String("response", response),
	)

	return f, nil
}
