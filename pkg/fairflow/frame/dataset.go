// Package frame provides the tabular data types shared by engines and
// stage wrappers: datasets of named numeric columns, the original/normalised
// training variants, and R-style model formulas.
package frame

import (
	"sort"

	"github.com/pkg/errors"
)

var (
	ErrEmptyDataset  = errors.New("dataset must have at least one column")
	ErrRaggedColumns = errors.New("all columns must have the same length")
)

// Dataset is an immutable table of named float64 columns of uniform length.
// Categorical values (group labels) are expected to be numerically encoded.
type Dataset struct {
	columns map[string][]float64
	names   []string
	rows    int
}

// NewDataset builds a dataset from named columns. Columns are copied, so the
// caller may keep mutating its slices.
func NewDataset(columns map[string][]float64) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, ErrEmptyDataset
	}

	dst := &Dataset{columns: make(map[string][]float64, len(columns))}
	rows := -1

	for name, values := range columns {
		if rows == -1 {
			rows = len(values)
		}
		if len(values) != rows {
			return nil, errors.Wrapf(ErrRaggedColumns, "column %q has %d rows, expected %d", name, len(values), rows)
		}

		dst.columns[name] = append([]float64(nil), values...)
		dst.names = append(dst.names, name)
	}

	sort.Strings(dst.names)
	dst.rows = rows

	return dst, nil
}

// Column returns a copy of the named column.
func (d *Dataset) Column(name string) ([]float64, error) {
	values, ok := d.columns[name]
	if !ok {
		return nil, errors.Errorf("unknown column %q", name)
	}

	return append([]float64(nil), values...), nil
}

// HasColumn reports whether the dataset holds the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.columns[name]
	return ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.rows
}

// Names returns the column names in lexical order.
func (d *Dataset) Names() []string {
	return append([]string(nil), d.names...)
}

// DistinctValues returns the sorted distinct values of the named column.
// Group-arity validation (e.g. binary protected attributes) builds on it.
func (d *Dataset) DistinctValues(name string) ([]float64, error) {
	values, ok := d.columns[name]
	if !ok {
		return nil, errors.Errorf("unknown column %q", name)
	}

	seen := make(map[float64]struct{}, 2)
	distinct := make([]float64, 0, 2)

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}

	sort.Float64s(distinct)

	return distinct, nil
}

// TrainingData bundles the original training dataset with an optional
// normalised variant.
type TrainingData struct {
	Original   *Dataset
	Normalized *Dataset
}
