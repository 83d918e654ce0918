package domain

import (
	"fmt"

	tkerrors "tablekit/internal/errors"
)

// CellKind identifies the value stored in a Cell.
type CellKind int

const (
	// CellMissing marks a cell explicitly absent, distinct from any
	// numeric or string value.
	CellMissing CellKind = iota
	// CellNumber marks a cell holding a real number.
	CellNumber
	// CellText marks a cell holding a string.
	CellText
)

// String returns the string representation of the cell kind
func (k CellKind) String() string {
	switch k {
	case CellMissing:
		return "missing"
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	default:
		return "unknown"
	}
}

// Cell is a single table value: a number, a string, or missing.
// Only the field selected by Kind is meaningful.
type Cell struct {
	Kind   CellKind `json:"kind"`
	Number float64  `json:"number,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Num creates a numeric cell.
func Num(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// Str creates a text cell.
func Str(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// None creates a missing cell.
func None() Cell {
	return Cell{Kind: CellMissing}
}

// IsMissing reports whether the cell is explicitly absent.
func (c Cell) IsMissing() bool {
	return c.Kind == CellMissing
}

// ColumnType declares the static schema of a column. A numeric column
// may hold only number or missing cells; a text column only text or
// missing cells.
type ColumnType string

const (
	ColumnNumeric ColumnType = "numeric"
	ColumnText    ColumnType = "text"
)

// Column is an ordered sequence of cells under a name and a static type.
type Column struct {
	Name  string     `json:"name"`
	Type  ColumnType `json:"type"`
	Cells []Cell     `json:"cells"`
}

// accepts reports whether a cell kind is allowed under the column type.
func (c Column) accepts(kind CellKind) bool {
	switch kind {
	case CellMissing:
		return true
	case CellNumber:
		return c.Type == ColumnNumeric
	case CellText:
		return c.Type == ColumnText
	default:
		return false
	}
}

// NumericColumn creates a numeric column from values, with nil entries
// marking missing cells.
func NumericColumn(name string, values ...*float64) Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if v == nil {
			cells[i] = None()
		} else {
			cells[i] = Num(*v)
		}
	}
	return Column{Name: name, Type: ColumnNumeric, Cells: cells}
}

// TextColumn creates a text column from values, with nil entries
// marking missing cells.
func TextColumn(name string, values ...*string) Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if v == nil {
			cells[i] = None()
		} else {
			cells[i] = Str(*v)
		}
	}
	return Column{Name: name, Type: ColumnText, Cells: cells}
}

// Table is an ordered collection of named columns with positionally
// aligned rows. Tables are treated as immutable: every operation that
// changes a table returns a new instance.
type Table struct {
	Columns []Column `json:"columns"`
}

// NewTable validates and assembles a table from columns.
//
// Validation rules:
//   - column names must be non-empty and unique
//   - all columns must have the same number of cells
//   - every cell kind must be allowed by its column type
//
// Violations return an invalid-value error; the zero Table is returned
// alongside any error.
func NewTable(columns ...Column) (Table, error) {
	seen := make(map[string]bool, len(columns))
	rows := -1

	for _, col := range columns {
		if col.Name == "" {
			return Table{}, tkerrors.InvalidValue(tkerrors.CodeInvalidConfig, "column name must not be empty")
		}
		if seen[col.Name] {
			return Table{}, tkerrors.InvalidValueWithDetails(
				tkerrors.CodeInvalidConfig,
				fmt.Sprintf("duplicate column name %q", col.Name),
				col.Name,
			)
		}
		seen[col.Name] = true

		if rows == -1 {
			rows = len(col.Cells)
		} else if len(col.Cells) != rows {
			return Table{}, tkerrors.InvalidValueWithDetails(
				tkerrors.CodeShapeMismatch,
				fmt.Sprintf("column %q has %d cells, expected %d", col.Name, len(col.Cells), rows),
				map[string]int{"got": len(col.Cells), "expected": rows},
			)
		}

		for i, cell := range col.Cells {
			if !col.accepts(cell.Kind) {
				return Table{}, tkerrors.InvalidValueWithDetails(
					tkerrors.CodeTypeMismatch,
					fmt.Sprintf("column %q row %d: %s cell not allowed in %s column", col.Name, i, cell.Kind, col.Type),
					map[string]string{"column": col.Name, "cell_kind": cell.Kind.String()},
				)
			}
		}
	}

	// Deep-copy so later caller mutations of the input columns cannot
	// alias into the table.
	return Table{Columns: columns}.Clone(), nil
}

// NumRows returns the number of rows in the table.
func (t Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// NumCols returns the number of columns in the table.
func (t Table) NumCols() int {
	return len(t.Columns)
}

// Column returns the column with the given name, or false when absent.
func (t Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// HasColumn reports whether a column with the given name exists.
func (t Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnNames returns the column names in table order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Row returns the cells of row i in column order.
func (t Table) Row(i int) []Cell {
	cells := make([]Cell, len(t.Columns))
	for j, col := range t.Columns {
		cells[j] = col.Cells[i]
	}
	return cells
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := Table{Columns: make([]Column, len(t.Columns))}
	for i, col := range t.Columns {
		cells := make([]Cell, len(col.Cells))
		copy(cells, col.Cells)
		out.Columns[i] = Column{Name: col.Name, Type: col.Type, Cells: cells}
	}
	return out
}

// Select returns a new table containing the rows where keep[i] is true,
// in their original order. keep must have exactly NumRows entries.
func (t Table) Select(keep []bool) (Table, error) {
	if len(keep) != t.NumRows() {
		return Table{}, tkerrors.InvalidValueWithDetails(
			tkerrors.CodeShapeMismatch,
			fmt.Sprintf("selection mask has %d entries, table has %d rows", len(keep), t.NumRows()),
			map[string]int{"mask": len(keep), "rows": t.NumRows()},
		)
	}

	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}

	out := Table{Columns: make([]Column, len(t.Columns))}
	for i, col := range t.Columns {
		cells := make([]Cell, 0, kept)
		for j, cell := range col.Cells {
			if keep[j] {
				cells = append(cells, cell)
			}
		}
		out.Columns[i] = Column{Name: col.Name, Type: col.Type, Cells: cells}
	}
	return out, nil
}
