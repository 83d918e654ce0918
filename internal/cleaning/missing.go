package cleaning

import (
	"context"
	"log/slog"

	tkerrors "tablekit/internal/errors"
	"tablekit/pkg/contracts/domain"
)

// DropMissing returns a new table containing only the rows where every
// column's cell is present. Retained rows keep their original order; an
// empty table yields an empty table. The operation is idempotent.
func (c *Cleaner) DropMissing(ctx context.Context, t domain.Table) domain.Table {
	keep := make([]bool, t.NumRows())
	for i := range keep {
		keep[i] = true
	}
	for _, col := range t.Columns {
		for i, cell := range col.Cells {
			if cell.IsMissing() {
				keep[i] = false
			}
		}
	}

	// The mask length always matches, so Select cannot fail here.
	out, _ := t.Select(keep)

	c.logger.DebugContext(ctx, "dropped rows with missing values",
		slog.Int("rows_in", t.NumRows()),
		slog.Int("rows_out", out.NumRows()),
	)
	return out
}

// DropMissingIn behaves like DropMissing but considers missing values
// only in the named columns. It fails with a column-not-found error
// listing every unknown column before touching any data.
func (c *Cleaner) DropMissingIn(ctx context.Context, t domain.Table, columns ...string) (domain.Table, error) {
	if unknown := missingColumns(t, columns); len(unknown) > 0 {
		return domain.Table{}, tkerrors.ColumnsNotFound(unknown)
	}

	keep := make([]bool, t.NumRows())
	for i := range keep {
		keep[i] = true
	}
	for _, name := range columns {
		col, _ := t.Column(name)
		for i, cell := range col.Cells {
			if cell.IsMissing() {
				keep[i] = false
			}
		}
	}

	out, _ := t.Select(keep)

	c.logger.DebugContext(ctx, "dropped rows with missing values in selected columns",
		slog.Int("columns", len(columns)),
		slog.Int("rows_in", t.NumRows()),
		slog.Int("rows_out", out.NumRows()),
	)
	return out, nil
}

// missingColumns returns the requested names absent from the table, in
// request order.
func missingColumns(t domain.Table, names []string) []string {
	var unknown []string
	for _, name := range names {
		if !t.HasColumn(name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
