package cleaning

import (
	"context"
	"fmt"
	"log/slog"

	tkerrors "tablekit/internal/errors"
	"tablekit/internal/stats"
	"tablekit/pkg/contracts/domain"
)

// RemoveOutliers returns a new table without the rows considered
// outliers in the named numeric column under the IQR rule.
//
// Q1 and Q3 are the first and third quartiles of the column's
// non-missing values (linear interpolation between closest ranks).
// A row is kept when its value lies within
// [Q1 - f*IQR, Q3 + f*IQR] inclusive, where f is the configured
// IQRFactor. Rows whose cell in the column is missing fall within no
// bounds and are dropped. Relative order of kept rows is preserved.
//
// Fails with a column-not-found error when the column is absent, and
// with an invalid-value error when the column is not numeric or has
// fewer than four non-missing values (quartiles undefined).
func (c *Cleaner) RemoveOutliers(ctx context.Context, t domain.Table, column string) (domain.Table, error) {
	col, ok := t.Column(column)
	if !ok {
		return domain.Table{}, tkerrors.ColumnNotFound(column)
	}
	if col.Type != domain.ColumnNumeric {
		return domain.Table{}, tkerrors.InvalidValueWithDetails(
			tkerrors.CodeTypeMismatch,
			fmt.Sprintf("column %q must be numeric to compute IQR", column),
			column,
		)
	}

	values := make([]float64, 0, len(col.Cells))
	for _, cell := range col.Cells {
		if !cell.IsMissing() {
			values = append(values, cell.Number)
		}
	}
	if len(values) < minObservationsForQuartiles {
		return domain.Table{}, tkerrors.InvalidValueWithDetails(
			tkerrors.CodeInsufficientData,
			fmt.Sprintf("column %q has %d non-missing values; quartiles need at least %d", column, len(values), minObservationsForQuartiles),
			map[string]int{"provided": len(values), "required": minObservationsForQuartiles},
		)
	}

	q1, err := stats.Quantile(values, 0.25)
	if err != nil {
		return domain.Table{}, fmt.Errorf("first quartile of column %q: %w", column, err)
	}
	q3, err := stats.Quantile(values, 0.75)
	if err != nil {
		return domain.Table{}, fmt.Errorf("third quartile of column %q: %w", column, err)
	}

	iqr := q3 - q1
	lower := q1 - c.iqrFactor*iqr
	upper := q3 + c.iqrFactor*iqr

	keep := make([]bool, t.NumRows())
	for i, cell := range col.Cells {
		keep[i] = !cell.IsMissing() && cell.Number >= lower && cell.Number <= upper
	}

	out, _ := t.Select(keep)

	c.logger.DebugContext(ctx, "removed outlier rows",
		slog.String("column", column),
		slog.Float64("lower_bound", lower),
		slog.Float64("upper_bound", upper),
		slog.Int("rows_in", t.NumRows()),
		slog.Int("rows_out", out.NumRows()),
	)
	return out, nil
}
