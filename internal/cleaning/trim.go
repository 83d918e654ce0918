package cleaning

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tkerrors "tablekit/internal/errors"
	"tablekit/pkg/contracts/domain"
)

// TrimWhitespace returns a new table where every text cell in every
// text column has its leading and trailing whitespace stripped. Numeric
// columns and missing cells pass through unchanged.
func (c *Cleaner) TrimWhitespace(ctx context.Context, t domain.Table) domain.Table {
	out := t.Clone()
	var trimmed int
	for i := range out.Columns {
		if out.Columns[i].Type != domain.ColumnText {
			continue
		}
		trimmed += trimColumn(&out.Columns[i])
	}

	c.logger.DebugContext(ctx, "trimmed whitespace from text columns",
		slog.Int("cells_changed", trimmed),
	)
	return out
}

// TrimColumns behaves like TrimWhitespace but only touches the named
// columns. It fails with a column-not-found error when any column is
// absent and with a type-mismatch error when any named column is not a
// text column.
func (c *Cleaner) TrimColumns(ctx context.Context, t domain.Table, columns ...string) (domain.Table, error) {
	if unknown := missingColumns(t, columns); len(unknown) > 0 {
		return domain.Table{}, tkerrors.ColumnsNotFound(unknown)
	}

	var nonText []string
	for _, name := range columns {
		col, _ := t.Column(name)
		if col.Type != domain.ColumnText {
			nonText = append(nonText, name)
		}
	}
	if len(nonText) > 0 {
		return domain.Table{}, tkerrors.InvalidValueWithDetails(
			tkerrors.CodeTypeMismatch,
			fmt.Sprintf("columns are not text columns: %v", nonText),
			nonText,
		)
	}

	out := t.Clone()
	var trimmed int
	for _, name := range columns {
		col, _ := out.Column(name)
		trimmed += trimColumn(col)
	}

	c.logger.DebugContext(ctx, "trimmed whitespace from selected columns",
		slog.Int("columns", len(columns)),
		slog.Int("cells_changed", trimmed),
	)
	return out, nil
}

// trimColumn strips the text cells of a column in place and reports how
// many cells changed. Missing cells stay missing.
func trimColumn(col *domain.Column) int {
	var changed int
	for i, cell := range col.Cells {
		if cell.Kind != domain.CellText {
			continue
		}
		if stripped := strings.TrimSpace(cell.Text); stripped != cell.Text {
			col.Cells[i] = domain.Str(stripped)
			changed++
		}
	}
	return changed
}
