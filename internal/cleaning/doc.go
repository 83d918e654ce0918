// Package cleaning provides table-cleaning operations: dropping rows
// with missing values, trimming whitespace from text cells, and
// removing numeric outliers with the IQR rule.
//
// Every operation treats its input table as immutable and returns a new
// table with the same column set and possibly fewer rows. Retained rows
// keep their original relative order.
//
// # Usage
//
//	cleaner, err := cleaning.New(slog.Default(), cleaning.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	trimmed := cleaner.TrimWhitespace(ctx, table)
//	complete := cleaner.DropMissing(ctx, trimmed)
//	filtered, err := cleaner.RemoveOutliers(ctx, complete, "age")
//
// # Error Handling
//
// Operations referencing columns fail with a column-not-found error
// when the column is absent, and with an invalid-value error when the
// column has the wrong type or too few observations. Errors surface
// immediately; no partial table is ever returned with an error.
package cleaning
