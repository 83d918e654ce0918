package cleaning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerrors "tablekit/internal/errors"
	"tablekit/pkg/contracts/domain"
)

func TestTrimWhitespace(t *testing.T) {
	cleaner := newTestCleaner(t)
	table := sampleTable(t)

	got := cleaner.TrimWhitespace(context.Background(), table)

	name, ok := got.Column("name")
	require.True(t, ok)
	assert.Equal(t, domain.Str("Alice"), name.Cells[0])
	assert.Equal(t, domain.Str("Bob"), name.Cells[1])
	assert.True(t, name.Cells[2].IsMissing())
	assert.Equal(t, domain.Str("Carol"), name.Cells[3])

	// Numeric column passes through untouched.
	age, ok := got.Column("age")
	require.True(t, ok)
	origAge, _ := table.Column("age")
	assert.Equal(t, origAge.Cells, age.Cells)

	// Already-clean text column is unchanged.
	city, ok := got.Column("city")
	require.True(t, ok)
	origCity, _ := table.Column("city")
	assert.Equal(t, origCity.Cells, city.Cells)
}

func TestTrimWhitespaceDoesNotMutateInput(t *testing.T) {
	cleaner := newTestCleaner(t)
	table := sampleTable(t)
	before := table.Clone()

	cleaner.TrimWhitespace(context.Background(), table)
	assert.Equal(t, before, table)

	name, _ := table.Column("name")
	assert.Equal(t, domain.Str(" Alice "), name.Cells[0])
}

func TestTrimWhitespaceVarieties(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"leading and trailing spaces", " abc ", "abc"},
		{"tabs and newlines", "\tabc\n", "abc"},
		{"inner whitespace preserved", "  a b c  ", "a b c"},
		{"already clean", "abc", "abc"},
		{"whitespace only becomes empty", "   ", ""},
	}

	cleaner := newTestCleaner(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := domain.NewTable(domain.TextColumn("text", sptr(tt.in)))
			require.NoError(t, err)

			got := cleaner.TrimWhitespace(context.Background(), table)
			col, ok := got.Column("text")
			require.True(t, ok)
			assert.Equal(t, domain.Str(tt.want), col.Cells[0])
		})
	}
}

func TestTrimColumns(t *testing.T) {
	cleaner := newTestCleaner(t)
	table := sampleTable(t)

	got, err := cleaner.TrimColumns(context.Background(), table, "name")
	require.NoError(t, err)

	name, ok := got.Column("name")
	require.True(t, ok)
	assert.Equal(t, domain.Str("Alice"), name.Cells[0])
	assert.True(t, name.Cells[2].IsMissing())

	// Unselected text column keeps whatever it had.
	city, ok := got.Column("city")
	require.True(t, ok)
	origCity, _ := table.Column("city")
	assert.Equal(t, origCity.Cells, city.Cells)
}

func TestTrimColumnsErrors(t *testing.T) {
	tests := []struct {
		name           string
		columns        []string
		wantColumnMiss bool
		wantCode       string
	}{
		{
			name:           "unknown column",
			columns:        []string{"does_not_exist"},
			wantColumnMiss: true,
		},
		{
			name:     "numeric column is not trimmable",
			columns:  []string{"age"},
			wantCode: tkerrors.CodeTypeMismatch,
		},
		{
			name:           "unknown column reported before type mismatch",
			columns:        []string{"age", "does_not_exist"},
			wantColumnMiss: true,
		},
	}

	cleaner := newTestCleaner(t)
	table := sampleTable(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cleaner.TrimColumns(context.Background(), table, tt.columns...)
			require.Error(t, err)
			assert.Equal(t, domain.Table{}, got)
			if tt.wantColumnMiss {
				assert.True(t, tkerrors.IsColumnNotFound(err))
			} else {
				assert.True(t, tkerrors.IsInvalidValue(err))
				assert.Equal(t, tt.wantCode, tkerrors.CodeOf(err))
			}
		})
	}
}
