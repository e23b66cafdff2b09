package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family-weight/internal/models"
)

func newTestStore(t *testing.T) *TableStore {
	t.Helper()
	return NewTableStore(filepath.Join(t.TempDir(), "data", "weights.csv"), nil)
}

func TestLoad_MissingFile(t *testing.T) {
	store := newTestStore(t)

	table, err := store.Load()
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
	assert.Empty(t, table.Rows)
}

func TestLoad_EmptyFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), nil, 0o644))

	table, err := store.Load()
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
}

func TestLoad_HeaderOnly(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("Дата,Дима,Света\r\n"), 0o644))

	table, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Дата", "Дима", "Света"}, table.Header)
	assert.Empty(t, table.Rows)
}

func TestLoad_KeepsFieldsAsText(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	content := "Date,Dima,Sveta\n2024-01-01,70.50,\"55,5\"\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o644))

	table, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"2024-01-01", "70.50", "55,5"}}, table.Rows)
}

func TestLoad_MalformedFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("Date,Dima\n2024-01-01\n"), 0o644))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestSave_SortsByDate(t *testing.T) {
	store := newTestStore(t)
	table := models.Table{
		Header: []string{"Date", "Dima", "Sveta"},
		Rows: [][]string{
			{"2024-03-01", "72", ""},
			{"2024-01-01", "70", "55"},
			{"2024-02-01", "71", "56"},
		},
	}

	result, err := store.Save(table)
	require.NoError(t, err)
	assert.True(t, result.Sorted)
	assert.Equal(t, 3, result.Rows)

	// Sorting happens in place so memory order follows the file.
	assert.Equal(t, "2024-01-01", table.Rows[0][0])
	assert.Equal(t, "2024-03-01", table.Rows[2][0])

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, table.Header, loaded.Header)
	assert.Equal(t, [][]string{
		{"2024-01-01", "70", "55"},
		{"2024-02-01", "71", "56"},
		{"2024-03-01", "72", ""},
	}, loaded.Rows)
}

func TestSave_StableForEqualDates(t *testing.T) {
	store := newTestStore(t)
	table := models.Table{
		Header: []string{"Date", "Dima"},
		Rows: [][]string{
			{"2024-02-01", "b"},
			{"2024-01-01", "a"},
			{"2024-02-01", "c"},
		},
	}

	_, err := store.Save(table)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"2024-01-01", "a"},
		{"2024-02-01", "b"},
		{"2024-02-01", "c"},
	}, table.Rows)
}

func TestSave_UnparseableDateKeepsOrder(t *testing.T) {
	store := newTestStore(t)
	rows := [][]string{
		{"2024-03-01", "72"},
		{"вчера", "70"},
		{"2024-01-01", "71"},
	}
	table := models.Table{Header: []string{"Date", "Dima"}, Rows: rows}

	result, err := store.Save(table)
	require.NoError(t, err)
	assert.False(t, result.Sorted)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"2024-03-01", "72"},
		{"вчера", "70"},
		{"2024-01-01", "71"},
	}, loaded.Rows)
}

func TestSave_RoundTripQuotesAndUnicode(t *testing.T) {
	store := newTestStore(t)
	table := models.Table{
		Header: []string{"Дата", "Дима", "Света"},
		Rows: [][]string{
			{"2024-01-01", "70,5", "\"много\""},
			{"2024-01-02", "  spaced  ", ""},
		},
	}

	_, err := store.Save(table)
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, table.Header, loaded.Header)
	assert.Equal(t, table.Rows, loaded.Rows)
}

func TestSave_WritesCRLFRecords(t *testing.T) {
	store := newTestStore(t)
	table := models.Table{
		Header: []string{"Date", "Dima"},
		Rows:   [][]string{{"2024-01-01", "70"}},
	}

	_, err := store.Save(table)
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "Date,Dima\r\n2024-01-01,70\r\n", string(data))
}

func TestSave_OverwritesPreviousContent(t *testing.T) {
	store := newTestStore(t)
	first := models.Table{
		Header: []string{"Date", "Dima"},
		Rows:   [][]string{{"2024-01-01", "70"}, {"2024-01-02", "71"}},
	}
	_, err := store.Save(first)
	require.NoError(t, err)

	second := models.Table{Header: []string{"Date", "Dima"}, Rows: [][]string{}}
	_, err = store.Save(second)
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Rows)
}

func TestSave_ReportsIOErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	store := NewTableStore(filepath.Join(blocker, "weights.csv"), nil)
	_, err := store.Save(models.NewTable([]string{"Date", "Dima"}))
	assert.Error(t, err)
}

func TestSortByDate(t *testing.T) {
	assert.True(t, sortByDate(nil))
	assert.False(t, sortByDate([][]string{{}}))
	assert.False(t, sortByDate([][]string{{""}}))

	rows := [][]string{{"2024-12-31"}, {"2023-01-01"}}
	assert.True(t, sortByDate(rows))
	assert.Equal(t, "2023-01-01", rows[0][0])
}
