package views

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	test.NewTempApp(t)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)
	return NewMainView(window)
}

func TestNewMainView_SetsWindowContent(t *testing.T) {
	view := newTestView(t)

	assert.NotNil(t, view.GetWindow().Content())
	assert.Equal(t, "Выбран: никто", view.GetToolbar().GetSelectedText())
	assert.Equal(t, "Готово", view.GetStatusBar().GetStatus())
}

func TestShowTable(t *testing.T) {
	view := newTestView(t)

	view.ShowTable([]string{"Дата", "Дима", "Света"}, [][]string{
		{"2024-01-01", "70", "55"},
		{"2024-01-02", "", "56"},
	})

	table := view.GetTable()
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, []string{"Дата", "Дима", "Света"}, table.Header())
	assert.Equal(t, "56", table.CellText(1, 2))
	assert.Equal(t, "Записей: 2", view.GetStatusBar().GetRowCountText())

	_, ok := view.SelectedRow()
	assert.False(t, ok)
}

func TestShowTable_TwiceGivesSameContents(t *testing.T) {
	view := newTestView(t)
	header := []string{"Дата", "Дима"}
	rows := [][]string{{"2024-01-01", "70"}}

	view.ShowTable(header, rows)
	first := view.GetTable().CellText(0, 1)
	view.ShowTable(header, rows)

	assert.Equal(t, first, view.GetTable().CellText(0, 1))
	assert.Equal(t, 1, view.GetTable().RowCount())
}

func TestSetSelectedPersonAndStatus(t *testing.T) {
	view := newTestView(t)

	view.SetSelectedPerson("Света")
	view.SetStatus("Вес Света обновлён")
	view.SetDataFile("./data/weights.csv")

	assert.Equal(t, "Выбран: Света", view.GetToolbar().GetSelectedText())
	assert.Equal(t, "Вес Света обновлён", view.GetStatusBar().GetStatus())
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"56", 56, false},
		{" 56.5 ", 56.5, false},
		{"55,5", 55.5, false},
		{"", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeight(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
