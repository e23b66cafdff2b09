package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ColumnWidth is the width of every table column
const ColumnWidth = 100

// WeightTable shows the weights under a clickable header row. A header tap
// reports the column name, a tap selects the row and a double tap asks for
// the cell to be edited.
type WeightTable struct {
	table       *widget.Table
	header      []string
	rows        [][]string
	selectedRow int

	headerTappedHandler func(column string)
	cellEditHandler     func(row, col int)
}

// NewWeightTable creates an empty table component
func NewWeightTable() *WeightTable {
	wt := &WeightTable{selectedRow: -1}

	wt.table = widget.NewTable(wt.size, wt.createCell, wt.updateCell)
	wt.table.ShowHeaderRow = true
	wt.table.CreateHeader = wt.createHeader
	wt.table.UpdateHeader = wt.updateHeader
	wt.table.OnSelected = func(id widget.TableCellID) {
		wt.selectedRow = id.Row
	}

	return wt
}

// SetData replaces the displayed header and rows. Any selection is cleared.
func (wt *WeightTable) SetData(header []string, rows [][]string) {
	wt.header = header
	wt.rows = rows
	wt.selectedRow = -1
	wt.table.UnselectAll()

	for i := range wt.header {
		wt.table.SetColumnWidth(i, ColumnWidth)
	}
	wt.table.Refresh()
}

// SetHeaderTappedHandler sets the handler for header clicks
func (wt *WeightTable) SetHeaderTappedHandler(handler func(column string)) {
	wt.headerTappedHandler = handler
}

// SetCellEditHandler sets the handler for double clicks on body cells
func (wt *WeightTable) SetCellEditHandler(handler func(row, col int)) {
	wt.cellEditHandler = handler
}

// SelectedRow returns the selected row index, if any
func (wt *WeightTable) SelectedRow() (int, bool) {
	if wt.selectedRow < 0 || wt.selectedRow >= len(wt.rows) {
		return -1, false
	}
	return wt.selectedRow, true
}

// RowCount returns the number of displayed rows
func (wt *WeightTable) RowCount() int {
	return len(wt.rows)
}

// CellText returns the displayed text of a body cell
func (wt *WeightTable) CellText(row, col int) string {
	if row < 0 || row >= len(wt.rows) || col < 0 || col >= len(wt.rows[row]) {
		return ""
	}
	return wt.rows[row][col]
}

// Header returns the displayed column names
func (wt *WeightTable) Header() []string {
	return wt.header
}

// Widget returns the underlying table widget
func (wt *WeightTable) Widget() *widget.Table {
	return wt.table
}

func (wt *WeightTable) size() (int, int) {
	return len(wt.rows), len(wt.header)
}

func (wt *WeightTable) createHeader() fyne.CanvasObject {
	return widget.NewButton("", nil)
}

func (wt *WeightTable) updateHeader(id widget.TableCellID, template fyne.CanvasObject) {
	button := template.(*widget.Button)
	if id.Col < 0 || id.Col >= len(wt.header) {
		button.SetText("")
		button.OnTapped = nil
		return
	}

	col := id.Col
	button.SetText(wt.header[col])
	button.OnTapped = func() {
		wt.headerTapped(col)
	}
}

func (wt *WeightTable) createCell() fyne.CanvasObject {
	return newTableCell(wt.cellTapped, wt.cellDoubleTapped)
}

func (wt *WeightTable) updateCell(id widget.TableCellID, template fyne.CanvasObject) {
	cell := template.(*tableCell)
	cell.id = id
	cell.SetText(wt.CellText(id.Row, id.Col))
}

func (wt *WeightTable) headerTapped(col int) {
	if col < 0 || col >= len(wt.header) || wt.headerTappedHandler == nil {
		return
	}
	wt.headerTappedHandler(wt.header[col])
}

func (wt *WeightTable) cellTapped(id widget.TableCellID) {
	wt.selectedRow = id.Row
	wt.table.Select(id)
}

func (wt *WeightTable) cellDoubleTapped(id widget.TableCellID) {
	wt.cellTapped(id)
	if wt.cellEditHandler != nil {
		wt.cellEditHandler(id.Row, id.Col)
	}
}

// tableCell is a centered label that knows its position and reports taps.
type tableCell struct {
	widget.Label
	id widget.TableCellID

	onTapped       func(widget.TableCellID)
	onDoubleTapped func(widget.TableCellID)
}

func newTableCell(onTapped, onDoubleTapped func(widget.TableCellID)) *tableCell {
	cell := &tableCell{
		onTapped:       onTapped,
		onDoubleTapped: onDoubleTapped,
	}
	cell.Alignment = fyne.TextAlignCenter
	cell.Truncation = fyne.TextTruncateEllipsis
	cell.ExtendBaseWidget(cell)
	return cell
}

func (c *tableCell) Tapped(*fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped(c.id)
	}
}

func (c *tableCell) DoubleTapped(*fyne.PointEvent) {
	if c.onDoubleTapped != nil {
		c.onDoubleTapped(c.id)
	}
}
