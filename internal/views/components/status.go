package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and table information
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	rowsLabel   *widget.Label
	fileLabel   *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Готово")
	sb.rowsLabel = widget.NewLabel("Записей: 0")
	sb.fileLabel = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.rowsLabel,
		widget.NewSeparator(),
		sb.fileLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetRowCount updates the number of records shown
func (sb *StatusBar) SetRowCount(n int) {
	sb.rowsLabel.SetText(fmt.Sprintf("Записей: %d", n))
}

// GetRowCountText returns the row count text
func (sb *StatusBar) GetRowCountText() string {
	return sb.rowsLabel.Text
}

// SetFile shows the path of the data file
func (sb *StatusBar) SetFile(path string) {
	sb.fileLabel.SetText(path)
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
