package views

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"family-weight/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView is the single window of the application: the weights table, the
// control row and a status bar.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	table         *components.WeightTable
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar
}

// NewMainView creates the view and sets it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.table = components.NewWeightTable()
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	bottomArea := container.NewVBox(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,        // top
		bottomArea, // bottom
		nil,        // left
		nil,        // right
		container.NewPadded(mv.table.Widget()),
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by controller

func (mv *MainView) SetAddWeightHandler(handler func()) {
	mv.toolbar.SetAddHandler(handler)
}

func (mv *MainView) SetRefreshHandler(handler func()) {
	mv.toolbar.SetRefreshHandler(handler)
}

func (mv *MainView) SetDeleteHandler(handler func()) {
	mv.toolbar.SetDeleteHandler(handler)
}

func (mv *MainView) SetHeaderTappedHandler(handler func(column string)) {
	mv.table.SetHeaderTappedHandler(handler)
}

func (mv *MainView) SetCellEditHandler(handler func(row, col int)) {
	mv.table.SetCellEditHandler(handler)
}

// UI update methods - called by controller

// ShowTable clears the table and fills it from header and rows
func (mv *MainView) ShowTable(header []string, rows [][]string) {
	mv.table.SetData(header, rows)
	mv.statusBar.SetRowCount(len(rows))
}

// SetSelectedPerson updates the "selected" label
func (mv *MainView) SetSelectedPerson(name string) {
	mv.toolbar.SetSelectedPerson(name)
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetDataFile shows the data file location in the status bar
func (mv *MainView) SetDataFile(path string) {
	mv.statusBar.SetFile(path)
}

// SelectedRow returns the row the user last clicked
func (mv *MainView) SelectedRow() (int, bool) {
	return mv.table.SelectedRow()
}

// ShowWarning displays a warning dialog
func (mv *MainView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
}

// ShowConfirm displays a yes/no dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// PromptWeight asks for a number. onSubmit is not called when the dialog is dismissed.
func (mv *MainView) PromptWeight(person string, onSubmit func(float64)) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("0.0")
	entry.Validator = func(s string) error {
		_, err := ParseWeight(s)
		return err
	}

	items := []*widget.FormItem{
		widget.NewFormItem(fmt.Sprintf("Введите новый вес для %s:", person), entry),
	}
	dialog.ShowForm("Вес", "OK", "Отмена", items, func(ok bool) {
		if !ok {
			return
		}
		value, err := ParseWeight(entry.Text)
		if err != nil {
			return
		}
		onSubmit(value)
	}, mv.window)
}

// PromptCell asks for a new cell value as free text
func (mv *MainView) PromptCell(oldValue string, onSubmit func(string)) {
	entry := widget.NewEntry()

	items := []*widget.FormItem{
		widget.NewFormItem(fmt.Sprintf("Введите новое значение (было: %s):", oldValue), entry),
	}
	dialog.ShowForm("Изменить", "OK", "Отмена", items, func(ok bool) {
		if ok {
			onSubmit(entry.Text)
		}
	}, mv.window)
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetTable returns the table component
func (mv *MainView) GetTable() *components.WeightTable {
	return mv.table
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// GetStatusBar returns the status bar component
func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// ParseWeight converts user input into a weight. A decimal comma is accepted.
func ParseWeight(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, errors.New("введите число")
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%q не число", s)
	}
	return value, nil
}
