package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const noneSelected = "никто"

// Toolbar is the control row under the table: the selected-person label and
// the add/refresh/delete actions.
type Toolbar struct {
	container     *fyne.Container
	selectedLabel *widget.Label
	addButton     *widget.Button
	refreshButton *widget.Button
	deleteButton  *widget.Button

	addHandler     func()
	refreshHandler func()
	deleteHandler  func()

	selectedPerson string
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.selectedLabel = widget.NewLabel(selectedText(""))

	t.addButton = widget.NewButton("Добавить вес", nil)
	t.addButton.Importance = widget.HighImportance

	t.refreshButton = widget.NewButton("Обновить таблицу", nil)

	t.deleteButton = widget.NewButton("Удалить запись", nil)
	t.deleteButton.Importance = widget.DangerImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewCenter(container.NewHBox(
		t.selectedLabel,
		t.addButton,
		t.refreshButton,
		t.deleteButton,
	))
}

func (t *Toolbar) setupEventHandlers() {
	t.addButton.OnTapped = func() {
		if t.addHandler != nil {
			t.addHandler()
		}
	}

	t.refreshButton.OnTapped = func() {
		if t.refreshHandler != nil {
			t.refreshHandler()
		}
	}

	t.deleteButton.OnTapped = func() {
		if t.deleteHandler != nil {
			t.deleteHandler()
		}
	}
}

// SetAddHandler sets the add weight handler
func (t *Toolbar) SetAddHandler(handler func()) {
	t.addHandler = handler
}

// SetRefreshHandler sets the refresh handler
func (t *Toolbar) SetRefreshHandler(handler func()) {
	t.refreshHandler = handler
}

// SetDeleteHandler sets the delete record handler
func (t *Toolbar) SetDeleteHandler(handler func()) {
	t.deleteHandler = handler
}

// SetSelectedPerson updates the selected-person label
func (t *Toolbar) SetSelectedPerson(name string) {
	t.selectedPerson = name
	t.selectedLabel.SetText(selectedText(name))
}

// GetSelectedText returns the label text currently shown
func (t *Toolbar) GetSelectedText() string {
	return t.selectedLabel.Text
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func selectedText(name string) string {
	if name == "" {
		name = noneSelected
	}
	return fmt.Sprintf("Выбран: %s", name)
}
