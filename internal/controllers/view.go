package controllers

import (
	"family-weight/internal/models"
	"family-weight/internal/storage"
)

// View is the GUI surface the controller drives. Prompt and confirmation
// results arrive through callbacks because dialogs are not modal loops.
type View interface {
	ShowTable(header []string, rows [][]string)
	SetSelectedPerson(name string)
	SetStatus(status string)
	SelectedRow() (int, bool)

	ShowWarning(title, message string)
	ShowInfo(title, message string)
	ShowError(title string, err error)
	ShowConfirm(title, message string, callback func(bool))
	PromptWeight(person string, onSubmit func(float64))
	PromptCell(oldValue string, onSubmit func(string))

	SetAddWeightHandler(handler func())
	SetRefreshHandler(handler func())
	SetDeleteHandler(handler func())
	SetHeaderTappedHandler(handler func(column string))
	SetCellEditHandler(handler func(row, col int))
}

// TableStore loads and persists the table
type TableStore interface {
	Load() (models.Table, error)
	Save(table models.Table) (storage.SaveResult, error)
}
