package controllers

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/jonboulle/clockwork"

	"family-weight/internal/logger"
	"family-weight/internal/models"
	"family-weight/internal/storage"
)

var (
	ErrNoPersonSelected = errors.New("no person selected")
	ErrNoRowSelected    = errors.New("no row selected")
	ErrRowOutOfRange    = errors.New("row index out of range")
	ErrCellOutOfRange   = errors.New("cell index out of range")
	ErrUnknownColumn    = errors.New("selected person is not a table column")
)

const component = "MainController"

// MainController owns the session: the in-memory table and the selected
// person. Every mutation is written through the store and re-rendered.
// All methods are expected to run on the UI goroutine.
type MainController struct {
	store         TableStore
	clock         clockwork.Clock
	logger        logger.Logger
	defaultHeader []string

	mainView View

	table          models.Table
	selectedPerson string
	lastSave       storage.SaveResult
}

// NewMainController creates a controller. defaultHeader is used when the
// store holds nothing yet.
func NewMainController(store TableStore, clock clockwork.Clock, log logger.Logger, defaultHeader []string) *MainController {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		store:         store,
		clock:         clock,
		logger:        log,
		defaultHeader: slices.Clone(defaultHeader),
		table:         models.NewTable(defaultHeader),
	}
}

// Load reads the table from the store, falling back to the default header
func (mc *MainController) Load() error {
	table, err := mc.store.Load()
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}

	if table.IsEmpty() {
		table = models.NewTable(mc.defaultHeader)
	}
	mc.table = table
	mc.selectedPerson = ""

	mc.logger.Info(component, "session loaded", map[string]interface{}{
		"columns": len(mc.table.Header),
		"rows":    len(mc.table.Rows),
	})
	return nil
}

// SetMainView associates the view with this controller and wires its events
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// Table returns a copy of the current table
func (mc *MainController) Table() models.Table {
	return mc.table.Clone()
}

// SelectedPerson returns the active target column, or "" when unset
func (mc *MainController) SelectedPerson() string {
	return mc.selectedPerson
}

// LastSave returns the result of the most recent successful save
func (mc *MainController) LastSave() storage.SaveResult {
	return mc.lastSave
}

// SelectPerson makes column the target of AddWeight. The date column is
// ignored. It reports whether the selection changed.
func (mc *MainController) SelectPerson(column string) bool {
	if mc.table.IsDateColumn(column) {
		return false
	}

	mc.selectedPerson = column
	if mc.mainView != nil {
		mc.mainView.SetSelectedPerson(column)
	}

	mc.logger.Debug(component, "person selected", map[string]interface{}{
		"person": column,
	})
	return true
}

// AddWeight records value for the selected person in today's row, creating
// the row when there is none.
func (mc *MainController) AddWeight(value float64) error {
	if mc.selectedPerson == "" {
		mc.warn("Ошибка", "Сначала выберите человека (клик по имени в заголовке).")
		return ErrNoPersonSelected
	}

	col := mc.table.ColumnIndex(mc.selectedPerson)
	if col < 0 {
		err := fmt.Errorf("%w: %q", ErrUnknownColumn, mc.selectedPerson)
		mc.handleError("Ошибка", err)
		return err
	}

	today := models.FormatDate(mc.clock.Now())
	idx := mc.table.FindRowByDate(today)
	if idx < 0 {
		mc.table.Rows = append(mc.table.Rows, mc.table.BlankRow(today))
		idx = len(mc.table.Rows) - 1
	}

	row := mc.table.Rows[idx]
	if col >= len(row) {
		err := fmt.Errorf("%w: row %d has %d cells", ErrCellOutOfRange, idx, len(row))
		mc.handleError("Ошибка", err)
		return err
	}
	row[col] = formatWeight(value)

	mc.logger.Info(component, "weight recorded", map[string]interface{}{
		"person": mc.selectedPerson,
		"date":   today,
		"value":  row[col],
	})

	if err := mc.persist(); err != nil {
		return err
	}
	mc.RefreshDisplay()
	mc.info("Успех", fmt.Sprintf("Вес %s обновлён.", mc.selectedPerson))
	mc.setStatus(fmt.Sprintf("Вес %s за %s: %s", mc.selectedPerson, today, row[col]))
	return nil
}

// EditCell overwrites one cell with value as-is. Edits to the date column
// are ignored.
func (mc *MainController) EditCell(row, col int, value string) error {
	if col == models.DateColumn {
		return nil
	}
	if row < 0 || row >= len(mc.table.Rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	if col < 0 || col >= len(mc.table.Rows[row]) {
		return fmt.Errorf("%w: %d", ErrCellOutOfRange, col)
	}

	mc.table.Rows[row][col] = value
	mc.logger.Info(component, "cell edited", map[string]interface{}{
		"row":    row,
		"column": col,
	})

	if err := mc.persist(); err != nil {
		return err
	}
	mc.RefreshDisplay()
	mc.setStatus("Запись изменена")
	return nil
}

// DeleteRow asks for confirmation and removes the row once confirmed
func (mc *MainController) DeleteRow(row int) error {
	if row < 0 || row >= len(mc.table.Rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	if mc.mainView == nil {
		return errors.New("no view to confirm deletion")
	}

	date := mc.table.Rows[row][models.DateColumn]
	mc.mainView.ShowConfirm("Подтверждение", fmt.Sprintf("Удалить запись за %s?", date), func(confirmed bool) {
		if !confirmed {
			mc.logger.Debug(component, "deletion declined", map[string]interface{}{"row": row})
			return
		}
		if err := mc.removeRow(row); err != nil {
			mc.logger.Error(component, err, map[string]interface{}{"row": row})
		}
	})
	return nil
}

// RefreshDisplay re-renders the table from memory
func (mc *MainController) RefreshDisplay() {
	if mc.mainView == nil {
		return
	}
	snapshot := mc.table.Clone()
	mc.mainView.ShowTable(snapshot.Header, snapshot.Rows)
}

// Shutdown logs the final state of the session
func (mc *MainController) Shutdown() {
	mc.logger.Info(component, "session closed", map[string]interface{}{
		"rows":            len(mc.table.Rows),
		"selected_person": mc.selectedPerson,
	})
}

func (mc *MainController) removeRow(row int) error {
	// The table may have changed while the dialog was open.
	if row < 0 || row >= len(mc.table.Rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}

	date := mc.table.Rows[row][models.DateColumn]
	mc.table.Rows = slices.Delete(mc.table.Rows, row, row+1)

	mc.logger.Info(component, "row deleted", map[string]interface{}{
		"row":  row,
		"date": date,
	})

	if err := mc.persist(); err != nil {
		return err
	}
	mc.RefreshDisplay()
	mc.info("Успех", fmt.Sprintf("Запись за %s удалена.", date))
	mc.setStatus(fmt.Sprintf("Запись за %s удалена", date))
	return nil
}

func (mc *MainController) persist() error {
	result, err := mc.store.Save(mc.table)
	if err != nil {
		mc.handleError("Ошибка сохранения", err)
		return err
	}
	mc.lastSave = result
	if !result.Sorted {
		mc.logger.Warning(component, "rows saved unsorted", map[string]interface{}{
			"rows": result.Rows,
		})
	}
	return nil
}

// setupViewEventHandlers connects view callbacks to controller flows
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetAddWeightHandler(mc.handleAddWeight)
	mc.mainView.SetRefreshHandler(mc.RefreshDisplay)
	mc.mainView.SetDeleteHandler(mc.handleDelete)
	mc.mainView.SetHeaderTappedHandler(func(column string) {
		mc.SelectPerson(column)
	})
	mc.mainView.SetCellEditHandler(mc.handleCellEdit)
}

func (mc *MainController) handleAddWeight() {
	if mc.selectedPerson == "" {
		mc.warn("Ошибка", "Сначала выберите человека (клик по имени в заголовке).")
		return
	}

	mc.mainView.PromptWeight(mc.selectedPerson, func(value float64) {
		_ = mc.AddWeight(value)
	})
}

func (mc *MainController) handleCellEdit(row, col int) {
	if col == models.DateColumn {
		return
	}
	if row < 0 || row >= len(mc.table.Rows) || col < 0 || col >= len(mc.table.Rows[row]) {
		mc.logger.Warning(component, "edit requested for stale cell", map[string]interface{}{
			"row":    row,
			"column": col,
		})
		return
	}

	old := mc.table.Rows[row][col]
	mc.mainView.PromptCell(old, func(value string) {
		if err := mc.EditCell(row, col, value); err != nil {
			mc.logger.Error(component, err, map[string]interface{}{"row": row, "column": col})
		}
	})
}

func (mc *MainController) handleDelete() {
	row, ok := mc.mainView.SelectedRow()
	if !ok {
		mc.warn("Ошибка", "Выберите запись для удаления.")
		return
	}

	if err := mc.DeleteRow(row); err != nil {
		mc.logger.Warning(component, "delete requested for stale row", map[string]interface{}{
			"row":   row,
			"error": err.Error(),
		})
	}
}

func (mc *MainController) warn(title, message string) {
	mc.logger.Debug(component, "warning shown", map[string]interface{}{"message": message})
	if mc.mainView != nil {
		mc.mainView.ShowWarning(title, message)
	}
}

func (mc *MainController) info(title, message string) {
	if mc.mainView != nil {
		mc.mainView.ShowInfo(title, message)
	}
}

func (mc *MainController) setStatus(status string) {
	if mc.mainView != nil {
		mc.mainView.SetStatus(status)
	}
}

// handleError logs err and shows it to the user
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error(component, err, map[string]interface{}{"title": title})
	if mc.mainView != nil {
		mc.mainView.ShowError(title, err)
	}
}

// formatWeight renders a weight in its shortest decimal form: 56 -> "56"
func formatWeight(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
