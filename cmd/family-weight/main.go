package main

import (
	"log"
	"runtime"

	"family-weight/internal/config"
	"family-weight/internal/controllers"
	"family-weight/internal/logger"
	"family-weight/internal/shutdown"
	"family-weight/internal/storage"
	"family-weight/internal/views"
	"family-weight/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
)

const (
	AppID      = "com.family.weight"
	AppVersion = "1.0.0"
)

// Application wires the window, the controller and the table store together
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	store      *storage.TableStore
	shutdown   *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration invalid: %v", err)
	}

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication loads the table and builds the window
func NewApplication(cfg *config.Config) (*Application, error) {
	appLogger := logger.New(cfg.Level(), cfg.Format())

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"data_file":  cfg.DataFile,
		"go_version": runtime.Version(),
		"log_level":  cfg.Level().String(),
	})

	store := storage.NewTableStore(cfg.DataFile, appLogger)
	controller := controllers.NewMainController(store, clockwork.NewRealClock(), appLogger, cfg.DefaultHeader())
	if err := controller.Load(); err != nil {
		appLogger.Error("Application", err, map[string]interface{}{"data_file": cfg.DataFile})
		return nil, err
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(cfg.AppTitle)
	window.SetMaster()

	mainView := views.NewMainView(window)
	mainView.SetDataFile(store.Path())
	controller.SetMainView(mainView)
	controller.RefreshDisplay()

	window.Resize(windowSize(len(controller.Table().Header)))
	window.CenterOnScreen()

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       mainView,
		store:      store,
		shutdown:   shutdown.NewManager(appLogger),
	}

	application.shutdown.Register("controller", controller)
	application.setupWindowEvents()

	appLogger.Info("Application", "initialized", nil)
	return application, nil
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})
}

// windowSize fits every column at its fixed width plus some room for the table chrome
func windowSize(columns int) fyne.Size {
	width := float32(columns)*(components.ColumnWidth+20) + 40
	if width < 600 {
		width = 600
	}
	return fyne.NewSize(width, 480)
}
