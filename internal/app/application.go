package app

import (
	"fmt"

	"picture-viewer/internal/clipboard"
	"picture-viewer/internal/config"
	"picture-viewer/internal/controllers"
	"picture-viewer/internal/imaging"
	"picture-viewer/internal/logger"
	"picture-viewer/internal/opencv"
	"picture-viewer/internal/viewport"
	"picture-viewer/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID      = "com.pictureviewer.viewer"
	AppVersion = "1.0.0"
)

// Options carries the command line inputs of the viewer.
type Options struct {
	ImagePath   string
	ConfigPath  string
	WatchConfig bool
	LoadLast    bool
	LogLevel    string
}

type Application struct {
	fyneApp    fyne.App
	view       *views.MainView
	controller *controllers.MainController
	settings   *config.Settings
	logger     logger.Logger
	lifecycle  *Lifecycle
	opts       Options
}

func NewApplication(opts Options) (*Application, error) {
	settings, err := loadSettings(opts)
	if err != nil {
		return nil, err
	}

	levelName := opts.LogLevel
	if levelName == "" {
		levelName = settings.LogLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	log := logger.NewConsoleLogger(level).With(map[string]interface{}{"version": AppVersion})

	log.Info("Application", "starting application", map[string]interface{}{
		"image":           opts.ImagePath,
		"config":          opts.ConfigPath,
		"zoom_speed":      settings.ZoomSpeed,
		"save_quality":    settings.SaveQuality,
		"load_last_image": settings.LoadLastImage,
	})

	fyneApp := app.NewWithID(AppID)
	view := views.NewMainView(fyneApp, log)

	resizer := opencv.NewResizer(log)
	codec := imaging.NewCodec(resizer)
	vp := viewport.NewController(codec, view, settings, log)
	controller := controllers.NewMainController(
		vp, view, clipboard.NewSystem(log),
		settings, fyneApp.Preferences(), log,
	)
	controller.Bind(view)

	application := &Application{
		fyneApp:    fyneApp,
		view:       view,
		controller: controller,
		settings:   settings,
		logger:     log,
		lifecycle:  NewLifecycle(log),
		opts:       opts,
	}
	application.lifecycle.Register("opencv resizer", resizer)

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func loadSettings(opts Options) (*config.Settings, error) {
	settings := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}
	if opts.LoadLast {
		settings.LoadLastImage = true
	}
	return settings, nil
}

// Run shows the viewer and blocks until it exits.
func (a *Application) Run() error {
	if a.opts.WatchConfig && a.opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(a.opts.ConfigPath, a.onConfigReload, a.logger)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		a.lifecycle.Register("config watcher", watcher)
	}

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.view.AttachNative()
		a.controller.Start(a.opts.ImagePath)
	})

	a.lifecycle.Listen(func() {
		fyne.Do(a.view.Quit)
	})
	defer a.lifecycle.Shutdown()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// onConfigReload runs on the watcher goroutine.
func (a *Application) onConfigReload(updated *config.Settings) {
	fyne.Do(func() {
		a.controller.ApplySettings(updated)
	})
}
