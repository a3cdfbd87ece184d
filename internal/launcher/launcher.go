// Package launcher builds the Fyne application, its services and the main
// window, and runs the event loop.
package launcher

import (
	"context"
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/nhatvu148/solar-portfolio/internal/capability"
	"github.com/nhatvu148/solar-portfolio/internal/config"
	"github.com/nhatvu148/solar-portfolio/internal/content"
	"github.com/nhatvu148/solar-portfolio/internal/logging"
	"github.com/nhatvu148/solar-portfolio/internal/ui"
)

const (
	AppID   = "com.nhatvu148.solar-portfolio"
	AppName = "Solar Portfolio"

	WindowWidth  = 1024
	WindowHeight = 768
)

// EnvContentFile points at a content file when no flag is given
const EnvContentFile = "PORTFOLIO_CONTENT"

// Options are the command-line choices for one run
type Options struct {
	Verbose     bool
	Fragment    string
	ContentFile string
	Version     string
}

// Run starts the app and blocks until the window closes
func Run(opts Options) error {
	if opts.Version == "" {
		opts.Version = "dev"
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSpaceTheme())
	settings := config.NewSettings(myApp)

	logger, err := logging.New(opts.Verbose || settings.GetVerbose())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting", zap.String("app", AppName), zap.String("version", opts.Version))

	if opts.Fragment != "" {
		settings.SetFragment(opts.Fragment)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, watcher := OpenContent(ResolveContentPath(opts.ContentFile, os.Getenv(EnvContentFile), settings.GetContentFile()), logger)
	if watcher != nil {
		if err := watcher.Start(ctx); err != nil {
			logger.Warn("Content hot reload disabled", zap.Error(err))
		} else {
			defer watcher.Stop()
		}
	}

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, opts.Version))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
		window.SetIcon(icon)
	}

	root := ui.NewRootUI(window, myApp, ui.Deps{
		Logger:   logger,
		Settings: settings,
		Store:    store,
		Prober:   capability.NewProber(settings, opts.Version),
	})
	window.SetOnClosed(root.Close)
	root.Mount()

	window.ShowAndRun()
	logger.Info("Stopped")
	return nil
}

// ResolveContentPath picks the content file: flag, then environment, then settings
func ResolveContentPath(flag, env, saved string) string {
	for _, p := range []string{flag, env, saved} {
		if p = strings.TrimSpace(p); p != "" {
			return p
		}
	}
	return ""
}

// OpenContent loads the embedded content, or the file at path together with a
// watcher for it. A file that cannot be read falls back to the embedded content.
func OpenContent(path string, logger *zap.Logger) (*content.MemoryStore, *content.Watcher) {
	logger = logging.OrNop(logger)

	if path != "" {
		planets, err := content.LoadFile(path)
		if err == nil {
			store := content.NewMemoryStore(planets)
			watcher, err := content.NewWatcher(path, store, logger)
			if err != nil {
				logger.Warn("Content hot reload disabled", zap.String("path", path), zap.Error(err))
				return store, nil
			}
			logger.Info("Content loaded", zap.String("path", path), zap.Int("planets", len(planets)))
			return store, watcher
		}
		logger.Warn("Falling back to embedded content", zap.String("path", path), zap.Error(err))
	}

	store, err := content.Default()
	if err != nil {
		// the embedded document is covered by tests; keep the app usable anyway
		logger.Error("Embedded content is invalid", zap.Error(err))
		return content.NewMemoryStore(nil), nil
	}
	return store, nil
}
