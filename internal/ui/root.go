package ui

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/nhatvu148/solar-portfolio/internal/capability"
	"github.com/nhatvu148/solar-portfolio/internal/config"
	"github.com/nhatvu148/solar-portfolio/internal/content"
	"github.com/nhatvu148/solar-portfolio/internal/fallback"
	"github.com/nhatvu148/solar-portfolio/internal/model"
	"github.com/nhatvu148/solar-portfolio/internal/platform"
	"github.com/nhatvu148/solar-portfolio/internal/render"
)

// Presenter names what the body of the window currently shows
type Presenter int

const (
	PresenterNone Presenter = iota
	PresenterScene
	PresenterStatic
)

// String returns the presenter name for logs
func (p Presenter) String() string {
	switch p {
	case PresenterScene:
		return "scene"
	case PresenterStatic:
		return "static"
	default:
		return "none"
	}
}

// Deps are the services the root UI is built from
type Deps struct {
	Logger   *zap.Logger
	Settings *config.Settings
	Store    *content.MemoryStore
	Prober   capability.Prober

	// Optional; default to the canvas surface and the platform location
	Surface        render.Surface
	Location       platform.Location
	ManagerOptions []render.Option
}

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App
	logger *zap.Logger

	settings     *config.Settings
	store        *content.MemoryStore
	prober       capability.Prober
	surface      render.Surface
	location     platform.Location
	managerOpts  []render.Option
	localization *Localization
	mobile       *MobileUI

	nav               *Navigation
	body              *fyne.Container
	notificationLabel *widget.Label

	// current presentation, replaced by Mount
	report    capability.Report
	presenter Presenter
	scene     *SceneView
	static    *StaticView
}

// NewRootUI creates and initializes the main UI. Call Mount to pick the presenter.
func NewRootUI(window fyne.Window, app fyne.App, deps Deps) *RootUI {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := deps.Settings
	if settings == nil {
		settings = config.NewSettings(app)
	}
	store := deps.Store
	if store == nil {
		store = content.NewMemoryStore(nil)
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		logger:       logger,
		settings:     settings,
		store:        store,
		prober:       deps.Prober,
		surface:      deps.Surface,
		location:     deps.Location,
		managerOpts:  deps.ManagerOptions,
		localization: localization,
		mobile:       NewMobileUI(),
	}
	if ui.prober == nil {
		ui.prober = capability.NewProber(settings, "")
	}
	if ui.surface == nil {
		ui.surface = NewCanvasSurface(store.Planets, ui.sceneOptions, logger)
	}
	if ui.location == nil {
		ui.location = platform.NewLocation(settings, ui.Reload)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	store.OnChange(ui.onContentChanged)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.nav = NewNavigation(ui.store.Planets(), ui.localization, ui.mobile, ui.onPlanetSelected)
	ui.body = container.NewStack()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, nil, ui.nav.Container())

	// Notification line under the top panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Importance = widget.LowImportance
	ui.notificationLabel.Hide()

	ui.window.SetContent(container.NewBorder(container.NewVBox(topPanel, ui.notificationLabel), nil, nil, nil, ui.body))
}

// Mount probes the environment once and shows either the scene or the static view
func (ui *RootUI) Mount() {
	signals := ui.prober.Probe()
	ui.report = capability.Assess(signals)

	ui.logger.Info("Capability gate decided",
		zap.String("user_agent", signals.UserAgent),
		zap.Bool("will_have_issues", ui.report.WillHaveIssues),
		zap.Bool("forced", ui.report.Verdict.ForceFullRendering),
		zap.Bool("skip_full_rendering", ui.report.SkipFullRendering))

	if ui.report.SkipFullRendering {
		ui.showStatic()
		return
	}
	ui.showScene()
}

func (ui *RootUI) showStatic() {
	ui.presenter = PresenterStatic
	ui.static = NewStaticView(fallback.StaticNotice(ui.report.Verdict), ui.store, ui.localization, ui.mobile, StaticActions{
		OnForceFull: ui.onForceFull,
		OnOpenURL:   ui.openURL,
	})
	ui.setBody(ui.static.Container())
}

func (ui *RootUI) showScene() {
	ui.presenter = PresenterScene
	ui.scene = NewSceneView(ui.surface, ui.localization, ui.logger,
		ui.report.Verdict.IsKnownProblematicRuntime,
		FailureActions{
			OnReload:  ui.location.Reload,
			OnOpenURL: ui.openURL,
		},
		ui.managerOpts...)
	ui.setBody(ui.scene.Container())
	ui.scene.Start()
}

func (ui *RootUI) setBody(obj fyne.CanvasObject) {
	ui.body.Objects = []fyne.CanvasObject{obj}
	ui.body.Refresh()
}

// unmount tears down the current presenter
func (ui *RootUI) unmount() {
	if ui.scene != nil {
		ui.scene.Close()
		ui.scene = nil
	}
	ui.static = nil
	ui.presenter = PresenterNone
	ui.body.Objects = nil
	ui.body.Refresh()
}

// Reload rebuilds the window body as a page reload would
func (ui *RootUI) Reload() {
	ui.logger.Info("Reloading")
	ui.unmount()
	ui.Mount()
}

// Close releases the scene; call when the window closes
func (ui *RootUI) Close() {
	ui.unmount()
}

// Presenter returns what the body currently shows
func (ui *RootUI) Presenter() Presenter { return ui.presenter }

// Report returns the gate result of the last mount
func (ui *RootUI) Report() capability.Report { return ui.report }

// SceneView returns the scene presenter, or nil
func (ui *RootUI) SceneView() *SceneView { return ui.scene }

// StaticView returns the static presenter, or nil
func (ui *RootUI) StaticView() *StaticView { return ui.static }

// sceneOptions reads the user's scene settings
func (ui *RootUI) sceneOptions() SceneOptions {
	return SceneOptions{
		SpeedMultiplier: ui.settings.GetOrbitSpeed(),
		AutoRotate:      ui.settings.GetAutoRotate(),
		ShowFPS:         ui.settings.GetShowFPS(),
		HoverText:       ui.hoverText,
		OnPlanetTapped:  ui.onPlanetSelected,
	}
}

func (ui *RootUI) hoverText(name string) string {
	return fmt.Sprintf(ui.localization.GetText(KeyHoverVisit), name)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.location.Reload)
	forceItem := fyne.NewMenuItem(ui.localization.GetText(KeyForceFull), ui.onForceFull)
	resetItem := fyne.NewMenuItem(ui.localization.GetText(KeyResetOverride), ui.onResetOverride)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		fyne.NewMenu(ui.localization.GetText(KeyView), reloadItem, forceItem, resetItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.nav.SetPlanets(ui.store.Planets())

	// the scene keeps running; only the static page is rebuilt
	if ui.presenter == PresenterStatic {
		ui.showStatic()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies the settings that take effect immediately
func (ui *RootUI) onSettingsSaved() {
	if ui.localization.GetCurrentLanguage() != ui.settings.GetLanguage() {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}
	if ui.scene == nil {
		return
	}
	if scene := ui.scene.Scene(); scene != nil {
		scene.SetSpeedMultiplier(ui.settings.GetOrbitSpeed())
		scene.SetAutoRotate(ui.settings.GetAutoRotate())
		scene.SetShowFPS(ui.settings.GetShowFPS())
	}
}

// onContentChanged runs on the watcher goroutine
func (ui *RootUI) onContentChanged() {
	planets := ui.store.Planets()
	fyne.Do(func() {
		ui.nav.SetPlanets(planets)
		switch ui.presenter {
		case PresenterStatic:
			ui.showStatic()
		case PresenterScene:
			if scene := ui.scene.Scene(); scene != nil {
				scene.SetPlanets(planets)
			}
		}
		ui.logger.Info("Content applied", zap.Int("planets", len(planets)))
		ui.showNotification(ui.localization.GetText(KeyContentReloaded))
	})
}

// showNotification shows message under the top panel for a few seconds
func (ui *RootUI) showNotification(message string) {
	ui.notificationLabel.SetText(message)
	ui.notificationLabel.Show()
	go func() {
		time.Sleep(NotificationAutoHide)
		fyne.Do(func() {
			if ui.notificationLabel.Text == message {
				ui.notificationLabel.Hide()
			}
		})
	}()
}

// onPlanetSelected opens the planet's content
func (ui *RootUI) onPlanetSelected(p model.Planet) {
	current, err := ui.store.Planet(p.ID)
	if err != nil {
		ui.logger.Warn("Selected planet is gone", zap.String("planet", p.ID), zap.Error(err))
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyPlanetNotFound), ui.window)
		return
	}
	ShowContentModal(ui.window, current, ui.localization, ui.openURL)
}

// onForceFull sets the override marker and reloads; the only way past the gate
func (ui *RootUI) onForceFull() {
	ui.logger.Info("Forcing full rendering")
	ui.location.SetFragment(capability.OverrideMarker)
	ui.location.Reload()
}

func (ui *RootUI) onResetOverride() {
	ui.location.SetFragment("")
	ui.location.Reload()
}

// openURL opens an external link. Links the app cannot open (runtime settings
// pages) are copied to the clipboard instead.
func (ui *RootUI) openURL(raw string) {
	err := platform.OpenURL(ui.app, raw)
	switch {
	case err == nil:
		ui.logger.Debug("Opened link", zap.String("url", raw))
	case errors.Is(err, platform.ErrUnsupportedURL):
		ui.app.Clipboard().SetContent(raw)
		dialog.ShowInformation(ui.localization.GetText(KeyCannotOpenLink), ui.localization.GetText(KeyCopiedToClip), ui.window)
	default:
		ui.logger.Warn("Failed to open link", zap.String("url", raw), zap.Error(err))
		dialog.ShowError(err, ui.window)
	}
}
