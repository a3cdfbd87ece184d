package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/nhatvu148/solar-portfolio/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	speedSlider      *widget.Slider
	speedLabel       *widget.Label
	autoRotateCheck  *widget.Check
	verboseCheck     *widget.Check
	showFPSCheck     *widget.Check
	contentFileEntry *widget.Entry
	languageSelect   *widget.Select
	languageCodes    map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, loc, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.speedLabel = widget.NewLabel("")
	sd.speedSlider = widget.NewSlider(config.MinOrbitSpeed, config.MaxOrbitSpeed)
	sd.speedSlider.Step = 0.1
	sd.speedSlider.OnChanged = func(v float64) {
		sd.speedLabel.SetText(fmt.Sprintf("%.1fx", v))
	}
	speedRow := container.NewBorder(nil, nil, nil, sd.speedLabel, sd.speedSlider)

	sd.autoRotateCheck = widget.NewCheck(sd.loc.GetText(KeyAutoRotate), nil)
	sd.showFPSCheck = widget.NewCheck(sd.loc.GetText(KeyShowFPS), nil)
	sd.verboseCheck = widget.NewCheck(sd.loc.GetText(KeyVerboseLogging), nil)

	sd.contentFileEntry = widget.NewEntry()
	sd.contentFileEntry.SetPlaceHolder("planets.yaml")
	browseBtn := widget.NewButton(sd.loc.GetText(KeyBrowse), sd.onBrowseContentFile)
	contentRow := container.NewBorder(nil, nil, nil, browseBtn, sd.contentFileEntry)

	// Language selection shows names and stores codes
	sd.languageCodes = make(map[string]string)
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	restartNote := widget.NewLabel(sd.loc.GetText(KeyRestartRequired))
	restartNote.Importance = widget.LowImportance

	form := container.NewVBox(
		widget.NewLabel(sd.loc.GetText(KeyOrbitSpeed)+":"),
		speedRow,
		sd.autoRotateCheck,
		sd.showFPSCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.loc.GetText(KeyContentFile)+":"),
		contentRow,
		sd.verboseCheck,
		restartNote,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(ModalWidth, ModalHeight*3/4))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.speedSlider.SetValue(sd.settings.GetOrbitSpeed())
	sd.speedLabel.SetText(fmt.Sprintf("%.1fx", sd.settings.GetOrbitSpeed()))
	sd.autoRotateCheck.SetChecked(sd.settings.GetAutoRotate())
	sd.showFPSCheck.SetChecked(sd.settings.GetShowFPS())
	sd.verboseCheck.SetChecked(sd.settings.GetVerbose())
	sd.contentFileEntry.SetText(sd.settings.GetContentFile())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseContentFile picks a content file
func (sd *SettingsDialog) onBrowseContentFile() {
	dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer r.Close()
		sd.contentFileEntry.SetText(r.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.loc.GetText(KeySettings), sd.loc.GetText(KeySettingsSaved), sd.window)
}

func (sd *SettingsDialog) save() {
	sd.settings.SetOrbitSpeed(sd.speedSlider.Value)
	sd.settings.SetAutoRotate(sd.autoRotateCheck.Checked)
	sd.settings.SetShowFPS(sd.showFPSCheck.Checked)
	sd.settings.SetVerbose(sd.verboseCheck.Checked)
	sd.settings.SetContentFile(sd.contentFileEntry.Text)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
