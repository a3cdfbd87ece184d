package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// newLoadingView is shown while the first rendering attempt initializes. The
// chrome notice explains the extra check on problematic runtimes.
func newLoadingView(loc *Localization, chromeNotice bool) fyne.CanvasObject {
	background := canvas.NewRectangle(SpaceBackground)

	title := widget.NewLabel(IconRocket + " " + loc.GetText(KeyLoadingTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	message := widget.NewLabel(loc.GetText(KeyLoadingMessage))
	message.Alignment = fyne.TextAlignCenter
	if chromeNotice {
		message.SetText(loc.GetText(KeyLoadingChrome))
	}

	spinner := widget.NewProgressBarInfinite()
	box := container.NewVBox(title, spinner, message)
	return container.NewStack(background, container.NewCenter(box))
}
