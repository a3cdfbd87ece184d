package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/nhatvu148/solar-portfolio/internal/fallback"
)

// FailureActions are the handlers behind the failure view buttons
type FailureActions struct {
	OnRetry   func()
	OnReload  func()
	OnOpenURL func(url string)
}

// FailureView shows remediation guidance for a failed rendering attempt
type FailureView struct {
	guidance fallback.Guidance
	buttons  []*widget.Button
	content  fyne.CanvasObject
}

// NewFailureView builds the view for g
func NewFailureView(g fallback.Guidance, loc *Localization, actions FailureActions) *FailureView {
	v := &FailureView{guidance: g}

	headline := widget.NewLabel(IconWarning + " " + g.Headline)
	headline.TextStyle = fyne.TextStyle{Bold: true}
	headline.Alignment = fyne.TextAlignCenter

	detail := widget.NewLabel(g.Detail)
	detail.Wrapping = fyne.TextWrapWord
	detail.Alignment = fyne.TextAlignCenter

	attempt := widget.NewLabel(g.AttemptText)
	attempt.Importance = widget.LowImportance
	attempt.Alignment = fyne.TextAlignCenter

	errText := widget.NewLabel(g.ErrorDetail)
	errText.Wrapping = fyne.TextWrapBreak
	errText.TextStyle = fyne.TextStyle{Monospace: true}
	errorCard := widget.NewCard("", loc.GetText(KeyErrorDetails), errText)

	solutions := container.NewVBox()
	for _, s := range g.Solutions {
		title := widget.NewLabel(IconBullet + " " + s.Title)
		title.TextStyle = fyne.TextStyle{Bold: true}
		hint := widget.NewLabel(s.Hint)
		hint.Wrapping = fyne.TextWrapWord
		hint.Importance = widget.LowImportance
		solutions.Add(container.NewVBox(title, hint))
	}
	solutionsCard := widget.NewCard("", loc.GetText(KeyQuickSolutions), solutions)

	buttons := container.NewGridWithColumns(2)
	for _, a := range g.Actions {
		btn := widget.NewButton(a.Label, v.handler(a, actions))
		if a.Primary {
			btn.Importance = widget.HighImportance
		}
		v.buttons = append(v.buttons, btn)
		buttons.Add(btn)
	}

	body := container.NewVBox(headline, detail, attempt, buttons, solutionsCard, errorCard)
	v.content = container.NewVScroll(container.NewPadded(body))
	return v
}

func (v *FailureView) handler(a fallback.Action, actions FailureActions) func() {
	switch a.Kind {
	case fallback.ActionRetry:
		return func() {
			if actions.OnRetry != nil {
				actions.OnRetry()
			}
		}
	case fallback.ActionReload:
		return func() {
			if actions.OnReload != nil {
				actions.OnReload()
			}
		}
	default:
		url := a.URL
		return func() {
			if actions.OnOpenURL != nil {
				actions.OnOpenURL(url)
			}
		}
	}
}

// Guidance returns what the view shows
func (v *FailureView) Guidance() fallback.Guidance { return v.guidance }

// Container returns the root object
func (v *FailureView) Container() fyne.CanvasObject { return v.content }
