package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/nhatvu148/solar-portfolio/internal/content"
	"github.com/nhatvu148/solar-portfolio/internal/fallback"
	"github.com/nhatvu148/solar-portfolio/internal/model"
)

// StaticActions are the handlers behind the static view buttons
type StaticActions struct {
	OnForceFull func()
	OnOpenURL   func(url string)
}

// StaticView is the informational page shown instead of the scene
type StaticView struct {
	notice      fallback.Notice
	forceBtn    *widget.Button
	downloadBtn *widget.Button
	content     fyne.CanvasObject
}

// NewStaticView builds the page from the notice and the about planet
func NewStaticView(notice fallback.Notice, store content.Store, loc *Localization, mobile *MobileUI, actions StaticActions) *StaticView {
	v := &StaticView{notice: notice}

	title, subtitle := staticSummary(store, loc)
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.Alignment = fyne.TextAlignCenter
	subtitleLabel := widget.NewLabel(subtitle)
	subtitleLabel.Wrapping = fyne.TextWrapWord
	subtitleLabel.Alignment = fyne.TextAlignCenter

	body := widget.NewLabel(notice.Body)
	body.Wrapping = fyne.TextWrapWord

	var cards []fyne.CanvasObject
	for _, rec := range fallback.Recommendations() {
		rating := widget.NewLabel(ratingStars(rec.Rating))
		rating.Alignment = fyne.TextAlignCenter
		rating.Importance = ratingImportance(rec.Rating)
		cards = append(cards, widget.NewCard(rec.Runtime, rec.Note, rating))
	}

	recommendation := widget.NewLabel(loc.GetText(KeyRecommendedLabel) + ": " + notice.Recommendation)
	recommendation.Wrapping = fyne.TextWrapWord
	recommendation.Importance = widget.LowImportance

	v.downloadBtn = widget.NewButton(notice.DownloadLabel, func() {
		if actions.OnOpenURL != nil {
			actions.OnOpenURL(notice.DownloadURL)
		}
	})
	v.downloadBtn.Importance = widget.HighImportance
	v.forceBtn = widget.NewButton(notice.ForceLabel, func() {
		if actions.OnForceFull != nil {
			actions.OnForceFull()
		}
	})

	noticeBox := container.NewVBox(
		body,
		mobile.CreateAdaptiveContainer(len(cards), cards...),
		recommendation,
		container.NewGridWithColumns(2, v.downloadBtn, v.forceBtn),
	)

	sections := container.NewVBox(
		titleLabel,
		subtitleLabel,
		widget.NewCard(IconWarning+" "+notice.Title, "", noticeBox),
	)
	if info, ok := content.Contact(store); ok {
		sections.Add(widget.NewCard(loc.GetText(KeyGetInTouch), "", newContactBlock(info, loc, actions.OnOpenURL)))
	}

	v.content = container.NewVScroll(container.NewPadded(sections))
	return v
}

// staticSummary reads the page heading from the about planet
func staticSummary(store content.Store, loc *Localization) (string, string) {
	title := loc.GetText(KeyAppTitle)
	subtitle := loc.GetText(KeyStaticSubtitle)
	if store == nil {
		return title, subtitle
	}
	about, err := store.Planet(content.AboutPlanetID)
	if err != nil {
		return title, subtitle
	}
	if about.Content.Title != "" {
		title = about.Content.Title
	}
	for _, s := range about.Content.Sections {
		if s.Type == model.SectionText && s.Text != "" {
			subtitle = s.Text
			break
		}
	}
	return title, subtitle
}

func ratingStars(r fallback.Rating) string {
	switch r {
	case fallback.RatingPerfect:
		return skillStars(5)
	case fallback.RatingExcellent:
		return skillStars(4)
	default:
		return skillStars(3)
	}
}

func ratingImportance(r fallback.Rating) widget.Importance {
	switch r {
	case fallback.RatingPerfect:
		return widget.SuccessImportance
	case fallback.RatingExcellent:
		return widget.HighImportance
	default:
		return widget.WarningImportance
	}
}

// Notice returns the notice the page was built from
func (v *StaticView) Notice() fallback.Notice { return v.notice }

// Container returns the root object
func (v *StaticView) Container() fyne.CanvasObject { return v.content }
