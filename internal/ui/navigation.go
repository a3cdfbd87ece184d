package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/nhatvu148/solar-portfolio/internal/model"
)

// Navigation lists the planets independently of the rendering state
type Navigation struct {
	loc      *Localization
	mobile   *MobileUI
	onSelect func(model.Planet)

	planets []model.Planet
	box     *fyne.Container
}

// NewNavigation creates the bar; onSelect receives the chosen planet
func NewNavigation(planets []model.Planet, loc *Localization, mobile *MobileUI, onSelect func(model.Planet)) *Navigation {
	n := &Navigation{
		loc:      loc,
		mobile:   mobile,
		onSelect: onSelect,
		box:      container.NewStack(),
	}
	n.SetPlanets(planets)
	return n
}

// SetPlanets rebuilds the bar
func (n *Navigation) SetPlanets(planets []model.Planet) {
	n.planets = make([]model.Planet, len(planets))
	copy(n.planets, planets)

	if n.mobile != nil && n.mobile.IsMobileDevice() {
		n.box.Objects = []fyne.CanvasObject{n.buildSelect()}
	} else {
		n.box.Objects = []fyne.CanvasObject{n.buildButtons()}
	}
	n.box.Refresh()
}

func (n *Navigation) buildButtons() fyne.CanvasObject {
	label := widget.NewLabel(n.loc.GetText(KeyNavigate))
	label.TextStyle = fyne.TextStyle{Bold: true}

	row := container.NewHBox()
	for _, p := range n.planets {
		planet := p
		btn := widget.NewButton(planet.DisplayName(), func() { n.selectPlanet(planet) })
		btn.Importance = widget.LowImportance
		row.Add(btn)
	}
	return container.NewBorder(nil, nil, label, nil, container.NewHScroll(row))
}

func (n *Navigation) buildSelect() fyne.CanvasObject {
	var names []string
	for _, p := range n.planets {
		names = append(names, p.DisplayName())
	}
	sel := widget.NewSelect(names, nil)
	sel.PlaceHolder = n.loc.GetText(KeyExplore)
	sel.OnChanged = func(name string) {
		if name == "" {
			return
		}
		for _, p := range n.planets {
			if p.DisplayName() == name {
				n.selectPlanet(p)
				break
			}
		}
		sel.ClearSelected()
	}
	return sel
}

func (n *Navigation) selectPlanet(p model.Planet) {
	if n.onSelect != nil {
		n.onSelect(p)
	}
}

// Container returns the root object
func (n *Navigation) Container() fyne.CanvasObject { return n.box }
