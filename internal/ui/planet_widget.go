package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/nhatvu148/solar-portfolio/internal/model"
)

// planetWidget is one clickable body in the scene
type planetWidget struct {
	widget.BaseWidget

	planet  model.Planet
	texture image.Image

	onTapped func(model.Planet)
	onHover  func(id string, hovering bool)
}

var (
	_ fyne.Tappable      = (*planetWidget)(nil)
	_ desktop.Hoverable  = (*planetWidget)(nil)
	_ desktop.Cursorable = (*planetWidget)(nil)
)

func newPlanetWidget(p model.Planet, texture image.Image, onTapped func(model.Planet), onHover func(string, bool)) *planetWidget {
	w := &planetWidget{
		planet:   p,
		texture:  texture,
		onTapped: onTapped,
		onHover:  onHover,
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *planetWidget) CreateRenderer() fyne.WidgetRenderer {
	// flat circle when the texture cache was unavailable
	if w.texture == nil {
		return widget.NewSimpleRenderer(canvas.NewCircle(w.planet.FillColor()))
	}
	img := canvas.NewImageFromImage(w.texture)
	img.FillMode = canvas.ImageFillContain
	return widget.NewSimpleRenderer(img)
}

func (w *planetWidget) Tapped(*fyne.PointEvent) {
	if w.onTapped != nil {
		w.onTapped(w.planet)
	}
}

func (w *planetWidget) MouseIn(*desktop.MouseEvent) {
	if w.onHover != nil {
		w.onHover(w.planet.ID, true)
	}
}

func (w *planetWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *planetWidget) MouseOut() {
	if w.onHover != nil {
		w.onHover(w.planet.ID, false)
	}
}

func (w *planetWidget) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}
