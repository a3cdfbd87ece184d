package ui

import (
	"bytes"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	AppIcon     = "solar-portfolio.png"
	appIconSize = 256
)

var (
	logoOnce     sync.Once
	logoResource fyne.Resource
	logoErr      error
)

// LoadLogoResource returns the application icon, a rendered sun
func LoadLogoResource() (fyne.Resource, error) {
	logoOnce.Do(func() {
		var buf bytes.Buffer
		if err := png.Encode(&buf, sunTexture(appIconSize)); err != nil {
			logoErr = err
			return
		}
		logoResource = fyne.NewStaticResource(AppIcon, buf.Bytes())
	})
	return logoResource, logoErr
}
