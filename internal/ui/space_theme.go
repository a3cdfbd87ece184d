package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Scene palette
var (
	SpaceBackground = color.NRGBA{R: 15, G: 23, B: 42, A: 255} // slate-900
	SpacePanel      = color.NRGBA{R: 30, G: 41, B: 59, A: 255} // slate-800
	SpaceBorder     = color.NRGBA{R: 51, G: 65, B: 85, A: 255} // slate-700
	SpaceMuted      = color.NRGBA{R: 148, G: 163, B: 184, A: 255}
	SunCore         = color.NRGBA{R: 253, G: 184, B: 19, A: 255}
	SunGlow         = color.NRGBA{R: 255, G: 140, B: 0, A: 255}
	OrbitColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
	StarColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	ShadowColor     = color.NRGBA{R: 0, G: 0, B: 0, A: 140}
	PerfectColor    = color.NRGBA{R: 16, G: 185, B: 129, A: 255}
	ExcellentColor  = color.NRGBA{R: 59, G: 130, B: 246, A: 255}
	AdjustColor     = color.NRGBA{R: 249, G: 115, B: 22, A: 255}
)

// SpaceTheme is a dark theme with reduced padding for the scene chrome
type SpaceTheme struct{}

// NewSpaceTheme creates a new space theme
func NewSpaceTheme() fyne.Theme {
	return &SpaceTheme{}
}

// Color returns theme colors; the scene is always dark
func (t *SpaceTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return PerfectColor
	case theme.ColorNameError:
		return color.NRGBA{R: 248, G: 113, B: 113, A: 255} // Red for errors
	case theme.ColorNameWarning:
		return AdjustColor
	case theme.ColorNamePrimary:
		return ExcellentColor
	case theme.ColorNameBackground:
		return SpaceBackground
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return SpacePanel
	case theme.ColorNameForeground:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameDisabled, theme.ColorNamePlaceHolder:
		return SpaceMuted
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return SpaceBorder
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *SpaceTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SpaceTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *SpaceTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 20 // Fallback headings stay prominent
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
