package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/nhatvu148/solar-portfolio/internal/model"
	"github.com/nhatvu148/solar-portfolio/internal/render"
)

// TextureSize is the edge length of generated body textures in pixels
const TextureSize = 128

// sunTexture is a radial gradient from the core color through the glow to
// transparent at the edge.
func sunTexture(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			if d > 1 {
				continue
			}
			var px color.NRGBA
			switch {
			case d < 0.55:
				px = SunCore
			default:
				t := (d - 0.55) / 0.45
				px = mix(SunCore, SunGlow, t)
				px.A = uint8(255 * (1 - t*t))
			}
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}

// planetTexture shades a sphere lit from the upper left. Low precision tiers
// use fewer shading bands.
func planetTexture(base, glow color.NRGBA, size int, precision render.Precision) image.Image {
	bands := 0.0
	switch precision {
	case render.PrecisionLow:
		bands = 4
	case render.PrecisionMedium:
		bands = 12
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	lx, ly, lz := -0.5, -0.6, 0.62
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			nx := (float64(x) + 0.5 - r) / r
			ny := (float64(y) + 0.5 - r) / r
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)
			light := math.Max(0, nx*lx+ny*ly+nz*lz)
			if bands > 0 {
				light = math.Round(light*bands) / bands
			}
			shade := 0.25 + 0.75*light
			px := color.NRGBA{
				R: clamp8(float64(base.R)*shade + float64(glow.R)*0.12),
				G: clamp8(float64(base.G)*shade + float64(glow.G)*0.12),
				B: clamp8(float64(base.B)*shade + float64(glow.B)*0.12),
				A: 255,
			}
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}

// starField converts normalized star positions into an image of w x h
func starField(points []render.Point, w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	for i, p := range points {
		x := int(p.X * float32(w))
		y := int(p.Y * float32(h))
		alpha := uint8(120 + (i*37)%136)
		img.SetNRGBA(x, y, color.NRGBA{R: StarColor.R, G: StarColor.G, B: StarColor.B, A: alpha})
	}
	return img
}

// starPoints spreads n stars over the unit square with a fixed seed so the
// sky does not change between retries.
func starPoints(n int) []render.Point {
	pts := make([]render.Point, n)
	var seed uint32 = 2463534242
	next := func() float32 {
		// xorshift32
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return float32(seed%10000) / 10000
	}
	for i := range pts {
		pts[i] = render.Point{X: next(), Y: next()}
	}
	return pts
}

func starKey(n int) string {
	return fmt.Sprintf("stars-%d", n)
}

func planetTextureKey(p model.Planet, precision render.Precision) string {
	return fmt.Sprintf("planet-%s-%s-%s", p.ID, p.Color, precision)
}

func mix(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: clamp8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clamp8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clamp8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
