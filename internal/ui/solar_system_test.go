package ui

import (
	"math"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatvu148/solar-portfolio/internal/model"
	"github.com/nhatvu148/solar-portfolio/internal/render"
)

func testPlanets() []model.Planet {
	return []model.Planet{
		{ID: "about", Name: "About", OrbitRadius: 12, OrbitSpeed: 1, Size: 0.6, Color: "#8C7853"},
		{ID: "skills", Name: "Skills", OrbitRadius: 18, OrbitSpeed: 0.5, Size: 0.9, Color: "#FFC649"},
	}
}

func TestSolarSystem_StepAdvancesOrbits(t *testing.T) {
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(0), render.NewResources(), SceneOptions{
		SpeedMultiplier: 2,
		AutoRotate:      true,
	})
	start := s.Angles()

	t0 := time.Unix(1000, 0)
	s.step(t0)
	assert.Equal(t, start, s.Angles(), "first step only records the time")

	s.step(t0.Add(100 * time.Millisecond))
	got := s.Angles()
	// 12 deg/s * speed * multiplier 2 * 0.1s
	assert.InDelta(t, normalizeDegrees(start[0]+2.4), got[0], 1e-9)
	assert.InDelta(t, normalizeDegrees(start[1]+1.2), got[1], 1e-9)
}

func TestSolarSystem_StepIsCappedAfterStall(t *testing.T) {
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(0), nil, SceneOptions{AutoRotate: true})
	start := s.Angles()

	t0 := time.Unix(1000, 0)
	s.step(t0)
	s.step(t0.Add(time.Minute))

	moved := normalizeDegrees(s.Angles()[0] - start[0])
	assert.InDelta(t, BaseOrbitDegreesPerSecond*maxStepDelta.Seconds(), moved, 1e-9)
}

func TestSolarSystem_NoAutoRotate(t *testing.T) {
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(0), nil, SceneOptions{})
	start := s.Angles()
	t0 := time.Unix(1000, 0)
	s.step(t0)
	s.step(t0.Add(time.Second))
	assert.Equal(t, start, s.Angles())

	s.SetAutoRotate(true)
	assert.True(t, s.AutoRotate())
	s.step(t0.Add(1100 * time.Millisecond))
	assert.NotEqual(t, start, s.Angles())
}

func TestSolarSystem_FirstFrameOnce(t *testing.T) {
	res := render.NewResources()
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(1), res, SceneOptions{})
	calls := 0
	s.OnFirstFrame(func() { calls++ })

	t0 := time.Unix(1000, 0)
	for i := 0; i < 5; i++ {
		s.step(t0.Add(time.Duration(i) * 10 * time.Millisecond))
	}
	assert.Equal(t, 1, calls)
}

func TestSolarSystem_GesturesRotate(t *testing.T) {
	test.NewApp()
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(0), nil, SceneOptions{AutoRotate: true})
	start := s.Angles()

	s.onGesture(GestureSwipeRight)
	assert.InDelta(t, normalizeDegrees(start[0]+SwipeRotateDegrees), s.Angles()[0], 1e-9)
	assert.InDelta(t, normalizeDegrees(start[1]+SwipeRotateDegrees*0.5), s.Angles()[1], 1e-9)

	s.onGesture(GestureSwipeLeft)
	assert.InDelta(t, start[0], s.Angles()[0], 1e-9)

	s.onGesture(GestureLongPress)
	assert.False(t, s.AutoRotate())
	s.onGesture(GestureLongPress)
	assert.True(t, s.AutoRotate())
}

func TestSolarSystem_SetPlanetsAndSpeed(t *testing.T) {
	test.NewApp()
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(0), nil, SceneOptions{})
	s.SetPlanets(testPlanets()[:1])
	assert.Len(t, s.Angles(), 1)

	s.SetSpeedMultiplier(0)
	s.mu.Lock()
	assert.Equal(t, 1.0, s.opts.SpeedMultiplier, "non-positive multipliers are ignored")
	s.mu.Unlock()
}

func TestSolarSystem_HoverAndTap(t *testing.T) {
	test.NewApp()
	var tapped string
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(0), nil, SceneOptions{
		HoverText:      func(name string) string { return "Click to visit " + name },
		OnPlanetTapped: func(p model.Planet) { tapped = p.ID },
	})

	assert.Empty(t, s.hoverText())
	s.setHovered("skills", true)
	assert.Equal(t, "Click to visit Skills", s.hoverText())
	s.setHovered("about", false)
	assert.Equal(t, "Click to visit Skills", s.hoverText(), "leaving another planet keeps the label")
	s.setHovered("skills", false)
	assert.Empty(t, s.hoverText())

	r := s.CreateRenderer().(*solarSystemRenderer)
	require.Len(t, r.bodies, 2)
	r.bodies[1].Tapped(&fyne.PointEvent{})
	assert.Equal(t, "skills", tapped)
}

func TestSolarSystem_ShadowsOnlyOnShadowTier(t *testing.T) {
	test.NewApp()
	for i := 0; i < render.ConfigurationCount; i++ {
		cfg := render.ConfigurationAt(i)
		s := NewSolarSystem(testPlanets(), cfg, render.NewResources(), SceneOptions{})
		r := s.CreateRenderer().(*solarSystemRenderer)

		if cfg.Shadows {
			assert.Len(t, r.shadows, 2, "tier %d", i)
		} else {
			assert.Empty(t, r.shadows, "tier %d", i)
		}
		assert.Len(t, r.orbits, 2)
		assert.Len(t, r.bodies, 2)
	}
}

func TestSolarSystem_RendererUsesSurfaceCaches(t *testing.T) {
	test.NewApp()
	res := render.NewResources()
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(2), res, SceneOptions{})
	r := s.CreateRenderer().(*solarSystemRenderer)

	// sun plus one texture per planet
	assert.Equal(t, 3, res.Textures.Len())
	for _, b := range r.bodies {
		assert.NotNil(t, b.texture)
	}

	r.drawStars(64, 64)
	assert.Equal(t, 1, res.Geometry.Len())

	r.Layout(fyne.NewSize(400, 400))
	assert.Equal(t, fyne.NewSize(400, 400), r.size)
}

func TestSolarSystem_SetShowFPS(t *testing.T) {
	test.NewApp()
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(0), render.NewResources(), SceneOptions{})
	r := test.WidgetRenderer(s).(*solarSystemRenderer)
	assert.True(t, r.fpsLabel.Hidden)

	s.SetShowFPS(true)
	assert.True(t, s.ShowFPS())
	assert.False(t, r.fpsLabel.Hidden)

	s.SetShowFPS(false)
	assert.True(t, r.fpsLabel.Hidden)
}

func TestSolarSystem_ReleasedCachesFallBackToCircles(t *testing.T) {
	test.NewApp()
	res := render.NewResources()
	res.Release()
	s := NewSolarSystem(testPlanets(), render.ConfigurationAt(0), res, SceneOptions{})
	r := s.CreateRenderer().(*solarSystemRenderer)
	for _, b := range r.bodies {
		assert.Nil(t, b.texture)
	}
}

func TestSceneGeometry(t *testing.T) {
	scale := sceneScale(fyne.NewSize(400, 300), 44)
	assert.InDelta(t, 150.0/50.0, float64(scale), 1e-6)
	assert.Zero(t, sceneScale(fyne.NewSize(0, 0), 44))

	center := fyne.NewPos(100, 100)
	p := orbitPosition(center, 10, 90)
	assert.InDelta(t, 100, float64(p.X), 1e-4)
	assert.InDelta(t, 110, float64(p.Y), 1e-4)

	assert.Equal(t, MinPlanetPixels, planetDiameter(0.01, 1))
	assert.InDelta(t, 1*10*PlanetScale*2, float64(planetDiameter(1, 10)), 1e-4)

	assert.Equal(t, 44.0, maxOrbitRadius([]model.Planet{{OrbitRadius: 12}, {OrbitRadius: 44}, {OrbitRadius: 30}}))
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-30, 330},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := normalizeDegrees(tt.in); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("normalizeDegrees(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}
