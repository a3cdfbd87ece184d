package ui

import (
	"fmt"
	"image"
	"math"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/nhatvu148/solar-portfolio/internal/model"
	"github.com/nhatvu148/solar-portfolio/internal/render"
)

// Degrees a swipe rotates the system by when orbiting manually
const SwipeRotateDegrees = 30.0

// maxStepDelta caps one animation step so a stalled frame does not jump
const maxStepDelta = 250 * time.Millisecond

const fpsInset float32 = 4

// SceneOptions are the user-adjustable parts of the scene
type SceneOptions struct {
	SpeedMultiplier float64
	AutoRotate      bool
	ShowFPS         bool
	HoverText       func(name string) string
	OnPlanetTapped  func(model.Planet)
}

// SolarSystem draws the sun, orbits and planets for one surface configuration
type SolarSystem struct {
	widget.BaseWidget

	mu        sync.Mutex
	planets   []model.Planet
	angles    []float64
	planetGen uint64
	cfg       render.Configuration
	res       *render.Resources
	opts      SceneOptions
	hovered   string
	lastTick  time.Time

	anim       *fyne.Animation
	running    bool
	disposed   bool
	firstFrame func()
	firstOnce  sync.Once
	gestures   *GestureHandler
}

// NewSolarSystem creates a scene; call Start to animate it
func NewSolarSystem(planets []model.Planet, cfg render.Configuration, res *render.Resources, opts SceneOptions) *SolarSystem {
	if opts.SpeedMultiplier <= 0 {
		opts.SpeedMultiplier = 1
	}
	s := &SolarSystem{cfg: cfg, res: res, opts: opts}
	s.setPlanetsLocked(planets)
	s.gestures = NewGestureHandler(s.onGesture)
	s.anim = fyne.NewAnimation(AnimationCycle, func(float32) {
		s.step(time.Now())
		s.Refresh()
	})
	s.anim.RepeatCount = fyne.AnimationRepeatForever
	s.anim.Curve = fyne.AnimationLinear
	s.ExtendBaseWidget(s)
	return s
}

// initialAngle spreads planets by the golden angle so they do not line up
func initialAngle(i int) float64 {
	return math.Mod(float64(i)*137.5, 360)
}

func (s *SolarSystem) setPlanetsLocked(planets []model.Planet) {
	s.planets = make([]model.Planet, len(planets))
	copy(s.planets, planets)
	s.angles = make([]float64, len(planets))
	for i := range s.angles {
		s.angles[i] = initialAngle(i)
	}
	s.planetGen++
}

// SetPlanets replaces the bodies, e.g. after the content file changed
func (s *SolarSystem) SetPlanets(planets []model.Planet) {
	s.mu.Lock()
	s.setPlanetsLocked(planets)
	s.mu.Unlock()
	s.Refresh()
}

// OnFirstFrame registers fn to run once when the first frame is drawn
func (s *SolarSystem) OnFirstFrame(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firstFrame = fn
}

// Start begins the animation loop
func (s *SolarSystem) Start() {
	s.mu.Lock()
	if s.running || s.disposed {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()
	s.anim.Start()
}

// Stop halts the animation loop
func (s *SolarSystem) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.lastTick = time.Time{}
	s.mu.Unlock()
	s.anim.Stop()
}

// dispose stops the scene for good; Start becomes a no-op
func (s *SolarSystem) dispose() {
	s.Stop()
	s.mu.Lock()
	s.disposed = true
	s.mu.Unlock()
}

// Running reports whether the animation loop is active
func (s *SolarSystem) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Configuration returns the surface configuration the scene was built for
func (s *SolarSystem) Configuration() render.Configuration {
	return s.cfg
}

// SetSpeedMultiplier changes how fast planets orbit
func (s *SolarSystem) SetSpeedMultiplier(m float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m > 0 {
		s.opts.SpeedMultiplier = m
	}
}

// SetAutoRotate toggles automatic orbiting
func (s *SolarSystem) SetAutoRotate(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.AutoRotate = enabled
}

// SetShowFPS toggles the frame rate label
func (s *SolarSystem) SetShowFPS(show bool) {
	s.mu.Lock()
	s.opts.ShowFPS = show
	s.mu.Unlock()
	s.Refresh()
}

// ShowFPS reports whether the frame rate label is shown
func (s *SolarSystem) ShowFPS() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.ShowFPS
}

// AutoRotate reports whether planets orbit on their own
func (s *SolarSystem) AutoRotate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.AutoRotate
}

// Rotate turns every planet by deg, scaled by its orbit speed
func (s *SolarSystem) Rotate(deg float64) {
	s.mu.Lock()
	for i, p := range s.planets {
		s.angles[i] = normalizeDegrees(s.angles[i] + deg*p.OrbitSpeed)
	}
	s.mu.Unlock()
	s.Refresh()
}

// Angles returns the current orbit angles in degrees
func (s *SolarSystem) Angles() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float64, len(s.angles))
	copy(out, s.angles)
	return out
}

// step advances the orbits to now and samples the frame rate
func (s *SolarSystem) step(now time.Time) {
	s.mu.Lock()
	var dt time.Duration
	if !s.lastTick.IsZero() {
		dt = now.Sub(s.lastTick)
		if dt > maxStepDelta {
			dt = maxStepDelta
		}
	}
	s.lastTick = now
	if s.opts.AutoRotate && dt > 0 {
		for i, p := range s.planets {
			s.angles[i] = normalizeDegrees(s.angles[i] +
				BaseOrbitDegreesPerSecond*p.OrbitSpeed*s.opts.SpeedMultiplier*dt.Seconds())
		}
	}
	first := s.firstFrame
	s.mu.Unlock()

	if s.res != nil {
		s.res.Frames.Tick(now)
	}
	if first != nil {
		s.firstOnce.Do(first)
	}
}

func (s *SolarSystem) setHovered(id string, hovering bool) {
	s.mu.Lock()
	switch {
	case hovering:
		s.hovered = id
	case s.hovered == id:
		s.hovered = ""
	}
	s.mu.Unlock()
	s.Refresh()
}

func (s *SolarSystem) hoverText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hovered == "" {
		return ""
	}
	for _, p := range s.planets {
		if p.ID == s.hovered {
			if s.opts.HoverText != nil {
				return s.opts.HoverText(p.DisplayName())
			}
			return p.DisplayName()
		}
	}
	return ""
}

func (s *SolarSystem) onPlanetTapped(p model.Planet) {
	s.mu.Lock()
	fn := s.opts.OnPlanetTapped
	s.mu.Unlock()
	if fn != nil {
		fn(p)
	}
}

func (s *SolarSystem) onGesture(g GestureType) {
	switch g {
	case GestureSwipeLeft:
		s.Rotate(-SwipeRotateDegrees)
	case GestureSwipeRight:
		s.Rotate(SwipeRotateDegrees)
	case GestureLongPress:
		s.SetAutoRotate(!s.AutoRotate())
	}
}

// TouchDown implements mobile.Touchable
func (s *SolarSystem) TouchDown(e *mobile.TouchEvent) { s.gestures.TouchDown(e) }

// TouchUp implements mobile.Touchable
func (s *SolarSystem) TouchUp(e *mobile.TouchEvent) { s.gestures.TouchUp(e) }

// TouchCancel implements mobile.Touchable
func (s *SolarSystem) TouchCancel(e *mobile.TouchEvent) { s.gestures.TouchCancel(e) }

// CreateRenderer implements fyne.Widget
func (s *SolarSystem) CreateRenderer() fyne.WidgetRenderer {
	r := &solarSystemRenderer{scene: s}
	r.background = canvas.NewRectangle(SpaceBackground)
	r.stars = canvas.NewRaster(r.drawStars)
	r.hoverLabel = canvas.NewText("", SunCore)
	r.hoverLabel.Alignment = fyne.TextAlignCenter
	r.hoverLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.fpsLabel = canvas.NewText("", SpaceMuted)
	r.fpsLabel.TextSize = 10
	r.fpsLabel.Hidden = !s.opts.ShowFPS
	if s.res != nil {
		s.res.Frames.OnUpdate(func(fps int) {
			r.fpsLabel.Text = fmt.Sprintf(FPSLabelFormat, fps)
		})
	}
	r.sun = r.loadSun()
	r.rebuild()
	return r
}

type solarSystemRenderer struct {
	scene *SolarSystem

	background *canvas.Rectangle
	stars      *canvas.Raster
	sun        fyne.CanvasObject
	orbits     []*canvas.Circle
	shadows    []*canvas.Circle
	bodies     []*planetWidget
	hoverLabel *canvas.Text
	fpsLabel   *canvas.Text

	objects   []fyne.CanvasObject
	planetGen uint64
	size      fyne.Size
}

func (r *solarSystemRenderer) loadSun() fyne.CanvasObject {
	if r.scene.res == nil {
		return canvas.NewCircle(SunCore)
	}
	tex, err := r.scene.res.Textures.Load("sun", func() (image.Image, error) {
		return sunTexture(TextureSize), nil
	})
	if err != nil {
		return canvas.NewCircle(SunCore)
	}
	img := canvas.NewImageFromImage(tex)
	img.FillMode = canvas.ImageFillContain
	return img
}

func (r *solarSystemRenderer) loadPlanetTexture(p model.Planet) image.Image {
	if r.scene.res == nil {
		return nil
	}
	precision := r.scene.cfg.Precision
	tex, err := r.scene.res.Textures.Load(planetTextureKey(p, precision), func() (image.Image, error) {
		return planetTexture(p.FillColor(), p.GlowColor(), TextureSize, precision), nil
	})
	if err != nil {
		return nil
	}
	return tex
}

func (r *solarSystemRenderer) drawStars(w, h int) image.Image {
	n := r.scene.cfg.StarCount()
	var pts []render.Point
	if r.scene.res != nil {
		pts = r.scene.res.Geometry.Get(starKey(n), func() []render.Point { return starPoints(n) })
	} else {
		pts = starPoints(n)
	}
	return starField(pts, w, h)
}

// rebuild recreates the per-planet objects
func (r *solarSystemRenderer) rebuild() {
	s := r.scene
	s.mu.Lock()
	planets := make([]model.Planet, len(s.planets))
	copy(planets, s.planets)
	r.planetGen = s.planetGen
	s.mu.Unlock()

	r.orbits = r.orbits[:0]
	r.shadows = r.shadows[:0]
	r.bodies = r.bodies[:0]
	for _, p := range planets {
		orbit := canvas.NewCircle(nil)
		orbit.StrokeColor = OrbitColor
		orbit.StrokeWidth = OrbitStrokeWidth
		r.orbits = append(r.orbits, orbit)

		if s.cfg.Shadows {
			r.shadows = append(r.shadows, canvas.NewCircle(ShadowColor))
		}
		r.bodies = append(r.bodies, newPlanetWidget(p, r.loadPlanetTexture(p), s.onPlanetTapped, s.setHovered))
	}

	objects := []fyne.CanvasObject{r.background, r.stars}
	for _, o := range r.orbits {
		objects = append(objects, o)
	}
	objects = append(objects, r.sun)
	for _, sh := range r.shadows {
		objects = append(objects, sh)
	}
	for _, b := range r.bodies {
		objects = append(objects, b)
	}
	objects = append(objects, r.hoverLabel, r.fpsLabel)
	r.objects = objects
}

func (r *solarSystemRenderer) Layout(size fyne.Size) {
	r.size = size
	r.background.Resize(size)
	r.stars.Resize(size)

	s := r.scene
	center := fyne.NewPos(size.Width/2, size.Height/2)

	s.mu.Lock()
	scale := sceneScale(size, maxOrbitRadius(s.planets))
	sunSize := SunRadius * 2 * scale * PlanetScale
	r.sun.Resize(fyne.NewSquareSize(sunSize))
	r.sun.Move(fyne.NewPos(center.X-sunSize/2, center.Y-sunSize/2))

	for i, p := range s.planets {
		if i >= len(r.orbits) {
			break
		}
		d := float32(p.OrbitRadius) * scale * 2
		r.orbits[i].Resize(fyne.NewSquareSize(d))
		r.orbits[i].Move(fyne.NewPos(center.X-d/2, center.Y-d/2))
	}
	s.mu.Unlock()

	r.placeBodies()

	r.fpsLabel.Move(fyne.NewPos(fpsInset, fpsInset))
	r.fpsLabel.Resize(r.fpsLabel.MinSize())
}

// placeBodies moves planets and shadows to their current angles
func (r *solarSystemRenderer) placeBodies() {
	s := r.scene
	center := fyne.NewPos(r.size.Width/2, r.size.Height/2)

	s.mu.Lock()
	scale := sceneScale(r.size, maxOrbitRadius(s.planets))
	for i, p := range s.planets {
		if i >= len(r.bodies) {
			break
		}
		d := planetDiameter(p.Size, scale)
		pos := orbitPosition(center, float32(p.OrbitRadius)*scale, s.angles[i])
		topLeft := fyne.NewPos(pos.X-d/2, pos.Y-d/2)
		r.bodies[i].Resize(fyne.NewSquareSize(d))
		r.bodies[i].Move(topLeft)
		if i < len(r.shadows) {
			r.shadows[i].Resize(fyne.NewSquareSize(d))
			r.shadows[i].Move(topLeft.AddXY(ShadowOffsetPixels, ShadowOffsetPixels))
		}
	}
	s.mu.Unlock()

	text := s.hoverText()
	r.hoverLabel.Text = text
	if text != "" {
		ms := r.hoverLabel.MinSize()
		r.hoverLabel.Resize(ms)
		r.hoverLabel.Move(fyne.NewPos((r.size.Width-ms.Width)/2, r.size.Height-ms.Height-HoverLabelOffset))
	}
}

func (r *solarSystemRenderer) MinSize() fyne.Size {
	return fyne.NewSize(SceneMinWidth, SceneMinHeight)
}

func (r *solarSystemRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *solarSystemRenderer) Refresh() {
	r.scene.mu.Lock()
	stale := r.planetGen != r.scene.planetGen
	r.scene.mu.Unlock()

	if stale {
		r.rebuild()
		r.Layout(r.size)
		canvas.Refresh(r.scene)
		return
	}

	r.placeBodies()
	for _, b := range r.bodies {
		canvas.Refresh(b)
	}
	for _, sh := range r.shadows {
		canvas.Refresh(sh)
	}
	r.scene.mu.Lock()
	r.fpsLabel.Hidden = !r.scene.opts.ShowFPS
	r.scene.mu.Unlock()
	canvas.Refresh(r.hoverLabel)
	canvas.Refresh(r.fpsLabel)
}

func (r *solarSystemRenderer) Destroy() {}

// sceneScale converts scene units to pixels so the outermost orbit fits
func sceneScale(size fyne.Size, maxOrbit float64) float32 {
	half := size.Width
	if size.Height < half {
		half = size.Height
	}
	half /= 2
	if half <= 0 {
		return 0
	}
	return half / (float32(maxOrbit) + SceneMargin)
}

func maxOrbitRadius(planets []model.Planet) float64 {
	outer := 0.0
	for _, p := range planets {
		if p.OrbitRadius > outer {
			outer = p.OrbitRadius
		}
	}
	return outer
}

func planetDiameter(size float64, scale float32) float32 {
	d := float32(size) * scale * PlanetScale * 2
	if d < MinPlanetPixels {
		return MinPlanetPixels
	}
	return d
}

// orbitPosition returns the point at angleDeg on a circle around center
func orbitPosition(center fyne.Position, radius float32, angleDeg float64) fyne.Position {
	rad := angleDeg * math.Pi / 180
	return fyne.NewPos(
		center.X+radius*float32(math.Cos(rad)),
		center.Y+radius*float32(math.Sin(rad)),
	)
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
