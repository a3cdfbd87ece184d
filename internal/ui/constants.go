package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconClose     = "×"
	IconWarning   = "⚠"
	IconRocket    = "🚀"
	IconCheck     = "✓"
	IconArrow     = "→"
	IconMail      = "📧"
	IconLink      = "🔗"
	IconBriefcase = "💼"
	IconEducation = "🎓"
	IconTrophy    = "🏆"
	IconStarFull  = "★"
	IconStarEmpty = "☆"
	IconBullet    = "•"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	FPSLabelFormat     = "%d fps"
)

// Scene sizing
const (
	SceneMinWidth  float32 = 320
	SceneMinHeight float32 = 320

	// Scene units between the outermost orbit and the edge
	SceneMargin float32 = 6

	SunRadius          float32 = 5
	MinPlanetPixels    float32 = 10
	PlanetScale        float32 = 1.6
	OrbitStrokeWidth   float32 = 1
	StarPixels         float32 = 2
	ShadowOffsetPixels float32 = 3
	HoverLabelOffset   float32 = 6
)

// Layout sizing
const (
	ModalWidth       float32 = 560
	ModalHeight      float32 = 520
	FallbackMaxWidth float32 = 600
	SkillBarWidth    float32 = 120

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Animation
const (
	// Degrees per second at orbit speed 1.0 and multiplier 1.0
	BaseOrbitDegreesPerSecond = 12.0
	AnimationCycle            = time.Second
)

// NotificationAutoHide is how long status messages stay visible
const NotificationAutoHide = 3 * time.Second
