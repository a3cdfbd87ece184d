package model

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// SectionType identifies how a content section is rendered
type SectionType string

const (
	SectionText     SectionType = "text"
	SectionSkills   SectionType = "skills"
	SectionProjects SectionType = "projects"
	SectionTimeline SectionType = "timeline"
	SectionContact  SectionType = "contact"
)

// SkillCategory groups skills in the skills section
type SkillCategory string

const (
	SkillLanguage  SkillCategory = "language"
	SkillFramework SkillCategory = "framework"
	SkillTool      SkillCategory = "tool"
	SkillConcept   SkillCategory = "concept"
)

// Skill levels are on a 1-5 scale
const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
)

// Planet is one portfolio section rendered as an orbiting body
type Planet struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name"`
	OrbitRadius   float64       `yaml:"orbit_radius"`
	OrbitSpeed    float64       `yaml:"orbit_speed"` // relative to Earth (1.0)
	Size          float64       `yaml:"size"`
	Color         string        `yaml:"color"`
	EmissiveColor string        `yaml:"emissive_color,omitempty"`
	Content       PlanetContent `yaml:"content"`
}

// PlanetContent is what the content modal shows for a planet
type PlanetContent struct {
	Title    string           `yaml:"title"`
	Subtitle string           `yaml:"subtitle,omitempty"`
	Sections []ContentSection `yaml:"sections"`
}

// ContentSection holds one block of content; only the field matching Type is set
type ContentSection struct {
	Type     SectionType     `yaml:"type"`
	Title    string          `yaml:"title"`
	Text     string          `yaml:"text,omitempty"`
	Skills   []Skill         `yaml:"skills,omitempty"`
	Projects []Project       `yaml:"projects,omitempty"`
	Timeline []TimelineEntry `yaml:"timeline,omitempty"`
	Contact  *ContactInfo    `yaml:"contact,omitempty"`
}

// Skill is a named skill with a 1-5 level
type Skill struct {
	Name     string        `yaml:"name"`
	Level    int           `yaml:"level"`
	Category SkillCategory `yaml:"category"`
}

// Project is a showcased piece of work
type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Link         string   `yaml:"link,omitempty"`
	GitHub       string   `yaml:"github,omitempty"`
}

// TimelineEntry is a career or education milestone
type TimelineEntry struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"` // work, education or achievement
}

// ContactInfo lists ways to get in touch
type ContactInfo struct {
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Website  string `yaml:"website,omitempty"`
}

// ClampedLevel returns the skill level limited to the 1-5 scale
func (s Skill) ClampedLevel() int {
	if s.Level < MinSkillLevel {
		return MinSkillLevel
	}
	if s.Level > MaxSkillLevel {
		return MaxSkillLevel
	}
	return s.Level
}

// Validate checks that a planet can be placed in the scene
func (p *Planet) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("planet has empty id")
	}
	if p.OrbitRadius <= 0 {
		return fmt.Errorf("planet %s: orbit radius must be positive, got %v", p.ID, p.OrbitRadius)
	}
	if p.Size <= 0 {
		return fmt.Errorf("planet %s: size must be positive, got %v", p.ID, p.Size)
	}
	if _, err := ParseHexColor(p.Color); err != nil {
		return fmt.Errorf("planet %s: %w", p.ID, err)
	}
	return nil
}

// DisplayName returns the planet name, or its id when the name is empty
func (p *Planet) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// FillColor returns the planet base color, falling back to gray on bad input
func (p *Planet) FillColor() color.NRGBA {
	c, err := ParseHexColor(p.Color)
	if err != nil {
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return c
}

// GlowColor returns the emissive color, or the base color when none is set
func (p *Planet) GlowColor() color.NRGBA {
	if p.EmissiveColor == "" {
		return p.FillColor()
	}
	c, err := ParseHexColor(p.EmissiveColor)
	if err != nil {
		return p.FillColor()
	}
	return c
}

// ParseHexColor parses "#RRGGBB" or "#RGB" into an opaque color
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
