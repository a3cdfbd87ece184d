package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/nhatvu148/solar-portfolio/internal/model"
)

//go:embed planets.yaml
var defaultPlanets []byte

// AboutPlanetID is the planet whose content summarizes the portfolio
const AboutPlanetID = "about"

var (
	// ErrPlanetNotFound is returned for unknown planet IDs
	ErrPlanetNotFound = errors.New("planet not found")

	// ErrNoPlanets is returned when a content document has no planets
	ErrNoPlanets = errors.New("content has no planets")
)

// Store is read-only access to portfolio content
type Store interface {
	Planets() []model.Planet
	Planet(id string) (model.Planet, error)
	Sections(id string) (model.PlanetContent, error)
}

// DefaultDocument returns a copy of the embedded content document
func DefaultDocument() []byte {
	out := make([]byte, len(defaultPlanets))
	copy(out, defaultPlanets)
	return out
}

type document struct {
	Planets []model.Planet `yaml:"planets"`
}

// Parse decodes and validates a content document
func Parse(data []byte) ([]model.Planet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPlanets
		}
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if len(doc.Planets) == 0 {
		return nil, ErrNoPlanets
	}

	seen := make(map[string]bool, len(doc.Planets))
	for i := range doc.Planets {
		p := &doc.Planets[i]
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid planet at index %d: %w", i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate planet id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return doc.Planets, nil
}

// LoadFile reads and parses a content file
func LoadFile(path string) ([]model.Planet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// MemoryStore is a Store whose content can be swapped at runtime
type MemoryStore struct {
	mu        sync.RWMutex
	planets   []model.Planet
	index     map[string]int
	listeners []func()
}

// NewMemoryStore creates a store holding planets
func NewMemoryStore(planets []model.Planet) *MemoryStore {
	s := &MemoryStore{}
	s.set(planets)
	return s
}

// Default returns a store with the embedded content
func Default() (*MemoryStore, error) {
	planets, err := Parse(defaultPlanets)
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return NewMemoryStore(planets), nil
}

func (s *MemoryStore) set(planets []model.Planet) {
	s.planets = make([]model.Planet, len(planets))
	copy(s.planets, planets)
	s.index = make(map[string]int, len(planets))
	for i, p := range s.planets {
		s.index[p.ID] = i
	}
}

// Planets returns all planets ordered by orbit as listed
func (s *MemoryStore) Planets() []model.Planet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Planet, len(s.planets))
	copy(out, s.planets)
	return out
}

// Planet returns the planet with id
func (s *MemoryStore) Planet(id string) (model.Planet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return model.Planet{}, fmt.Errorf("%w: %s", ErrPlanetNotFound, id)
	}
	return s.planets[i], nil
}

// Sections returns the modal content of planet id
func (s *MemoryStore) Sections(id string) (model.PlanetContent, error) {
	p, err := s.Planet(id)
	if err != nil {
		return model.PlanetContent{}, err
	}
	return p.Content, nil
}

// Replace swaps the content and notifies listeners
func (s *MemoryStore) Replace(planets []model.Planet) {
	s.mu.Lock()
	s.set(planets)
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnChange registers a callback run after every Replace
func (s *MemoryStore) OnChange(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Contact returns the first contact section found in the store
func Contact(s Store) (model.ContactInfo, bool) {
	if s == nil {
		return model.ContactInfo{}, false
	}
	for _, p := range s.Planets() {
		for _, sec := range p.Content.Sections {
			if sec.Type == model.SectionContact && sec.Contact != nil {
				return *sec.Contact, true
			}
		}
	}
	return model.ContactInfo{}, false
}
