//go:build !js || !wasm

package ui

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/nhatvu148/solar-portfolio/internal/render"
)

// Environment variables that make native context creation fail, so the
// failure view can be exercised outside a browser.
const (
	EnvSimulateGLError = "PORTFOLIO_SIMULATE_GL_ERROR"
	EnvSimulateGLTiers = "PORTFOLIO_SIMULATE_GL_TIERS" // comma separated indexes, default all
)

const nativeRenderer = "fyne-gl"

// nativeGLContext stands for the context the Fyne driver already owns
type nativeGLContext struct{}

func (nativeGLContext) Renderer() string { return nativeRenderer }
func (nativeGLContext) Release()        {}

func openGLContext(cfg render.Configuration, _ func(error)) (glContext, error) {
	if msg := os.Getenv(EnvSimulateGLError); msg != "" && simulatedTier(os.Getenv(EnvSimulateGLTiers), cfg.Index) {
		return nil, errors.New(msg)
	}
	return nativeGLContext{}, nil
}

func simulatedTier(tiers string, index int) bool {
	if strings.TrimSpace(tiers) == "" {
		return true
	}
	for _, part := range strings.Split(tiers, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && n == index {
			return true
		}
	}
	return false
}
