package model

// Package model defines domain data structures used across the app: planets
// and their content sections, and the rendering attempt phase enum. Structures
// are designed for direct YAML decoding and explicit state transitions.
