// Package render owns the rendering attempt lifecycle: the fixed list of
// context configurations, the Surface collaborator contract, and the Manager
// state machine that attempts, fails, retries with the next configuration and
// tears surfaces down. Only one surface exists at a time.
package render
