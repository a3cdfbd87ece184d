// Package capability probes the runtime environment and decides whether the
// animated scene should be attempted at all. The user-agent heuristics live in
// one pure function, Decide, so they stay unit-testable and swappable.
package capability
