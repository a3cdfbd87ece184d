package ui

// Package ui contains the Fyne user interface: the solar system scene, the
// loading, failure and static views that replace it, the navigation bar and
// the content modal. All chrome strings are localized via Localization.
