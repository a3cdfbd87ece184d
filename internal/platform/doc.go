// Package platform contains OS and runtime integration: the page location
// (fragment and reload) on web and native, external links, and opening
// exported files with the system file manager.
package platform
