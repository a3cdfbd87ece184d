// Package content provides the portfolio data shown by planets, the content
// modal and the static view. The default data is embedded; an optional file
// on disk replaces it and is reloaded when it changes.
package content
