// Package utilities exposes constants and iteration bounds as math tools.
package utilities
