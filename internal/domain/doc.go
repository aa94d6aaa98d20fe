// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (formats, timing, grids) and contracts (interfaces) only.
package domain
