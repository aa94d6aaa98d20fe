package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Debug bool // verbose logging to stderr
}
