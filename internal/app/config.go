package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string // preference directory, e.g. $HOME/.greet
}
