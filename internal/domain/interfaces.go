package domain

// Greeter renders greetings.
type Greeter interface {
	// Greet renders the greeting described by req.
	Greet(req Request) (Greeting, error)
	// Locales lists the supported locales in a stable order.
	Locales() []Locale
}

// Preferences persists user defaults between runs.
type Preferences interface {
	// Get returns the value for key, or the empty string when unset.
	Get(key string) string
	// Set stores key and persists it.
	Set(key, value string) error
	// All returns every accepted key with its current value.
	All() map[string]string
}
