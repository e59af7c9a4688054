package domain

// Locale identifies a greeting language as a BCP 47 tag, for example "en"
// or "pt".
type Locale string

// Request describes a single greeting to produce.
type Request struct {
	Name   string // who to greet; empty means use the configured default
	Locale Locale // requested language; empty means use the default locale
	Shout  bool   // render the greeting in upper case
}

// Greeting is a rendered greeting along with the locale that was actually
// used, which may differ from the requested one after matching.
type Greeting struct {
	Text   string
	Locale Locale
}
