package app

import (
	"greet/internal/domain"
	"greet/internal/greeting"
	"greet/internal/prefs"
)

// Wire bundles the preference store and greeter for the CLI.
type Wire struct {
	Prefs   domain.Preferences
	Greeter domain.Greeter
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	store, err := prefs.New(cfg.Home)
	if err != nil {
		return nil, err
	}
	return &Wire{
		Prefs:   store,
		Greeter: greeting.New(store.Get(prefs.KeyName)),
	}, nil
}
