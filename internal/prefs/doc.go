// Package prefs persists user defaults in a config file under the app home
// directory, with environment overrides.
package prefs
