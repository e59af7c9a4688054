// Package app wires application dependencies for the CLI.
//
// It builds the preference store and greeter from Config, exposing them via
// the Wire struct for commands to use.
package app
