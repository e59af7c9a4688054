// Package commands defines the greet CLI and wires dependencies for subcommands.
//
// Commands
//
//   - hello      Print a greeting
//   - languages  List the supported greeting languages
//   - config     Inspect and change saved defaults
//
// # Implementation
//
// The root command builds the dependency graph (preference store, greeter)
// before any subcommand runs, so handlers share one app wire rooted at the
// --home directory.
package commands
