// Package app wires application dependencies for the CLI.
//
// It resolves Config from flags, environment and an optional YAML file,
// builds the logger, and opens the address book behind a dispatcher.
package app
