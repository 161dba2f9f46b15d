// Package commands defines the phonebook CLI.
//
// Commands
//
//   - (none)   Interactive loop reading one command per line until close/exit
//   - run      Dispatch a single command, e.g. `phonebook run add John 1234567890`
//   - init     Create an empty database file
//
// # Implementation
//
// The root command resolves configuration and builds the logger before any
// subcommand runs. Commands that touch records open the address book
// themselves, so `init` works before a database exists.
package commands
