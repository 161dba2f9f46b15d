// Package dispatch maps textual commands to record store operations.
//
// Commands
//
//   - add <name> <phone>     Add a contact
//   - change <name> <phone>  Replace the phone list of a contact
//   - phone <name>           Show a contact's phone numbers
//   - all                    Show every contact as a table
//   - hello                  Greeting
//   - help                   Usage text
//
// Every command is independent and synchronous. Validation and lookup
// errors are turned into a friendly message with a usage example; "close"
// and "exit" are left to the caller (see IsExit).
package dispatch
