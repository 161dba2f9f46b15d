// Package store provides file-based persistence for contact records.
//
// The backing file holds one JSON object per line:
//
//	{"name":"John","phones":["1234567890"]}
//
// The charset and line separator are configurable. AddressBook keeps the
// full collection in memory and rewrites the file after every mutation,
// without a temp file or rename, so concurrent writers from separate
// processes can corrupt it.
package store
