package domain

import (
	interfaces "phonebook/internal/domain/interfaces"
	types "phonebook/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Name   = types.Name
	Phone  = types.Phone
	Record = types.Record

	ValidationError       = types.ValidationError
	UserNotFoundError     = types.UserNotFoundError
	DatabaseNotFoundError = types.DatabaseNotFoundError
	ParseError            = types.ParseError
)

// Interface aliases re-export storage contracts.
type (
	RecordStore = interfaces.RecordStore
)

// Constructors re-exported from the types subpackage.
var (
	NewName   = types.NewName
	NewRecord = types.NewRecord
)
