package interfaces

import domaintypes "phonebook/internal/domain/types"

// RecordStore owns the ordered collection of contact records.
type RecordStore interface {
	Add(rec domaintypes.Record) error
	Update(rec domaintypes.Record) (domaintypes.Record, error)
	Find(name domaintypes.Name) (domaintypes.Record, error)
	FindAll() []domaintypes.Record
}
