package app

import (
	"phonebook/internal/dispatch"
	"phonebook/internal/domain"
)

// App bundles the loaded store and the dispatcher for the CLI.
type App struct {
	Records    domain.RecordStore
	Dispatcher *dispatch.Dispatcher
}
