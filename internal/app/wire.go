package app

import (
	"go.uber.org/zap"

	"phonebook/internal/dispatch"
	"phonebook/internal/store"
)

func storeOptions(cfg Config, log *zap.Logger) []store.Option {
	return []store.Option{
		store.WithEncoding(cfg.DB.Encoding),
		store.WithEOL(cfg.DB.EOL),
		store.WithLogger(log.Named("store")),
	}
}

// New loads the address book described by cfg and wires the dispatcher.
// A missing or corrupt database is returned as is so startup can abort.
func New(cfg Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	book, err := store.Open(cfg.DB.Path, storeOptions(cfg, log)...)
	if err != nil {
		return nil, err
	}
	return &App{
		Records:    book,
		Dispatcher: dispatch.New(book, log.Named("dispatch")),
	}, nil
}

// InitDatabase creates an empty backing file for cfg unless one exists.
func InitDatabase(cfg Config, log *zap.Logger) (bool, error) {
	if log == nil {
		log = zap.NewNop()
	}
	return store.Init(cfg.DB.Path, storeOptions(cfg, log)...)
}
