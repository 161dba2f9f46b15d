package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"phonebook/internal/domain"
)

const (
	// DefaultPath is the backing file used when none is configured.
	DefaultPath     = "database.txt"
	DefaultEncoding = "UTF-8"
	DefaultEOL      = "\n"

	fileMode os.FileMode = 0o600
)

// AddressBook is an ordered, file-backed collection of contact records.
// The whole collection is held in memory and the backing file is rewritten
// in full after every mutation. Nothing guards against other processes
// writing the same file: the last writer wins.
type AddressBook struct {
	path string
	enc  encoding.Encoding
	eol  string
	log  *zap.Logger

	mu      sync.Mutex
	records []domain.Record
}

// Option customises an AddressBook.
type Option func(*options)

type options struct {
	encoding string
	eol      string
	log      *zap.Logger
}

// WithEncoding sets the IANA charset of the backing file.
func WithEncoding(name string) Option { return func(o *options) { o.encoding = name } }

// WithEOL sets the record separator.
func WithEOL(eol string) Option { return func(o *options) { o.eol = eol } }

// WithLogger sets the logger used for load and persist events.
func WithLogger(l *zap.Logger) Option { return func(o *options) { o.log = l } }

func buildOptions(opts []Option) (options, encoding.Encoding, error) {
	o := options{encoding: DefaultEncoding, eol: DefaultEOL}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.eol == "" {
		return o, nil, errors.New("line separator must not be empty")
	}
	enc, err := lookupEncoding(o.encoding)
	if err != nil {
		return o, nil, err
	}
	return o, enc, nil
}

// Open loads the address book stored at path. A missing file yields a
// *domain.DatabaseNotFoundError and a malformed line a *domain.ParseError.
func Open(path string, opts ...Option) (*AddressBook, error) {
	o, enc, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	ab := &AddressBook{path: path, enc: enc, eol: o.eol, log: o.log}
	if err := ab.load(); err != nil {
		return nil, err
	}
	return ab, nil
}

// Init creates an empty backing file at path. An existing file is left
// untouched; created reports which case happened.
func Init(path string, opts ...Option) (created bool, err error) {
	o, _, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	created, err = createFile(path, fileMode)
	if err != nil {
		return false, fmt.Errorf("create database %s: %w", path, err)
	}
	o.log.Debug("database initialised", zap.String("path", path), zap.Bool("created", created))
	return created, nil
}

func (ab *AddressBook) load() error {
	lines, err := readLines(ab.path, ab.enc, ab.eol)
	if errors.Is(err, os.ErrNotExist) {
		return &domain.DatabaseNotFoundError{Path: ab.path}
	}
	if err != nil {
		return fmt.Errorf("load database: %w", err)
	}

	records := make([]domain.Record, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			return &domain.ParseError{Line: i + 1, Err: errors.New("empty line")}
		}
		if !utf8.ValidString(line) {
			return &domain.ParseError{Line: i + 1, Err: errors.New("invalid UTF-8")}
		}
		var rec domain.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return &domain.ParseError{Line: i + 1, Err: err}
		}
		records = append(records, rec)
	}
	ab.records = records
	ab.log.Debug("database loaded", zap.String("path", ab.path), zap.Int("records", len(records)))
	return nil
}

// persist rewrites the backing file from records. The caller commits records
// to memory only after persist succeeds.
func (ab *AddressBook) persist(records []domain.Record) error {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		lines = append(lines, string(b))
	}
	if err := writeLines(ab.path, lines, ab.enc, ab.eol, fileMode); err != nil {
		return fmt.Errorf("persist database: %w", err)
	}
	ab.log.Debug("database persisted", zap.String("path", ab.path), zap.Int("records", len(records)))
	return nil
}

// Add appends rec and persists the whole book. Duplicate names are allowed.
func (ab *AddressBook) Add(rec domain.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	ab.mu.Lock()
	defer ab.mu.Unlock()

	next := append(slices.Clip(ab.records), rec)
	if err := ab.persist(next); err != nil {
		return err
	}
	ab.records = next
	return nil
}

// Update replaces the first record named rec.Name and persists the book.
func (ab *AddressBook) Update(rec domain.Record) (domain.Record, error) {
	if err := rec.Validate(); err != nil {
		return domain.Record{}, err
	}
	ab.mu.Lock()
	defer ab.mu.Unlock()

	idx := ab.index(rec.Name)
	if idx < 0 {
		return domain.Record{}, &domain.UserNotFoundError{Name: rec.Name}
	}
	next := slices.Clone(ab.records)
	next[idx] = rec
	if err := ab.persist(next); err != nil {
		return domain.Record{}, err
	}
	ab.records = next
	return rec, nil
}

// Find returns the first record named name.
func (ab *AddressBook) Find(name domain.Name) (domain.Record, error) {
	if strings.TrimSpace(string(name)) == "" {
		return domain.Record{}, &domain.ValidationError{Msg: "provide user name"}
	}
	ab.mu.Lock()
	defer ab.mu.Unlock()

	idx := ab.index(name)
	if idx < 0 {
		return domain.Record{}, &domain.UserNotFoundError{Name: name}
	}
	return ab.records[idx], nil
}

// FindAll returns every record in insertion order.
func (ab *AddressBook) FindAll() []domain.Record {
	ab.mu.Lock()
	defer ab.mu.Unlock()
	return slices.Clone(ab.records)
}

func (ab *AddressBook) index(name domain.Name) int {
	return slices.IndexFunc(ab.records, func(r domain.Record) bool { return r.Name == name })
}

// Compile-time assertion that AddressBook implements domain.RecordStore.
var _ domain.RecordStore = (*AddressBook)(nil)
