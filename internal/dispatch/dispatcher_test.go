package dispatch_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"phonebook/internal/dispatch"
	"phonebook/internal/domain"
	"phonebook/internal/store"
)

func newDispatcher(t *testing.T) (*dispatch.Dispatcher, *store.AddressBook) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.txt")
	_, err := store.Init(path)
	require.NoError(t, err)
	ab, err := store.Open(path)
	require.NoError(t, err)
	return dispatch.New(ab, zap.NewNop()), ab
}

func run(d *dispatch.Dispatcher, line string) string {
	cmd, args := dispatch.ParseInput(line)
	return d.Dispatch(cmd, args)
}

func TestParseInput(t *testing.T) {
	cmd, args := dispatch.ParseInput("  ADD   John  1234567890 ")
	assert.Equal(t, "add", cmd)
	assert.Equal(t, []string{"John", "1234567890"}, args)

	cmd, args = dispatch.ParseInput("   ")
	assert.Empty(t, cmd)
	assert.Empty(t, args)
}

func TestIsExit(t *testing.T) {
	assert.True(t, dispatch.IsExit("close"))
	assert.True(t, dispatch.IsExit("exit"))
	assert.False(t, dispatch.IsExit("all"))
}

func TestDispatch_Scenario(t *testing.T) {
	d, ab := newDispatcher(t)

	assert.Equal(t, "User 'John' has been added.", run(d, "add John 1234567890"))
	assert.Equal(t, "User phones: '1234567890'.", run(d, "phone John"))

	assert.Equal(t, "User 'John' has been changed.", run(d, "change John 0987654321"))
	rec, err := ab.Find("John")
	require.NoError(t, err)
	assert.Equal(t, []domain.Phone{"0987654321"}, rec.Phones)

	out := run(d, "phone Mia")
	assert.True(t, strings.HasPrefix(out, "User 'Mia' not found."), out)
	assert.Contains(t, out, "Example: `phone John`")
}

func TestDispatch_ValidationMessages(t *testing.T) {
	d, ab := newDispatcher(t)

	out := run(d, "add John 12345")
	assert.True(t, strings.HasPrefix(out, "Phone number must be a 10-digit number."), out)
	assert.Contains(t, out, "Usage: `add <name> <phone>`")
	assert.Empty(t, ab.FindAll())

	out = run(d, "add John")
	assert.True(t, strings.HasPrefix(out, "Give me a name and phone number please."), out)
	assert.Contains(t, out, "Example: `add John 1234567890`")

	out = run(d, "change John 1234567890 extra")
	assert.Contains(t, out, "Usage: `change <name> <phone>`")

	out = run(d, "change Mia 1234567890")
	assert.True(t, strings.HasPrefix(out, "User 'Mia' not found."), out)
	assert.Empty(t, ab.FindAll())

	out = run(d, "phone")
	assert.True(t, strings.HasPrefix(out, "Please provide the name."), out)
}

func TestDispatch_All(t *testing.T) {
	d, _ := newDispatcher(t)
	run(d, "add John 1234567890")
	run(d, "add Ann 5555555555")

	out := run(d, "all")
	for _, want := range []string{"Name", "Phones", "John", "1234567890", "Ann", "5555555555"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "John"), strings.Index(out, "Ann"))

	assert.Contains(t, run(d, "all please"), "takes no arguments")
}

func TestDispatch_StaticCommands(t *testing.T) {
	d, _ := newDispatcher(t)

	assert.Equal(t, "How can I help you?", run(d, "hello"))

	out := run(d, "help")
	for _, c := range []string{"add <name> <phone>", "change <name> <phone>", "phone <name>", "all", "close / exit"} {
		assert.Contains(t, out, c)
	}

	assert.Contains(t, run(d, "frobnicate"), "Unknown command 'frobnicate'")
}

type failingStore struct{ err error }

func (s failingStore) Add(domain.Record) error { return s.err }
func (s failingStore) Update(domain.Record) (domain.Record, error) {
	return domain.Record{}, s.err
}
func (s failingStore) Find(domain.Name) (domain.Record, error) { return domain.Record{}, s.err }
func (s failingStore) FindAll() []domain.Record { return nil }

func TestDispatch_UnexpectedErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	d := dispatch.New(failingStore{err: errors.New("disk full")}, zap.New(core))

	out := run(d, "add John 1234567890")
	assert.True(t, strings.HasPrefix(out, "Sorry... Some error occurred."), out)

	entries := logs.FilterMessage("command failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "add", entries[0].ContextMap()["command"])
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
}
