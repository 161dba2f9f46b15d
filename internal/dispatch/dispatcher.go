package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"phonebook/internal/domain"
)

// errUsage marks a call with the wrong number of arguments.
var errUsage = errors.New("wrong number of arguments")

type handlerFunc func(args []string) (string, error)

type command struct {
	run  handlerFunc
	hint hint
}

// Dispatcher routes parsed commands to a domain.RecordStore.
type Dispatcher struct {
	store    domain.RecordStore
	log      *zap.Logger
	commands map[string]command
}

// New returns a Dispatcher backed by store. A nil logger is replaced by a no-op.
func New(store domain.RecordStore, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{store: store, log: log}
	d.commands = map[string]command{
		"add": {run: d.add, hint: hint{
			prompt:  "Give me a name and phone number please",
			usage:   "add <name> <phone>",
			example: "add John 1234567890",
		}},
		"change": {run: d.change, hint: hint{
			prompt:  "Give me a name and phone number please",
			usage:   "change <name> <phone>",
			example: "change John 0987654321",
		}},
		"phone": {run: d.phone, hint: hint{
			prompt:  "Please provide the name",
			usage:   "phone <name>",
			example: "phone John",
		}},
		"all": {run: d.all, hint: hint{
			prompt: "The all command takes no arguments",
			usage:  "all",
		}},
		"hello": {run: hello, hint: hint{usage: "hello"}},
		"help":  {run: help, hint: hint{usage: "help"}},
	}
	return d
}

// ParseInput splits a line into a lower-cased command word and its arguments.
func ParseInput(line string) (cmd string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// IsExit reports whether cmd ends an interactive session.
func IsExit(cmd string) bool {
	return cmd == "close" || cmd == "exit"
}

// Dispatch runs cmd with args and returns the text to show the user. It
// never fails: errors are rendered as messages.
func (d *Dispatcher) Dispatch(cmd string, args []string) string {
	c, ok := d.commands[cmd]
	if !ok {
		return fmt.Sprintf("Unknown command '%s'. Type `help` to see the available commands.", cmd)
	}
	out, err := c.run(args)
	if err != nil {
		return d.friendly(cmd, c.hint, err)
	}
	return out
}

// friendly converts err into a user-facing message. Anything outside the
// domain error taxonomy is logged and reported generically.
func (d *Dispatcher) friendly(cmd string, h hint, err error) string {
	var (
		verr *domain.ValidationError
		nf   *domain.UserNotFoundError
	)
	switch {
	case errors.Is(err, errUsage):
		return h.render(h.prompt)
	case errors.As(err, &verr):
		return h.render(sentence(verr.Msg))
	case errors.As(err, &nf):
		return h.render(fmt.Sprintf("User '%s' not found", nf.Name))
	default:
		d.log.Error("command failed", zap.String("command", cmd), zap.Error(err))
		return h.render("Sorry... Some error occurred")
	}
}

func (d *Dispatcher) add(args []string) (string, error) {
	if len(args) != 2 {
		return "", errUsage
	}
	rec, err := domain.NewRecord(args[0], args[1])
	if err != nil {
		return "", err
	}
	if err := d.store.Add(rec); err != nil {
		return "", err
	}
	d.log.Debug("user added", zap.String("name", args[0]))
	return fmt.Sprintf("User '%s' has been added.", rec.Name), nil
}

func (d *Dispatcher) change(args []string) (string, error) {
	if len(args) != 2 {
		return "", errUsage
	}
	rec, err := domain.NewRecord(args[0], args[1])
	if err != nil {
		return "", err
	}
	if _, err := d.store.Update(rec); err != nil {
		return "", err
	}
	d.log.Debug("user changed", zap.String("name", args[0]))
	return fmt.Sprintf("User '%s' has been changed.", rec.Name), nil
}

func (d *Dispatcher) phone(args []string) (string, error) {
	if len(args) != 1 {
		return "", errUsage
	}
	name, err := domain.NewName(args[0])
	if err != nil {
		return "", err
	}
	rec, err := d.store.Find(name)
	if err != nil {
		return "", err
	}
	phones := make([]string, len(rec.Phones))
	for i, p := range rec.Phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("User phones: '%s'.", strings.Join(phones, ", ")), nil
}

func (d *Dispatcher) all(args []string) (string, error) {
	if len(args) != 0 {
		return "", errUsage
	}
	return renderTable(d.store.FindAll()), nil
}

func hello([]string) (string, error) { return "How can I help you?", nil }

func help([]string) (string, error) { return helpText, nil }
