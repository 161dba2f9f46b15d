package types

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
)

// Record is a named contact with an ordered list of phone numbers.
type Record struct {
	Name   Name
	Phones []Phone
}

// NewRecord validates name and every phone and assembles a Record.
func NewRecord(name string, phones ...string) (Record, error) {
	n, err := NewName(name)
	if err != nil {
		return Record{}, err
	}
	rec := Record{Name: n, Phones: make([]Phone, 0, len(phones))}
	for _, s := range phones {
		if err := rec.AddPhone(s); err != nil {
			return Record{}, err
		}
	}
	return rec, nil
}

// Validate checks the invariants NewRecord enforces. It lets stores reject
// records assembled by hand.
func (r Record) Validate() error {
	if strings.TrimSpace(string(r.Name)) == "" {
		return &ValidationError{Msg: "provide user info"}
	}
	for _, p := range r.Phones {
		if !isPhone(string(p)) {
			return &ValidationError{Msg: "phone number must be a 10-digit number"}
		}
	}
	return nil
}

// AddPhone appends a validated phone number.
func (r *Record) AddPhone(s string) error {
	p, err := NewPhone(s)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone drops every occurrence of s.
func (r *Record) RemovePhone(s string) error {
	p, err := NewPhone(s)
	if err != nil {
		return err
	}
	r.Phones = slices.DeleteFunc(r.Phones, func(q Phone) bool { return q == p })
	return nil
}

// EditPhone replaces oldPhone with newPhone. The new number goes to the end
// of the list.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	if _, err := NewPhone(newPhone); err != nil {
		return err
	}
	if err := r.RemovePhone(oldPhone); err != nil {
		return err
	}
	return r.AddPhone(newPhone)
}

// HasPhone reports whether s is one of the record's numbers.
func (r Record) HasPhone(s string) bool {
	return slices.Contains(r.Phones, Phone(s))
}

// Equal reports whether both records have the same name and phone list, in order.
func (r Record) Equal(o Record) bool {
	return r.Name == o.Name && slices.Equal(r.Phones, o.Phones)
}

func (r Record) String() string {
	parts := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		parts[i] = p.String()
	}
	return r.Name.String() + ": " + strings.Join(parts, ", ")
}

type recordJSON struct {
	Name   *string   `json:"name"`
	Phones *[]string `json:"phones"`
}

// MarshalJSON encodes the record as {"name": ..., "phones": [...]}.
func (r Record) MarshalJSON() ([]byte, error) {
	name := string(r.Name)
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = string(p)
	}
	return json.Marshal(recordJSON{Name: &name, Phones: &phones})
}

// UnmarshalJSON requires both keys and validates every field.
func (r *Record) UnmarshalJSON(b []byte) error {
	var aux recordJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Name == nil || aux.Phones == nil {
		return errors.New("not a valid user record: name and phones are required")
	}
	rec, err := NewRecord(*aux.Name, *aux.Phones...)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}
