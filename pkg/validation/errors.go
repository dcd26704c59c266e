package validation

import "strings"

// Errors is an ordered set of field→message pairs. The first message
// recorded for a field is kept.
type Errors struct {
	keys   []string
	fields map[string]string
}

func (e *Errors) Add(field, msg string) {
	if e.fields == nil {
		e.fields = make(map[string]string)
	}
	if _, ok := e.fields[field]; ok {
		return
	}
	e.keys = append(e.keys, field)
	e.fields[field] = msg
}

func (e *Errors) Has(field string) bool {
	_, ok := e.fields[field]
	return ok
}

func (e *Errors) Empty() bool { return e == nil || len(e.keys) == 0 }

// First returns the message of the earliest failing field.
func (e *Errors) First() string {
	if e.Empty() {
		return ""
	}
	return e.fields[e.keys[0]]
}

// Fields returns a copy of the field→message map.
func (e *Errors) Fields() map[string]string {
	out := make(map[string]string, len(e.keys))
	for _, k := range e.keys {
		out[k] = e.fields[k]
	}
	return out
}

// Err returns e as an error, or nil when nothing failed.
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		parts = append(parts, k+": "+e.fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field builds a single-field error.
func Field(field, msg string) *Errors {
	e := &Errors{}
	e.Add(field, msg)
	return e
}
