// Package filter narrows an in-memory collection down to the records that
// match a free-text query and a set of categorical selections.
//
// Filtering is stable: the result keeps the relative order of the input and
// never re-sorts. A query that matches nothing yields an empty, non-nil slice.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
)

// All is the selection value that disables a categorical filter.
const All = "all"

// ErrUnknownField is returned when a selection names a field the schema does
// not expose.
var ErrUnknownField = fmt.Errorf("%w: unknown field", domain.ErrInvalidFilter)

// Selection is one categorical filter: the record's Field must match Value.
type Selection struct {
	Field string
	Value string
}

// Criteria is the combination of a free-text query and categorical selections.
type Criteria struct {
	Text        string
	Categorical []Selection
}

// Where returns a copy of c with one more categorical selection.
func (c Criteria) Where(field, value string) Criteria {
	sel := make([]Selection, len(c.Categorical), len(c.Categorical)+1)
	copy(sel, c.Categorical)
	c.Categorical = append(sel, Selection{Field: field, Value: value})
	return c
}

// Params flattens the criteria into a map, used for cache keys and logging.
// Disabled selections are dropped so equivalent criteria map to the same keys.
func (c Criteria) Params() map[string]string {
	params := make(map[string]string, len(c.Categorical)+1)
	if c.Text != "" {
		params["q"] = c.Text
	}
	for _, s := range c.Categorical {
		if disabled(s.Value) {
			continue
		}
		params[s.Field] = s.Value
	}
	return params
}

func disabled(value string) bool {
	return value == "" || value == All
}

// TextField extracts one searchable string from a record. ok=false means the
// field is absent on this record and is left out of the text match.
type TextField[T any] func(rec *T) (value string, ok bool)

// Matcher decides whether a record satisfies a categorical selection.
type Matcher[T any] func(rec *T, expected string) bool

// Predicate is a compiled criteria.
type Predicate[T any] func(rec *T) bool

// Schema describes which fields of T are searchable by text and which can be
// used as categorical filters.
type Schema[T any] struct {
	text        []TextField[T]
	categorical map[string]Matcher[T]
}

func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{categorical: make(map[string]Matcher[T])}
}

// Text registers the fields the free-text query is matched against.
func (s *Schema[T]) Text(fields ...TextField[T]) *Schema[T] {
	s.text = append(s.text, fields...)
	return s
}

// Field registers a categorical filter under name.
func (s *Schema[T]) Field(name string, m Matcher[T]) *Schema[T] {
	s.categorical[name] = m
	return s
}

// Fields lists the categorical filter names in sorted order.
func (s *Schema[T]) Fields() []string {
	names := make([]string, 0, len(s.categorical))
	for name := range s.categorical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile turns criteria into a predicate. Selections set to All (or left
// empty) are dropped.
func (s *Schema[T]) Compile(c Criteria) (Predicate[T], error) {
	type bound struct {
		match    Matcher[T]
		expected string
	}
	checks := make([]bound, 0, len(c.Categorical))
	for _, sel := range c.Categorical {
		m, ok := s.categorical[sel.Field]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, sel.Field)
		}
		if disabled(sel.Value) {
			continue
		}
		checks = append(checks, bound{match: m, expected: sel.Value})
	}

	query := strings.ToLower(c.Text)
	return func(rec *T) bool {
		if query != "" && !s.matchText(rec, query) {
			return false
		}
		for _, b := range checks {
			if !b.match(rec, b.expected) {
				return false
			}
		}
		return true
	}, nil
}

func (s *Schema[T]) matchText(rec *T, query string) bool {
	for _, field := range s.text {
		value, ok := field(rec)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	return false
}

// Filter returns the records matching c, in input order.
func (s *Schema[T]) Filter(records []T, c Criteria) ([]T, error) {
	pred, err := s.Compile(c)
	if err != nil {
		return nil, err
	}
	return Apply(records, pred), nil
}

// Apply keeps the records satisfying pred, in input order.
func Apply[T any](records []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(records))
	for i := range records {
		if pred(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
