// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format defines checkers for string formats used with the
// JSON schema format keyword: dates, date-times, ISO 8601 durations
// and time offsets, e-mail addresses, URIs and URLs, credit card
// numbers and GUIDs.
//
// Each checker is a pure function. It reports a nil error if the
// string matches the format, and a [*FormatError] carrying a fixed,
// human-readable message otherwise. Checkers never panic on
// malformed input and may be called concurrently.
//
// The checkers are collected in a [Registry], an immutable mapping
// from format name to checker. A schema validator receives a
// Registry, typically [Default], and looks up the checker for the
// format named by a schema.
package format

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
)

// Names of the formats in the [Default] registry.
const (
	FormatDate             = "date"
	FormatDateTime         = "date-time"
	FormatDuration         = "duration"
	FormatTimeOffset       = "time-offset"
	FormatEmail            = "email"
	FormatURI              = "uri"
	FormatURL              = "url"
	FormatCreditCardNumber = "credit-card-number"
	FormatGUID             = "guid"
)

// Func is the type of a function that checks a string format.
// It returns nil if s matches the format.
type Func func(s string) error

// Registry maps format names to the functions that check them.
// A Registry is never modified after it is created,
// so it may be shared freely between goroutines.
// The zero value is an empty registry.
type Registry struct {
	m map[string]Func
}

// defaultRegistry returns the registry of the formats in this package.
var defaultRegistry = sync.OnceValue(func() *Registry {
	return &Registry{
		m: map[string]Func{
			FormatDate:             Date,
			FormatDateTime:         DateTime,
			FormatDuration:         Duration,
			FormatTimeOffset:       TimeOffset,
			FormatEmail:            Email,
			FormatURI:              URI,
			FormatURL:              URL,
			FormatCreditCardNumber: CreditCardNumber,
			FormatGUID:             GUID,
		},
	}
})

// Default returns the registry of all the formats defined by this package.
// Every call returns the same value.
func Default() *Registry {
	return defaultRegistry()
}

// NewRegistry returns a registry holding the formats in m.
// The map is copied; later changes to m do not affect the registry.
func NewRegistry(m map[string]Func) (*Registry, error) {
	for name, fn := range m {
		if err := checkEntry(name, fn); err != nil {
			return nil, err
		}
	}
	return &Registry{m: maps.Clone(m)}, nil
}

// With returns a new registry that holds the formats of r
// plus the format name checked by fn.
// If r already has a format called name, fn replaces it
// in the new registry. r itself is unchanged.
func (r *Registry) With(name string, fn Func) (*Registry, error) {
	if err := checkEntry(name, fn); err != nil {
		return nil, err
	}
	m := make(map[string]Func, len(r.m)+1)
	maps.Copy(m, r.m)
	m[name] = fn
	return &Registry{m: m}, nil
}

// checkEntry reports an error if a format cannot be registered.
func checkEntry(name string, fn Func) error {
	if name == "" {
		return motmedelErrors.NewWithTrace(fmt.Errorf("empty format name"))
	}
	if fn == nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("nil checker for format %q", name))
	}
	return nil
}

// Lookup returns the function that checks the named format.
// The bool result reports whether the format is known.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.m[name]
	return fn, ok
}

// Validate checks s against the named format.
// As with the JSON schema format keyword,
// a format that is not in the registry always validates.
func (r *Registry) Validate(name, s string) error {
	fn, ok := r.m[name]
	if !ok {
		return nil
	}
	return fn(s)
}

// Check is like [Registry.Validate] but takes an arbitrary
// decoded JSON instance. Formats only apply to strings,
// so an instance of any other type always validates.
func (r *Registry) Check(name string, instance any) error {
	s, ok := instance.(string)
	if !ok {
		return nil
	}
	return r.Validate(name, s)
}

// Names returns the sorted names of the formats in r.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.m))
}

// All returns an iterator over the formats in r, sorted by name.
func (r *Registry) All() iter.Seq2[string, Func] {
	return func(yield func(string, Func) bool) {
		for _, name := range r.Names() {
			if !yield(name, r.m[name]) {
				return
			}
		}
	}
}
