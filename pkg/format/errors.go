// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "errors"

// ErrMismatch is matched by every error returned by a format
// validator, so that callers can use errors.Is to tell a format
// mismatch apart from other failures.
var ErrMismatch = errors.New("format mismatch")

// FormatError is returned by a format validator when a string
// does not conform to the format.
type FormatError struct {
	// Format is the name of the format that was checked.
	Format string
	// Value is the string that was rejected.
	Value string
	// Message is the fixed, human-readable description of the
	// expected format. It does not depend on Value.
	Message string
}

// Error returns the message that a user should see.
// This implements the error interface.
func (fe *FormatError) Error() string {
	return fe.Message
}

// Is reports whether target is [ErrMismatch].
func (fe *FormatError) Is(target error) bool {
	return target == ErrMismatch
}

// IsFormatError reports whether err is, or wraps, a [FormatError].
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// mismatch returns a FormatError for format name with the
// message registered for it.
func mismatch(name, s string) error {
	return &FormatError{
		Format:  name,
		Value:   s,
		Message: messages[name],
	}
}

// messages maps format names to the fixed text reported on failure.
var messages = map[string]string{
	FormatDate:             "A valid date in YYYY-MM-DD format expected",
	FormatDateTime:         "A valid ISO 8601 date/time string expected",
	FormatDuration:         "A valid ISO 8601 duration value expected (e.g. P3Y6M4DT12H30M5S)",
	FormatTimeOffset:       "A valid ISO 8601 time offset expected (an optionally signed duration, e.g. -P1D)",
	FormatEmail:            "E-mail address expected",
	FormatURI:              "URI expected",
	FormatURL:              "URL expected",
	FormatCreditCardNumber: "A valid credit card number expected",
	FormatGUID:             "A valid GUID expected",
}
