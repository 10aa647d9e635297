// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "github.com/google/uuid"

// GUID requires a UUID in its 8-4-4-4-12 hexadecimal text form,
// in any letter case, optionally enclosed in one pair of braces.
// The version and variant bits are not checked.
func GUID(s string) error {
	if _, ok := parseGUID(s); !ok {
		return mismatch(FormatGUID, s)
	}
	return nil
}

// guidLen is the length of the hyphenated text form of a UUID.
const guidLen = 36

// parseGUID parses s as a GUID.
// The bool result reports whether s is valid.
func parseGUID(s string) (uuid.UUID, bool) {
	if len(s) == guidLen+2 && s[0] == '{' && s[len(s)-1] == '}' {
		s = s[1 : len(s)-1]
	}

	// uuid.Parse also accepts the urn:uuid: prefix and
	// the unhyphenated form, so check the shape first.
	if len(s) != guidLen {
		return uuid.UUID{}, false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.UUID{}, false
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, false
	}
	return u, true
}
