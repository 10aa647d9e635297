// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "strings"

// Email requires an e-mail address of the form local-part@domain.
// The local part is a dot-atom; quoted strings, comments and
// address literals are not accepted, and the domain must be a
// fully qualified ASCII domain name.
func Email(s string) error {
	if !isValidEmail(s) {
		return mismatch(FormatEmail, s)
	}
	return nil
}

// Limits from RFC 5321 section 4.5.3.1.
const (
	maxEmailLen     = 254
	maxLocalPartLen = 64
)

// isValidEmail reports whether s is an e-mail address.
func isValidEmail(s string) bool {
	// addr-spec = local-part "@" domain
	// local-part = dot-atom
	// dot-atom   = 1*atext *("." 1*atext)
	// domain     = label 1*("." label)
	if len(s) > maxEmailLen {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok {
		return false
	}
	if len(local) > maxLocalPartLen || !isDotAtom(local) {
		return false
	}
	return isDomainName(domain)
}

// isDotAtom reports whether s is one or more atoms separated by single dots.
func isDotAtom(s string) bool {
	if len(s) == 0 || s[0] == '.' || s[len(s)-1] == '.' {
		return false
	}
	for i := range len(s) {
		c := s[i]
		if c == '.' {
			if s[i-1] == '.' {
				return false
			}
			continue
		}
		if !isAtext(c) {
			return false
		}
	}
	return true
}

// isAtext reports whether c may appear in an atom (RFC 5322 section 3.2.3).
func isAtext(c byte) bool {
	if isAlpha(c) || isDigit(c) {
		return true
	}
	return strings.IndexByte("!#$%&'*+-/=?^_`{|}~", c) >= 0
}
