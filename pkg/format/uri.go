// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "strings"

// URI requires an RFC 3986 URI reference.
// Both absolute URIs and relative references are accepted,
// so a bare path such as "../export.xml" or the empty string is valid.
func URI(s string) error {
	if _, ok := parseURI(s); !ok {
		return mismatch(FormatURI, s)
	}
	return nil
}

// URL requires an absolute URI with a scheme and an authority whose
// host could be reached over a network: localhost, an IP address,
// or a fully qualified domain name.
func URL(s string) error {
	u, ok := parseURI(s)
	if !ok || u.scheme == "" || !u.hasAuthority || !isReachableHost(u.host) {
		return mismatch(FormatURL, s)
	}
	return nil
}

// Bytes permitted in URI components, beyond unreserved characters,
// sub-delims and percent-encodings (RFC 3986 section 3).
const (
	userinfoExtra = ":"
	pathExtra     = ":@/"
	queryExtra    = ":@/?"
)

// parsedURI is a URI reference that passed validation.
// Components are kept as written, without decoding.
type parsedURI struct {
	scheme       string
	hasAuthority bool
	userinfo     string
	// host includes the square brackets of an IP literal.
	host        string
	port        string
	path        string
	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
}

// parseURI parses s as a URI reference.
// The bool result reports whether s is valid.
func parseURI(s string) (parsedURI, bool) {
	// URI-reference = URI / relative-ref
	// URI           = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
	// relative-ref  = relative-part [ "?" query ] [ "#" fragment ]
	// hier-part     = "//" authority path-abempty
	//               / path-absolute / path-rootless / path-empty
	var u parsedURI

	s, u.fragment, u.hasFragment = strings.Cut(s, "#")
	if u.hasFragment && !isURIChars(u.fragment, queryExtra) {
		return parsedURI{}, false
	}
	s, u.query, u.hasQuery = strings.Cut(s, "?")
	if u.hasQuery && !isURIChars(u.query, queryExtra) {
		return parsedURI{}, false
	}

	// A colon before any slash must end a scheme:
	// the first segment of a relative path may not contain one.
	if i := strings.IndexAny(s, ":/"); i >= 0 && s[i] == ':' {
		if !isScheme(s[:i]) {
			return parsedURI{}, false
		}
		u.scheme = s[:i]
		s = s[i+1:]
	}

	if rest, found := strings.CutPrefix(s, "//"); found {
		authority := rest
		s = ""
		if j := strings.IndexByte(rest, '/'); j >= 0 {
			authority, s = rest[:j], rest[j:]
		}
		if !u.parseAuthority(authority) {
			return parsedURI{}, false
		}
		u.hasAuthority = true
	}

	if !isURIChars(s, pathExtra) {
		return parsedURI{}, false
	}
	u.path = s
	return u, true
}

// parseAuthority parses the authority component into u.
// The bool result reports whether it is valid.
func (u *parsedURI) parseAuthority(s string) bool {
	// authority = [ userinfo "@" ] host [ ":" port ]
	// host      = IP-literal / IPv4address / reg-name
	// port      = *DIGIT
	if userinfo, rest, found := strings.Cut(s, "@"); found {
		if !isURIChars(userinfo, userinfoExtra) {
			return false
		}
		u.userinfo = userinfo
		s = rest
	}

	host, port, hasPort := s, "", false
	if strings.HasPrefix(s, "[") {
		j := strings.IndexByte(s, ']')
		if j < 0 || !isIPLiteral(s[1:j]) {
			return false
		}
		host, s = s[:j+1], s[j+1:]
		if s != "" {
			if s[0] != ':' {
				return false
			}
			port, hasPort = s[1:], true
		}
	} else {
		if j := strings.LastIndexByte(s, ':'); j >= 0 {
			host, port, hasPort = s[:j], s[j+1:], true
		}
		// An IPv4 address is also a valid reg-name.
		if !isURIChars(host, "") {
			return false
		}
	}
	if hasPort && countDigits(port) != len(port) {
		return false
	}

	u.host, u.port = host, port
	return true
}

// isScheme reports whether s is a URI scheme name.
func isScheme(s string) bool {
	// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
	if len(s) == 0 || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

// isIPLiteral reports whether s, the text between square brackets
// in a host, is an IPv6 address or an IPvFuture literal.
func isIPLiteral(s string) bool {
	// IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
	if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
		s = s[1:]
		n := 0
		for n < len(s) && isHexDigit(s[n]) {
			n++
		}
		if n == 0 || n == len(s) || s[n] != '.' {
			return false
		}
		s = s[n+1:]
		return len(s) > 0 && !strings.Contains(s, "%") && isURIChars(s, ":")
	}
	return isIPv6(s)
}

// isURIChars reports whether every byte of s is an unreserved character,
// a sub-delim, part of a percent-encoding, or one of the bytes in extra.
func isURIChars(s, extra string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c), isSubDelim(c):
		case c == '%':
			if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
				return false
			}
			i += 2
		case strings.IndexByte(extra, c) >= 0:
		default:
			return false
		}
	}
	return true
}

// isUnreserved reports whether c is an RFC 3986 unreserved character.
func isUnreserved(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isSubDelim reports whether c is an RFC 3986 sub-delim.
func isSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}
