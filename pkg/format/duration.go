// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "strings"

// Duration requires a valid ISO 8601 duration, such as P3Y6M4DT12H30M5S.
// The lowest order component of the date part or of the time part
// may carry a decimal fraction, written with "." or ",",
// but at most one component may do so.
func Duration(s string) error {
	if _, ok := parseDuration(s, false); !ok {
		return mismatch(FormatDuration, s)
	}
	return nil
}

// TimeOffset requires a valid ISO 8601 duration
// optionally preceded by a single "+" or "-" sign.
func TimeOffset(s string) error {
	if _, ok := parseDuration(s, true); !ok {
		return mismatch(FormatTimeOffset, s)
	}
	return nil
}

// Designators of the date and time parts, in the order they must appear.
const (
	durDateUnits = "YMWD"
	durTimeUnits = "HMS"
)

// durationComponent is a single number and designator in a duration.
type durationComponent struct {
	// value is the number as written, such as "12" or "0,5".
	value      string
	unit       byte
	fractional bool
}

// parsedDuration is a duration that passed validation.
type parsedDuration struct {
	// sign is '+', '-' or 0 if there was none.
	sign byte
	date []durationComponent
	time []durationComponent
}

// parseDuration parses s as a duration.
// If signed is true a leading sign is permitted.
// The bool result reports whether s is valid.
func parseDuration(s string, signed bool) (parsedDuration, bool) {
	// duration  = [sign] "P" (dur-date [dur-time] / dur-time)
	// dur-date  = [num "Y"] [num "M"] [num "W"] [num "D"]
	// dur-time  = "T" [num "H"] [num "M"] [num "S"]
	// num       = 1*DIGIT [("." / ",") 1*DIGIT]
	var d parsedDuration
	if signed && len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		d.sign = s[0]
		s = s[1:]
	}
	if len(s) == 0 || s[0] != 'P' {
		return parsedDuration{}, false
	}
	s = s[1:]

	datePart, timePart, hasTime := strings.Cut(s, "T")

	var ok bool
	if d.date, ok = parseDurationPart(datePart, durDateUnits); !ok {
		return parsedDuration{}, false
	}
	if hasTime {
		if d.time, ok = parseDurationPart(timePart, durTimeUnits); !ok || len(d.time) == 0 {
			return parsedDuration{}, false
		}
	}
	if len(d.date) == 0 && len(d.time) == 0 {
		return parsedDuration{}, false
	}

	fractions := 0
	for _, c := range d.date {
		if c.fractional {
			fractions++
		}
	}
	for _, c := range d.time {
		if c.fractional {
			fractions++
		}
	}
	if fractions > 1 {
		return parsedDuration{}, false
	}
	return d, true
}

// parseDurationPart parses the components of the date or time
// part of a duration. Each designator must be one of units,
// and must follow the designators already seen in units order.
// Only the last component may be fractional.
func parseDurationPart(s, units string) ([]durationComponent, bool) {
	var comps []durationComponent
	next := 0
	for len(s) > 0 {
		if len(comps) > 0 && comps[len(comps)-1].fractional {
			return nil, false
		}

		n := countDigits(s)
		if n == 0 {
			return nil, false
		}
		var c durationComponent
		if n < len(s) && (s[n] == '.' || s[n] == ',') {
			m := countDigits(s[n+1:])
			if m == 0 {
				return nil, false
			}
			n += 1 + m
			c.fractional = true
		}
		c.value = s[:n]
		s = s[n:]

		if len(s) == 0 {
			// Number with no designator.
			return nil, false
		}
		i := strings.IndexByte(units[next:], s[0])
		if i < 0 {
			return nil, false
		}
		c.unit = s[0]
		next += i + 1
		s = s[1:]

		comps = append(comps, c)
	}
	return comps, true
}
