// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "strings"

// Date requires a valid calendar date in YYYY-MM-DD form.
// Years of more than four digits are permitted.
func Date(s string) error {
	if _, ok := parseDate(s); !ok {
		return mismatch(FormatDate, s)
	}
	return nil
}

// DateTime requires a valid ISO 8601 date and time with an offset,
// such as 2014-02-11T15:19:59.123+01:00.
func DateTime(s string) error {
	if _, ok := parseDateTime(s); !ok {
		return mismatch(FormatDateTime, s)
	}
	return nil
}

// parsedDate is a calendar date that passed validation.
type parsedDate struct {
	// year is the decimal year, four or more digits.
	// It is kept as text since it may not fit in an int.
	year  string
	month int
	day   int
}

// parseDate parses s as a calendar date.
// The bool result reports whether s is valid.
func parseDate(s string) (parsedDate, bool) {
	// date  = year "-" month "-" mday
	// year  = 4*DIGIT
	// month = 2DIGIT  ; 01-12
	// mday  = 2DIGIT  ; 01-28, 01-29, 01-30, 01-31 based on month/year
	n := countDigits(s)
	if n < 4 {
		return parsedDate{}, false
	}
	d := parsedDate{year: s[:n]}
	s = s[n:]
	if len(s) != 6 || s[0] != '-' || s[3] != '-' {
		return parsedDate{}, false
	}

	var ok bool
	if d.month, ok = twoDigits(s[1:3]); !ok {
		return parsedDate{}, false
	}
	if d.day, ok = twoDigits(s[4:6]); !ok {
		return parsedDate{}, false
	}
	if d.month < 1 || d.month > 12 || d.day < 1 || d.day > daysIn(d.month, d.year) {
		return parsedDate{}, false
	}
	return d, true
}

// monthDays is the length of each month in a non-leap year.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysIn returns the number of days in month of year.
func daysIn(month int, year string) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// isLeapYear reports whether the decimal year is a leap year
// in the proleptic Gregorian calendar.
func isLeapYear(year string) bool {
	// Only the year modulo 400 matters, which avoids
	// overflow for years with many digits.
	r := 0
	for i := range len(year) {
		r = (r*10 + int(year[i]-'0')) % 400
	}
	return r%4 == 0 && (r%100 != 0 || r == 0)
}

// parsedDateTime is a date-time that passed validation.
type parsedDateTime struct {
	parsedDate
	hour   int
	minute int
	second int
	// fraction holds the digits of the fractional seconds, if any.
	fraction string
	// offset is "Z", or a sign followed by hh, hhmm or hh:mm.
	offset string
}

// parseDateTime parses s as a date-time.
// The bool result reports whether s is valid.
func parseDateTime(s string) (parsedDateTime, bool) {
	// date-time = date "T" time [frac] offset
	// time      = hour ":" minute ":" second
	// hour      = 2DIGIT  ; 00-23
	// minute    = 2DIGIT  ; 00-59
	// second    = 2DIGIT  ; 00-59
	// frac      = ("." / ",") 1*DIGIT
	date, rest, ok := strings.Cut(s, "T")
	if !ok {
		return parsedDateTime{}, false
	}
	var dt parsedDateTime
	if dt.parsedDate, ok = parseDate(date); !ok {
		return parsedDateTime{}, false
	}

	if len(rest) < 8 || rest[2] != ':' || rest[5] != ':' {
		return parsedDateTime{}, false
	}
	if dt.hour, ok = twoDigits(rest[:2]); !ok || dt.hour > 23 {
		return parsedDateTime{}, false
	}
	if dt.minute, ok = twoDigits(rest[3:5]); !ok || dt.minute > 59 {
		return parsedDateTime{}, false
	}
	if dt.second, ok = twoDigits(rest[6:8]); !ok || dt.second > 59 {
		return parsedDateTime{}, false
	}
	rest = rest[8:]

	if len(rest) > 0 && (rest[0] == '.' || rest[0] == ',') {
		n := countDigits(rest[1:])
		if n == 0 {
			return parsedDateTime{}, false
		}
		dt.fraction = rest[1 : 1+n]
		rest = rest[1+n:]
	}

	if !isValidOffset(rest) {
		return parsedDateTime{}, false
	}
	dt.offset = rest
	return dt, true
}

// isValidOffset reports whether s is a time zone offset.
func isValidOffset(s string) bool {
	// offset = "Z" / ("+" / "-") hour [[":"] minute]
	if s == "Z" {
		return true
	}
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return false
	}
	s = s[1:]

	var mm string
	switch len(s) {
	case 2:
	case 4:
		mm = s[2:]
	case 5:
		if s[2] != ':' {
			return false
		}
		mm = s[3:]
	default:
		return false
	}

	hour, ok := twoDigits(s[:2])
	if !ok || hour > 23 {
		return false
	}
	if mm != "" {
		minute, ok := twoDigits(mm)
		if !ok || minute > 59 {
			return false
		}
	}
	return true
}

// countDigits returns the number of leading ASCII digits in s.
func countDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// twoDigits returns the value of the two digit string s.
// The bool result reports whether s is exactly two digits.
// Unlike strconv.Atoi, no sign is accepted.
func twoDigits(s string) (int, bool) {
	if len(s) != 2 || !isDigit(s[0]) || !isDigit(s[1]) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
