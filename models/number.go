// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric movie attribute that may arrive either as a JSON number
// (7.5) or as a numeric string ("7.5").
//
// The original textual representation is kept so that a record is written back
// exactly the way it was read. Numeric comparisons go through [Number.Float64],
// which applies loose coercion (see [ParseNumber]).
type Number struct {
	// text is the literal value without surrounding quotes.
	text string

	// quoted reports whether the value was encoded as a JSON string.
	quoted bool

	// valid is false for absent and null values.
	valid bool

	// null marks an explicit JSON null or SQL NULL, as opposed to an absent
	// value.
	null bool
}

// NumberOf returns a Number encoded as a JSON number.
func NumberOf(f float64) Number {
	return Number{
		text:  strconv.FormatFloat(f, 'f', -1, 64),
		valid: true,
	}
}

// NumberString returns a Number encoded as a JSON string.
func NumberString(s string) Number {
	return Number{text: s, quoted: true, valid: true}
}

// NumberNull returns an explicit null.
func NumberNull() Number {
	return Number{null: true}
}

// Valid reports whether the value was present and not null.
func (n Number) Valid() bool {
	return n.valid
}

// Quoted reports whether the value is encoded as a JSON string.
func (n Number) Quoted() bool {
	return n.quoted
}

// String returns the literal text of the value, or an empty string when the
// value is absent.
func (n Number) String() string {
	return n.text
}

// Null reports whether the value is an explicit null.
func (n Number) Null() bool {
	return n.null
}

// Float64 returns the numeric value. A null is 0; absent values and text
// that cannot be coerced yield NaN.
func (n Number) Float64() float64 {
	if n.null {
		return 0
	}
	if !n.valid {
		return math.NaN()
	}
	return ParseNumber(n.text)
}

// MarshalJSON writes the value in its original representation.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	if n.quoted {
		return json.Marshal(n.text)
	}
	return []byte(n.text), nil
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = NumberNull()
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidNumber, string(b))
	}
	*n = Number{text: num.String(), valid: true}
	return nil
}

// Scan implements [sql.Scanner] so that REAL, INTEGER and TEXT columns can be
// read into a Number without losing the column representation.
func (n *Number) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n = NumberNull()
	case float64:
		*n = NumberOf(v)
	case float32:
		*n = NumberOf(float64(v))
	case int64:
		*n = Number{text: strconv.FormatInt(v, 10), valid: true}
	case int32:
		*n = Number{text: strconv.FormatInt(int64(v), 10), valid: true}
	case []byte:
		*n = NumberString(string(v))
	case string:
		*n = NumberString(v)
	default:
		return fmt.Errorf("%w: unsupported column type %T", ErrInvalidNumber, src)
	}
	return nil
}

// Value implements [driver.Valuer].
func (n Number) Value() (driver.Value, error) {
	if !n.valid {
		return nil, nil
	}
	if n.quoted {
		return n.text, nil
	}
	return n.Float64(), nil
}

// ErrInvalidNumber is returned when a JSON value or a database column cannot
// be represented as a [Number].
var ErrInvalidNumber = errors.New("invalid number")

// ParseNumber converts s to a float64 using loose coercion rules:
//   - surrounding whitespace is ignored and an empty string is 0;
//   - "Infinity", "+Infinity" and "-Infinity" are the infinities;
//   - 0x, 0o and 0b prefixes are parsed as unsigned integers;
//   - anything else must be a plain decimal literal, otherwise NaN.
//
// Values that overflow float64 saturate to an infinity.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(v)
		}
	}

	if strings.IndexFunc(s, notDecimalRune) >= 0 {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func notDecimalRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r == '.', r == 'e', r == 'E', r == '+', r == '-':
		return false
	}
	return true
}
