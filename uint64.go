package strhex

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Uint64Len is the length of the canonical text form of a Uint64.
const Uint64Len = 16

// ErrSyntax is wrapped by every parse failure in this package.
var ErrSyntax = errors.New("strhex: invalid syntax")

// Uint64 is a 64-bit unsigned value whose text form is its canonical
// big-endian uppercase hex encoding. Text forms compare in the same order
// as the values, so they can be used as map keys and sorted SQL columns.
type Uint64 uint64

// ParseUint64 parses exactly 16 hex digits, in either case.
func ParseUint64(s string) (Uint64, error) {
	if len(s) != Uint64Len {
		return 0, fmt.Errorf("%w: hex must be %d chars, got %d", ErrSyntax, Uint64Len, len(s))
	}

	var b [8]byte
	for i := range b {
		hi := DecodeDigit(s[2*i])
		if hi == InvalidDigit {
			return 0, fmt.Errorf("%w: non-hex character %q at position %d", ErrSyntax, s[2*i], 2*i)
		}
		lo := DecodeDigit(s[2*i+1])
		if lo == InvalidDigit {
			return 0, fmt.Errorf("%w: non-hex character %q at position %d", ErrSyntax, s[2*i+1], 2*i+1)
		}
		b[i] = byte(hi<<4 | lo)
	}

	return Uint64(BigEndian.Uint64(b)), nil
}

// Compare compares two values as unsigned 64-bit numbers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func Compare(a, b Uint64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// String returns the canonical 16-char encoding.
func (u Uint64) String() string {
	return EncodeUint64(uint64(u))
}

// MarshalText implements encoding.TextMarshaler.
func (u Uint64) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Uint64) UnmarshalText(text []byte) error {
	parsed, err := ParseUint64(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalJSON encodes the value as a hex string in JSON.
func (u Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON accepts either a hex string or a numeric value from JSON.
func (u *Uint64) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err == nil {
		parsed, err := ParseUint64(hexStr)
		if err != nil {
			return fmt.Errorf("failed to parse hex string: %w", err)
		}
		*u = parsed
		return nil
	}

	var num uint64
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("failed to unmarshal Uint64: expected hex string or number")
	}
	*u = Uint64(num)
	return nil
}

// Value implements the driver.Valuer interface.
// The value is stored as its canonical text so that SQL ordering matches numeric ordering.
func (u Uint64) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements the sql.Scanner interface.
// Accepts NULL, int64, or the canonical text as string or []byte.
func (u *Uint64) Scan(value interface{}) error {
	if value == nil {
		*u = 0
		return nil
	}

	switch v := value.(type) {
	case int64:
		*u = Uint64(v)
		return nil
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		return u.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan type %T into Uint64", value)
	}
}
