// internal/input/entry.go
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"projectile-machine/internal/config"
)

var (
	ErrEntryFull      = errors.New("entry is full")
	ErrSecondDecimal  = errors.New("entry already has a decimal point")
	ErrNotANumberRune = errors.New("not a digit or decimal point")
	ErrEmptyEntry     = errors.New("entry is empty")
)

// NumberEntry accumulates the characters of a decimal number typed in Morse.
type NumberEntry struct {
	buf []byte
}

// Append adds a digit or a single decimal point.
func (e *NumberEntry) Append(r rune) error {
	switch {
	case r == '.':
		if strings.IndexByte(string(e.buf), '.') >= 0 {
			return ErrSecondDecimal
		}
	case r >= '0' && r <= '9':
	default:
		return ErrNotANumberRune
	}
	if len(e.buf) >= config.MorseMaxDigits {
		return ErrEntryFull
	}
	e.buf = append(e.buf, byte(r))
	return nil
}

// Backspace removes the last character and reports whether there was one.
func (e *NumberEntry) Backspace() bool {
	if len(e.buf) == 0 {
		return false
	}
	e.buf = e.buf[:len(e.buf)-1]
	return true
}

// Value parses the entry.
func (e *NumberEntry) Value() (float64, error) {
	if len(e.buf) == 0 {
		return 0, ErrEmptyEntry
	}
	v, err := strconv.ParseFloat(string(e.buf), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", e.buf, err)
	}
	return v, nil
}

func (e *NumberEntry) String() string {
	return string(e.buf)
}

func (e *NumberEntry) Reset() {
	e.buf = e.buf[:0]
}
