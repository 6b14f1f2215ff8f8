// internal/input/morse.go
package input

import "projectile-machine/internal/config"

const (
	Dot  = '.'
	Dash = '-'

	// Complete is returned by Confirm on an empty sequence.
	Complete = ' '
	// Invalid is returned by Confirm for a sequence with no meaning.
	Invalid rune = 0
)

var morseTable = map[string]rune{
	"-----": '0',
	".----": '1',
	"..---": '2',
	"...--": '3',
	"....-": '4',
	".....": '5',
	"-....": '6',
	"--...": '7',
	"---..": '8',
	"----.": '9',
	".-":    '.',
}

// Morse collects dots and dashes for one character.
type Morse struct {
	seq [config.MorseMaxSymbols]byte
	n   int
}

// Add appends a Dot or Dash. It reports false when the symbol is unknown or
// the sequence is full.
func (m *Morse) Add(symbol byte) bool {
	if symbol != Dot && symbol != Dash {
		return false
	}
	if m.n >= len(m.seq) {
		return false
	}
	m.seq[m.n] = symbol
	m.n++
	return true
}

// Confirm decodes and clears the sequence. An empty sequence yields Complete.
func (m *Morse) Confirm() rune {
	if m.n == 0 {
		return Complete
	}
	r, ok := morseTable[m.Sequence()]
	m.Reset()
	if !ok {
		return Invalid
	}
	return r
}

// DeleteLast removes the most recent symbol and reports whether there was one.
func (m *Morse) DeleteLast() bool {
	if m.n == 0 {
		return false
	}
	m.n--
	return true
}

func (m *Morse) Sequence() string {
	return string(m.seq[:m.n])
}

func (m *Morse) Reset() {
	m.n = 0
}
