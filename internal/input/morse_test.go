package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(m *Morse, seq string) {
	for i := 0; i < len(seq); i++ {
		m.Add(seq[i])
	}
}

func TestMorse_DecodeTable(t *testing.T) {
	cases := map[string]rune{
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
	for seq, want := range cases {
		var m Morse
		feed(&m, seq)
		assert.Equal(t, seq, m.Sequence())
		assert.Equal(t, want, m.Confirm(), seq)
		assert.Empty(t, m.Sequence(), "confirm clears")
	}
}

func TestMorse_EmptyConfirmCompletes(t *testing.T) {
	var m Morse
	assert.Equal(t, Complete, m.Confirm())
}

func TestMorse_InvalidSequence(t *testing.T) {
	var m Morse
	feed(&m, "..-.")
	assert.Equal(t, Invalid, m.Confirm())
	assert.Empty(t, m.Sequence())
}

func TestMorse_AddLimits(t *testing.T) {
	var m Morse
	assert.False(t, m.Add('x'))
	for i := 0; i < 6; i++ {
		require.True(t, m.Add(Dot))
	}
	assert.False(t, m.Add(Dash), "six symbols max")
	assert.Equal(t, "......", m.Sequence())

	assert.True(t, m.DeleteLast())
	assert.Equal(t, ".....", m.Sequence())
	m.Reset()
	assert.False(t, m.DeleteLast())
}

func TestNumberEntry(t *testing.T) {
	var e NumberEntry
	_, err := e.Value()
	assert.ErrorIs(t, err, ErrEmptyEntry)

	for _, r := range "9.81" {
		require.NoError(t, e.Append(r))
	}
	assert.Equal(t, "9.81", e.String())
	assert.ErrorIs(t, e.Append('.'), ErrSecondDecimal)
	assert.ErrorIs(t, e.Append('x'), ErrNotANumberRune)

	v, err := e.Value()
	require.NoError(t, err)
	assert.Equal(t, 9.81, v)

	require.NoError(t, e.Append('1'))
	require.NoError(t, e.Append('2'))
	assert.ErrorIs(t, e.Append('3'), ErrEntryFull)

	assert.True(t, e.Backspace())
	assert.Equal(t, "9.811", e.String())

	e.Reset()
	assert.False(t, e.Backspace())
	require.NoError(t, e.Append('.'))
	_, err = e.Value()
	assert.Error(t, err)
}
