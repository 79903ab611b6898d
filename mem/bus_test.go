package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteWord(t *testing.T) {
	b := &Bus{}
	b.WriteWord(0x10, 0xBEEF)
	assert.Equal(t, byte(0xEF), b.Read(0x10))
	assert.Equal(t, byte(0xBE), b.Read(0x11))
	assert.Equal(t, uint16(0xBEEF), b.ReadWord(0x10))
}

func TestReadWordWrapsAtTopOfAddressSpace(t *testing.T) {
	b := &Bus{}
	b.Write(0xFFFF, 0xCD)
	b.Write(0x0000, 0xAB)
	assert.Equal(t, uint16(0xABCD), b.ReadWord(0xFFFF))
}

func TestLoadProgram(t *testing.T) {
	b := &Bus{}
	program := []byte{0xA9, 0x05, 0x00}
	require.NoError(t, b.LoadProgram(program))
	assert.Equal(t, byte(0xA9), b.Read(Origin))
	assert.Equal(t, byte(0x05), b.Read(Origin+1))
	assert.Equal(t, byte(0x00), b.Read(Origin+2))
}

func TestLoadProgramTooLarge(t *testing.T) {
	b := &Bus{}
	err := b.LoadProgram(make([]byte, MaxProgramSize+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProgramTooLarge)
}

func TestPushPull(t *testing.T) {
	b := &Bus{}
	s := byte(0xFF)
	b.Push(s, 0x42)
	s--
	assert.Equal(t, byte(0x42), b.Pull(s+1))
}
