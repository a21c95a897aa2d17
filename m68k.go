package elf

import (
	"fmt"
	"io"
)

type M68KHeaderFlag Word

const (
	M68KHeaderFlagCpu32 = M68KHeaderFlag(0x00810000) // EF_M68K_CPU32
)

func (flag M68KHeaderFlag) String() string {
	switch flag {
	case M68KHeaderFlagCpu32:
		return "M68KHeaderFlagCpu32"
	default:
		return fmt.Sprintf("M68KHeaderFlagUnknown(0x%08x)", Word(flag))
	}
}

// M68KHeaderFlags is a decoded m68k e_flags word. The raw word is retained
// and written back verbatim on encode.
type M68KHeaderFlags struct {
	Flags []M68KHeaderFlag

	value Word
}

func (flags *M68KHeaderFlags) RawValue() Word {
	return flags.value
}

func DecodeM68KHeaderFlags(
	value Word,
	config *Config,
) (*M68KHeaderFlags, error) {
	decoded := []M68KHeaderFlag{}
	if value&Word(M68KHeaderFlagCpu32) == Word(M68KHeaderFlagCpu32) {
		decoded = append(decoded, M68KHeaderFlagCpu32)
	}

	return &M68KHeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

func (flags *M68KHeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode m68k header flags: %w", err)
	}
	return nil
}
