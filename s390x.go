package elf

import (
	"fmt"
	"io"
)

type S390XHeaderFlag Word

const (
	S390XHeaderFlagHighGPRS = S390XHeaderFlag(0x00000001) // EF_S390_HIGH_GPRS
)

func (flag S390XHeaderFlag) String() string {
	switch flag {
	case S390XHeaderFlagHighGPRS:
		return "S390XHeaderFlagHighGPRS"
	default:
		return fmt.Sprintf("S390XHeaderFlagUnknown(0x%08x)", Word(flag))
	}
}

// S390XHeaderFlags is a decoded 64-bit s390x e_flags word. The raw word is
// retained and written back verbatim on encode.
type S390XHeaderFlags struct {
	Flags []S390XHeaderFlag

	value Word
}

func (flags *S390XHeaderFlags) RawValue() Word {
	return flags.value
}

func DecodeS390XHeaderFlags(
	value Word,
	config *Config,
) (*S390XHeaderFlags, error) {
	decoded := []S390XHeaderFlag{}
	if value&Word(S390XHeaderFlagHighGPRS) != 0 {
		decoded = append(decoded, S390XHeaderFlagHighGPRS)
	}

	return &S390XHeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

func (flags *S390XHeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode s390x header flags: %w", err)
	}
	return nil
}
