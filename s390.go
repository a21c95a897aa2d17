package elf

import (
	"fmt"
	"io"
)

type S390HeaderFlag Word

const (
	S390HeaderFlagHighGPRS = S390HeaderFlag(0x00000001) // EF_S390_HIGH_GPRS
)

func (flag S390HeaderFlag) String() string {
	switch flag {
	case S390HeaderFlagHighGPRS:
		return "S390HeaderFlagHighGPRS"
	default:
		return fmt.Sprintf("S390HeaderFlagUnknown(0x%08x)", Word(flag))
	}
}

// S390HeaderFlags is a decoded 31-bit s390 e_flags word. The raw word is
// retained and written back verbatim on encode.
type S390HeaderFlags struct {
	Flags []S390HeaderFlag

	value Word
}

func (flags *S390HeaderFlags) RawValue() Word {
	return flags.value
}

func DecodeS390HeaderFlags(
	value Word,
	config *Config,
) (*S390HeaderFlags, error) {
	decoded := []S390HeaderFlag{}
	if value&Word(S390HeaderFlagHighGPRS) != 0 {
		decoded = append(decoded, S390HeaderFlagHighGPRS)
	}

	return &S390HeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

func (flags *S390HeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode s390 header flags: %w", err)
	}
	return nil
}
