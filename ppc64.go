package elf

import (
	"fmt"
	"io"
)

const ppc64ABIMask = Word(0x00000003) // EF_PPC64_ABI

type PPC64ABI Word

const (
	PPC64ABIVersion1 = PPC64ABI(0x00000001)
	PPC64ABIVersion2 = PPC64ABI(0x00000002)
)

func (abi PPC64ABI) String() string {
	switch abi {
	case PPC64ABIVersion1:
		return "PPC64ABIVersion1"
	case PPC64ABIVersion2:
		return "PPC64ABIVersion2"
	default:
		return fmt.Sprintf("PPC64ABIUnknown(0x%08x)", Word(abi))
	}
}

// PPC64HeaderFlags is a decoded powerpc64 e_flags word. The abi field joins
// the decoded sequence when non-zero. The raw word is retained and written
// back verbatim on encode.
type PPC64HeaderFlags struct {
	Flags []PPC64ABI

	value Word
}

func (flags *PPC64HeaderFlags) RawValue() Word {
	return flags.value
}

func DecodePPC64HeaderFlags(
	value Word,
	config *Config,
) (*PPC64HeaderFlags, error) {
	decoded := []PPC64ABI{}
	if masked := value & ppc64ABIMask; masked != 0 {
		abi := PPC64ABI(masked)
		switch abi {
		case PPC64ABIVersion1, PPC64ABIVersion2:
		default:
			return nil, InvalidHeaderFlagForMachineError{
				Machine: config.Machine,
				Value:   uint32(value),
			}
		}
		decoded = append(decoded, abi)
	}

	return &PPC64HeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

func (flags *PPC64HeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode powerpc64 header flags: %w", err)
	}
	return nil
}
