package elf

import (
	"fmt"
	"io"
)

// sh_type (risc-v specific values)
type RISCVSectionType uint32

const (
	RISCVSectionTypeAttributes = RISCVSectionType(0x70000003) // SHT_RISCV_ATTRIBUTES
)

func (stype RISCVSectionType) String() string {
	switch stype {
	case RISCVSectionTypeAttributes:
		return "RISCVSectionTypeAttributes"
	default:
		return fmt.Sprintf("RISCVSectionTypeUnknown(0x%08x)", uint32(stype))
	}
}

func (stype RISCVSectionType) TypeValue() Word {
	return Word(stype)
}

func DecodeRISCVSectionHeaderType(
	value Word,
	config *Config,
) (RISCVSectionType, error) {
	if !config.machineIs(MachineArchitectureRISCV) {
		return 0, InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitectureRISCV,
			},
			Value: uint32(value),
		}
	}

	stype := RISCVSectionType(value)
	if stype != RISCVSectionTypeAttributes {
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
	return stype, nil
}

type RISCVHeaderFlag interface {
	fmt.Stringer

	isRISCVHeaderFlag()
}

const (
	riscvRVCMask         = Word(0x00000001) // EF_RISCV_RVC
	riscvFloatABIMask    = Word(0x00000006) // EF_RISCV_FLOAT_ABI
	riscvEABIMask        = Word(0x00000008) // EF_RISCV_RVE
	riscvMemoryModelMask = Word(0x00000010) // EF_RISCV_TSO
)

type RISCVRVC Word

const (
	RISCVRVCNone = RISCVRVC(0x00000000)
	RISCVRVCRvc  = RISCVRVC(0x00000001) // EF_RISCV_RVC
)

func (rvc RISCVRVC) isRISCVHeaderFlag() {}

func (rvc RISCVRVC) String() string {
	switch rvc {
	case RISCVRVCNone:
		return "RISCVRVCNone"
	case RISCVRVCRvc:
		return "RISCVRVCRvc"
	default:
		return fmt.Sprintf("RISCVRVCUnknown(0x%08x)", Word(rvc))
	}
}

type RISCVFloatABI Word

const (
	RISCVFloatABISoft   = RISCVFloatABI(0x00000000) // EF_RISCV_FLOAT_ABI_SOFT
	RISCVFloatABISingle = RISCVFloatABI(0x00000002) // EF_RISCV_FLOAT_ABI_SINGLE
	RISCVFloatABIDouble = RISCVFloatABI(0x00000004) // EF_RISCV_FLOAT_ABI_DOUBLE
	RISCVFloatABIQuad   = RISCVFloatABI(0x00000006) // EF_RISCV_FLOAT_ABI_QUAD
)

func (abi RISCVFloatABI) isRISCVHeaderFlag() {}

func (abi RISCVFloatABI) String() string {
	switch abi {
	case RISCVFloatABISoft:
		return "RISCVFloatABISoft"
	case RISCVFloatABISingle:
		return "RISCVFloatABISingle"
	case RISCVFloatABIDouble:
		return "RISCVFloatABIDouble"
	case RISCVFloatABIQuad:
		return "RISCVFloatABIQuad"
	default:
		return fmt.Sprintf("RISCVFloatABIUnknown(0x%08x)", Word(abi))
	}
}

type RISCVEABI Word

const (
	RISCVEABIBase = RISCVEABI(0x00000000)
	RISCVEABIEIsa = RISCVEABI(0x00000008) // EF_RISCV_RVE
)

func (abi RISCVEABI) isRISCVHeaderFlag() {}

func (abi RISCVEABI) String() string {
	switch abi {
	case RISCVEABIBase:
		return "RISCVEABIBase"
	case RISCVEABIEIsa:
		return "RISCVEABIEIsa"
	default:
		return fmt.Sprintf("RISCVEABIUnknown(0x%08x)", Word(abi))
	}
}

type RISCVMemoryModel Word

const (
	RISCVMemoryModelBase  = RISCVMemoryModel(0x00000000)
	RISCVMemoryModelRvtso = RISCVMemoryModel(0x00000010) // EF_RISCV_TSO
)

func (model RISCVMemoryModel) isRISCVHeaderFlag() {}

func (model RISCVMemoryModel) String() string {
	switch model {
	case RISCVMemoryModelBase:
		return "RISCVMemoryModelBase"
	case RISCVMemoryModelRvtso:
		return "RISCVMemoryModelRvtso"
	default:
		return fmt.Sprintf("RISCVMemoryModelUnknown(0x%08x)", Word(model))
	}
}

// RISCVHeaderFlags is a decoded risc-v e_flags word. Each masked field joins
// the decoded sequence only when non-zero. The raw word is retained and
// written back verbatim on encode.
type RISCVHeaderFlags struct {
	Flags []RISCVHeaderFlag

	value Word
}

func (flags *RISCVHeaderFlags) RawValue() Word {
	return flags.value
}

func DecodeRISCVHeaderFlags(
	value Word,
	config *Config,
) (*RISCVHeaderFlags, error) {
	decoded := []RISCVHeaderFlag{}

	if masked := value & riscvRVCMask; masked != 0 {
		decoded = append(decoded, RISCVRVC(masked))
	}

	if masked := value & riscvFloatABIMask; masked != 0 {
		decoded = append(decoded, RISCVFloatABI(masked))
	}

	if masked := value & riscvEABIMask; masked != 0 {
		decoded = append(decoded, RISCVEABI(masked))
	}

	if masked := value & riscvMemoryModelMask; masked != 0 {
		decoded = append(decoded, RISCVMemoryModel(masked))
	}

	return &RISCVHeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

func (flags *RISCVHeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode risc-v header flags: %w", err)
	}
	return nil
}
