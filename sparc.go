package elf

import (
	"fmt"
	"io"
)

// sh_type (sparc specific values)
type SPARCSectionType uint32

const (
	SPARCSectionTypeGotData = SPARCSectionType(0x70000000) // SHT_SPARC_GOTDATA
)

func (stype SPARCSectionType) String() string {
	switch stype {
	case SPARCSectionTypeGotData:
		return "SPARCSectionTypeGotData"
	default:
		return fmt.Sprintf("SPARCSectionTypeUnknown(0x%08x)", uint32(stype))
	}
}

func (stype SPARCSectionType) TypeValue() Word {
	return Word(stype)
}

func DecodeSPARCSectionHeaderType(
	value Word,
	config *Config,
) (SPARCSectionType, error) {
	if !config.machineIs(
		MachineArchitectureSPARC,
		MachineArchitectureSPARC32Plus,
		MachineArchitectureSPARCV9) {

		return 0, InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitectureSPARC,
				MachineArchitectureSPARC32Plus,
				MachineArchitectureSPARCV9,
			},
			Value: uint32(value),
		}
	}

	stype := SPARCSectionType(value)
	if stype != SPARCSectionTypeGotData {
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
	return stype, nil
}

type SPARCHeaderFlag interface {
	fmt.Stringer

	isSPARCHeaderFlag()
}

type SPARCBaseFlag Word

const (
	SPARCBaseFlag32Plus = SPARCBaseFlag(0x00000100) // EF_SPARC_32PLUS
	SPARCBaseFlagSunUS1 = SPARCBaseFlag(0x00000200) // EF_SPARC_SUN_US1
	SPARCBaseFlagHALR1  = SPARCBaseFlag(0x00000400) // EF_SPARC_HAL_R1
	SPARCBaseFlagSunUS3 = SPARCBaseFlag(0x00000800) // EF_SPARC_SUN_US3
)

var sparcBaseFlagNames = []struct {
	flag SPARCBaseFlag
	name string
}{
	{SPARCBaseFlag32Plus, "32Plus"},
	{SPARCBaseFlagSunUS1, "SunUS1"},
	{SPARCBaseFlagHALR1, "HALR1"},
	{SPARCBaseFlagSunUS3, "SunUS3"},
}

func (flag SPARCBaseFlag) isSPARCHeaderFlag() {}

func (flag SPARCBaseFlag) String() string {
	for _, entry := range sparcBaseFlagNames {
		if entry.flag == flag {
			return "SPARCBaseFlag" + entry.name
		}
	}
	return fmt.Sprintf("SPARCBaseFlagUnknown(0x%08x)", Word(flag))
}

const sparcMemoryModelMask = Word(0x00000003) // EF_SPARCV9_MM

type SPARCMemoryModel Word

const (
	SPARCMemoryModelTSO = SPARCMemoryModel(0x00000000) // EF_SPARCV9_TSO
	SPARCMemoryModelPSO = SPARCMemoryModel(0x00000001) // EF_SPARCV9_PSO
	SPARCMemoryModelRMO = SPARCMemoryModel(0x00000002) // EF_SPARCV9_RMO
)

func (model SPARCMemoryModel) isSPARCHeaderFlag() {}

func (model SPARCMemoryModel) String() string {
	switch model {
	case SPARCMemoryModelTSO:
		return "SPARCMemoryModelTSO"
	case SPARCMemoryModelPSO:
		return "SPARCMemoryModelPSO"
	case SPARCMemoryModelRMO:
		return "SPARCMemoryModelRMO"
	default:
		return fmt.Sprintf("SPARCMemoryModelUnknown(0x%08x)", Word(model))
	}
}

// SPARCHeaderFlags is a decoded sparc e_flags word. Single-bit flags are
// listed first, then the v9 memory model field when non-zero. The raw word
// is retained and written back verbatim on encode.
type SPARCHeaderFlags struct {
	Flags []SPARCHeaderFlag

	value Word
}

func (flags *SPARCHeaderFlags) RawValue() Word {
	return flags.value
}

func DecodeSPARCHeaderFlags(
	value Word,
	config *Config,
) (*SPARCHeaderFlags, error) {
	decoded := []SPARCHeaderFlag{}
	for _, entry := range sparcBaseFlagNames {
		if value&Word(entry.flag) != 0 {
			decoded = append(decoded, entry.flag)
		}
	}

	if masked := value & sparcMemoryModelMask; masked != 0 {
		decoded = append(decoded, SPARCMemoryModel(masked))
	}

	return &SPARCHeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

func (flags *SPARCHeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode sparc header flags: %w", err)
	}
	return nil
}
