package elf

import (
	"fmt"
)

// sh_type (aarch64 specific values)
type AARCH64SectionType uint32

const (
	AARCH64SectionTypeAttributes = AARCH64SectionType(0x70000003) // SHT_AARCH64_ATTRIBUTES
)

func (stype AARCH64SectionType) String() string {
	switch stype {
	case AARCH64SectionTypeAttributes:
		return "AARCH64SectionTypeAttributes"
	default:
		return fmt.Sprintf("AARCH64SectionTypeUnknown(0x%08x)", uint32(stype))
	}
}

func (stype AARCH64SectionType) TypeValue() Word {
	return Word(stype)
}

func DecodeAARCH64SectionHeaderType(
	value Word,
	config *Config,
) (AARCH64SectionType, error) {
	if !config.machineIs(MachineArchitectureAARCH64) {
		return 0, InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitectureAARCH64,
			},
			Value: uint32(value),
		}
	}

	stype := AARCH64SectionType(value)
	if stype != AARCH64SectionTypeAttributes {
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
	return stype, nil
}
