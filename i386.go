package elf

import (
	"fmt"
)

// sh_type (i386 specific values)
type I386SectionType uint32

const (
	I386SectionTypeUnwind = I386SectionType(0x70000001) // SHT_X86_UNWIND
)

func (stype I386SectionType) String() string {
	switch stype {
	case I386SectionTypeUnwind:
		return "I386SectionTypeUnwind"
	default:
		return fmt.Sprintf("I386SectionTypeUnknown(0x%08x)", uint32(stype))
	}
}

func (stype I386SectionType) TypeValue() Word {
	return Word(stype)
}

func DecodeI386SectionHeaderType(
	value Word,
	config *Config,
) (I386SectionType, error) {
	if !config.machineIs(MachineArchitectureI386) {
		return 0, InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitectureI386,
			},
			Value: uint32(value),
		}
	}

	stype := I386SectionType(value)
	if stype != I386SectionTypeUnwind {
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
	return stype, nil
}
