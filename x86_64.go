package elf

import (
	"fmt"
)

// sh_type (x86-64 specific values)
type X86_64SectionType uint32

const (
	X86_64SectionTypeUnwind = X86_64SectionType(0x70000001) // SHT_X86_64_UNWIND
)

func (stype X86_64SectionType) String() string {
	switch stype {
	case X86_64SectionTypeUnwind:
		return "X86_64SectionTypeUnwind"
	default:
		return fmt.Sprintf("X86_64SectionTypeUnknown(0x%08x)", uint32(stype))
	}
}

func (stype X86_64SectionType) TypeValue() Word {
	return Word(stype)
}

func DecodeX86_64SectionHeaderType(
	value Word,
	config *Config,
) (X86_64SectionType, error) {
	if !config.machineIs(MachineArchitectureX86_64) {
		return 0, InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitectureX86_64,
			},
			Value: uint32(value),
		}
	}

	stype := X86_64SectionType(value)
	if stype != X86_64SectionTypeUnwind {
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
	return stype, nil
}
