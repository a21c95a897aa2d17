package elf

import (
	"fmt"
)

// sh_type (powerpc specific values)
type PPCSectionType uint32

const (
	// The maximum processor specific value.
	PPCSectionTypeOrdered = PPCSectionType(0x7fffffff) // SHT_ORDERED
)

func (stype PPCSectionType) String() string {
	switch stype {
	case PPCSectionTypeOrdered:
		return "PPCSectionTypeOrdered"
	default:
		return fmt.Sprintf("PPCSectionTypeUnknown(0x%08x)", uint32(stype))
	}
}

func (stype PPCSectionType) TypeValue() Word {
	return Word(stype)
}

func DecodePPCSectionHeaderType(
	value Word,
	config *Config,
) (PPCSectionType, error) {
	if !config.machineIs(MachineArchitecturePPC) {
		return 0, InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitecturePPC,
			},
			Value: uint32(value),
		}
	}

	stype := PPCSectionType(value)
	if stype != PPCSectionTypeOrdered {
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
	return stype, nil
}
