package elf

import (
	"fmt"
)

// sh_type (sun specific values, in the os reserved range)
//
// The symbol versioning values share their numbers with the gnu table; the
// configured os abi decides which table applies.
type SUNSectionType uint32

const (
	SUNSectionTypeVerDef  = SUNSectionType(0x6ffffffd) // SHT_SUNW_verdef
	SUNSectionTypeVerNeed = SUNSectionType(0x6ffffffe) // SHT_SUNW_verneed
	SUNSectionTypeVerSym  = SUNSectionType(0x6fffffff) // SHT_SUNW_versym
)

func (stype SUNSectionType) String() string {
	switch stype {
	case SUNSectionTypeVerDef:
		return "SUNSectionTypeVerDef"
	case SUNSectionTypeVerNeed:
		return "SUNSectionTypeVerNeed"
	case SUNSectionTypeVerSym:
		return "SUNSectionTypeVerSym"
	default:
		return fmt.Sprintf("SUNSectionTypeUnknown(0x%08x)", uint32(stype))
	}
}

func (stype SUNSectionType) TypeValue() Word {
	return Word(stype)
}

func DecodeSUNSectionHeaderType(
	value Word,
	config *Config,
) (SUNSectionType, error) {
	if !config.osAbiIs(OperatingSystemABISolaris) {
		return 0, InvalidOperatingSystemABIForSectionHeaderTypeError{
			OSABI: config.OSABI,
			ExpectedOSABI: []OperatingSystemABI{
				OperatingSystemABISolaris,
			},
			Value: uint32(value),
		}
	}

	stype := SUNSectionType(value)
	switch stype {
	case SUNSectionTypeVerDef, SUNSectionTypeVerNeed, SUNSectionTypeVerSym:
		return stype, nil
	default:
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
}
