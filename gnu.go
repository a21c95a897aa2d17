package elf

import (
	"fmt"
)

// sh_type (gnu specific values, in the os reserved range)
type GNUSectionType uint32

const (
	GNUSectionTypeIncrementalInputs = GNUSectionType(0x6fff4700) // SHT_GNU_INCREMENTAL_INPUTS
	GNUSectionTypeAttributes        = GNUSectionType(0x6ffffff5) // SHT_GNU_ATTRIBUTES
	GNUSectionTypeHash              = GNUSectionType(0x6ffffff6) // SHT_GNU_HASH
	GNUSectionTypeLibList           = GNUSectionType(0x6ffffff7) // SHT_GNU_LIBLIST
	GNUSectionTypeVerDef            = GNUSectionType(0x6ffffffd) // SHT_GNU_verdef
	GNUSectionTypeVerNeed           = GNUSectionType(0x6ffffffe) // SHT_GNU_verneed
	GNUSectionTypeVerSym            = GNUSectionType(0x6fffffff) // SHT_GNU_versym
)

func (stype GNUSectionType) String() string {
	switch stype {
	case GNUSectionTypeIncrementalInputs:
		return "GNUSectionTypeIncrementalInputs"
	case GNUSectionTypeAttributes:
		return "GNUSectionTypeAttributes"
	case GNUSectionTypeHash:
		return "GNUSectionTypeHash"
	case GNUSectionTypeLibList:
		return "GNUSectionTypeLibList"
	case GNUSectionTypeVerDef:
		return "GNUSectionTypeVerDef"
	case GNUSectionTypeVerNeed:
		return "GNUSectionTypeVerNeed"
	case GNUSectionTypeVerSym:
		return "GNUSectionTypeVerSym"
	default:
		return fmt.Sprintf("GNUSectionTypeUnknown(0x%08x)", uint32(stype))
	}
}

func (stype GNUSectionType) TypeValue() Word {
	return Word(stype)
}

func DecodeGNUSectionHeaderType(
	value Word,
	config *Config,
) (GNUSectionType, error) {
	if !config.osAbiIs(OperatingSystemABILinux) {
		return 0, InvalidOperatingSystemABIForSectionHeaderTypeError{
			OSABI: config.OSABI,
			ExpectedOSABI: []OperatingSystemABI{
				OperatingSystemABILinux,
			},
			Value: uint32(value),
		}
	}

	stype := GNUSectionType(value)
	switch stype {
	case GNUSectionTypeIncrementalInputs,
		GNUSectionTypeAttributes,
		GNUSectionTypeHash,
		GNUSectionTypeLibList,
		GNUSectionTypeVerDef,
		GNUSectionTypeVerNeed,
		GNUSectionTypeVerSym:
		return stype, nil
	default:
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
}
