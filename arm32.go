package elf

import (
	"fmt"
	"io"
)

// sh_type (arm specific values)
type ARM32SectionType uint32

const (
	ARM32SectionTypeExIdx        = ARM32SectionType(0x70000001) // SHT_ARM_EXIDX
	ARM32SectionTypePreemptMap   = ARM32SectionType(0x70000002) // SHT_ARM_PREEMPTMAP
	ARM32SectionTypeAttributes   = ARM32SectionType(0x70000003) // SHT_ARM_ATTRIBUTES
	ARM32SectionTypeDebugOverlay = ARM32SectionType(0x70000004) // SHT_ARM_DEBUGOVERLAY
	ARM32SectionTypeOverlay      = ARM32SectionType(0x70000005) // SHT_ARM_OVERLAYSECTION
)

func (stype ARM32SectionType) String() string {
	switch stype {
	case ARM32SectionTypeExIdx:
		return "ARM32SectionTypeExIdx"
	case ARM32SectionTypePreemptMap:
		return "ARM32SectionTypePreemptMap"
	case ARM32SectionTypeAttributes:
		return "ARM32SectionTypeAttributes"
	case ARM32SectionTypeDebugOverlay:
		return "ARM32SectionTypeDebugOverlay"
	case ARM32SectionTypeOverlay:
		return "ARM32SectionTypeOverlay"
	default:
		return fmt.Sprintf("ARM32SectionTypeUnknown(0x%08x)", uint32(stype))
	}
}

func (stype ARM32SectionType) TypeValue() Word {
	return Word(stype)
}

func DecodeARM32SectionHeaderType(
	value Word,
	config *Config,
) (ARM32SectionType, error) {
	if !config.machineIs(MachineArchitectureARM) {
		return 0, InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitectureARM,
			},
			Value: uint32(value),
		}
	}

	stype := ARM32SectionType(value)
	switch stype {
	case ARM32SectionTypeExIdx,
		ARM32SectionTypePreemptMap,
		ARM32SectionTypeAttributes,
		ARM32SectionTypeDebugOverlay,
		ARM32SectionTypeOverlay:
		return stype, nil
	default:
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
}

type ARM32HeaderFlag interface {
	fmt.Stringer

	isARM32HeaderFlag()
}

const (
	arm32ABIMask = Word(0xff000000) // EF_ARM_ABIMASK
	arm32GCCMask = Word(0x00400fff) // EF_ARM_GCCMASK
)

// ARM32ABIVersion is the eabi version from the top byte of e_flags.
type ARM32ABIVersion Word

func (version ARM32ABIVersion) isARM32HeaderFlag() {}

func (version ARM32ABIVersion) String() string {
	return fmt.Sprintf("ARM32ABIVersion(%d)", Word(version))
}

// ARM32GCCFlags holds the raw bits reserved for gcc use.
type ARM32GCCFlags Word

func (flags ARM32GCCFlags) isARM32HeaderFlag() {}

func (flags ARM32GCCFlags) String() string {
	return fmt.Sprintf("ARM32GCCFlags(0x%08x)", Word(flags))
}

type ARM32BaseFlag Word

const (
	ARM32BaseFlagFloatSoft = ARM32BaseFlag(0x00000200) // EF_ARM_ABI_FLOAT_SOFT
	ARM32BaseFlagFloatHard = ARM32BaseFlag(0x00000400) // EF_ARM_ABI_FLOAT_HARD
	ARM32BaseFlagBe8       = ARM32BaseFlag(0x00800000) // EF_ARM_BE8
)

func (flag ARM32BaseFlag) isARM32HeaderFlag() {}

func (flag ARM32BaseFlag) String() string {
	switch flag {
	case ARM32BaseFlagFloatSoft:
		return "ARM32BaseFlagFloatSoft"
	case ARM32BaseFlagFloatHard:
		return "ARM32BaseFlagFloatHard"
	case ARM32BaseFlagBe8:
		return "ARM32BaseFlagBe8"
	default:
		return fmt.Sprintf("ARM32BaseFlagUnknown(0x%08x)", Word(flag))
	}
}

// ARM32HeaderFlags is a decoded arm e_flags word. The abi version and gcc
// bits are always part of the decoded sequence (even when zero); the float
// and byte order flags follow when their bits are set. The raw word is
// retained and written back verbatim on encode.
type ARM32HeaderFlags struct {
	Flags []ARM32HeaderFlag

	value Word
}

func (flags *ARM32HeaderFlags) RawValue() Word {
	return flags.value
}

func DecodeARM32HeaderFlags(
	value Word,
	config *Config,
) (*ARM32HeaderFlags, error) {
	decoded := []ARM32HeaderFlag{
		ARM32ABIVersion((value & arm32ABIMask) >> 24),
		ARM32GCCFlags(value & arm32GCCMask),
	}

	if value&Word(ARM32BaseFlagFloatSoft) != 0 {
		decoded = append(decoded, ARM32BaseFlagFloatSoft)
	}
	if value&Word(ARM32BaseFlagFloatHard) != 0 {
		decoded = append(decoded, ARM32BaseFlagFloatHard)
	}
	if value&Word(ARM32BaseFlagBe8) != 0 {
		decoded = append(decoded, ARM32BaseFlagBe8)
	}

	return &ARM32HeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

func (flags *ARM32HeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode arm header flags: %w", err)
	}
	return nil
}
