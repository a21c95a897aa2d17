package elf

import (
	"fmt"
	"io"
)

// sh_type (pa-risc specific values)
//
// The HP values sit in the os reserved range rather than the processor
// range, matching the hp-ux abi document.
type PARISCSectionType uint32

const (
	PARISCSectionTypeExt     = PARISCSectionType(0x70000000) // SHT_PARISC_EXT
	PARISCSectionTypeUnwind  = PARISCSectionType(0x70000001) // SHT_PARISC_UNWIND
	PARISCSectionTypeDoc     = PARISCSectionType(0x70000002) // SHT_PARISC_DOC
	PARISCSectionTypeAnnot   = PARISCSectionType(0x70000003) // SHT_PARISC_ANNOT
	PARISCSectionTypeDlkm    = PARISCSectionType(0x70000004) // SHT_PARISC_DLKM
	PARISCSectionTypeSymextn = PARISCSectionType(0x70000008) // SHT_PARISC_SYMEXTN
	PARISCSectionTypeStubs   = PARISCSectionType(0x70000009) // SHT_PARISC_STUBS

	PARISCSectionTypeHPOvlBits = PARISCSectionType(0x60000000) // SHT_HP_OVLBITS
	PARISCSectionTypeHPDlkm    = PARISCSectionType(0x60000001) // SHT_HP_DLKM
	PARISCSectionTypeHPComdat  = PARISCSectionType(0x60000002) // SHT_HP_COMDAT
	PARISCSectionTypeHPObjdict = PARISCSectionType(0x60000003) // SHT_HP_OBJDICT
	PARISCSectionTypeHPAnnot   = PARISCSectionType(0x60000004) // SHT_HP_ANNOT
)

var pariscSectionTypeNames = map[PARISCSectionType]string{
	PARISCSectionTypeExt:       "Ext",
	PARISCSectionTypeUnwind:    "Unwind",
	PARISCSectionTypeDoc:       "Doc",
	PARISCSectionTypeAnnot:     "Annot",
	PARISCSectionTypeDlkm:      "Dlkm",
	PARISCSectionTypeSymextn:   "Symextn",
	PARISCSectionTypeStubs:     "Stubs",
	PARISCSectionTypeHPOvlBits: "HPOvlBits",
	PARISCSectionTypeHPDlkm:    "HPDlkm",
	PARISCSectionTypeHPComdat:  "HPComdat",
	PARISCSectionTypeHPObjdict: "HPObjdict",
	PARISCSectionTypeHPAnnot:   "HPAnnot",
}

func (stype PARISCSectionType) String() string {
	name, ok := pariscSectionTypeNames[stype]
	if !ok {
		return fmt.Sprintf("PARISCSectionTypeUnknown(0x%08x)", uint32(stype))
	}
	return "PARISCSectionType" + name
}

func (stype PARISCSectionType) TypeValue() Word {
	return Word(stype)
}

func DecodePARISCSectionHeaderType(
	value Word,
	config *Config,
) (PARISCSectionType, error) {
	if !config.machineIs(MachineArchitecturePARISC) {
		return 0, InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitecturePARISC,
			},
			Value: uint32(value),
		}
	}

	stype := PARISCSectionType(value)
	_, ok := pariscSectionTypeNames[stype]
	if !ok {
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
	return stype, nil
}

type PARISCHeaderFlag interface {
	fmt.Stringer

	isPARISCHeaderFlag()
}

type PARISCBaseFlag Word

const (
	PARISCBaseFlagTrapNil          = PARISCBaseFlag(0x00010000) // EF_PARISC_TRAPNIL
	PARISCBaseFlagExtensions       = PARISCBaseFlag(0x00020000) // EF_PARISC_EXT
	PARISCBaseFlagLittleEndianMode = PARISCBaseFlag(0x00040000) // EF_PARISC_LSB
	PARISCBaseFlagWideMode         = PARISCBaseFlag(0x00080000) // EF_PARISC_WIDE
	PARISCBaseFlagNoKernelAssist   = PARISCBaseFlag(0x00100000) // EF_PARISC_NO_KABP
	PARISCBaseFlagLazySwap         = PARISCBaseFlag(0x00400000) // EF_PARISC_LAZYSWAP
)

var pariscBaseFlagNames = []struct {
	flag PARISCBaseFlag
	name string
}{
	{PARISCBaseFlagTrapNil, "TrapNil"},
	{PARISCBaseFlagExtensions, "Extensions"},
	{PARISCBaseFlagLittleEndianMode, "LittleEndianMode"},
	{PARISCBaseFlagWideMode, "WideMode"},
	{PARISCBaseFlagNoKernelAssist, "NoKernelAssist"},
	{PARISCBaseFlagLazySwap, "LazySwap"},
}

func (flag PARISCBaseFlag) isPARISCHeaderFlag() {}

func (flag PARISCBaseFlag) String() string {
	for _, entry := range pariscBaseFlagNames {
		if entry.flag == flag {
			return "PARISCBaseFlag" + entry.name
		}
	}
	return fmt.Sprintf("PARISCBaseFlagUnknown(0x%08x)", Word(flag))
}

const pariscArchitectureVersionMask = Word(0x0000ffff) // EF_PARISC_ARCH

type PARISCArchitectureVersion Word

const (
	PARISCArchitectureVersion1_0 = PARISCArchitectureVersion(0x020b) // EFA_PARISC_1_0
	PARISCArchitectureVersion1_1 = PARISCArchitectureVersion(0x0210) // EFA_PARISC_1_1
	PARISCArchitectureVersion2_0 = PARISCArchitectureVersion(0x0214) // EFA_PARISC_2_0
)

func (version PARISCArchitectureVersion) isPARISCHeaderFlag() {}

func (version PARISCArchitectureVersion) String() string {
	switch version {
	case PARISCArchitectureVersion1_0:
		return "PARISCArchitectureVersion1_0"
	case PARISCArchitectureVersion1_1:
		return "PARISCArchitectureVersion1_1"
	case PARISCArchitectureVersion2_0:
		return "PARISCArchitectureVersion2_0"
	default:
		return fmt.Sprintf(
			"PARISCArchitectureVersionUnknown(0x%04x)",
			Word(version))
	}
}

// PARISCHeaderFlags is a decoded pa-risc e_flags word. Single-bit flags are
// listed first, then the architecture version field when non-zero. The raw
// word is retained and written back verbatim on encode.
type PARISCHeaderFlags struct {
	Flags []PARISCHeaderFlag

	value Word
}

func (flags *PARISCHeaderFlags) RawValue() Word {
	return flags.value
}

func DecodePARISCHeaderFlags(
	value Word,
	config *Config,
) (*PARISCHeaderFlags, error) {
	decoded := []PARISCHeaderFlag{}
	for _, entry := range pariscBaseFlagNames {
		if value&Word(entry.flag) != 0 {
			decoded = append(decoded, entry.flag)
		}
	}

	if masked := value & pariscArchitectureVersionMask; masked != 0 {
		version := PARISCArchitectureVersion(masked)
		switch version {
		case PARISCArchitectureVersion1_0,
			PARISCArchitectureVersion1_1,
			PARISCArchitectureVersion2_0:
		default:
			return nil, InvalidHeaderFlagForMachineError{
				Machine: config.Machine,
				Value:   uint32(value),
			}
		}
		decoded = append(decoded, version)
	}

	return &PARISCHeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

func (flags *PARISCHeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode pa-risc header flags: %w", err)
	}
	return nil
}
