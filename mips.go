package elf

import (
	"fmt"
	"io"
)

// sh_type (mips specific values)
type MIPSSectionType uint32

const (
	MIPSSectionTypeLibList      = MIPSSectionType(0x70000000) // SHT_MIPS_LIBLIST
	MIPSSectionTypeConflict     = MIPSSectionType(0x70000002) // SHT_MIPS_CONFLICT
	MIPSSectionTypeGpTable      = MIPSSectionType(0x70000003) // SHT_MIPS_GPTAB
	MIPSSectionTypeUCode        = MIPSSectionType(0x70000004) // SHT_MIPS_UCODE
	MIPSSectionTypeDebug        = MIPSSectionType(0x70000005) // SHT_MIPS_DEBUG
	MIPSSectionTypeRegInfo      = MIPSSectionType(0x70000006) // SHT_MIPS_REGINFO
	MIPSSectionTypePackage      = MIPSSectionType(0x70000007) // SHT_MIPS_PACKAGE
	MIPSSectionTypePackSym      = MIPSSectionType(0x70000008) // SHT_MIPS_PACKSYM
	MIPSSectionTypeRelD         = MIPSSectionType(0x70000009) // SHT_MIPS_RELD
	MIPSSectionTypeIFace        = MIPSSectionType(0x7000000b) // SHT_MIPS_IFACE
	MIPSSectionTypeContent      = MIPSSectionType(0x7000000c) // SHT_MIPS_CONTENT
	MIPSSectionTypeOptions      = MIPSSectionType(0x7000000d) // SHT_MIPS_OPTIONS
	MIPSSectionTypeShdr         = MIPSSectionType(0x70000010) // SHT_MIPS_SHDR
	MIPSSectionTypeFDesc        = MIPSSectionType(0x70000011) // SHT_MIPS_FDESC
	MIPSSectionTypeExtSym       = MIPSSectionType(0x70000012) // SHT_MIPS_EXTSYM
	MIPSSectionTypeDense        = MIPSSectionType(0x70000013) // SHT_MIPS_DENSE
	MIPSSectionTypePDesc        = MIPSSectionType(0x70000014) // SHT_MIPS_PDESC
	MIPSSectionTypeLocSym       = MIPSSectionType(0x70000015) // SHT_MIPS_LOCSYM
	MIPSSectionTypeAuxSym       = MIPSSectionType(0x70000016) // SHT_MIPS_AUXSYM
	MIPSSectionTypeOptSym       = MIPSSectionType(0x70000017) // SHT_MIPS_OPTSYM
	MIPSSectionTypeLocStr       = MIPSSectionType(0x70000018) // SHT_MIPS_LOCSTR
	MIPSSectionTypeLine         = MIPSSectionType(0x70000019) // SHT_MIPS_LINE
	MIPSSectionTypeRfdDesc      = MIPSSectionType(0x7000001a) // SHT_MIPS_RFDESC
	MIPSSectionTypeDeltaSym     = MIPSSectionType(0x7000001b) // SHT_MIPS_DELTASYM
	MIPSSectionTypeDeltaInst    = MIPSSectionType(0x7000001c) // SHT_MIPS_DELTAINST
	MIPSSectionTypeDeltaClass   = MIPSSectionType(0x7000001d) // SHT_MIPS_DELTACLASS
	MIPSSectionTypeDwarf        = MIPSSectionType(0x7000001e) // SHT_MIPS_DWARF
	MIPSSectionTypeDeltaDecl    = MIPSSectionType(0x7000001f) // SHT_MIPS_DELTADECL
	MIPSSectionTypeSymbolLib    = MIPSSectionType(0x70000020) // SHT_MIPS_SYMBOL_LIB
	MIPSSectionTypeEvents       = MIPSSectionType(0x70000021) // SHT_MIPS_EVENTS
	MIPSSectionTypeTranslate    = MIPSSectionType(0x70000022) // SHT_MIPS_TRANSLATE
	MIPSSectionTypePixie        = MIPSSectionType(0x70000023) // SHT_MIPS_PIXIE
	MIPSSectionTypeXLate        = MIPSSectionType(0x70000024) // SHT_MIPS_XLATE
	MIPSSectionTypeXLateDebug   = MIPSSectionType(0x70000025) // SHT_MIPS_XLATE_DEBUG
	MIPSSectionTypeWhirl        = MIPSSectionType(0x70000026) // SHT_MIPS_WHIRL
	MIPSSectionTypeEhRegion     = MIPSSectionType(0x70000027) // SHT_MIPS_EH_REGION
	MIPSSectionTypeXLateOld     = MIPSSectionType(0x70000028) // SHT_MIPS_XLATE_OLD
	MIPSSectionTypePdrException = MIPSSectionType(0x70000029) // SHT_MIPS_PDR_EXCEPTION
	MIPSSectionTypeAbiFlags     = MIPSSectionType(0x7000002a) // SHT_MIPS_ABIFLAGS
	MIPSSectionTypeXHash        = MIPSSectionType(0x7000002b) // SHT_MIPS_XHASH
)

var mipsSectionTypeNames = map[MIPSSectionType]string{
	MIPSSectionTypeLibList:      "LibList",
	MIPSSectionTypeConflict:     "Conflict",
	MIPSSectionTypeGpTable:      "GpTable",
	MIPSSectionTypeUCode:        "UCode",
	MIPSSectionTypeDebug:        "Debug",
	MIPSSectionTypeRegInfo:      "RegInfo",
	MIPSSectionTypePackage:      "Package",
	MIPSSectionTypePackSym:      "PackSym",
	MIPSSectionTypeRelD:         "RelD",
	MIPSSectionTypeIFace:        "IFace",
	MIPSSectionTypeContent:      "Content",
	MIPSSectionTypeOptions:      "Options",
	MIPSSectionTypeShdr:         "Shdr",
	MIPSSectionTypeFDesc:        "FDesc",
	MIPSSectionTypeExtSym:       "ExtSym",
	MIPSSectionTypeDense:        "Dense",
	MIPSSectionTypePDesc:        "PDesc",
	MIPSSectionTypeLocSym:       "LocSym",
	MIPSSectionTypeAuxSym:       "AuxSym",
	MIPSSectionTypeOptSym:       "OptSym",
	MIPSSectionTypeLocStr:       "LocStr",
	MIPSSectionTypeLine:         "Line",
	MIPSSectionTypeRfdDesc:      "RfdDesc",
	MIPSSectionTypeDeltaSym:     "DeltaSym",
	MIPSSectionTypeDeltaInst:    "DeltaInst",
	MIPSSectionTypeDeltaClass:   "DeltaClass",
	MIPSSectionTypeDwarf:        "Dwarf",
	MIPSSectionTypeDeltaDecl:    "DeltaDecl",
	MIPSSectionTypeSymbolLib:    "SymbolLib",
	MIPSSectionTypeEvents:       "Events",
	MIPSSectionTypeTranslate:    "Translate",
	MIPSSectionTypePixie:        "Pixie",
	MIPSSectionTypeXLate:        "XLate",
	MIPSSectionTypeXLateDebug:   "XLateDebug",
	MIPSSectionTypeWhirl:        "Whirl",
	MIPSSectionTypeEhRegion:     "EhRegion",
	MIPSSectionTypeXLateOld:     "XLateOld",
	MIPSSectionTypePdrException: "PdrException",
	MIPSSectionTypeAbiFlags:     "AbiFlags",
	MIPSSectionTypeXHash:        "XHash",
}

func (stype MIPSSectionType) String() string {
	name, ok := mipsSectionTypeNames[stype]
	if !ok {
		return fmt.Sprintf("MIPSSectionTypeUnknown(0x%08x)", uint32(stype))
	}
	return "MIPSSectionType" + name
}

func (stype MIPSSectionType) TypeValue() Word {
	return Word(stype)
}

func DecodeMIPSSectionHeaderType(
	value Word,
	config *Config,
) (MIPSSectionType, error) {
	if !config.machineIs(
		MachineArchitectureMIPS,
		MachineArchitectureMIPSRS3LE,
		MachineArchitectureMIPSX) {

		return 0, InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitectureMIPS,
			},
			Value: uint32(value),
		}
	}

	stype := MIPSSectionType(value)
	_, ok := mipsSectionTypeNames[stype]
	if !ok {
		return 0, InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   uint32(value),
		}
	}
	return stype, nil
}

// MIPSHeaderFlag is one decoded element of a mips e_flags word: either a
// single-bit base flag or one of the masked composite fields.
type MIPSHeaderFlag interface {
	fmt.Stringer

	isMIPSHeaderFlag()
}

type MIPSBaseFlag Word

const (
	MIPSBaseFlagNoReorder       = MIPSBaseFlag(0x00000001) // EF_MIPS_NOREORDER
	MIPSBaseFlagPic             = MIPSBaseFlag(0x00000002) // EF_MIPS_PIC
	MIPSBaseFlagCPic            = MIPSBaseFlag(0x00000004) // EF_MIPS_CPIC
	MIPSBaseFlagXGot            = MIPSBaseFlag(0x00000008) // EF_MIPS_XGOT
	MIPSBaseFlagUCode           = MIPSBaseFlag(0x00000010) // EF_MIPS_UCODE
	MIPSBaseFlagAbi2            = MIPSBaseFlag(0x00000020) // EF_MIPS_ABI2
	MIPSBaseFlagAbiOn32         = MIPSBaseFlag(0x00000040) // EF_MIPS_ABI_ON32
	MIPSBaseFlagOptionsFirst    = MIPSBaseFlag(0x00000080) // EF_MIPS_OPTIONS_FIRST
	MIPSBaseFlagMode32Bit       = MIPSBaseFlag(0x00000100) // EF_MIPS_32BITMODE
	MIPSBaseFlagFloatingPoint64 = MIPSBaseFlag(0x00000200) // EF_MIPS_FP64
	MIPSBaseFlagNotANumber2008  = MIPSBaseFlag(0x00000400) // EF_MIPS_NAN2008
)

var mipsBaseFlagNames = []struct {
	flag MIPSBaseFlag
	name string
}{
	{MIPSBaseFlagNoReorder, "NoReorder"},
	{MIPSBaseFlagPic, "Pic"},
	{MIPSBaseFlagCPic, "CPic"},
	{MIPSBaseFlagXGot, "XGot"},
	{MIPSBaseFlagUCode, "UCode"},
	{MIPSBaseFlagAbi2, "Abi2"},
	{MIPSBaseFlagAbiOn32, "AbiOn32"},
	{MIPSBaseFlagOptionsFirst, "OptionsFirst"},
	{MIPSBaseFlagMode32Bit, "Mode32Bit"},
	{MIPSBaseFlagFloatingPoint64, "FloatingPoint64"},
	{MIPSBaseFlagNotANumber2008, "NotANumber2008"},
}

func (flag MIPSBaseFlag) isMIPSHeaderFlag() {}

func (flag MIPSBaseFlag) String() string {
	for _, entry := range mipsBaseFlagNames {
		if entry.flag == flag {
			return "MIPSBaseFlag" + entry.name
		}
	}
	return fmt.Sprintf("MIPSBaseFlagUnknown(0x%08x)", Word(flag))
}

const (
	mipsArchitectureMask = Word(0xf0000000) // EF_MIPS_ARCH
	mipsExtensionMask    = Word(0x0f000000) // EF_MIPS_ARCH_ASE
	mipsABIMask          = Word(0x0000f000) // EF_MIPS_ABI
	mipsMachineMask      = Word(0x00ff0000) // EF_MIPS_MACH
)

type MIPSArchitecture Word

const (
	MIPSArchitectureMips1    = MIPSArchitecture(0x00000000) // EF_MIPS_ARCH_1
	MIPSArchitectureMips2    = MIPSArchitecture(0x10000000) // EF_MIPS_ARCH_2
	MIPSArchitectureMips3    = MIPSArchitecture(0x20000000) // EF_MIPS_ARCH_3
	MIPSArchitectureMips4    = MIPSArchitecture(0x30000000) // EF_MIPS_ARCH_4
	MIPSArchitectureMips5    = MIPSArchitecture(0x40000000) // EF_MIPS_ARCH_5
	MIPSArchitectureMips32   = MIPSArchitecture(0x50000000) // EF_MIPS_ARCH_32
	MIPSArchitectureMips64   = MIPSArchitecture(0x60000000) // EF_MIPS_ARCH_64
	MIPSArchitectureMips32R2 = MIPSArchitecture(0x70000000) // EF_MIPS_ARCH_32R2
	MIPSArchitectureMips64R2 = MIPSArchitecture(0x80000000) // EF_MIPS_ARCH_64R2
	MIPSArchitectureMips32R6 = MIPSArchitecture(0x90000000) // EF_MIPS_ARCH_32R6
	MIPSArchitectureMips64R6 = MIPSArchitecture(0xa0000000) // EF_MIPS_ARCH_64R6
)

var mipsArchitectureNames = map[MIPSArchitecture]string{
	MIPSArchitectureMips1:    "Mips1",
	MIPSArchitectureMips2:    "Mips2",
	MIPSArchitectureMips3:    "Mips3",
	MIPSArchitectureMips4:    "Mips4",
	MIPSArchitectureMips5:    "Mips5",
	MIPSArchitectureMips32:   "Mips32",
	MIPSArchitectureMips64:   "Mips64",
	MIPSArchitectureMips32R2: "Mips32R2",
	MIPSArchitectureMips64R2: "Mips64R2",
	MIPSArchitectureMips32R6: "Mips32R6",
	MIPSArchitectureMips64R6: "Mips64R6",
}

func (arch MIPSArchitecture) isMIPSHeaderFlag() {}

func (arch MIPSArchitecture) String() string {
	name, ok := mipsArchitectureNames[arch]
	if !ok {
		return fmt.Sprintf("MIPSArchitectureUnknown(0x%08x)", Word(arch))
	}
	return "MIPSArchitecture" + name
}

type MIPSExtension Word

const (
	MIPSExtensionMdmx      = MIPSExtension(0x08000000) // EF_MIPS_ARCH_ASE_MDMX
	MIPSExtensionMips16    = MIPSExtension(0x04000000) // EF_MIPS_ARCH_ASE_M16
	MIPSExtensionMicroMips = MIPSExtension(0x02000000) // EF_MIPS_ARCH_ASE_MICROMIPS
)

func (extension MIPSExtension) isMIPSHeaderFlag() {}

func (extension MIPSExtension) String() string {
	switch extension {
	case MIPSExtensionMdmx:
		return "MIPSExtensionMdmx"
	case MIPSExtensionMips16:
		return "MIPSExtensionMips16"
	case MIPSExtensionMicroMips:
		return "MIPSExtensionMicroMips"
	default:
		return fmt.Sprintf("MIPSExtensionUnknown(0x%08x)", Word(extension))
	}
}

type MIPSABI Word

const (
	MIPSABIO32    = MIPSABI(0x00001000) // EF_MIPS_ABI_O32
	MIPSABIO64    = MIPSABI(0x00002000) // EF_MIPS_ABI_O64
	MIPSABIEABI32 = MIPSABI(0x00003000) // EF_MIPS_ABI_EABI32
	MIPSABIEABI64 = MIPSABI(0x00004000) // EF_MIPS_ABI_EABI64
)

func (abi MIPSABI) isMIPSHeaderFlag() {}

func (abi MIPSABI) String() string {
	switch abi {
	case MIPSABIO32:
		return "MIPSABIO32"
	case MIPSABIO64:
		return "MIPSABIO64"
	case MIPSABIEABI32:
		return "MIPSABIEABI32"
	case MIPSABIEABI64:
		return "MIPSABIEABI64"
	default:
		return fmt.Sprintf("MIPSABIUnknown(0x%08x)", Word(abi))
	}
}

type MIPSMachine Word

const (
	MIPSMachine3900     = MIPSMachine(0x00810000) // EF_MIPS_MACH_3900
	MIPSMachine4010     = MIPSMachine(0x00820000) // EF_MIPS_MACH_4010
	MIPSMachine4100     = MIPSMachine(0x00830000) // EF_MIPS_MACH_4100
	MIPSMachineAllegrex = MIPSMachine(0x00840000) // EF_MIPS_MACH_ALLEGREX
	MIPSMachine4650     = MIPSMachine(0x00850000) // EF_MIPS_MACH_4650
	MIPSMachine4120     = MIPSMachine(0x00870000) // EF_MIPS_MACH_4120
	MIPSMachine4111     = MIPSMachine(0x00880000) // EF_MIPS_MACH_4111
	MIPSMachineSB1      = MIPSMachine(0x008a0000) // EF_MIPS_MACH_SB1
	MIPSMachineOcteon   = MIPSMachine(0x008b0000) // EF_MIPS_MACH_OCTEON
	MIPSMachineXLR      = MIPSMachine(0x008c0000) // EF_MIPS_MACH_XLR
	MIPSMachineOcteon2  = MIPSMachine(0x008d0000) // EF_MIPS_MACH_OCTEON2
	MIPSMachineOcteon3  = MIPSMachine(0x008e0000) // EF_MIPS_MACH_OCTEON3
	MIPSMachine5400     = MIPSMachine(0x00910000) // EF_MIPS_MACH_5400
	MIPSMachine5900     = MIPSMachine(0x00920000) // EF_MIPS_MACH_5900
	MIPSMachineIAMR2    = MIPSMachine(0x00930000) // EF_MIPS_MACH_IAMR2
	MIPSMachine5500     = MIPSMachine(0x00980000) // EF_MIPS_MACH_5500
	MIPSMachine9000     = MIPSMachine(0x00990000) // EF_MIPS_MACH_9000
	MIPSMachineLS2E     = MIPSMachine(0x00a00000) // EF_MIPS_MACH_LS2E
	MIPSMachineLS2F     = MIPSMachine(0x00a10000) // EF_MIPS_MACH_LS2F
	MIPSMachineGS464    = MIPSMachine(0x00a20000) // EF_MIPS_MACH_GS464
	MIPSMachineGS464E   = MIPSMachine(0x00a30000) // EF_MIPS_MACH_GS464E
	MIPSMachineGS264E   = MIPSMachine(0x00a40000) // EF_MIPS_MACH_GS264E
)

var mipsMachineNames = map[MIPSMachine]string{
	MIPSMachine3900:     "3900",
	MIPSMachine4010:     "4010",
	MIPSMachine4100:     "4100",
	MIPSMachineAllegrex: "Allegrex",
	MIPSMachine4650:     "4650",
	MIPSMachine4120:     "4120",
	MIPSMachine4111:     "4111",
	MIPSMachineSB1:      "SB1",
	MIPSMachineOcteon:   "Octeon",
	MIPSMachineXLR:      "XLR",
	MIPSMachineOcteon2:  "Octeon2",
	MIPSMachineOcteon3:  "Octeon3",
	MIPSMachine5400:     "5400",
	MIPSMachine5900:     "5900",
	MIPSMachineIAMR2:    "IAMR2",
	MIPSMachine5500:     "5500",
	MIPSMachine9000:     "9000",
	MIPSMachineLS2E:     "LS2E",
	MIPSMachineLS2F:     "LS2F",
	MIPSMachineGS464:    "GS464",
	MIPSMachineGS464E:   "GS464E",
	MIPSMachineGS264E:   "GS264E",
}

func (machine MIPSMachine) isMIPSHeaderFlag() {}

func (machine MIPSMachine) String() string {
	name, ok := mipsMachineNames[machine]
	if !ok {
		return fmt.Sprintf("MIPSMachineUnknown(0x%08x)", Word(machine))
	}
	return "MIPSMachine" + name
}

// MIPSHeaderFlags is a decoded mips e_flags word. The decoded flag sequence
// lists base single-bit flags first, then the non-zero masked composite
// fields. The raw word is retained and written back verbatim on encode, so
// reserved bits survive a round trip.
type MIPSHeaderFlags struct {
	Flags []MIPSHeaderFlag

	value Word
}

func (flags *MIPSHeaderFlags) RawValue() Word {
	return flags.value
}

func DecodeMIPSHeaderFlags(
	value Word,
	config *Config,
) (*MIPSHeaderFlags, error) {
	decoded := []MIPSHeaderFlag{}
	for _, entry := range mipsBaseFlagNames {
		if value&Word(entry.flag) != 0 {
			decoded = append(decoded, entry.flag)
		}
	}

	if masked := value & mipsArchitectureMask; masked != 0 {
		arch := MIPSArchitecture(masked)
		_, ok := mipsArchitectureNames[arch]
		if !ok {
			return nil, InvalidHeaderFlagForMachineError{
				Machine: config.Machine,
				Value:   uint32(value),
			}
		}
		decoded = append(decoded, arch)
	}

	if masked := value & mipsExtensionMask; masked != 0 {
		extension := MIPSExtension(masked)
		switch extension {
		case MIPSExtensionMdmx, MIPSExtensionMips16, MIPSExtensionMicroMips:
		default:
			return nil, InvalidHeaderFlagForMachineError{
				Machine: config.Machine,
				Value:   uint32(value),
			}
		}
		decoded = append(decoded, extension)
	}

	if masked := value & mipsABIMask; masked != 0 {
		abi := MIPSABI(masked)
		switch abi {
		case MIPSABIO32, MIPSABIO64, MIPSABIEABI32, MIPSABIEABI64:
		default:
			return nil, InvalidHeaderFlagForMachineError{
				Machine: config.Machine,
				Value:   uint32(value),
			}
		}
		decoded = append(decoded, abi)
	}

	if masked := value & mipsMachineMask; masked != 0 {
		machine := MIPSMachine(masked)
		_, ok := mipsMachineNames[machine]
		if !ok {
			return nil, InvalidHeaderFlagForMachineError{
				Machine: config.Machine,
				Value:   uint32(value),
			}
		}
		decoded = append(decoded, machine)
	}

	return &MIPSHeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

// Encode writes back the retained raw word, never a reconstruction from the
// decoded flag sequence.
func (flags *MIPSHeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode mips header flags: %w", err)
	}
	return nil
}
