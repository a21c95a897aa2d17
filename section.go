// Based on linux's man page, elf.h, golang's debug/elf package,
// and the elf 1.2 spec.
package elf

import (
	"fmt"
	"io"
)

// Reserved sh_type ranges. Values in the os range are interpreted per the
// configured os abi; values in the processor range are interpreted per the
// configured machine.
const (
	firstOperatingSystemSectionType = Word(0x60000000) // SHT_LOOS
	firstProcessorSectionType       = Word(0x70000000) // SHT_LOPROC
	lastProcessorSectionType        = Word(0x7fffffff) // SHT_HIPROC
)

// sh_type (architecture independent values)
type SectionType uint32

const (
	SectionTypeNull                   = SectionType(0)  // SHT_NULL
	SectionTypeProgramDefinedInfo     = SectionType(1)  // SHT_PROGBITS
	SectionTypeSymbolTable            = SectionType(2)  // SHT_SYMTAB
	SectionTypeStringTable            = SectionType(3)  // SHT_STRTAB
	SectionTypeRelocationWithAddends  = SectionType(4)  // SHT_RELA
	SectionTypeSymbolHashTable        = SectionType(5)  // SHT_HASH
	SectionTypeDynamic                = SectionType(6)  // SHT_DYNAMIC
	SectionTypeNote                   = SectionType(7)  // SHT_NOTE
	SectionTypeNoSpace                = SectionType(8)  // SHT_NOBITS
	SectionTypeRelocationNoAddends    = SectionType(9)  // SHT_REL
	SectionTypeSectionHeaderLibrary   = SectionType(10) // SHT_SHLIB
	SectionTypeDynamicSymbolTable     = SectionType(11) // SHT_DYNSYM
	SectionTypeInitializerArray       = SectionType(14) // SHT_INIT_ARRAY
	SectionTypeFinalizerArray         = SectionType(15) // SHT_FINI_ARRAY
	SectionTypePreInitializerArray    = SectionType(16) // SHT_PREINIT_ARRAY
	SectionTypeGroup                  = SectionType(17) // SHT_GROUP
	SectionTypeExtendedSectionIndices = SectionType(18) // SHT_SYMTAB_SHNDX
	SectionTypeRelativeRelocation     = SectionType(19) // SHT_RELR
)

func (stype SectionType) String() string {
	switch stype {
	case SectionTypeNull:
		return "SectionTypeNull"
	case SectionTypeProgramDefinedInfo:
		return "SectionTypeProgramDefinedInfo"
	case SectionTypeSymbolTable:
		return "SectionTypeSymbolTable"
	case SectionTypeStringTable:
		return "SectionTypeStringTable"
	case SectionTypeRelocationWithAddends:
		return "SectionTypeRelocationWithAddends"
	case SectionTypeSymbolHashTable:
		return "SectionTypeSymbolHashTable"
	case SectionTypeDynamic:
		return "SectionTypeDynamic"
	case SectionTypeNote:
		return "SectionTypeNote"
	case SectionTypeNoSpace:
		return "SectionTypeNoSpace"
	case SectionTypeRelocationNoAddends:
		return "SectionTypeRelocationNoAddends"
	case SectionTypeSectionHeaderLibrary:
		return "SectionTypeSectionHeaderLibrary"
	case SectionTypeDynamicSymbolTable:
		return "SectionTypeDynamicSymbolTable"
	case SectionTypeInitializerArray:
		return "SectionTypeInitializerArray"
	case SectionTypeFinalizerArray:
		return "SectionTypeFinalizerArray"
	case SectionTypePreInitializerArray:
		return "SectionTypePreInitializerArray"
	case SectionTypeGroup:
		return "SectionTypeGroup"
	case SectionTypeExtendedSectionIndices:
		return "SectionTypeExtendedSectionIndices"
	case SectionTypeRelativeRelocation:
		return "SectionTypeRelativeRelocation"
	default:
		return fmt.Sprintf("SectionTypeUnknown(%d)", uint32(stype))
	}
}

func (stype SectionType) TypeValue() Word {
	return Word(stype)
}

// sh_flags
type SectionFlags uint64

const (
	SectionContainsWritableData         = SectionFlags(0x1)   // SHF_WRITE
	SectionOccupiesMemory               = SectionFlags(0x2)   // SHF_ALLOC
	SectionContainsInstructions         = SectionFlags(0x4)   // SHF_EXECINSTR
	SectionMayBeMerged                  = SectionFlags(0x10)  // SHF_MERGE
	SectionContainsStrings              = SectionFlags(0x20)  // SHF_STRINGS
	SectionInfoHoldsSectionIndex        = SectionFlags(0x40)  // SHF_INFO_LINK
	SectionRequiresSpecialOrdering      = SectionFlags(0x80)  // SHF_LINK_ORDER
	SectionRequiresOsSpecificProcessing = SectionFlags(0x100) // SHF_OS_NONCONFORMING
	SectionIsGroupMember                = SectionFlags(0x200) // SHF_GROUP
	SectionContainsTLSData              = SectionFlags(0x400) // SHF_TLS
	SectionIsCompressed                 = SectionFlags(0x800) // SHF_COMPRESSED
)

func (flags SectionFlags) String() string {
	result := make([]byte, 11)
	for i := 0; i < 11; i++ {
		result[i] = '-'
	}

	if flags&SectionContainsWritableData != 0 {
		result[0] = 'w'
	}
	if flags&SectionOccupiesMemory != 0 {
		result[1] = 'a'
	}
	if flags&SectionContainsInstructions != 0 {
		result[2] = 'x'
	}
	if flags&SectionMayBeMerged != 0 {
		result[3] = 'm'
	}
	if flags&SectionContainsStrings != 0 {
		result[4] = 's'
	}
	if flags&SectionInfoHoldsSectionIndex != 0 {
		result[5] = 'i'
	}
	if flags&SectionRequiresSpecialOrdering != 0 {
		result[6] = 'l'
	}
	if flags&SectionRequiresOsSpecificProcessing != 0 {
		result[7] = 'o'
	}
	if flags&SectionIsGroupMember != 0 {
		result[8] = 'g'
	}
	if flags&SectionContainsTLSData != 0 {
		result[9] = 't'
	}
	if flags&SectionIsCompressed != 0 {
		result[10] = 'c'
	}

	return string(result)
}

// SectionHeaderType is the decoded sh_type field. Concrete implementations
// are the architecture independent SectionType, one type per architecture /
// os table, and the three catch-alls holding raw reserved values.
type SectionHeaderType interface {
	fmt.Stringer

	// TypeValue returns the raw sh_type word to write back on encode.
	TypeValue() Word
}

// OtherSectionType holds a raw sh_type value outside every known constant
// set and outside the reserved os / processor ranges.
type OtherSectionType Word

func (stype OtherSectionType) String() string {
	return fmt.Sprintf("OtherSectionType(0x%08x)", Word(stype))
}

func (stype OtherSectionType) TypeValue() Word {
	return Word(stype)
}

// OtherOperatingSystemSpecificSectionType holds a raw sh_type value in the
// os reserved range when no os table applies to the configured os abi.
type OtherOperatingSystemSpecificSectionType Word

func (stype OtherOperatingSystemSpecificSectionType) String() string {
	return fmt.Sprintf(
		"OtherOperatingSystemSpecificSectionType(0x%08x)",
		Word(stype))
}

func (stype OtherOperatingSystemSpecificSectionType) TypeValue() Word {
	return Word(stype)
}

// OtherProcessorSpecificSectionType holds a raw sh_type value in the
// processor reserved range when no architecture table applies to the
// configured machine.
type OtherProcessorSpecificSectionType Word

func (stype OtherProcessorSpecificSectionType) String() string {
	return fmt.Sprintf(
		"OtherProcessorSpecificSectionType(0x%08x)",
		Word(stype))
}

func (stype OtherProcessorSpecificSectionType) TypeValue() Word {
	return Word(stype)
}

// DecodeSectionHeaderType classifies a raw sh_type word. Architecture
// independent constants match first; then the os reserved range
// [0x60000000, 0x70000000) dispatches on the configured os abi, the
// processor reserved range [0x70000000, 0x80000000) dispatches on the
// configured machine, and anything left is Other.
func DecodeSectionHeaderType(
	value Word,
	config *Config,
) (SectionHeaderType, error) {
	stype := SectionType(value)
	switch stype {
	case SectionTypeNull,
		SectionTypeProgramDefinedInfo,
		SectionTypeSymbolTable,
		SectionTypeStringTable,
		SectionTypeRelocationWithAddends,
		SectionTypeSymbolHashTable,
		SectionTypeDynamic,
		SectionTypeNote,
		SectionTypeNoSpace,
		SectionTypeRelocationNoAddends,
		SectionTypeSectionHeaderLibrary,
		SectionTypeDynamicSymbolTable,
		SectionTypeInitializerArray,
		SectionTypeFinalizerArray,
		SectionTypePreInitializerArray,
		SectionTypeGroup,
		SectionTypeExtendedSectionIndices,
		SectionTypeRelativeRelocation:
		return stype, nil
	}

	if value >= firstOperatingSystemSectionType &&
		value < firstProcessorSectionType {

		switch {
		case config.osAbiIs(OperatingSystemABILinux):
			return DecodeGNUSectionHeaderType(value, config)
		case config.osAbiIs(OperatingSystemABISolaris):
			return DecodeSUNSectionHeaderType(value, config)
		default:
			return OtherOperatingSystemSpecificSectionType(value), nil
		}
	}

	if value >= firstProcessorSectionType &&
		value <= lastProcessorSectionType {

		switch {
		case config.machineIs(MachineArchitectureAARCH64):
			return DecodeAARCH64SectionHeaderType(value, config)
		case config.machineIs(MachineArchitectureARM):
			return DecodeARM32SectionHeaderType(value, config)
		case config.machineIs(MachineArchitectureI386):
			return DecodeI386SectionHeaderType(value, config)
		case config.machineIs(MachineArchitectureX86_64):
			return DecodeX86_64SectionHeaderType(value, config)
		case config.machineIs(
			MachineArchitectureMIPS,
			MachineArchitectureMIPSRS3LE,
			MachineArchitectureMIPSX):
			return DecodeMIPSSectionHeaderType(value, config)
		case config.machineIs(MachineArchitecturePARISC):
			return DecodePARISCSectionHeaderType(value, config)
		case config.machineIs(MachineArchitecturePPC):
			return DecodePPCSectionHeaderType(value, config)
		case config.machineIs(MachineArchitectureRISCV):
			return DecodeRISCVSectionHeaderType(value, config)
		case config.machineIs(
			MachineArchitectureSPARC,
			MachineArchitectureSPARC32Plus,
			MachineArchitectureSPARCV9):
			return DecodeSPARCSectionHeaderType(value, config)
		default:
			return OtherProcessorSpecificSectionType(value), nil
		}
	}

	return OtherSectionType(value), nil
}

// SectionHeaderEntry is one decoded section header. Field widths on disk
// follow the format's class (flags, size, address alignment and entry size
// are words for class 32 and extended words for class 64); in memory every
// field uses the widest width.
type SectionHeaderEntry struct {
	// Index into the section name string table. Resolving the index to a
	// string is the caller's concern.
	Name Word

	Type  SectionHeaderType
	Flags SectionFlags

	Address Address
	Offset  Offset

	Size Word64

	Link Word
	Info Word

	AddressAlign Word64
	EntrySize    Word64
}

// Word64 holds a field that is word-sized for class 32 and extended-word
// sized for class 64.
type Word64 uint64

// SectionHeaderEntrySize returns the on-disk entry size for the format: 40
// bytes for class 32, 64 bytes for class 64.
func (format Format) SectionHeaderEntrySize() int {
	return format.WordSize()*4 +
		format.AddressSize() +
		format.OffsetSize() +
		format.classWordSize()*4
}

// classWordSize is the width of word-or-extended-word fields.
func (format Format) classWordSize() int {
	if format.Class == Class32 {
		return format.WordSize()
	}
	return format.ExtendedWordSize()
}

func (format Format) decodeClassWord(
	reader io.Reader,
	config *Config,
) (Word64, error) {
	if format.Class == Class32 {
		value, err := format.DecodeWord(reader, config)
		if err != nil {
			return 0, err
		}
		return Word64(value), nil
	}

	value, err := format.DecodeExtendedWord(reader, config)
	if err != nil {
		return 0, err
	}
	return Word64(value), nil
}

func (format Format) encodeClassWord(writer io.Writer, value Word64) error {
	if format.Class == Class32 {
		return format.EncodeWord(writer, Word(value))
	}
	return format.EncodeExtendedWord(writer, ExtendedWord(value))
}

// DecodeSectionHeaderEntry decodes one section header. The type field fans
// out through DecodeSectionHeaderType using the config's machine and os abi.
func DecodeSectionHeaderEntry(
	reader io.ReadSeeker,
	format Format,
	config *Config,
) (*SectionHeaderEntry, error) {
	name, err := format.DecodeWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section name: %w", err)
	}

	typeValue, err := format.DecodeWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section type: %w", err)
	}
	sectionType, err := DecodeSectionHeaderType(typeValue, config)
	if err != nil {
		return nil, err
	}

	flags, err := format.decodeClassWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section flags: %w", err)
	}

	address, err := format.DecodeAddress(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section address: %w", err)
	}

	offset, err := format.DecodeOffset(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section offset: %w", err)
	}

	size, err := format.decodeClassWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section size: %w", err)
	}

	link, err := format.DecodeWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section link: %w", err)
	}

	info, err := format.DecodeWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section info: %w", err)
	}

	addressAlign, err := format.decodeClassWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to decode section address alignment: %w",
			err)
	}

	entrySize, err := format.decodeClassWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section entry size: %w", err)
	}

	return &SectionHeaderEntry{
		Name:         name,
		Type:         sectionType,
		Flags:        SectionFlags(flags),
		Address:      address,
		Offset:       offset,
		Size:         size,
		Link:         link,
		Info:         info,
		AddressAlign: addressAlign,
		EntrySize:    entrySize,
	}, nil
}

func (entry *SectionHeaderEntry) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, entry.Name)
	if err != nil {
		return fmt.Errorf("failed to encode section name: %w", err)
	}

	err = format.EncodeWord(writer, entry.Type.TypeValue())
	if err != nil {
		return fmt.Errorf("failed to encode section type: %w", err)
	}

	err = format.encodeClassWord(writer, Word64(entry.Flags))
	if err != nil {
		return fmt.Errorf("failed to encode section flags: %w", err)
	}

	err = format.EncodeAddress(writer, entry.Address)
	if err != nil {
		return fmt.Errorf("failed to encode section address: %w", err)
	}

	err = format.EncodeOffset(writer, entry.Offset)
	if err != nil {
		return fmt.Errorf("failed to encode section offset: %w", err)
	}

	err = format.encodeClassWord(writer, entry.Size)
	if err != nil {
		return fmt.Errorf("failed to encode section size: %w", err)
	}

	err = format.EncodeWord(writer, entry.Link)
	if err != nil {
		return fmt.Errorf("failed to encode section link: %w", err)
	}

	err = format.EncodeWord(writer, entry.Info)
	if err != nil {
		return fmt.Errorf("failed to encode section info: %w", err)
	}

	err = format.encodeClassWord(writer, entry.AddressAlign)
	if err != nil {
		return fmt.Errorf(
			"failed to encode section address alignment: %w",
			err)
	}

	err = format.encodeClassWord(writer, entry.EntrySize)
	if err != nil {
		return fmt.Errorf("failed to encode section entry size: %w", err)
	}

	return nil
}
