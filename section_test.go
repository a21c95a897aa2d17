package elf

import (
	"bytes"
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type SectionSuite struct{}

func TestSection(t *testing.T) {
	suite.RunTests(t, &SectionSuite{})
}

func configFor(
	machine MachineArchitecture,
	osAbi OperatingSystemABI,
) *Config {
	config := NewConfig()
	config.setMachine(machine)
	config.setOSABI(osAbi)
	return config
}

func (SectionSuite) TestEntrySizes(t *testing.T) {
	expect.Equal(t, 40, Format32LE.SectionHeaderEntrySize())
	expect.Equal(t, 40, Format32BE.SectionHeaderEntrySize())
	expect.Equal(t, 64, Format64LE.SectionHeaderEntrySize())
	expect.Equal(t, 64, Format64BE.SectionHeaderEntrySize())
}

func (SectionSuite) TestGenericTypes(t *testing.T) {
	config := NewConfig()

	stype, err := DecodeSectionHeaderType(2, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, SectionTypeSymbolTable, stype)

	stype, err = DecodeSectionHeaderType(19, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, SectionTypeRelativeRelocation, stype)

	// 12 and 13 are unassigned gaps between the generic constants.
	stype, err = DecodeSectionHeaderType(12, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, OtherSectionType(12), stype)
}

func (SectionSuite) TestRangeBoundaries(t *testing.T) {
	config := NewConfig()

	stype, err := DecodeSectionHeaderType(0x5fffffff, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, OtherSectionType(0x5fffffff), stype)

	// No os abi decoded yet, so the os range falls through to the catch-all.
	stype, err = DecodeSectionHeaderType(0x60000000, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](
		t,
		OtherOperatingSystemSpecificSectionType(0x60000000),
		stype)

	// Same for the processor range without a machine.
	stype, err = DecodeSectionHeaderType(0x70000000, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, OtherProcessorSpecificSectionType(0x70000000), stype)

	stype, err = DecodeSectionHeaderType(0x7fffffff, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, OtherProcessorSpecificSectionType(0x7fffffff), stype)

	stype, err = DecodeSectionHeaderType(0x80000000, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, OtherSectionType(0x80000000), stype)
}

func (SectionSuite) TestGNUTypes(t *testing.T) {
	config := configFor(
		MachineArchitectureX86_64,
		OperatingSystemABILinux)

	stype, err := DecodeSectionHeaderType(0x6ffffffd, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, GNUSectionTypeVerDef, stype)

	stype, err = DecodeSectionHeaderType(0x6ffffff6, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, GNUSectionTypeHash, stype)

	_, err = DecodeSectionHeaderType(0x60000042, config)
	expect.Equal[error](
		t,
		InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   0x60000042,
		},
		err)
}

// The symbol versioning values are shared between the gnu and sun tables;
// the configured os abi picks the winner.
func (SectionSuite) TestSUNTypes(t *testing.T) {
	config := configFor(
		MachineArchitectureSPARCV9,
		OperatingSystemABISolaris)

	stype, err := DecodeSectionHeaderType(0x6ffffffd, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, SUNSectionTypeVerDef, stype)

	stype, err = DecodeSectionHeaderType(0x6fffffff, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, SUNSectionTypeVerSym, stype)
}

// Machine gating applies before value matching: a processor range value
// belonging to another architecture's table errors on the machine, not the
// value.
func (SectionSuite) TestMachineGating(t *testing.T) {
	config := configFor(
		MachineArchitecturePPC,
		OperatingSystemABIUnixSystemV)

	// 0x7fffffff is the only powerpc section type; 0x70000001 is not in the
	// powerpc table.
	_, err := DecodeSectionHeaderType(0x70000001, config)
	expect.Equal[error](
		t,
		InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   0x70000001,
		},
		err)

	stype, err := DecodeSectionHeaderType(0x7fffffff, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, PPCSectionTypeOrdered, stype)
}

func (SectionSuite) TestPerMachineTables(t *testing.T) {
	config := configFor(
		MachineArchitectureARM,
		OperatingSystemABIUnixSystemV)
	stype, err := DecodeSectionHeaderType(0x70000001, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, ARM32SectionTypeExIdx, stype)

	config = configFor(
		MachineArchitectureAARCH64,
		OperatingSystemABIUnixSystemV)
	stype, err = DecodeSectionHeaderType(0x70000003, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, AARCH64SectionTypeAttributes, stype)

	config = configFor(
		MachineArchitectureI386,
		OperatingSystemABIUnixSystemV)
	stype, err = DecodeSectionHeaderType(0x70000001, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, I386SectionTypeUnwind, stype)

	config = configFor(
		MachineArchitectureX86_64,
		OperatingSystemABIUnixSystemV)
	stype, err = DecodeSectionHeaderType(0x70000001, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, X86_64SectionTypeUnwind, stype)

	config = configFor(
		MachineArchitectureRISCV,
		OperatingSystemABIUnixSystemV)
	stype, err = DecodeSectionHeaderType(0x70000003, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, RISCVSectionTypeAttributes, stype)

	config = configFor(
		MachineArchitectureSPARC,
		OperatingSystemABIUnixSystemV)
	stype, err = DecodeSectionHeaderType(0x70000000, config)
	expect.Nil(t, err)
	expect.Equal[SectionHeaderType](t, SPARCSectionTypeGotData, stype)
}

func (SectionSuite) TestSectionFlagsString(t *testing.T) {
	expect.Equal(t, "-----------", SectionFlags(0).String())
	expect.Equal(
		t,
		"wa---------",
		(SectionContainsWritableData | SectionOccupiesMemory).String())
	expect.Equal(
		t,
		"-a-------t-",
		(SectionOccupiesMemory | SectionContainsTLSData).String())
}

func (SectionSuite) TestEntryRoundTrip64(t *testing.T) {
	data := []byte{
		0x1b, 0x00, 0x00, 0x00, // name
		0x01, 0x00, 0x00, 0x00, // type (progbits)
		0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // flags (alloc | exec)
		0x00, 0x10, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, // address
		0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // offset
		0x45, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // size
		0x00, 0x00, 0x00, 0x00, // link
		0x00, 0x00, 0x00, 0x00, // info
		0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // addralign
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // entsize
	}

	entry, err := DecodeSectionHeaderEntry(
		bytes.NewReader(data),
		Format64LE,
		NewConfig())
	expect.Nil(t, err)

	expect.Equal(t, Word(0x1b), entry.Name)
	expect.Equal[SectionHeaderType](t, SectionTypeProgramDefinedInfo, entry.Type)
	expect.Equal(
		t,
		SectionOccupiesMemory|SectionContainsInstructions,
		entry.Flags)
	expect.Equal(t, Address(0x401000), entry.Address)
	expect.Equal(t, Offset(0x1000), entry.Offset)
	expect.Equal(t, Word64(0x245), entry.Size)
	expect.Equal(t, Word64(0x10), entry.AddressAlign)

	buffer := &bytes.Buffer{}
	err = entry.Encode(buffer, Format64LE)
	expect.Nil(t, err)
	expect.Equal(t, data, buffer.Bytes())
}

func (SectionSuite) TestEntryRoundTrip32(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x07, // name
		0x00, 0x00, 0x00, 0x03, // type (strtab)
		0x00, 0x00, 0x00, 0x20, // flags (strings)
		0x00, 0x00, 0x00, 0x00, // address
		0x00, 0x00, 0x20, 0x00, // offset
		0x00, 0x00, 0x00, 0x51, // size
		0x00, 0x00, 0x00, 0x00, // link
		0x00, 0x00, 0x00, 0x00, // info
		0x00, 0x00, 0x00, 0x01, // addralign
		0x00, 0x00, 0x00, 0x00, // entsize
	}

	entry, err := DecodeSectionHeaderEntry(
		bytes.NewReader(data),
		Format32BE,
		NewConfig())
	expect.Nil(t, err)

	expect.Equal(t, Word(7), entry.Name)
	expect.Equal[SectionHeaderType](t, SectionTypeStringTable, entry.Type)
	expect.Equal(t, SectionContainsStrings, entry.Flags)
	expect.Equal(t, Offset(0x2000), entry.Offset)
	expect.Equal(t, Word64(0x51), entry.Size)

	buffer := &bytes.Buffer{}
	err = entry.Encode(buffer, Format32BE)
	expect.Nil(t, err)
	expect.Equal(t, data, buffer.Bytes())
}

func (SectionSuite) TestEntryEncodePreservesRawType(t *testing.T) {
	entry := &SectionHeaderEntry{
		Type: OtherProcessorSpecificSectionType(0x7000abcd),
	}

	buffer := &bytes.Buffer{}
	err := entry.Encode(buffer, Format64LE)
	expect.Nil(t, err)

	decoded, err := Format64LE.DecodeWord(
		bytes.NewReader(buffer.Bytes()[4:8]),
		NewConfig())
	expect.Nil(t, err)
	expect.Equal(t, Word(0x7000abcd), decoded)
}
