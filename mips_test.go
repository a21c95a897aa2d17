package elf

import (
	"bytes"
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type MIPSSuite struct{}

func TestMIPS(t *testing.T) {
	suite.RunTests(t, &MIPSSuite{})
}

func mipsConfig() *Config {
	return configFor(
		MachineArchitectureMIPS,
		OperatingSystemABIUnixSystemV)
}

func (MIPSSuite) TestSectionTypes(t *testing.T) {
	config := mipsConfig()

	stype, err := DecodeMIPSSectionHeaderType(0x70000006, config)
	expect.Nil(t, err)
	expect.Equal(t, MIPSSectionTypeRegInfo, stype)

	stype, err = DecodeMIPSSectionHeaderType(0x7000002b, config)
	expect.Nil(t, err)
	expect.Equal(t, MIPSSectionTypeXHash, stype)

	// 0x70000001 and 0x7000000a are gaps in the mips table.
	_, err = DecodeMIPSSectionHeaderType(0x70000001, config)
	expect.Equal[error](
		t,
		InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   0x70000001,
		},
		err)

	_, err = DecodeMIPSSectionHeaderType(0x7000000a, config)
	expect.Equal[error](
		t,
		InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   0x7000000a,
		},
		err)
}

func (MIPSSuite) TestSectionTypeMachineVariants(t *testing.T) {
	for _, machine := range []MachineArchitecture{
		MachineArchitectureMIPS,
		MachineArchitectureMIPSRS3LE,
		MachineArchitectureMIPSX,
	} {
		config := configFor(machine, OperatingSystemABIUnixSystemV)
		stype, err := DecodeMIPSSectionHeaderType(0x70000005, config)
		expect.Nil(t, err)
		expect.Equal(t, MIPSSectionTypeDebug, stype)
	}

	config := configFor(
		MachineArchitectureARM,
		OperatingSystemABIUnixSystemV)
	_, err := DecodeMIPSSectionHeaderType(0x70000005, config)
	expect.Equal[error](
		t,
		InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitectureMIPS,
			},
			Value: 0x70000005,
		},
		err)
}

func (MIPSSuite) TestHeaderFlags(t *testing.T) {
	// noreorder | pic | fp64 | mips2
	flags, err := DecodeMIPSHeaderFlags(0x10000203, mipsConfig())
	expect.Nil(t, err)

	expect.Equal(
		t,
		[]MIPSHeaderFlag{
			MIPSBaseFlagNoReorder,
			MIPSBaseFlagPic,
			MIPSBaseFlagFloatingPoint64,
			MIPSArchitectureMips2,
		},
		flags.Flags)

	expect.Equal(t, Word(0x10000203), flags.RawValue())

	buffer := &bytes.Buffer{}
	err = flags.Encode(buffer, Format32LE)
	expect.Nil(t, err)
	expect.Equal(t, []byte{0x03, 0x02, 0x00, 0x10}, buffer.Bytes())
}

func (MIPSSuite) TestHeaderFlagsComposites(t *testing.T) {
	// cpic | micromips | o32 | octeon | mips64r2
	flags, err := DecodeMIPSHeaderFlags(0x828b1004, mipsConfig())
	expect.Nil(t, err)

	expect.Equal(
		t,
		[]MIPSHeaderFlag{
			MIPSBaseFlagCPic,
			MIPSArchitectureMips64R2,
			MIPSExtensionMicroMips,
			MIPSABIO32,
			MIPSMachineOcteon,
		},
		flags.Flags)
	expect.Equal(t, Word(0x828b1004), flags.RawValue())
}

// A zero composite field contributes nothing to the decoded sequence.
func (MIPSSuite) TestHeaderFlagsZero(t *testing.T) {
	flags, err := DecodeMIPSHeaderFlags(0, mipsConfig())
	expect.Nil(t, err)
	expect.Equal(t, 0, len(flags.Flags))
	expect.Equal(t, Word(0), flags.RawValue())
}

func (MIPSSuite) TestHeaderFlagsInvalidComposites(t *testing.T) {
	config := mipsConfig()

	// 0xb0000000 is an unassigned architecture level.
	_, err := DecodeMIPSHeaderFlags(0xb0000000, config)
	expect.Equal[error](
		t,
		InvalidHeaderFlagForMachineError{
			Machine: config.Machine,
			Value:   0xb0000000,
		},
		err)

	// 0x01000000 is an unassigned extension bit.
	_, err = DecodeMIPSHeaderFlags(0x01000000, config)
	expect.Equal[error](
		t,
		InvalidHeaderFlagForMachineError{
			Machine: config.Machine,
			Value:   0x01000000,
		},
		err)

	// 0x00005000 is an unassigned abi value.
	_, err = DecodeMIPSHeaderFlags(0x00005000, config)
	expect.Equal[error](
		t,
		InvalidHeaderFlagForMachineError{
			Machine: config.Machine,
			Value:   0x00005000,
		},
		err)

	// 0x00860000 is a gap in the machine table.
	_, err = DecodeMIPSHeaderFlags(0x00860000, config)
	expect.Equal[error](
		t,
		InvalidHeaderFlagForMachineError{
			Machine: config.Machine,
			Value:   0x00860000,
		},
		err)
}

func (MIPSSuite) TestStrings(t *testing.T) {
	expect.Equal(t, "MIPSSectionTypeRegInfo", MIPSSectionTypeRegInfo.String())
	expect.Equal(t, "MIPSBaseFlagPic", MIPSBaseFlagPic.String())
	expect.Equal(t, "MIPSArchitectureMips32R2", MIPSArchitectureMips32R2.String())
	expect.Equal(t, "MIPSMachineOcteon3", MIPSMachineOcteon3.String())
	expect.Equal(
		t,
		"MIPSSectionTypeUnknown(0x70000001)",
		MIPSSectionType(0x70000001).String())
}
