package elf

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type SPARCSuite struct{}

func TestSPARC(t *testing.T) {
	suite.RunTests(t, &SPARCSuite{})
}

func (SPARCSuite) TestSectionTypeMachineVariants(t *testing.T) {
	for _, machine := range []MachineArchitecture{
		MachineArchitectureSPARC,
		MachineArchitectureSPARC32Plus,
		MachineArchitectureSPARCV9,
	} {
		config := configFor(machine, OperatingSystemABISolaris)
		stype, err := DecodeSPARCSectionHeaderType(0x70000000, config)
		expect.Nil(t, err)
		expect.Equal(t, SPARCSectionTypeGotData, stype)
	}

	config := configFor(
		MachineArchitectureI386,
		OperatingSystemABISolaris)
	_, err := DecodeSPARCSectionHeaderType(0x70000000, config)
	expect.Equal[error](
		t,
		InvalidMachineForSectionHeaderTypeError{
			Machine: config.Machine,
			ExpectedMachines: []MachineArchitecture{
				MachineArchitectureSPARC,
				MachineArchitectureSPARC32Plus,
				MachineArchitectureSPARCV9,
			},
			Value: 0x70000000,
		},
		err)
}

func (SPARCSuite) TestHeaderFlags(t *testing.T) {
	config := configFor(
		MachineArchitectureSPARCV9,
		OperatingSystemABISolaris)

	// sun us1 | rmo
	flags, err := DecodeSPARCHeaderFlags(0x202, config)
	expect.Nil(t, err)
	expect.Equal(
		t,
		[]SPARCHeaderFlag{
			SPARCBaseFlagSunUS1,
			SPARCMemoryModelRMO,
		},
		flags.Flags)
	expect.Equal(t, Word(0x202), flags.RawValue())
}

// A zero memory model field is the tso default and is omitted from the
// decoded sequence.
func (SPARCSuite) TestHeaderFlagsZeroMemoryModel(t *testing.T) {
	config := configFor(
		MachineArchitectureSPARC32Plus,
		OperatingSystemABISolaris)

	flags, err := DecodeSPARCHeaderFlags(0x100, config)
	expect.Nil(t, err)
	expect.Equal(t, []SPARCHeaderFlag{SPARCBaseFlag32Plus}, flags.Flags)
}
