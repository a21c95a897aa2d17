package elf

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type SuperHSuite struct{}

func TestSuperH(t *testing.T) {
	suite.RunTests(t, &SuperHSuite{})
}

func superhConfig() *Config {
	return configFor(
		MachineArchitectureSuperH,
		OperatingSystemABIUnixSystemV)
}

func (SuperHSuite) TestHeaderFlags(t *testing.T) {
	flags, err := DecodeSuperHHeaderFlags(0x9, superhConfig())
	expect.Nil(t, err)
	expect.Equal(t, []SuperHMachine{SuperHMachineSH4}, flags.Flags)
	expect.Equal(t, Word(0x9), flags.RawValue())
}

func (SuperHSuite) TestHeaderFlagsZeroMachine(t *testing.T) {
	flags, err := DecodeSuperHHeaderFlags(0, superhConfig())
	expect.Nil(t, err)
	expect.Equal(t, 0, len(flags.Flags))
}

// 7, 8, 10, 14 and 15 are gaps in the machine field.
func (SuperHSuite) TestHeaderFlagsUnknownMachine(t *testing.T) {
	config := superhConfig()

	for _, value := range []Word{7, 8, 10, 14, 15} {
		_, err := DecodeSuperHHeaderFlags(value, config)
		expect.Equal[error](
			t,
			InvalidHeaderFlagForMachineError{
				Machine: config.Machine,
				Value:   uint32(value),
			},
			err)
	}
}

// Bits above the machine mask are reserved and pass through the raw word.
func (SuperHSuite) TestHeaderFlagsReservedBits(t *testing.T) {
	flags, err := DecodeSuperHHeaderFlags(0xffffffe3, superhConfig())
	expect.Nil(t, err)
	expect.Equal(t, []SuperHMachine{SuperHMachineSH3}, flags.Flags)
	expect.Equal(t, Word(0xffffffe3), flags.RawValue())
}
