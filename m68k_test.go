package elf

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type M68KSuite struct{}

func TestM68K(t *testing.T) {
	suite.RunTests(t, &M68KSuite{})
}

func (M68KSuite) TestHeaderFlags(t *testing.T) {
	config := configFor(
		MachineArchitectureM68K,
		OperatingSystemABIUnixSystemV)

	flags, err := DecodeM68KHeaderFlags(0x00810000, config)
	expect.Nil(t, err)
	expect.Equal(t, []M68KHeaderFlag{M68KHeaderFlagCpu32}, flags.Flags)
	expect.Equal(t, Word(0x00810000), flags.RawValue())

	flags, err = DecodeM68KHeaderFlags(0, config)
	expect.Nil(t, err)
	expect.Equal(t, 0, len(flags.Flags))

	// The cpu32 marker is a multi-bit pattern; a partial match is not the
	// marker.
	flags, err = DecodeM68KHeaderFlags(0x00800000, config)
	expect.Nil(t, err)
	expect.Equal(t, 0, len(flags.Flags))
}
