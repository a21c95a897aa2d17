package elf

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type S390Suite struct{}

func TestS390(t *testing.T) {
	suite.RunTests(t, &S390Suite{})
}

func (S390Suite) TestHeaderFlags(t *testing.T) {
	config := configFor(
		MachineArchitectureS390,
		OperatingSystemABIUnixSystemV)

	flags, err := DecodeS390HeaderFlags(0x1, config)
	expect.Nil(t, err)
	expect.Equal(t, []S390HeaderFlag{S390HeaderFlagHighGPRS}, flags.Flags)
	expect.Equal(t, Word(0x1), flags.RawValue())

	flags, err = DecodeS390HeaderFlags(0, config)
	expect.Nil(t, err)
	expect.Equal(t, 0, len(flags.Flags))
}

func (S390Suite) TestHeaderFlags64(t *testing.T) {
	config := configFor(
		MachineArchitectureS390,
		OperatingSystemABIUnixSystemV)

	flags, err := DecodeS390XHeaderFlags(0x1, config)
	expect.Nil(t, err)
	expect.Equal(t, []S390XHeaderFlag{S390XHeaderFlagHighGPRS}, flags.Flags)
	expect.Equal(t, Word(0x1), flags.RawValue())
}
