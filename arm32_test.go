package elf

import (
	"bytes"
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type ARM32Suite struct{}

func TestARM32(t *testing.T) {
	suite.RunTests(t, &ARM32Suite{})
}

func arm32Config() *Config {
	return configFor(
		MachineArchitectureARM,
		OperatingSystemABIUnixSystemV)
}

func (ARM32Suite) TestSectionTypes(t *testing.T) {
	config := arm32Config()

	stype, err := DecodeARM32SectionHeaderType(0x70000003, config)
	expect.Nil(t, err)
	expect.Equal(t, ARM32SectionTypeAttributes, stype)

	stype, err = DecodeARM32SectionHeaderType(0x70000005, config)
	expect.Nil(t, err)
	expect.Equal(t, ARM32SectionTypeOverlay, stype)

	_, err = DecodeARM32SectionHeaderType(0x70000006, config)
	expect.Equal[error](
		t,
		InvalidSectionHeaderTypeError{
			Machine: config.Machine,
			Value:   0x70000006,
		},
		err)
}

// abi v5 | hard float; the abi version and gcc bits always lead the decoded
// sequence. The gcc mask (0x00400fff) covers the float flag bits, so the
// hard float bit shows up both in the gcc field and as a base flag.
func (ARM32Suite) TestHeaderFlags(t *testing.T) {
	flags, err := DecodeARM32HeaderFlags(0x05000400, arm32Config())
	expect.Nil(t, err)

	expect.Equal(
		t,
		[]ARM32HeaderFlag{
			ARM32ABIVersion(5),
			ARM32GCCFlags(0x00000400),
			ARM32BaseFlagFloatHard,
		},
		flags.Flags)
	expect.Equal(t, Word(0x05000400), flags.RawValue())

	buffer := &bytes.Buffer{}
	err = flags.Encode(buffer, Format32LE)
	expect.Nil(t, err)
	expect.Equal(t, []byte{0x00, 0x04, 0x00, 0x05}, buffer.Bytes())
}

// The gcc field itself is zero only when no bit under the mask is set.
func (ARM32Suite) TestHeaderFlagsZeroGCCBits(t *testing.T) {
	flags, err := DecodeARM32HeaderFlags(0x05000000, arm32Config())
	expect.Nil(t, err)

	expect.Equal(
		t,
		[]ARM32HeaderFlag{
			ARM32ABIVersion(5),
			ARM32GCCFlags(0),
		},
		flags.Flags)
}

func (ARM32Suite) TestHeaderFlagsBe8AndGCCBits(t *testing.T) {
	flags, err := DecodeARM32HeaderFlags(0x05800a02, arm32Config())
	expect.Nil(t, err)

	expect.Equal(
		t,
		[]ARM32HeaderFlag{
			ARM32ABIVersion(5),
			ARM32GCCFlags(0x00000a02),
			ARM32BaseFlagFloatSoft,
			ARM32BaseFlagBe8,
		},
		flags.Flags)
}
