package elf

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
	"gopkg.in/yaml.v3"
)

type ElfSuite struct{}

func TestElf(t *testing.T) {
	suite.RunTests(t, &ElfSuite{})
}

func (ElfSuite) TestDecode(t *testing.T) {
	elf, err := DecodeElf(
		bytes.NewReader(minimalHeader64LE()),
		NewConfig())
	expect.Nil(t, err)

	expect.Equal(t, Format64LE, elf.Format)
	expect.Equal(t, FileTypeExecutable, elf.Header.Type)
	expect.Equal(t, MachineArchitectureX86_64, elf.Header.Machine)
}

// Identification selects the format; a header re-encoded under each of the
// four formats decodes back under that same format.
func (ElfSuite) TestFormatDispatch(t *testing.T) {
	base, err := DecodeElf(
		bytes.NewReader(minimalHeader64LE()),
		NewConfig())
	expect.Nil(t, err)

	for _, format := range allFormats {
		base.Header.Identifier.Class = format.Class
		base.Header.Identifier.DataEncoding = format.DataEncoding
		base.Header.HeaderSize = HalfWord(format.HeaderSize())

		buffer := &bytes.Buffer{}
		err = base.Header.Encode(buffer, format)
		expect.Nil(t, err)
		expect.Equal(t, format.HeaderSize(), buffer.Len())

		decoded, err := DecodeElf(
			bytes.NewReader(buffer.Bytes()),
			NewConfig())
		expect.Nil(t, err)
		expect.Equal(t, format, decoded.Format)
		expect.Equal(t, FileTypeExecutable, decoded.Header.Type)
		expect.Equal(t, MachineArchitectureX86_64, decoded.Header.Machine)
	}
}

func (ElfSuite) TestInvalidClass(t *testing.T) {
	data := minimalHeader64LE()
	data[4] = 0x03

	_, err := DecodeElf(bytes.NewReader(data), NewConfig())

	classErr := InvalidClassError{}
	expect.True(t, errors.As(err, &classErr))
	expect.Equal(t, byte(3), classErr.Class)
}

// An unspecified class / encoding pair fails by default; with the pair
// registered as ignorable, decoding proceeds under the config's defaults.
func (ElfSuite) TestDefaultFormatFallback(t *testing.T) {
	data := []byte{
		0x7f, 'E', 'L', 'F',
		0x00, 0x00, 0x01, 0x00, // class and encoding unspecified
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x01, // type (relocatable, big endian)
		0x00, 0x14, // machine (powerpc, big endian)
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x34,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
	}

	_, err := DecodeElf(bytes.NewReader(data), NewConfig())
	expect.Equal[error](
		t,
		InvalidClassEncodingPairError{
			Class:        ClassNone,
			DataEncoding: DataEncodingNone,
		},
		err)

	config := NewConfig().Ignore(InvalidClassEncodingPairError{
		Class:        ClassNone,
		DataEncoding: DataEncodingNone,
	})
	config.DefaultClass = Class32
	config.DefaultDataEncoding = DataEncodingTwosComplementBigEndian

	elf, err := DecodeElf(bytes.NewReader(data), config)
	expect.Nil(t, err)
	expect.Equal(t, Format32BE, elf.Format)
	expect.Equal(t, FileTypeRelocatable, elf.Header.Type)
	expect.Equal(t, MachineArchitecturePPC, elf.Header.Machine)
}

func (ElfSuite) TestEncode(t *testing.T) {
	data := minimalHeader64LE()

	elf, err := DecodeElf(bytes.NewReader(data), NewConfig())
	expect.Nil(t, err)

	buffer := &bytes.Buffer{}
	err = elf.Encode(buffer)
	expect.Nil(t, err)
	expect.Equal(t, data, buffer.Bytes())
}

type headerFixture struct {
	Name       string `yaml:"name"`
	Bytes      string `yaml:"bytes"`
	Format     string `yaml:"format"`
	Type       string `yaml:"type"`
	Machine    string `yaml:"machine"`
	EntryPoint uint64 `yaml:"entry_point"`
	Flags      uint32 `yaml:"flags"`
}

func (fixture headerFixture) data(t *testing.T) []byte {
	compact := strings.Join(strings.Fields(fixture.Bytes), "")
	data, err := hex.DecodeString(compact)
	expect.Nil(t, err)
	return data
}

func (ElfSuite) TestManifest(t *testing.T) {
	content, err := os.ReadFile("testdata/headers.yaml")
	expect.Nil(t, err)

	fixtures := []headerFixture{}
	err = yaml.Unmarshal(content, &fixtures)
	expect.Nil(t, err)
	expect.True(t, len(fixtures) > 0)

	for _, fixture := range fixtures {
		data := fixture.data(t)

		elf, err := DecodeElf(bytes.NewReader(data), NewConfig())
		expect.Nil(t, err)

		expect.Equal(t, fixture.Format, elf.Format.String())
		expect.Equal(t, fixture.Type, elf.Header.Type.String())
		expect.Equal(t, fixture.Machine, elf.Header.Machine.String())
		expect.Equal(t, Word(fixture.Flags), elf.Header.Flags)

		if fixture.EntryPoint != 0 {
			expect.NotNil(t, elf.Header.EntryPoint)
			expect.Equal(
				t,
				Address(fixture.EntryPoint),
				*elf.Header.EntryPoint)
		}

		buffer := &bytes.Buffer{}
		err = elf.Encode(buffer)
		expect.Nil(t, err)
		expect.Equal(t, data, buffer.Bytes())
	}
}
