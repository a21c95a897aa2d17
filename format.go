// Based on linux's man page, elf.h, golang's debug/elf package,
// and the elf 1.2 spec.
package elf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EI_CLASS
type Class byte

const (
	ClassNone = Class(0) // ELFCLASSNONE
	Class32   = Class(1) // ELFCLASS32
	Class64   = Class(2) // ELFCLASS64
)

func (class Class) String() string {
	switch class {
	case ClassNone:
		return "ClassNone"
	case Class32:
		return "Class32"
	case Class64:
		return "Class64"
	default:
		return fmt.Sprintf("ClassUnknown(%d)", class)
	}
}

// EI_DATA
type DataEncoding byte

const (
	DataEncodingNone                       = DataEncoding(0) // ELFDATANONE
	DataEncodingTwosComplementLittleEndian = DataEncoding(1) // ELFDATA2LSB
	DataEncodingTwosComplementBigEndian    = DataEncoding(2) // ELFDATA2MSB
)

func (encoding DataEncoding) String() string {
	switch encoding {
	case DataEncodingNone:
		return "DataEncodingNone"
	case DataEncodingTwosComplementLittleEndian:
		return "TwosComplementLittleEndian"
	case DataEncodingTwosComplementBigEndian:
		return "TwosComplementBigEndian"
	default:
		return fmt.Sprintf("DataEncodingUnknown(%d)", encoding)
	}
}

// Format selects one of the four concrete on-disk layouts (32/64-bit class
// crossed with little/big endian data encoding). Every class / encoding
// parameterized codec operation hangs off a Format value, and serialized
// sizes are plain functions of the tag.
type Format struct {
	Class        Class
	DataEncoding DataEncoding
}

var (
	Format32LE = Format{Class32, DataEncodingTwosComplementLittleEndian}
	Format32BE = Format{Class32, DataEncodingTwosComplementBigEndian}
	Format64LE = Format{Class64, DataEncodingTwosComplementLittleEndian}
	Format64BE = Format{Class64, DataEncodingTwosComplementBigEndian}
)

func (format Format) String() string {
	switch format {
	case Format32LE:
		return "Elf32LE"
	case Format32BE:
		return "Elf32BE"
	case Format64LE:
		return "Elf64LE"
	case Format64BE:
		return "Elf64BE"
	default:
		return fmt.Sprintf("FormatUnknown(%s, %s)", format.Class, format.DataEncoding)
	}
}

func (format Format) Valid() bool {
	return format.validate() == nil
}

func (format Format) validate() error {
	if format.Class != Class32 && format.Class != Class64 {
		return InvalidConstantClassError{Class: format.Class}
	}

	switch format.DataEncoding {
	case DataEncodingTwosComplementLittleEndian,
		DataEncodingTwosComplementBigEndian:
		return nil
	default:
		return InvalidConstantDataEncodingError{
			DataEncoding: format.DataEncoding,
		}
	}
}

func (format Format) byteOrder() binary.ByteOrder {
	if format.DataEncoding == DataEncodingTwosComplementBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Primitive on-disk value types. Each is stored at the widest native width
// needed across both classes; the Format controls how many bytes are read
// and written.
type (
	Byte               uint8
	HalfWord           uint16  // Elf64_Half / Elf32_Half
	Word               uint32  // Elf64_Word / Elf32_Word
	SignedWord         int32   // Elf64_Sword / Elf32_Sword
	ExtendedWord       uint64  // Elf64_Xword
	SignedExtendedWord int64   // Elf64_Sxword
	Address            uint64  // Elf64_Addr / Elf32_Addr
	Offset             uint64  // Elf64_Off / Elf32_Off
	SectionIndex       uint16  // Elf64_Section
	VersionSymbol      uint16  // Elf64_Versym
)

func (format Format) ByteSize() int          { return 1 }
func (format Format) HalfWordSize() int      { return 2 }
func (format Format) WordSize() int          { return 4 }
func (format Format) ExtendedWordSize() int  { return 8 }
func (format Format) SectionIndexSize() int  { return 2 }
func (format Format) VersionSymbolSize() int { return 2 }

func (format Format) AddressSize() int {
	if format.Class == Class32 {
		return 4
	}
	return 8
}

func (format Format) OffsetSize() int {
	return format.AddressSize()
}

// readExact fills buf from the stream. On failure, the io error is either
// returned or, when registered in the config's ignore set, suppressed with
// buf's remaining bytes left zeroed.
func readExact(reader io.Reader, buf []byte, config *Config) error {
	_, err := io.ReadFull(reader, buf)
	if err != nil {
		ioErr := IoError{Kind: err}
		if config.Ignored(ioErr) {
			return nil
		}
		return ioErr
	}
	return nil
}

func writeExact(writer io.Writer, buf []byte) error {
	_, err := writer.Write(buf)
	if err != nil {
		return IoError{Kind: err}
	}
	return nil
}

// DecodeByte reads a single byte. Bytes have no class or encoding and may
// be decoded with any Format, valid or not.
func (format Format) DecodeByte(
	reader io.Reader,
	config *Config,
) (Byte, error) {
	var buf [1]byte
	err := readExact(reader, buf[:], config)
	if err != nil {
		return 0, err
	}
	return Byte(buf[0]), nil
}

func (format Format) EncodeByte(writer io.Writer, value Byte) error {
	return writeExact(writer, []byte{byte(value)})
}

func (format Format) DecodeHalfWord(
	reader io.Reader,
	config *Config,
) (HalfWord, error) {
	err := format.validate()
	if err != nil {
		return 0, err
	}

	var buf [2]byte
	err = readExact(reader, buf[:], config)
	if err != nil {
		return 0, err
	}
	return HalfWord(format.byteOrder().Uint16(buf[:])), nil
}

func (format Format) EncodeHalfWord(writer io.Writer, value HalfWord) error {
	err := format.validate()
	if err != nil {
		return err
	}

	var buf [2]byte
	format.byteOrder().PutUint16(buf[:], uint16(value))
	return writeExact(writer, buf[:])
}

func (format Format) DecodeWord(
	reader io.Reader,
	config *Config,
) (Word, error) {
	err := format.validate()
	if err != nil {
		return 0, err
	}

	var buf [4]byte
	err = readExact(reader, buf[:], config)
	if err != nil {
		return 0, err
	}
	return Word(format.byteOrder().Uint32(buf[:])), nil
}

func (format Format) EncodeWord(writer io.Writer, value Word) error {
	err := format.validate()
	if err != nil {
		return err
	}

	var buf [4]byte
	format.byteOrder().PutUint32(buf[:], uint32(value))
	return writeExact(writer, buf[:])
}

func (format Format) DecodeSignedWord(
	reader io.Reader,
	config *Config,
) (SignedWord, error) {
	value, err := format.DecodeWord(reader, config)
	if err != nil {
		return 0, err
	}
	return SignedWord(value), nil
}

func (format Format) EncodeSignedWord(
	writer io.Writer,
	value SignedWord,
) error {
	return format.EncodeWord(writer, Word(value))
}

func (format Format) DecodeExtendedWord(
	reader io.Reader,
	config *Config,
) (ExtendedWord, error) {
	err := format.validate()
	if err != nil {
		return 0, err
	}

	var buf [8]byte
	err = readExact(reader, buf[:], config)
	if err != nil {
		return 0, err
	}
	return ExtendedWord(format.byteOrder().Uint64(buf[:])), nil
}

func (format Format) EncodeExtendedWord(
	writer io.Writer,
	value ExtendedWord,
) error {
	err := format.validate()
	if err != nil {
		return err
	}

	var buf [8]byte
	format.byteOrder().PutUint64(buf[:], uint64(value))
	return writeExact(writer, buf[:])
}

func (format Format) DecodeSignedExtendedWord(
	reader io.Reader,
	config *Config,
) (SignedExtendedWord, error) {
	value, err := format.DecodeExtendedWord(reader, config)
	if err != nil {
		return 0, err
	}
	return SignedExtendedWord(value), nil
}

func (format Format) EncodeSignedExtendedWord(
	writer io.Writer,
	value SignedExtendedWord,
) error {
	return format.EncodeExtendedWord(writer, ExtendedWord(value))
}

// DecodeAddress reads 4 bytes for class 32 (zero-extended in memory) and
// 8 bytes for class 64.
func (format Format) DecodeAddress(
	reader io.Reader,
	config *Config,
) (Address, error) {
	err := format.validate()
	if err != nil {
		return 0, err
	}

	if format.Class == Class32 {
		var buf [4]byte
		err = readExact(reader, buf[:], config)
		if err != nil {
			return 0, err
		}
		return Address(format.byteOrder().Uint32(buf[:])), nil
	}

	var buf [8]byte
	err = readExact(reader, buf[:], config)
	if err != nil {
		return 0, err
	}
	return Address(format.byteOrder().Uint64(buf[:])), nil
}

// EncodeAddress writes 4 bytes for class 32 and 8 bytes for class 64. The
// stored 64-bit value is truncated on a class 32 write.
func (format Format) EncodeAddress(writer io.Writer, value Address) error {
	err := format.validate()
	if err != nil {
		return err
	}

	if format.Class == Class32 {
		var buf [4]byte
		format.byteOrder().PutUint32(buf[:], uint32(value))
		return writeExact(writer, buf[:])
	}

	var buf [8]byte
	format.byteOrder().PutUint64(buf[:], uint64(value))
	return writeExact(writer, buf[:])
}

func (format Format) DecodeOffset(
	reader io.Reader,
	config *Config,
) (Offset, error) {
	value, err := format.DecodeAddress(reader, config)
	if err != nil {
		return 0, err
	}
	return Offset(value), nil
}

func (format Format) EncodeOffset(writer io.Writer, value Offset) error {
	return format.EncodeAddress(writer, Address(value))
}

func (format Format) DecodeSectionIndex(
	reader io.Reader,
	config *Config,
) (SectionIndex, error) {
	value, err := format.DecodeHalfWord(reader, config)
	if err != nil {
		return 0, err
	}
	return SectionIndex(value), nil
}

func (format Format) EncodeSectionIndex(
	writer io.Writer,
	value SectionIndex,
) error {
	return format.EncodeHalfWord(writer, HalfWord(value))
}

func (format Format) DecodeVersionSymbol(
	reader io.Reader,
	config *Config,
) (VersionSymbol, error) {
	value, err := format.DecodeHalfWord(reader, config)
	if err != nil {
		return 0, err
	}
	return VersionSymbol(value), nil
}

func (format Format) EncodeVersionSymbol(
	writer io.Writer,
	value VersionSymbol,
) error {
	return format.EncodeHalfWord(writer, HalfWord(value))
}

// newErrorContext captures the field that was just consumed (the size bytes
// preceding the current stream position) for error reporting. The stream
// position is restored before returning.
func newErrorContext(reader io.ReadSeeker, size int) ErrorContext {
	pos, err := reader.Seek(0, io.SeekCurrent)
	if err != nil {
		return ErrorContext{}
	}

	start := pos - int64(size)
	if start < 0 {
		start = 0
	}

	context := ErrorContext{Offset: start}

	_, err = reader.Seek(start, io.SeekStart)
	if err != nil {
		return context
	}

	buf := make([]byte, pos-start)
	n, _ := io.ReadFull(reader, buf)
	context.Bytes = buf[:n]

	_, _ = reader.Seek(pos, io.SeekStart)
	return context
}
