package elf

import (
	"fmt"
	"io"
	"strings"
)

// HeaderIdentifierSize is the on-disk size of the identification block.
const HeaderIdentifierSize = 16

// EI_VERSION
type IdentifierVersion byte

const (
	IdentifierVersionNone    = IdentifierVersion(0) // EV_NONE
	IdentifierVersionCurrent = IdentifierVersion(1) // EV_CURRENT
)

func (version IdentifierVersion) String() string {
	switch version {
	case IdentifierVersionNone:
		return "IdentifierVersionNone"
	case IdentifierVersionCurrent:
		return "IdentifierVersionCurrent"
	default:
		return fmt.Sprintf("IdentifierVersionUnknown(%d)", version)
	}
}

// EI_OSABI
type OperatingSystemABI byte

const (
	OperatingSystemABIUnixSystemV   = OperatingSystemABI(0)   // ELFOSABI_NONE
	OperatingSystemABIHPUX          = OperatingSystemABI(1)   // ELFOSABI_HPUX
	OperatingSystemABINetBSD        = OperatingSystemABI(2)   // ELFOSABI_NETBSD
	OperatingSystemABILinux         = OperatingSystemABI(3)   // ELFOSABI_LINUX
	OperatingSystemABISolaris       = OperatingSystemABI(6)   // ELFOSABI_SOLARIS
	OperatingSystemABIAIX           = OperatingSystemABI(7)   // ELFOSABI_AIX
	OperatingSystemABIIRIX          = OperatingSystemABI(8)   // ELFOSABI_IRIX
	OperatingSystemABIFreeBSD       = OperatingSystemABI(9)   // ELFOSABI_FREEBSD
	OperatingSystemABITru64         = OperatingSystemABI(10)  // ELFOSABI_TRU64
	OperatingSystemABINovellModesto = OperatingSystemABI(11)  // ELFOSABI_MODESTO
	OperatingSystemABIOpenBSD       = OperatingSystemABI(12)  // ELFOSABI_OPENBSD
	OperatingSystemABIOpenVMS       = OperatingSystemABI(13)  // ELFOSABI_OPENVMS
	OperatingSystemABINonStopKernel = OperatingSystemABI(14)  // ELFOSABI_NSK
	OperatingSystemABIAROS          = OperatingSystemABI(15)  // ELFOSABI_AROS
	OperatingSystemABIFenixOS       = OperatingSystemABI(16)  // ELFOSABI_FENIXOS
	OperatingSystemABICloudABI      = OperatingSystemABI(17)  // ELFOSABI_CLOUDABI
	OperatingSystemABIOpenVOS       = OperatingSystemABI(18)  // ELFOSABI_OPENVOS
	OperatingSystemABIARMEABI       = OperatingSystemABI(64)  // ELFOSABI_ARM_AEABI
	OperatingSystemABIARMFDPIC      = OperatingSystemABI(65)  // ELFOSABI_ARM_FDPIC
	OperatingSystemABIARM           = OperatingSystemABI(97)  // ELFOSABI_ARM
	OperatingSystemABIStandalone    = OperatingSystemABI(255) // ELFOSABI_STANDALONE
)

var operatingSystemABINames = map[OperatingSystemABI]string{
	OperatingSystemABIUnixSystemV:   "UnixSystemV",
	OperatingSystemABIHPUX:          "HPUX",
	OperatingSystemABINetBSD:        "NetBSD",
	OperatingSystemABILinux:         "Linux",
	OperatingSystemABISolaris:       "Solaris",
	OperatingSystemABIAIX:           "AIX",
	OperatingSystemABIIRIX:          "IRIX",
	OperatingSystemABIFreeBSD:       "FreeBSD",
	OperatingSystemABITru64:         "Tru64",
	OperatingSystemABINovellModesto: "NovellModesto",
	OperatingSystemABIOpenBSD:       "OpenBSD",
	OperatingSystemABIOpenVMS:       "OpenVMS",
	OperatingSystemABINonStopKernel: "NonStopKernel",
	OperatingSystemABIAROS:          "AROS",
	OperatingSystemABIFenixOS:       "FenixOS",
	OperatingSystemABICloudABI:      "CloudABI",
	OperatingSystemABIOpenVOS:       "OpenVOS",
	OperatingSystemABIARMEABI:       "ARMEABI",
	OperatingSystemABIARMFDPIC:      "ARMFDPIC",
	OperatingSystemABIARM:           "ARM",
	OperatingSystemABIStandalone:    "Standalone",
}

func (osAbi OperatingSystemABI) String() string {
	name, ok := operatingSystemABINames[osAbi]
	if !ok {
		return fmt.Sprintf("OperatingSystemABIUnknown(%d)", byte(osAbi))
	}
	return "OperatingSystemABI" + name
}

// HeaderIdentifier is the 16-byte e_ident block at the start of every object
// file. It is always decoded byte by byte, with no regard to class or data
// encoding, since it is what specifies the class and data encoding of
// everything after it.
type HeaderIdentifier struct {
	// 0x7f 'E' 'L' 'F'. Preserved as read; content validation is a caller
	// concern.
	Magic [4]byte

	Class        Class
	DataEncoding DataEncoding
	Version      IdentifierVersion
	OSABI        OperatingSystemABI

	// Distinguishes incompatible versions of the abi named by OSABI. Zero
	// means unspecified.
	ABIVersion byte

	// Reserved bytes, preserved verbatim.
	Padding [7]byte
}

func DecodeHeaderIdentifier(
	reader io.Reader,
	config *Config,
) (*HeaderIdentifier, error) {
	var buf [HeaderIdentifierSize]byte
	err := readExact(reader, buf[:], config)
	if err != nil {
		return nil, fmt.Errorf("failed to read identification: %w", err)
	}

	identifier := &HeaderIdentifier{}
	copy(identifier.Magic[:], buf[0:4])

	switch Class(buf[4]) {
	case ClassNone, Class32, Class64:
		identifier.Class = Class(buf[4])
	default:
		return nil, InvalidClassError{Class: buf[4]}
	}

	switch DataEncoding(buf[5]) {
	case DataEncodingNone,
		DataEncodingTwosComplementLittleEndian,
		DataEncodingTwosComplementBigEndian:
		identifier.DataEncoding = DataEncoding(buf[5])
	default:
		return nil, InvalidDataEncodingError{Encoding: buf[5]}
	}

	switch IdentifierVersion(buf[6]) {
	case IdentifierVersionNone, IdentifierVersionCurrent:
		identifier.Version = IdentifierVersion(buf[6])
	default:
		return nil, InvalidIdentifierVersionError{Version: buf[6]}
	}

	_, ok := operatingSystemABINames[OperatingSystemABI(buf[7])]
	if !ok {
		return nil, InvalidOperatingSystemABIError{OSABI: buf[7]}
	}
	identifier.OSABI = OperatingSystemABI(buf[7])

	identifier.ABIVersion = buf[8]
	copy(identifier.Padding[:], buf[9:16])

	return identifier, nil
}

func (identifier *HeaderIdentifier) Encode(writer io.Writer) error {
	var buf [HeaderIdentifierSize]byte
	copy(buf[0:4], identifier.Magic[:])
	buf[4] = byte(identifier.Class)
	buf[5] = byte(identifier.DataEncoding)
	buf[6] = byte(identifier.Version)
	buf[7] = byte(identifier.OSABI)
	buf[8] = identifier.ABIVersion
	copy(buf[9:16], identifier.Padding[:])

	err := writeExact(writer, buf[:])
	if err != nil {
		return fmt.Errorf("failed to write identification: %w", err)
	}
	return nil
}

func (identifier *HeaderIdentifier) String() string {
	result := strings.Builder{}
	fmt.Fprintf(&result, "magic: % x\n", identifier.Magic)
	fmt.Fprintf(&result, "class: %s\n", identifier.Class)
	fmt.Fprintf(&result, "data encoding: %s\n", identifier.DataEncoding)
	fmt.Fprintf(&result, "version: %s\n", identifier.Version)
	fmt.Fprintf(&result, "os abi: %s\n", identifier.OSABI)
	fmt.Fprintf(&result, "abi version: %d\n", identifier.ABIVersion)
	fmt.Fprintf(&result, "padding: % x\n", identifier.Padding)
	return result.String()
}
