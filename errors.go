package elf

import (
	"errors"
	"fmt"
)

// ErrorContext records where in the stream a decode failure occurred, along
// with the raw bytes of the offending field. Ignore-set membership compares
// contexts by offset only; the captured bytes are for diagnostics.
type ErrorContext struct {
	Offset int64
	Bytes  []byte
}

func (context ErrorContext) String() string {
	return fmt.Sprintf("offset %d (% x)", context.Offset, context.Bytes)
}

// IoError wraps an underlying stream read/write failure.
type IoError struct {
	Kind error
}

func (err IoError) Error() string {
	return fmt.Sprintf("failed to access stream: %v", err.Kind)
}

func (err IoError) Unwrap() error {
	return err.Kind
}

func (err IoError) Is(target error) bool {
	other, ok := target.(IoError)
	return ok && errors.Is(err.Kind, other.Kind)
}

type InvalidClassError struct {
	Class byte
}

func (err InvalidClassError) Error() string {
	return fmt.Sprintf("invalid class: %d", err.Class)
}

type InvalidDataEncodingError struct {
	Encoding byte
}

func (err InvalidDataEncodingError) Error() string {
	return fmt.Sprintf("invalid data encoding: %d", err.Encoding)
}

type InvalidIdentifierVersionError struct {
	Version byte
}

func (err InvalidIdentifierVersionError) Error() string {
	return fmt.Sprintf("invalid identifier version: %d", err.Version)
}

type InvalidOperatingSystemABIError struct {
	OSABI byte
}

func (err InvalidOperatingSystemABIError) Error() string {
	return fmt.Sprintf("invalid operating system abi: %d", err.OSABI)
}

type InvalidFileTypeError struct {
	Context ErrorContext
}

func (err InvalidFileTypeError) Error() string {
	return fmt.Sprintf("invalid file type at %s", err.Context)
}

func (err InvalidFileTypeError) Is(target error) bool {
	other, ok := target.(InvalidFileTypeError)
	return ok && err.Context.Offset == other.Context.Offset
}

type InvalidMachineError struct {
	Context ErrorContext
}

func (err InvalidMachineError) Error() string {
	return fmt.Sprintf("invalid machine architecture at %s", err.Context)
}

func (err InvalidMachineError) Is(target error) bool {
	other, ok := target.(InvalidMachineError)
	return ok && err.Context.Offset == other.Context.Offset
}

type InvalidFormatVersionError struct {
	Context ErrorContext
}

func (err InvalidFormatVersionError) Error() string {
	return fmt.Sprintf("invalid format version at %s", err.Context)
}

func (err InvalidFormatVersionError) Is(target error) bool {
	other, ok := target.(InvalidFormatVersionError)
	return ok && err.Context.Offset == other.Context.Offset
}

// InvalidSectionHeaderTypeError indicates a section header type value that
// fell in a reserved range but matched no entry in the table selected by the
// current configuration.
type InvalidSectionHeaderTypeError struct {
	Machine *MachineArchitecture
	Value   uint32
}

func (err InvalidSectionHeaderTypeError) Error() string {
	return fmt.Sprintf(
		"invalid section header type 0x%08x for machine %s",
		err.Value,
		formatMachine(err.Machine))
}

// InvalidMachineForSectionHeaderTypeError indicates a section header type
// value that belongs to an architecture table which disagrees with the
// configured machine.
type InvalidMachineForSectionHeaderTypeError struct {
	Machine          *MachineArchitecture
	ExpectedMachines []MachineArchitecture
	Value            uint32
}

func (err InvalidMachineForSectionHeaderTypeError) Error() string {
	return fmt.Sprintf(
		"section header type 0x%08x requires machine %v, configured machine is %s",
		err.Value,
		err.ExpectedMachines,
		formatMachine(err.Machine))
}

// InvalidOperatingSystemABIForSectionHeaderTypeError is the os/abi analogue
// of InvalidMachineForSectionHeaderTypeError.
type InvalidOperatingSystemABIForSectionHeaderTypeError struct {
	OSABI         *OperatingSystemABI
	ExpectedOSABI []OperatingSystemABI
	Value         uint32
}

func (err InvalidOperatingSystemABIForSectionHeaderTypeError) Error() string {
	return fmt.Sprintf(
		"section header type 0x%08x requires os abi %v, configured os abi is %s",
		err.Value,
		err.ExpectedOSABI,
		formatOSABI(err.OSABI))
}

// InvalidHeaderFlagForMachineError indicates a masked header flag sub-field
// whose value matches no known entry for the configured machine.
type InvalidHeaderFlagForMachineError struct {
	Machine *MachineArchitecture
	Value   uint32
}

func (err InvalidHeaderFlagForMachineError) Error() string {
	return fmt.Sprintf(
		"invalid header flags 0x%08x for machine %s",
		err.Value,
		formatMachine(err.Machine))
}

type InvalidClassEncodingPairError struct {
	Class        Class
	DataEncoding DataEncoding
}

func (err InvalidClassEncodingPairError) Error() string {
	return fmt.Sprintf(
		"invalid class / data encoding pair: (%s, %s)",
		err.Class,
		err.DataEncoding)
}

// InvalidConstantClassError indicates a primitive codec call with a Format
// whose class tag is not Class32 or Class64.
type InvalidConstantClassError struct {
	Class Class
}

func (err InvalidConstantClassError) Error() string {
	return fmt.Sprintf("invalid constant class: %s", err.Class)
}

// InvalidConstantDataEncodingError indicates a primitive codec call with a
// Format whose encoding tag is not little or big endian.
type InvalidConstantDataEncodingError struct {
	DataEncoding DataEncoding
}

func (err InvalidConstantDataEncodingError) Error() string {
	return fmt.Sprintf("invalid constant data encoding: %s", err.DataEncoding)
}

func formatMachine(machine *MachineArchitecture) string {
	if machine == nil {
		return "unset"
	}
	return machine.String()
}

func formatOSABI(osAbi *OperatingSystemABI) string {
	if osAbi == nil {
		return "unset"
	}
	return osAbi.String()
}
