// Based on linux's man page, elf.h, golang's debug/elf package,
// and the elf 1.2 spec.
package elf

import (
	"fmt"
	"io"
)

// Elf is a decoded object file header together with the concrete format it
// was decoded under.
type Elf struct {
	Format Format
	Header *Header
}

// DecodeElf reads the identification block to determine the file's class
// and data encoding, then decodes the full header from the start of the
// stream under the selected format.
//
// When the identification's class / encoding pair is invalid and the
// corresponding InvalidClassEncodingPairError is registered as ignorable,
// decoding falls back to the config's default pair instead of failing.
func DecodeElf(reader io.ReadSeeker, config *Config) (*Elf, error) {
	_, err := reader.Seek(0, io.SeekStart)
	if err != nil {
		return nil, IoError{Kind: err}
	}

	identifier, err := DecodeHeaderIdentifier(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode elf: %w", err)
	}

	_, err = reader.Seek(0, io.SeekStart)
	if err != nil {
		return nil, IoError{Kind: err}
	}

	format := Format{
		Class:        identifier.Class,
		DataEncoding: identifier.DataEncoding,
	}
	if !format.Valid() {
		pairErr := InvalidClassEncodingPairError{
			Class:        identifier.Class,
			DataEncoding: identifier.DataEncoding,
		}
		if !config.Ignored(pairErr) {
			return nil, pairErr
		}
		format = config.defaultFormat()
	}

	header, err := DecodeHeader(reader, format, config)
	if err != nil {
		return nil, err
	}

	return &Elf{
		Format: format,
		Header: header,
	}, nil
}

func (elf *Elf) Encode(writer io.Writer) error {
	return elf.Header.Encode(writer, elf.Format)
}
