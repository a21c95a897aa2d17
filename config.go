package elf

import (
	"errors"
)

// Config is a per-decode session object. It supplies the class / data
// encoding defaults used when identification is itself invalid, the set of
// errors to treat as non-fatal, and two slots written as decoding progresses
// (Machine once the header's machine field is decoded, OSABI once
// identification is decoded) which the architecture / os dispatch tables
// consult.
//
// A Config must not be shared across concurrent decode operations.
type Config struct {
	DefaultClass        Class
	DefaultDataEncoding DataEncoding

	// The machine architecture of the object currently being decoded.
	// nil until the header's machine field has been decoded.
	Machine *MachineArchitecture

	// The os abi of the object currently being decoded. nil until
	// identification has been decoded.
	OSABI *OperatingSystemABI

	ignored []error
}

func NewConfig() *Config {
	return &Config{
		DefaultClass:        Class64,
		DefaultDataEncoding: DataEncodingTwosComplementLittleEndian,
	}
}

// Ignore registers error values to treat as non-fatal. Membership is exact:
// errors carrying an ErrorContext match only at the registered offset.
func (config *Config) Ignore(errs ...error) *Config {
	config.ignored = append(config.ignored, errs...)
	return config
}

func (config *Config) Ignored(err error) bool {
	for _, candidate := range config.ignored {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}

func (config *Config) setMachine(machine MachineArchitecture) {
	config.Machine = &machine
}

func (config *Config) setOSABI(osAbi OperatingSystemABI) {
	config.OSABI = &osAbi
}

func (config *Config) machineIs(candidates ...MachineArchitecture) bool {
	if config.Machine == nil {
		return false
	}
	for _, candidate := range candidates {
		if *config.Machine == candidate {
			return true
		}
	}
	return false
}

func (config *Config) osAbiIs(candidates ...OperatingSystemABI) bool {
	if config.OSABI == nil {
		return false
	}
	for _, candidate := range candidates {
		if *config.OSABI == candidate {
			return true
		}
	}
	return false
}

func (config *Config) defaultFormat() Format {
	return Format{
		Class:        config.DefaultClass,
		DataEncoding: config.DefaultDataEncoding,
	}
}
