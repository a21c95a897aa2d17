package elf

import (
	"fmt"
	"io"
)

const superhMachineMask = Word(0x0000001f) // EF_SH_MACH_MASK

type SuperHMachine Word

const (
	SuperHMachineSH1           = SuperHMachine(1)  // EF_SH1
	SuperHMachineSH2           = SuperHMachine(2)  // EF_SH2
	SuperHMachineSH3           = SuperHMachine(3)  // EF_SH3
	SuperHMachineSHDSP         = SuperHMachine(4)  // EF_SH_DSP
	SuperHMachineSH3DSP        = SuperHMachine(5)  // EF_SH3_DSP
	SuperHMachineSH4ALDSP      = SuperHMachine(6)  // EF_SH4AL_DSP
	SuperHMachineSH4           = SuperHMachine(9)  // EF_SH4
	SuperHMachineSH2E          = SuperHMachine(11) // EF_SH2E
	SuperHMachineSH4A          = SuperHMachine(12) // EF_SH4A
	SuperHMachineSH2A          = SuperHMachine(13) // EF_SH2A
	SuperHMachineSH4NoFPU      = SuperHMachine(16) // EF_SH4_NOFPU
	SuperHMachineSH4ANoFPU     = SuperHMachine(17) // EF_SH4A_NOFPU
	SuperHMachineSH4NoMMUNoFPU = SuperHMachine(18) // EF_SH4_NOMMU_NOFPU
	SuperHMachineSH2ANoFPU     = SuperHMachine(19) // EF_SH2A_NOFPU
	SuperHMachineSH3NoMMU      = SuperHMachine(20) // EF_SH3_NOMMU
	SuperHMachineSH2ASH4NoFPU  = SuperHMachine(21) // EF_SH2A_SH4_NOFPU
	SuperHMachineSH2ASH3NoFPU  = SuperHMachine(22) // EF_SH2A_SH3_NOFPU
	SuperHMachineSH2ASH4       = SuperHMachine(23) // EF_SH2A_SH4
	SuperHMachineSH2ASH3E      = SuperHMachine(24) // EF_SH2A_SH3E
)

var superhMachineNames = map[SuperHMachine]string{
	SuperHMachineSH1:           "SH1",
	SuperHMachineSH2:           "SH2",
	SuperHMachineSH3:           "SH3",
	SuperHMachineSHDSP:         "SHDSP",
	SuperHMachineSH3DSP:        "SH3DSP",
	SuperHMachineSH4ALDSP:      "SH4ALDSP",
	SuperHMachineSH4:           "SH4",
	SuperHMachineSH2E:          "SH2E",
	SuperHMachineSH4A:          "SH4A",
	SuperHMachineSH2A:          "SH2A",
	SuperHMachineSH4NoFPU:      "SH4NoFPU",
	SuperHMachineSH4ANoFPU:     "SH4ANoFPU",
	SuperHMachineSH4NoMMUNoFPU: "SH4NoMMUNoFPU",
	SuperHMachineSH2ANoFPU:     "SH2ANoFPU",
	SuperHMachineSH3NoMMU:      "SH3NoMMU",
	SuperHMachineSH2ASH4NoFPU:  "SH2ASH4NoFPU",
	SuperHMachineSH2ASH3NoFPU:  "SH2ASH3NoFPU",
	SuperHMachineSH2ASH4:       "SH2ASH4",
	SuperHMachineSH2ASH3E:      "SH2ASH3E",
}

func (machine SuperHMachine) String() string {
	name, ok := superhMachineNames[machine]
	if !ok {
		return fmt.Sprintf("SuperHMachineUnknown(0x%08x)", Word(machine))
	}
	return "SuperHMachine" + name
}

// SuperHHeaderFlags is a decoded superh e_flags word. The machine field
// joins the decoded sequence when non-zero. The raw word is retained and
// written back verbatim on encode.
type SuperHHeaderFlags struct {
	Flags []SuperHMachine

	value Word
}

func (flags *SuperHHeaderFlags) RawValue() Word {
	return flags.value
}

func DecodeSuperHHeaderFlags(
	value Word,
	config *Config,
) (*SuperHHeaderFlags, error) {
	decoded := []SuperHMachine{}
	if masked := value & superhMachineMask; masked != 0 {
		machine := SuperHMachine(masked)
		_, ok := superhMachineNames[machine]
		if !ok {
			return nil, InvalidHeaderFlagForMachineError{
				Machine: config.Machine,
				Value:   uint32(value),
			}
		}
		decoded = append(decoded, machine)
	}

	return &SuperHHeaderFlags{
		Flags: decoded,
		value: value,
	}, nil
}

func (flags *SuperHHeaderFlags) Encode(writer io.Writer, format Format) error {
	err := format.EncodeWord(writer, flags.value)
	if err != nil {
		return fmt.Errorf("failed to encode superh header flags: %w", err)
	}
	return nil
}
