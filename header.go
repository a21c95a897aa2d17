// Based on linux's man page, elf.h, golang's debug/elf package,
// and the elf 1.2 spec.
package elf

import (
	"fmt"
	"io"
)

// e_type
type FileType uint16

const (
	FileTypeNone         = FileType(0) // ET_NONE
	FileTypeRelocatable  = FileType(1) // ET_REL
	FileTypeExecutable   = FileType(2) // ET_EXEC
	FileTypeSharedObject = FileType(3) // ET_DYN
	FileTypeCore         = FileType(4) // ET_CORE
)

func (fileType FileType) String() string {
	switch fileType {
	case FileTypeNone:
		return "FileTypeNone"
	case FileTypeRelocatable:
		return "FileTypeRelocatable"
	case FileTypeExecutable:
		return "FileTypeExecutable"
	case FileTypeSharedObject:
		return "FileTypeSharedObject"
	case FileTypeCore:
		return "FileTypeCore"
	default:
		return fmt.Sprintf("FileTypeUnknown(%d)", uint16(fileType))
	}
}

// e_machine
type MachineArchitecture uint16

const (
	MachineArchitectureNone          = MachineArchitecture(0)   // EM_NONE
	MachineArchitectureM32           = MachineArchitecture(1)   // EM_M32
	MachineArchitectureSPARC         = MachineArchitecture(2)   // EM_SPARC
	MachineArchitectureI386          = MachineArchitecture(3)   // EM_386
	MachineArchitectureM68K          = MachineArchitecture(4)   // EM_68K
	MachineArchitectureM88K          = MachineArchitecture(5)   // EM_88K
	MachineArchitectureIAMCU         = MachineArchitecture(6)   // EM_IAMCU
	MachineArchitectureI860          = MachineArchitecture(7)   // EM_860
	MachineArchitectureMIPS          = MachineArchitecture(8)   // EM_MIPS
	MachineArchitectureS370          = MachineArchitecture(9)   // EM_S370
	MachineArchitectureMIPSRS3LE     = MachineArchitecture(10)  // EM_MIPS_RS3_LE
	MachineArchitecturePARISC        = MachineArchitecture(15)  // EM_PARISC
	MachineArchitectureVPP500        = MachineArchitecture(17)  // EM_VPP500
	MachineArchitectureSPARC32Plus   = MachineArchitecture(18)  // EM_SPARC32PLUS
	MachineArchitectureI960          = MachineArchitecture(19)  // EM_960
	MachineArchitecturePPC           = MachineArchitecture(20)  // EM_PPC
	MachineArchitecturePPC64         = MachineArchitecture(21)  // EM_PPC64
	MachineArchitectureS390          = MachineArchitecture(22)  // EM_S390
	MachineArchitectureSPU           = MachineArchitecture(23)  // EM_SPU
	MachineArchitectureV800          = MachineArchitecture(36)  // EM_V800
	MachineArchitectureFR20          = MachineArchitecture(37)  // EM_FR20
	MachineArchitectureRH32          = MachineArchitecture(38)  // EM_RH32
	MachineArchitectureRCE           = MachineArchitecture(39)  // EM_RCE
	MachineArchitectureARM           = MachineArchitecture(40)  // EM_ARM
	MachineArchitectureAlpha         = MachineArchitecture(41)  // EM_FAKE_ALPHA
	MachineArchitectureSuperH        = MachineArchitecture(42)  // EM_SH
	MachineArchitectureSPARCV9       = MachineArchitecture(43)  // EM_SPARCV9
	MachineArchitectureTriCore       = MachineArchitecture(44)  // EM_TRICORE
	MachineArchitectureARC           = MachineArchitecture(45)  // EM_ARC
	MachineArchitectureH8300         = MachineArchitecture(46)  // EM_H8_300
	MachineArchitectureH8300H        = MachineArchitecture(47)  // EM_H8_300H
	MachineArchitectureH8S           = MachineArchitecture(48)  // EM_H8S
	MachineArchitectureH8500         = MachineArchitecture(49)  // EM_H8_500
	MachineArchitectureIA64          = MachineArchitecture(50)  // EM_IA_64
	MachineArchitectureMIPSX         = MachineArchitecture(51)  // EM_MIPS_X
	MachineArchitectureColdFire      = MachineArchitecture(52)  // EM_COLDFIRE
	MachineArchitectureM68HC12       = MachineArchitecture(53)  // EM_68HC12
	MachineArchitectureMMA           = MachineArchitecture(54)  // EM_MMA
	MachineArchitecturePCP           = MachineArchitecture(55)  // EM_PCP
	MachineArchitectureNCPU          = MachineArchitecture(56)  // EM_NCPU
	MachineArchitectureNDR1          = MachineArchitecture(57)  // EM_NDR1
	MachineArchitectureStarCore      = MachineArchitecture(58)  // EM_STARCORE
	MachineArchitectureME16          = MachineArchitecture(59)  // EM_ME16
	MachineArchitectureST100         = MachineArchitecture(60)  // EM_ST100
	MachineArchitectureTinyJ         = MachineArchitecture(61)  // EM_TINYJ
	MachineArchitectureX86_64        = MachineArchitecture(62)  // EM_X86_64
	MachineArchitecturePDSP          = MachineArchitecture(63)  // EM_PDSP
	MachineArchitecturePDP10         = MachineArchitecture(64)  // EM_PDP10
	MachineArchitecturePDP11         = MachineArchitecture(65)  // EM_PDP11
	MachineArchitectureFX66          = MachineArchitecture(66)  // EM_FX66
	MachineArchitectureST9Plus       = MachineArchitecture(67)  // EM_ST9PLUS
	MachineArchitectureST7           = MachineArchitecture(68)  // EM_ST7
	MachineArchitectureM68HC16       = MachineArchitecture(69)  // EM_68HC16
	MachineArchitectureM68HC11       = MachineArchitecture(70)  // EM_68HC11
	MachineArchitectureM68HC08       = MachineArchitecture(71)  // EM_68HC08
	MachineArchitectureM68HC05       = MachineArchitecture(72)  // EM_68HC05
	MachineArchitectureSVx           = MachineArchitecture(73)  // EM_SVX
	MachineArchitectureST19          = MachineArchitecture(74)  // EM_ST19
	MachineArchitectureVAX           = MachineArchitecture(75)  // EM_VAX
	MachineArchitectureCRIS          = MachineArchitecture(76)  // EM_CRIS
	MachineArchitectureJavelin       = MachineArchitecture(77)  // EM_JAVELIN
	MachineArchitectureFirepath      = MachineArchitecture(78)  // EM_FIREPATH
	MachineArchitectureZSP           = MachineArchitecture(79)  // EM_ZSP
	MachineArchitectureMMIX          = MachineArchitecture(80)  // EM_MMIX
	MachineArchitectureHUAny         = MachineArchitecture(81)  // EM_HUANY
	MachineArchitecturePrism         = MachineArchitecture(82)  // EM_PRISM
	MachineArchitectureAVR           = MachineArchitecture(83)  // EM_AVR
	MachineArchitectureFR30          = MachineArchitecture(84)  // EM_FR30
	MachineArchitectureD10V          = MachineArchitecture(85)  // EM_D10V
	MachineArchitectureD30V          = MachineArchitecture(86)  // EM_D30V
	MachineArchitectureV850          = MachineArchitecture(87)  // EM_V850
	MachineArchitectureM32R          = MachineArchitecture(88)  // EM_M32R
	MachineArchitectureMN10300       = MachineArchitecture(89)  // EM_MN10300
	MachineArchitectureMN10200       = MachineArchitecture(90)  // EM_MN10200
	MachineArchitecturePicoJava      = MachineArchitecture(91)  // EM_PJ
	MachineArchitectureOpenRISC      = MachineArchitecture(92)  // EM_OPENRISC
	MachineArchitectureARCCompact    = MachineArchitecture(93)  // EM_ARC_COMPACT
	MachineArchitectureXtensa        = MachineArchitecture(94)  // EM_XTENSA
	MachineArchitectureVideoCore     = MachineArchitecture(95)  // EM_VIDEOCORE
	MachineArchitectureTMMGPP        = MachineArchitecture(96)  // EM_TMM_GPP
	MachineArchitectureNS32K         = MachineArchitecture(97)  // EM_NS32K
	MachineArchitectureTPC           = MachineArchitecture(98)  // EM_TPC
	MachineArchitectureSNP1K         = MachineArchitecture(99)  // EM_SNP1K
	MachineArchitectureST200         = MachineArchitecture(100) // EM_ST200
	MachineArchitectureIP2K          = MachineArchitecture(101) // EM_IP2K
	MachineArchitectureMAX           = MachineArchitecture(102) // EM_MAX
	MachineArchitectureCompactRISC   = MachineArchitecture(103) // EM_CR
	MachineArchitectureF2MC16        = MachineArchitecture(104) // EM_F2MC16
	MachineArchitectureMSP430        = MachineArchitecture(105) // EM_MSP430
	MachineArchitectureBlackfin      = MachineArchitecture(106) // EM_BLACKFIN
	MachineArchitectureSEC33         = MachineArchitecture(107) // EM_SE_C33
	MachineArchitectureSEP           = MachineArchitecture(108) // EM_SEP
	MachineArchitectureArca          = MachineArchitecture(109) // EM_ARCA
	MachineArchitectureUnicore       = MachineArchitecture(110) // EM_UNICORE
	MachineArchitectureExcess        = MachineArchitecture(111) // EM_EXCESS
	MachineArchitectureDXP           = MachineArchitecture(112) // EM_DXP
	MachineArchitectureAlteraNios2   = MachineArchitecture(113) // EM_ALTERA_NIOS2
	MachineArchitectureCRX           = MachineArchitecture(114) // EM_CRX
	MachineArchitectureXGate         = MachineArchitecture(115) // EM_XGATE
	MachineArchitectureC166          = MachineArchitecture(116) // EM_C166
	MachineArchitectureM16C          = MachineArchitecture(117) // EM_M16C
	MachineArchitectureDSPIC30F      = MachineArchitecture(118) // EM_DSPIC30F
	MachineArchitectureCE            = MachineArchitecture(119) // EM_CE
	MachineArchitectureM32C          = MachineArchitecture(120) // EM_M32C
	MachineArchitectureTSK3000       = MachineArchitecture(131) // EM_TSK3000
	MachineArchitectureRS08          = MachineArchitecture(132) // EM_RS08
	MachineArchitectureSHARC         = MachineArchitecture(133) // EM_SHARC
	MachineArchitectureECOG2         = MachineArchitecture(134) // EM_ECOG2
	MachineArchitectureScore7        = MachineArchitecture(135) // EM_SCORE7
	MachineArchitectureDSP24         = MachineArchitecture(136) // EM_DSP24
	MachineArchitectureVideoCore3    = MachineArchitecture(137) // EM_VIDEOCORE3
	MachineArchitectureLatticeMico32 = MachineArchitecture(138) // EM_LATTICEMICO32
	MachineArchitectureSEC17         = MachineArchitecture(139) // EM_SE_C17
	MachineArchitectureTIC6000       = MachineArchitecture(140) // EM_TI_C6000
	MachineArchitectureTIC2000       = MachineArchitecture(141) // EM_TI_C2000
	MachineArchitectureTIC5500       = MachineArchitecture(142) // EM_TI_C5500
	MachineArchitectureTIARP32       = MachineArchitecture(143) // EM_TI_ARP32
	MachineArchitectureTIPRU         = MachineArchitecture(144) // EM_TI_PRU
	MachineArchitectureMMDSPPlus     = MachineArchitecture(160) // EM_MMDSP_PLUS
	MachineArchitectureCypressM8C    = MachineArchitecture(161) // EM_CYPRESS_M8C
	MachineArchitectureR32C          = MachineArchitecture(162) // EM_R32C
	MachineArchitectureTriMedia      = MachineArchitecture(163) // EM_TRIMEDIA
	MachineArchitectureQDSP6         = MachineArchitecture(164) // EM_QDSP6
	MachineArchitectureI8051         = MachineArchitecture(165) // EM_8051
	MachineArchitectureSTxP7x        = MachineArchitecture(166) // EM_STXP7X
	MachineArchitectureNDS32         = MachineArchitecture(167) // EM_NDS32
	MachineArchitectureECOG1X        = MachineArchitecture(168) // EM_ECOG1X
	MachineArchitectureMAXQ30        = MachineArchitecture(169) // EM_MAXQ30
	MachineArchitectureXIMO16        = MachineArchitecture(170) // EM_XIMO16
	MachineArchitectureManik         = MachineArchitecture(171) // EM_MANIK
	MachineArchitectureCrayNV2       = MachineArchitecture(172) // EM_CRAYNV2
	MachineArchitectureRX            = MachineArchitecture(173) // EM_RX
	MachineArchitectureMETAG         = MachineArchitecture(174) // EM_METAG
	MachineArchitectureMCSTElbrus    = MachineArchitecture(175) // EM_MCST_ELBRUS
	MachineArchitectureECOG16        = MachineArchitecture(176) // EM_ECOG16
	MachineArchitectureCR16          = MachineArchitecture(177) // EM_CR16
	MachineArchitectureETPU          = MachineArchitecture(178) // EM_ETPU
	MachineArchitectureSLE9X         = MachineArchitecture(179) // EM_SLE9X
	MachineArchitectureL10M          = MachineArchitecture(180) // EM_L10M
	MachineArchitectureK10M          = MachineArchitecture(181) // EM_K10M
	MachineArchitectureAARCH64       = MachineArchitecture(183) // EM_AARCH64
	MachineArchitectureAVR32         = MachineArchitecture(185) // EM_AVR32
	MachineArchitectureSTM8          = MachineArchitecture(186) // EM_STM8
	MachineArchitectureTILE64        = MachineArchitecture(187) // EM_TILE64
	MachineArchitectureTILEPro       = MachineArchitecture(188) // EM_TILEPRO
	MachineArchitectureMicroBlaze    = MachineArchitecture(189) // EM_MICROBLAZE
	MachineArchitectureCUDA          = MachineArchitecture(190) // EM_CUDA
	MachineArchitectureTILEGx        = MachineArchitecture(191) // EM_TILEGX
	MachineArchitectureCloudShield   = MachineArchitecture(192) // EM_CLOUDSHIELD
	MachineArchitectureCOREA1st      = MachineArchitecture(193) // EM_COREA_1ST
	MachineArchitectureCOREA2nd      = MachineArchitecture(194) // EM_COREA_2ND
	MachineArchitectureARCCompact2   = MachineArchitecture(195) // EM_ARC_COMPACT2
	MachineArchitectureOpen8         = MachineArchitecture(196) // EM_OPEN8
	MachineArchitectureRL78          = MachineArchitecture(197) // EM_RL78
	MachineArchitectureVideoCore5    = MachineArchitecture(198) // EM_VIDEOCORE5
	MachineArchitecture78KOR         = MachineArchitecture(199) // EM_78KOR
	MachineArchitectureF56800EX      = MachineArchitecture(200) // EM_56800EX
	MachineArchitectureBA1           = MachineArchitecture(201) // EM_BA1
	MachineArchitectureBA2           = MachineArchitecture(202) // EM_BA2
	MachineArchitectureXCORE         = MachineArchitecture(203) // EM_XCORE
	MachineArchitectureMCHPPIC       = MachineArchitecture(204) // EM_MCHP_PIC
	MachineArchitectureIntel205      = MachineArchitecture(205) // EM_INTEL205
	MachineArchitectureIntel206      = MachineArchitecture(206) // EM_INTEL206
	MachineArchitectureIntel207      = MachineArchitecture(207) // EM_INTEL207
	MachineArchitectureIntel208      = MachineArchitecture(208) // EM_INTEL208
	MachineArchitectureIntel209      = MachineArchitecture(209) // EM_INTEL209
	MachineArchitectureKM32          = MachineArchitecture(210) // EM_KM32
	MachineArchitectureKMX32         = MachineArchitecture(211) // EM_KMX32
	MachineArchitectureKMX16         = MachineArchitecture(212) // EM_EMX16
	MachineArchitectureKMX8          = MachineArchitecture(213) // EM_EMX8
	MachineArchitectureKVARC         = MachineArchitecture(214) // EM_KVARC
	MachineArchitectureCDP           = MachineArchitecture(215) // EM_CDP
	MachineArchitectureCOGE          = MachineArchitecture(216) // EM_COGE
	MachineArchitectureCool          = MachineArchitecture(217) // EM_COOL
	MachineArchitectureNORC          = MachineArchitecture(218) // EM_NORC
	MachineArchitectureCSRKalimba    = MachineArchitecture(219) // EM_CSR_KALIMBA
	MachineArchitectureZ80           = MachineArchitecture(220) // EM_Z80
	MachineArchitectureVISIUM        = MachineArchitecture(221) // EM_VISIUM
	MachineArchitectureFT32          = MachineArchitecture(222) // EM_FT32
	MachineArchitectureMoxie         = MachineArchitecture(223) // EM_MOXIE
	MachineArchitectureAMDGPU        = MachineArchitecture(224) // EM_AMDGPU
	MachineArchitectureRISCV         = MachineArchitecture(243) // EM_RISCV
	MachineArchitectureBPF           = MachineArchitecture(247) // EM_BPF
	MachineArchitectureCSKY          = MachineArchitecture(252) // EM_CSKY
	MachineArchitectureLoongArch     = MachineArchitecture(258) // EM_LOONGARCH
)

var machineArchitectureNames = map[MachineArchitecture]string{
	MachineArchitectureNone:          "None",
	MachineArchitectureM32:           "M32",
	MachineArchitectureSPARC:         "SPARC",
	MachineArchitectureI386:          "I386",
	MachineArchitectureM68K:          "M68K",
	MachineArchitectureM88K:          "M88K",
	MachineArchitectureIAMCU:         "IAMCU",
	MachineArchitectureI860:          "I860",
	MachineArchitectureMIPS:          "MIPS",
	MachineArchitectureS370:          "S370",
	MachineArchitectureMIPSRS3LE:     "MIPSRS3LE",
	MachineArchitecturePARISC:        "PARISC",
	MachineArchitectureVPP500:        "VPP500",
	MachineArchitectureSPARC32Plus:   "SPARC32Plus",
	MachineArchitectureI960:          "I960",
	MachineArchitecturePPC:           "PPC",
	MachineArchitecturePPC64:         "PPC64",
	MachineArchitectureS390:          "S390",
	MachineArchitectureSPU:           "SPU",
	MachineArchitectureV800:          "V800",
	MachineArchitectureFR20:          "FR20",
	MachineArchitectureRH32:          "RH32",
	MachineArchitectureRCE:           "RCE",
	MachineArchitectureARM:           "ARM",
	MachineArchitectureAlpha:         "Alpha",
	MachineArchitectureSuperH:        "SuperH",
	MachineArchitectureSPARCV9:       "SPARCV9",
	MachineArchitectureTriCore:       "TriCore",
	MachineArchitectureARC:           "ARC",
	MachineArchitectureH8300:         "H8300",
	MachineArchitectureH8300H:        "H8300H",
	MachineArchitectureH8S:           "H8S",
	MachineArchitectureH8500:         "H8500",
	MachineArchitectureIA64:          "IA64",
	MachineArchitectureMIPSX:         "MIPSX",
	MachineArchitectureColdFire:      "ColdFire",
	MachineArchitectureM68HC12:       "M68HC12",
	MachineArchitectureMMA:           "MMA",
	MachineArchitecturePCP:           "PCP",
	MachineArchitectureNCPU:          "NCPU",
	MachineArchitectureNDR1:          "NDR1",
	MachineArchitectureStarCore:      "StarCore",
	MachineArchitectureME16:          "ME16",
	MachineArchitectureST100:         "ST100",
	MachineArchitectureTinyJ:         "TinyJ",
	MachineArchitectureX86_64:        "X86_64",
	MachineArchitecturePDSP:          "PDSP",
	MachineArchitecturePDP10:         "PDP10",
	MachineArchitecturePDP11:         "PDP11",
	MachineArchitectureFX66:          "FX66",
	MachineArchitectureST9Plus:       "ST9Plus",
	MachineArchitectureST7:           "ST7",
	MachineArchitectureM68HC16:       "M68HC16",
	MachineArchitectureM68HC11:       "M68HC11",
	MachineArchitectureM68HC08:       "M68HC08",
	MachineArchitectureM68HC05:       "M68HC05",
	MachineArchitectureSVx:           "SVx",
	MachineArchitectureST19:          "ST19",
	MachineArchitectureVAX:           "VAX",
	MachineArchitectureCRIS:          "CRIS",
	MachineArchitectureJavelin:       "Javelin",
	MachineArchitectureFirepath:      "Firepath",
	MachineArchitectureZSP:           "ZSP",
	MachineArchitectureMMIX:          "MMIX",
	MachineArchitectureHUAny:         "HUAny",
	MachineArchitecturePrism:         "Prism",
	MachineArchitectureAVR:           "AVR",
	MachineArchitectureFR30:          "FR30",
	MachineArchitectureD10V:          "D10V",
	MachineArchitectureD30V:          "D30V",
	MachineArchitectureV850:          "V850",
	MachineArchitectureM32R:          "M32R",
	MachineArchitectureMN10300:       "MN10300",
	MachineArchitectureMN10200:       "MN10200",
	MachineArchitecturePicoJava:      "PicoJava",
	MachineArchitectureOpenRISC:      "OpenRISC",
	MachineArchitectureARCCompact:    "ARCCompact",
	MachineArchitectureXtensa:        "Xtensa",
	MachineArchitectureVideoCore:     "VideoCore",
	MachineArchitectureTMMGPP:        "TMMGPP",
	MachineArchitectureNS32K:         "NS32K",
	MachineArchitectureTPC:           "TPC",
	MachineArchitectureSNP1K:         "SNP1K",
	MachineArchitectureST200:         "ST200",
	MachineArchitectureIP2K:          "IP2K",
	MachineArchitectureMAX:           "MAX",
	MachineArchitectureCompactRISC:   "CompactRISC",
	MachineArchitectureF2MC16:        "F2MC16",
	MachineArchitectureMSP430:        "MSP430",
	MachineArchitectureBlackfin:      "Blackfin",
	MachineArchitectureSEC33:         "SEC33",
	MachineArchitectureSEP:           "SEP",
	MachineArchitectureArca:          "Arca",
	MachineArchitectureUnicore:       "Unicore",
	MachineArchitectureExcess:        "Excess",
	MachineArchitectureDXP:           "DXP",
	MachineArchitectureAlteraNios2:   "AlteraNios2",
	MachineArchitectureCRX:           "CRX",
	MachineArchitectureXGate:         "XGate",
	MachineArchitectureC166:          "C166",
	MachineArchitectureM16C:          "M16C",
	MachineArchitectureDSPIC30F:      "DSPIC30F",
	MachineArchitectureCE:            "CE",
	MachineArchitectureM32C:          "M32C",
	MachineArchitectureTSK3000:       "TSK3000",
	MachineArchitectureRS08:          "RS08",
	MachineArchitectureSHARC:         "SHARC",
	MachineArchitectureECOG2:         "ECOG2",
	MachineArchitectureScore7:        "Score7",
	MachineArchitectureDSP24:         "DSP24",
	MachineArchitectureVideoCore3:    "VideoCore3",
	MachineArchitectureLatticeMico32: "LatticeMico32",
	MachineArchitectureSEC17:         "SEC17",
	MachineArchitectureTIC6000:       "TIC6000",
	MachineArchitectureTIC2000:       "TIC2000",
	MachineArchitectureTIC5500:       "TIC5500",
	MachineArchitectureTIARP32:       "TIARP32",
	MachineArchitectureTIPRU:         "TIPRU",
	MachineArchitectureMMDSPPlus:     "MMDSPPlus",
	MachineArchitectureCypressM8C:    "CypressM8C",
	MachineArchitectureR32C:          "R32C",
	MachineArchitectureTriMedia:      "TriMedia",
	MachineArchitectureQDSP6:         "QDSP6",
	MachineArchitectureI8051:         "I8051",
	MachineArchitectureSTxP7x:        "STxP7x",
	MachineArchitectureNDS32:         "NDS32",
	MachineArchitectureECOG1X:        "ECOG1X",
	MachineArchitectureMAXQ30:        "MAXQ30",
	MachineArchitectureXIMO16:        "XIMO16",
	MachineArchitectureManik:         "Manik",
	MachineArchitectureCrayNV2:       "CrayNV2",
	MachineArchitectureRX:            "RX",
	MachineArchitectureMETAG:         "METAG",
	MachineArchitectureMCSTElbrus:    "MCSTElbrus",
	MachineArchitectureECOG16:        "ECOG16",
	MachineArchitectureCR16:          "CR16",
	MachineArchitectureETPU:          "ETPU",
	MachineArchitectureSLE9X:         "SLE9X",
	MachineArchitectureL10M:          "L10M",
	MachineArchitectureK10M:          "K10M",
	MachineArchitectureAARCH64:       "AARCH64",
	MachineArchitectureAVR32:         "AVR32",
	MachineArchitectureSTM8:          "STM8",
	MachineArchitectureTILE64:        "TILE64",
	MachineArchitectureTILEPro:       "TILEPro",
	MachineArchitectureMicroBlaze:    "MicroBlaze",
	MachineArchitectureCUDA:          "CUDA",
	MachineArchitectureTILEGx:        "TILEGx",
	MachineArchitectureCloudShield:   "CloudShield",
	MachineArchitectureCOREA1st:      "COREA1st",
	MachineArchitectureCOREA2nd:      "COREA2nd",
	MachineArchitectureARCCompact2:   "ARCCompact2",
	MachineArchitectureOpen8:         "Open8",
	MachineArchitectureRL78:          "RL78",
	MachineArchitectureVideoCore5:    "VideoCore5",
	MachineArchitecture78KOR:         "78KOR",
	MachineArchitectureF56800EX:      "F56800EX",
	MachineArchitectureBA1:           "BA1",
	MachineArchitectureBA2:           "BA2",
	MachineArchitectureXCORE:         "XCORE",
	MachineArchitectureMCHPPIC:       "MCHPPIC",
	MachineArchitectureIntel205:      "Intel205",
	MachineArchitectureIntel206:      "Intel206",
	MachineArchitectureIntel207:      "Intel207",
	MachineArchitectureIntel208:      "Intel208",
	MachineArchitectureIntel209:      "Intel209",
	MachineArchitectureKM32:          "KM32",
	MachineArchitectureKMX32:         "KMX32",
	MachineArchitectureKMX16:         "KMX16",
	MachineArchitectureKMX8:          "KMX8",
	MachineArchitectureKVARC:         "KVARC",
	MachineArchitectureCDP:           "CDP",
	MachineArchitectureCOGE:          "COGE",
	MachineArchitectureCool:          "Cool",
	MachineArchitectureNORC:          "NORC",
	MachineArchitectureCSRKalimba:    "CSRKalimba",
	MachineArchitectureZ80:           "Z80",
	MachineArchitectureVISIUM:        "VISIUM",
	MachineArchitectureFT32:          "FT32",
	MachineArchitectureMoxie:         "Moxie",
	MachineArchitectureAMDGPU:        "AMDGPU",
	MachineArchitectureRISCV:         "RISCV",
	MachineArchitectureBPF:           "BPF",
	MachineArchitectureCSKY:          "CSKY",
	MachineArchitectureLoongArch:     "LoongArch",
}

func (machine MachineArchitecture) String() string {
	name, ok := machineArchitectureNames[machine]
	if !ok {
		return fmt.Sprintf("MachineArchitectureUnknown(%d)", uint16(machine))
	}
	return "MachineArchitecture" + name
}

// e_version
type FormatVersion Word

const (
	FormatVersionNone    = FormatVersion(0) // EV_NONE
	FormatVersionCurrent = FormatVersion(1) // EV_CURRENT
)

func (version FormatVersion) String() string {
	switch version {
	case FormatVersionNone:
		return "FormatVersionNone"
	case FormatVersionCurrent:
		return "FormatVersionCurrent"
	default:
		return fmt.Sprintf("FormatVersionUnknown(%d)", uint32(version))
	}
}

// Header is the top-level file header.
//
// EntryPoint, ProgramHeaderOffset and SectionHeaderOffset are nil when the
// field could not be decoded; zero on disk decodes as a present zero value
// since the format uses zero to mean "not present".
type Header struct {
	Identifier *HeaderIdentifier

	Type    FileType
	Machine MachineArchitecture
	Version FormatVersion

	EntryPoint          *Address
	ProgramHeaderOffset *Offset
	SectionHeaderOffset *Offset

	Flags Word

	HeaderSize HalfWord

	ProgramHeaderEntrySize  HalfWord
	ProgramHeaderEntryCount HalfWord
	SectionHeaderEntrySize  HalfWord
	SectionHeaderEntryCount HalfWord

	// Index of the section holding the section name string table.
	SectionNameSectionIndex HalfWord

	// Extension bytes past the fixed fields, present when HeaderSize exceeds
	// the fixed-field total. Not written back by Encode.
	Data []byte
}

// HeaderSize returns the fixed-field header size for the format: 52 bytes
// for class 32, 64 bytes for class 64.
func (format Format) HeaderSize() int {
	return HeaderIdentifierSize +
		format.HalfWordSize()*2 +
		format.WordSize() +
		format.AddressSize() +
		format.OffsetSize()*2 +
		format.WordSize() +
		format.HalfWordSize()*6
}

func decodeOptionalAddress(
	reader io.Reader,
	format Format,
	config *Config,
) *Address {
	value, err := format.DecodeAddress(reader, config)
	if err != nil {
		return nil
	}
	return &value
}

func decodeOptionalOffset(
	reader io.Reader,
	format Format,
	config *Config,
) *Offset {
	value, err := format.DecodeOffset(reader, config)
	if err != nil {
		return nil
	}
	return &value
}

// DecodeHeader decodes the full file header, including the leading
// identification block. The decoded os abi and machine are recorded on the
// config for downstream section header type and flag dispatch.
func DecodeHeader(
	reader io.ReadSeeker,
	format Format,
	config *Config,
) (*Header, error) {
	identifier, err := DecodeHeaderIdentifier(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode header: %w", err)
	}
	config.setOSABI(identifier.OSABI)

	typeValue, err := format.DecodeHalfWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file type: %w", err)
	}
	fileType := FileType(typeValue)
	if fileType > FileTypeCore {
		return nil, InvalidFileTypeError{
			Context: newErrorContext(reader, format.HalfWordSize()),
		}
	}

	machineValue, err := format.DecodeHalfWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode machine: %w", err)
	}
	machine := MachineArchitecture(machineValue)
	_, ok := machineArchitectureNames[machine]
	if !ok {
		return nil, InvalidMachineError{
			Context: newErrorContext(reader, format.HalfWordSize()),
		}
	}
	config.setMachine(machine)

	versionValue, err := format.DecodeWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode format version: %w", err)
	}
	version := FormatVersion(versionValue)
	switch version {
	case FormatVersionNone, FormatVersionCurrent:
	default:
		versionErr := InvalidFormatVersionError{
			Context: newErrorContext(reader, format.WordSize()),
		}
		if !config.Ignored(versionErr) {
			return nil, versionErr
		}
		version = FormatVersionNone
	}

	entryPoint := decodeOptionalAddress(reader, format, config)
	programHeaderOffset := decodeOptionalOffset(reader, format, config)
	sectionHeaderOffset := decodeOptionalOffset(reader, format, config)

	flags, err := format.DecodeWord(reader, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode header flags: %w", err)
	}

	halfWords := [6]HalfWord{}
	for idx := range halfWords {
		value, err := format.DecodeHalfWord(reader, config)
		if err != nil {
			return nil, fmt.Errorf("failed to decode header: %w", err)
		}
		halfWords[idx] = value
	}
	headerSize := halfWords[0]

	dataSize := 0
	if int(headerSize) > format.HeaderSize() {
		dataSize = int(headerSize) - format.HeaderSize()
	}
	data := make([]byte, dataSize)
	for idx := range data {
		value, err := format.DecodeByte(reader, config)
		if err != nil {
			return nil, fmt.Errorf("failed to decode header data: %w", err)
		}
		data[idx] = byte(value)
	}

	return &Header{
		Identifier:              identifier,
		Type:                    fileType,
		Machine:                 machine,
		Version:                 version,
		EntryPoint:              entryPoint,
		ProgramHeaderOffset:     programHeaderOffset,
		SectionHeaderOffset:     sectionHeaderOffset,
		Flags:                   flags,
		HeaderSize:              headerSize,
		ProgramHeaderEntrySize:  halfWords[1],
		ProgramHeaderEntryCount: halfWords[2],
		SectionHeaderEntrySize:  halfWords[3],
		SectionHeaderEntryCount: halfWords[4],
		SectionNameSectionIndex: halfWords[5],
		Data:                    data,
	}, nil
}

// Encode writes the fixed header fields. Absent optional fields write a
// literal zero of the field's width, so the encoded layout is always
// fixed-size. The Data tail is not written.
func (header *Header) Encode(writer io.Writer, format Format) error {
	err := header.Identifier.Encode(writer)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	err = format.EncodeHalfWord(writer, HalfWord(header.Type))
	if err != nil {
		return fmt.Errorf("failed to encode file type: %w", err)
	}

	err = format.EncodeHalfWord(writer, HalfWord(header.Machine))
	if err != nil {
		return fmt.Errorf("failed to encode machine: %w", err)
	}

	err = format.EncodeWord(writer, Word(header.Version))
	if err != nil {
		return fmt.Errorf("failed to encode format version: %w", err)
	}

	entryPoint := Address(0)
	if header.EntryPoint != nil {
		entryPoint = *header.EntryPoint
	}
	err = format.EncodeAddress(writer, entryPoint)
	if err != nil {
		return fmt.Errorf("failed to encode entry point: %w", err)
	}

	programHeaderOffset := Offset(0)
	if header.ProgramHeaderOffset != nil {
		programHeaderOffset = *header.ProgramHeaderOffset
	}
	err = format.EncodeOffset(writer, programHeaderOffset)
	if err != nil {
		return fmt.Errorf("failed to encode program header offset: %w", err)
	}

	sectionHeaderOffset := Offset(0)
	if header.SectionHeaderOffset != nil {
		sectionHeaderOffset = *header.SectionHeaderOffset
	}
	err = format.EncodeOffset(writer, sectionHeaderOffset)
	if err != nil {
		return fmt.Errorf("failed to encode section header offset: %w", err)
	}

	err = format.EncodeWord(writer, header.Flags)
	if err != nil {
		return fmt.Errorf("failed to encode header flags: %w", err)
	}

	halfWords := [6]HalfWord{
		header.HeaderSize,
		header.ProgramHeaderEntrySize,
		header.ProgramHeaderEntryCount,
		header.SectionHeaderEntrySize,
		header.SectionHeaderEntryCount,
		header.SectionNameSectionIndex,
	}
	for _, value := range halfWords {
		err = format.EncodeHalfWord(writer, value)
		if err != nil {
			return fmt.Errorf("failed to encode header: %w", err)
		}
	}

	return nil
}
