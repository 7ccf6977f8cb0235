package cryptoalg

import (
	"fmt"
	"strings"
)

// Mode is an AES block cipher mode of operation.
type Mode int

// Supported AES modes
const (
	ModeCBC Mode = iota + 1
	ModeGCM
)

// GCMTagSize is the size in bytes of the authentication tag appended by AES-GCM.
const GCMTagSize = 16

type modeParams struct {
	short    string
	name     string
	ivLength int
}

var modeTable = map[Mode]modeParams{
	ModeCBC: {short: "CBC", name: "AES-CBC", ivLength: 16},
	ModeGCM: {short: "GCM", name: "AES-GCM", ivLength: 12},
}

// Modes returns all supported modes.
func Modes() []Mode {
	return []Mode{ModeCBC, ModeGCM}
}

// ParseMode resolves a mode from its short ("CBC") or provider ("AES-CBC") name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for _, m := range Modes() {
		p := modeTable[m]
		if needle == p.short || needle == p.name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: mode %s does not exist", ErrUnknownMode, s)
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	_, ok := modeTable[m]
	return ok
}

// String returns the short mode name, e.g. "GCM".
func (m Mode) String() string {
	if p, ok := modeTable[m]; ok {
		return p.short
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Name returns the provider algorithm name, e.g. "AES-GCM".
func (m Mode) Name() string {
	return modeTable[m].name
}

// IVLength returns the length in bytes of the IV prefixed to every envelope of this mode.
func (m Mode) IVLength() int {
	return modeTable[m].ivLength
}
