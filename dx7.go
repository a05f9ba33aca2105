// Package dx7 decodes Yamaha DX7 32-voice bulk dumps (a file usually with
// .syx extension) into presets, and describes the routing of the 32
// algorithms between the six operators and the amplifier.
//
// A summary of the file format can be found in the Dexed repository
// (https://github.com/asb2m10/dexed/blob/master/Documentation/sysex-format.txt).
// The series "Yamaha DX7 chip reverse-engineering" by Ken Shirriff
// (https://www.righto.com/2021/12/yamaha-dx7-chip-reverse-engineering.html)
// is a useful reference on the hardware.
package dx7

// Polyphony is the number of simultaneous voices of the DX7 hardware.
const Polyphony = 16

const (
	// NumOperators is the number of operators in every voice.
	NumOperators = 6

	// PresetsPerBank is the number of voices in a bulk dump.
	PresetsPerBank = 32

	// MaxNameLength is the fixed length of a preset name.
	MaxNameLength = 10
)

// Waveform enumerates the LFO waveforms. The raw 3-bit codes 6 and 7 are
// not assigned and are rejected at decode time.
type Waveform int

const (
	Triangle Waveform = iota
	SawDown
	SawUp
	Square
	Sine
	SampleAndHold
)

var waveformNames = [...]string{"triangle", "sawdown", "sawup", "square", "sine", "sample&hold"}

// WaveformFromCode maps a raw waveform code to a Waveform; ok is false for
// the unassigned codes.
func WaveformFromCode(code int) (w Waveform, ok bool) {
	if code < 0 || code >= len(waveformNames) {
		return 0, false
	}
	return Waveform(code), true
}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return "???"
	}
	return waveformNames[w]
}

// OperatorMode tells whether the operator frequency is fixed or a ratio of
// the played note.
type OperatorMode int

const (
	Fixed OperatorMode = iota
	Ratio
)

func (m OperatorMode) String() string {
	if m == Ratio {
		return "Ratio"
	}
	return "Fixed"
}

// DefaultPresetName is the name of the init voice.
const DefaultPresetName = "INIT VOICE"

// NormalizeName scrubs raw preset name bytes: the high bit is stripped,
// printable ASCII is kept and everything else becomes a space. The result
// is truncated to MaxNameLength characters and trailing spaces are
// trimmed. The name bytes in a dump may be garbage so this never fails.
func NormalizeName(data []byte) string {
	n := min(len(data), MaxNameLength)
	ascii := make([]byte, n)
	for i, c := range data[:n] {
		c &= 0x7F
		if c < 0x20 || c > 0x7E {
			c = ' '
		}
		ascii[i] = c
	}
	for n > 0 && ascii[n-1] == ' ' {
		n--
	}
	return string(ascii[:n])
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
