package dx7

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// bankHeader is the sysex header of a 32-voice bulk dump: start of sysex,
// Yamaha manufacturer ID, sub-status/channel, format 9 (32 voices) and the
// byte count 4096 (20 00 in 7-bit pairs).
var bankHeader = [6]byte{0xF0, 0x43, 0x00, 0x09, 0x20, 0x00}

const (
	bankBodySize        = 4096 // length is hard coded in the header
	voiceSize           = 128
	endOfSysEx          = 0xF7
	operatorSize        = 17
	pitchEnvelopeOffset = 102
	nameOffset          = 118
	nameSize            = 9
)

// Sentinel errors for the failure modes of ReadBank. Every error aborts
// the whole decode; a partial bank is never returned.
var (
	ErrInvalidHeader     = errors.New("incorrect bulk dump header")
	ErrTruncated         = errors.New("unexpected end of bulk dump")
	ErrMissingTerminator = errors.New("missing end of sysex marker")
	ErrInvalidWaveform   = errors.New("unknown LFO waveform")
)

// ChecksumError is returned when the body checksum stored in the dump does
// not match the checksum computed over the body bytes.
type ChecksumError struct {
	Expected byte // checksum stored in the dump
	Computed byte // checksum computed from the body
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("computed checksum %v does not match expected checksum %v", e.Computed, e.Expected)
}

// Checksum computes the masked 2's complement checksum the DX7 uses for
// bulk data: the negated sum of all bytes, masked to 7 bits.
func Checksum(data []byte) byte {
	var sum byte
	for _, c := range data {
		sum -= c
	}
	return sum & 0x7F
}

// ReadBank reads a 32-voice bulk dump from r and returns the 32 presets in
// slot order, each normalized. It returns an error if the dump is
// truncated or structurally malformed; out of range parameter values are
// not errors, they are clamped like the hardware does. Trailing bytes
// after the end of sysex marker are left unread.
func ReadBank(r io.Reader) ([]Preset, error) {
	var header [len(bankHeader)]byte
	if err := readExact(r, header[:]); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if header != bankHeader {
		return nil, ErrInvalidHeader
	}
	body := make([]byte, bankBodySize)
	if err := readExact(r, body); err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	var trailer [2]byte // checksum and end of sysex marker
	if err := readExact(r, trailer[:]); err != nil {
		return nil, fmt.Errorf("reading checksum: %w", err)
	}
	if computed := Checksum(body); computed != trailer[0] {
		return nil, &ChecksumError{Expected: trailer[0], Computed: computed}
	}
	if trailer[1] != endOfSysEx {
		return nil, ErrMissingTerminator
	}
	presets := make([]Preset, 0, PresetsPerBank)
	for i := 0; i < PresetsPerBank; i++ {
		preset, err := decodeVoice(body[i*voiceSize : (i+1)*voiceSize])
		if err != nil {
			return nil, fmt.Errorf("voice %v: %w", i, err)
		}
		presets = append(presets, preset.Normalize())
	}
	return presets, nil
}

// ReadBankFile reads a 32-voice bulk dump from the file at path.
func ReadBankFile(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBank(f)
}

// readExact fills buf or fails; short reads are reported as ErrTruncated.
func readExact(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}
	return nil
}

// decodeVoice unpacks one 128-byte packed voice. The layout is the packed
// 32-voice format of the Dexed sysex documentation.
func decodeVoice(packed []byte) (Preset, error) {
	var preset Preset

	// Operators are stored last-operator-first in the file.
	for i := 0; i < NumOperators; i++ {
		operator, err := decodeOperator(packed[i*operatorSize : (i+1)*operatorSize])
		if err != nil {
			return Preset{}, err
		}
		preset.Operators[NumOperators-1-i] = operator
	}

	rates := packed[pitchEnvelopeOffset : pitchEnvelopeOffset+NumEnvelopeSegments]
	levels := packed[pitchEnvelopeOffset+NumEnvelopeSegments : pitchEnvelopeOffset+2*NumEnvelopeSegments]
	pitchEnvelope, err := NewEnvelope(rates, levels)
	if err != nil {
		return Preset{}, err
	}
	preset.PitchEnvelope = pitchEnvelope

	preset.AlgorithmID = int(packed[110])
	preset.OscillatorKeySync = (packed[111]>>3)&1 == 1
	preset.FeedbackLevel = int(packed[111] & 0x07)
	preset.LFOSpeed = int(packed[112])
	preset.LFODelay = int(packed[113])
	preset.LFOPitchModDepth = int(packed[114])
	preset.LFOAmplitudeModDepth = int(packed[115])
	preset.LFOPitchModSensitivity = int(packed[116]>>4) & 0x07
	waveform, ok := WaveformFromCode(int(packed[116]>>1) & 0x07)
	if !ok {
		return Preset{}, fmt.Errorf("%w: code %v", ErrInvalidWaveform, int(packed[116]>>1)&0x07)
	}
	preset.LFOWaveform = waveform
	preset.LFOKeySync = packed[116]&1 == 1
	preset.Transpose = int(packed[117])

	// The name bytes may be garbage, so go through the lossy scrub instead
	// of converting directly to a string.
	preset.Name = NormalizeName(packed[nameOffset : nameOffset+nameSize])
	return preset, nil
}

// decodeOperator unpacks one 17-byte packed operator record.
func decodeOperator(packed []byte) (Operator, error) {
	envelope, err := NewEnvelope(packed[0:NumEnvelopeSegments], packed[NumEnvelopeSegments:2*NumEnvelopeSegments])
	if err != nil {
		return Operator{}, err
	}
	mode := Fixed
	if packed[15]&1 == 1 {
		mode = Ratio
	}
	return Operator{
		Envelope:          envelope,
		ScalingBreakPoint: int(packed[8]),
		ScalingLeftDepth:  int(packed[9]),
		ScalingRightDepth: int(packed[10]),
		ScalingLeftCurve:  int(packed[11] & 0x03),
		ScalingRightCurve: int(packed[11]>>2) & 0x03,

		// -7 to 7 stored as 0-14 in the preset
		Detune: -int((packed[12] >> 3) & 0x0F),

		RateScaling:           int(packed[12] & 0x07),
		VelocitySensitivity:   int(packed[13]>>2) & 0x07,
		ModulationSensitivity: int(packed[13] & 0x03),
		OutputLevel:           int(packed[14]),
		Mode:                  mode,
		FrequencyCoarse:       int(packed[15]>>1) & 0x1F,
		FrequencyFine:         int(packed[16]),
	}, nil
}
