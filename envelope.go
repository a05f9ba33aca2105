package dx7

import (
	"errors"
)

// NumEnvelopeSegments is the number of rate/level pairs in every envelope.
const NumEnvelopeSegments = 4

// ErrLengthMismatch is returned when an envelope is constructed from rate
// or level sequences that are not exactly NumEnvelopeSegments long. The
// bank codec always slices at fixed offsets, so hitting this indicates a
// programming error rather than a malformed dump.
var ErrLengthMismatch = errors.New("envelope rates and levels must have exactly 4 elements")

// Envelope is a four stage rate/level envelope, used both for the operator
// envelope generators and the pitch envelope of a voice.
type Envelope struct {
	Rates  [NumEnvelopeSegments]int `yaml:",flow"`
	Levels [NumEnvelopeSegments]int `yaml:",flow"`
}

// NewEnvelope creates an envelope from raw rate and level bytes. Both
// slices must have exactly NumEnvelopeSegments elements.
func NewEnvelope(rates, levels []byte) (Envelope, error) {
	if len(rates) != NumEnvelopeSegments || len(levels) != NumEnvelopeSegments {
		return Envelope{}, ErrLengthMismatch
	}
	var e Envelope
	for i := 0; i < NumEnvelopeSegments; i++ {
		e.Rates[i] = int(rates[i])
		e.Levels[i] = int(levels[i])
	}
	return e, nil
}

// EnvelopeFromRateAndLevel creates an envelope where every segment has the
// same rate and level.
func EnvelopeFromRateAndLevel(rate, level int) Envelope {
	var e Envelope
	for i := range e.Rates {
		e.Rates[i] = rate
		e.Levels[i] = level
	}
	return e
}

// DefaultEnvelope returns the init voice envelope, all rates and levels at
// maximum.
func DefaultEnvelope() Envelope {
	return EnvelopeFromRateAndLevel(99, 99)
}

// Normalize returns a copy with every rate and level clamped to 0-99.
func (e Envelope) Normalize() Envelope {
	for i := range e.Rates {
		e.Rates[i] = clamp(e.Rates[i], 0, 99)
		e.Levels[i] = clamp(e.Levels[i], 0, 99)
	}
	return e
}
