package dx7

// Preset is one complete voice: six operators, a pitch envelope and the
// global parameters. A preset references its routing only through
// AlgorithmID; resolve it with AlgorithmByID.
type Preset struct {
	Name      string
	Operators [NumOperators]Operator

	PitchEnvelope Envelope

	// AlgorithmID selects one of the 32 routing algorithms, 0-31.
	AlgorithmID int

	OscillatorKeySync bool
	FeedbackLevel     int // 0-7

	LFOSpeed               int // 0-99
	LFODelay               int // 0-99
	LFOPitchModDepth       int // 0-99
	LFOPitchModSensitivity int
	LFOAmplitudeModDepth   int // 0-99
	LFOWaveform            Waveform
	LFOKeySync             bool

	Transpose int // 0-48
}

// DefaultPreset returns the init voice. Only the first operator has a
// non-zero output level.
func DefaultPreset() Preset {
	var operators [NumOperators]Operator
	for i := range operators {
		operators[i] = DefaultOperator()
	}
	operators[0].OutputLevel = 99
	return Preset{
		Name:                   DefaultPresetName,
		Operators:              operators,
		PitchEnvelope:          EnvelopeFromRateAndLevel(99, 50),
		AlgorithmID:            0,
		OscillatorKeySync:      true,
		LFOSpeed:               35,
		LFOPitchModSensitivity: 3,
		LFOWaveform:            Triangle,
		LFOKeySync:             true,
		Transpose:              24,
	}
}

// Normalize returns a copy with every parameter clamped to its valid
// range. Normalization is done outside of reading to enable reuse.
func (p Preset) Normalize() Preset {
	for i := range p.Operators {
		p.Operators[i] = p.Operators[i].Normalize()
	}
	p.PitchEnvelope = p.PitchEnvelope.Normalize()
	p.AlgorithmID = clamp(p.AlgorithmID, 0, 31)
	p.FeedbackLevel = clamp(p.FeedbackLevel, 0, 7)
	p.LFOSpeed = clamp(p.LFOSpeed, 0, 99)
	p.LFODelay = clamp(p.LFODelay, 0, 99)
	p.LFOPitchModDepth = clamp(p.LFOPitchModDepth, 0, 99)
	p.LFOPitchModSensitivity = clamp(p.LFOPitchModSensitivity, 0, 99)
	p.LFOAmplitudeModDepth = clamp(p.LFOAmplitudeModDepth, 0, 99)
	p.Transpose = clamp(p.Transpose, 0, 48)
	return p
}
