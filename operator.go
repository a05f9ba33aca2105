package dx7

// Operator is one of the six modulator/carrier units of a voice. The
// operator ON/OFF state is not part of an operator: the DX7 stores it only
// in parameter change sysex messages while editing a voice.
type Operator struct {
	Envelope Envelope

	// Keyboard level scaling. The depths are 0-99 and the curves 0-3.
	ScalingBreakPoint int
	ScalingLeftDepth  int
	ScalingRightDepth int
	ScalingLeftCurve  int
	ScalingRightCurve int

	// Detune is -7 to 7, stored as 0-14 in the packed voice.
	Detune int

	RateScaling           int // 0-7
	VelocitySensitivity   int // 0-7
	ModulationSensitivity int // 0-3
	OutputLevel           int // 0-99
	Mode                  OperatorMode
	FrequencyCoarse       int // 0-31
	FrequencyFine         int // 0-99
}

// DefaultOperator returns the init voice operator. The last envelope
// generator has a different default level according to the DX7 II manual.
func DefaultOperator() Operator {
	envelope := DefaultEnvelope()
	envelope.Levels[NumEnvelopeSegments-1] = 0
	return Operator{
		Envelope:          envelope,
		ScalingBreakPoint: 39,
		Mode:              Fixed,
		FrequencyCoarse:   1,
	}
}

// Normalize returns a copy with every parameter clamped to its valid
// range. There are no cross-field invariants to enforce.
func (o Operator) Normalize() Operator {
	o.Envelope = o.Envelope.Normalize()
	o.ScalingBreakPoint = clamp(o.ScalingBreakPoint, 0, 99)
	o.ScalingLeftDepth = clamp(o.ScalingLeftDepth, 0, 99)
	o.ScalingRightDepth = clamp(o.ScalingRightDepth, 0, 99)
	o.ScalingLeftCurve = clamp(o.ScalingLeftCurve, 0, 3)
	o.ScalingRightCurve = clamp(o.ScalingRightCurve, 0, 3)
	o.Detune = clamp(o.Detune, 0, 14)
	o.RateScaling = clamp(o.RateScaling, 0, 7)
	o.VelocitySensitivity = clamp(o.VelocitySensitivity, 0, 7)
	o.ModulationSensitivity = clamp(o.ModulationSensitivity, 0, 3)
	o.OutputLevel = clamp(o.OutputLevel, 0, 99)
	o.FrequencyCoarse = clamp(o.FrequencyCoarse, 0, 31)
	o.FrequencyFine = clamp(o.FrequencyFine, 0, 99)
	return o
}
