package dx7

// Output is the destination of an operator: either another operator or the
// amplifier output stage.
type Output int

const (
	Op1 Output = iota
	Op2
	Op3
	Op4
	Op5
	Op6

	// Amplifier is the final output stage.
	Amplifier
)

var outputNames = [...]string{"Operator 1", "Operator 2", "Operator 3", "Operator 4", "Operator 5", "Operator 6", "Amplifier"}

// IsOperator reports whether the output is an operator rather than the
// amplifier.
func (o Output) IsOperator() bool {
	return o != Amplifier
}

// OutputForOperator maps an operator index 0-5 to the corresponding
// Output; ok is false for out of range indices.
func OutputForOperator(operator int) (out Output, ok bool) {
	if operator < 0 || operator >= NumOperators {
		return 0, false
	}
	return Output(operator), true
}

func (o Output) String() string {
	if o < 0 || int(o) >= len(outputNames) {
		return "???"
	}
	return outputNames[o]
}

// AlgorithmCount is the number of routing algorithms of the DX7.
const AlgorithmCount = 32

// Algorithm is the routing between the six operators and the amplifier.
// Each operator has a non-empty, duplicate-free list of destinations; a
// destination equal to the operator itself is the feedback loop of the
// algorithm.
type Algorithm struct {
	routing [NumOperators][]Output
}

// Routing returns the destinations of the operator, or nil if the index is
// out of range. The returned slice is shared read-only state and must not
// be modified.
func (a *Algorithm) Routing(operator int) []Output {
	if operator < 0 || operator >= NumOperators {
		return nil
	}
	return a.routing[operator]
}

// IsCarrier reports whether the operator exists and routes only to the
// amplifier.
func (a *Algorithm) IsCarrier(operator int) bool {
	routing := a.Routing(operator)
	return len(routing) == 1 && routing[0] == Amplifier
}

// IsFeedback reports whether the operator exists and feeds back into
// itself.
func (a *Algorithm) IsFeedback(operator int) bool {
	out, ok := OutputForOperator(operator)
	if !ok {
		return false
	}
	for _, dest := range a.Routing(operator) {
		if dest == out {
			return true
		}
	}
	return false
}

// Algorithms returns all 32 algorithms in the canonical order: index 0 is
// algorithm 1 of the DX7 front panel. The table is built once and is
// read-only after that; safe for concurrent readers.
func Algorithms() []Algorithm {
	return algorithmTable[:]
}

// AlgorithmByID returns the algorithm for a preset AlgorithmID; ok is
// false outside 0-31.
func AlgorithmByID(id int) (a *Algorithm, ok bool) {
	if id < 0 || id >= AlgorithmCount {
		return nil, false
	}
	return &algorithmTable[id], true
}

// algorithmTable encodes the fixed hardware routing of the DX7; the
// topologies are data, not something derivable. Should be immutable, but
// Go not supporting that, then this will have to suffice: DO NOT EVER
// CHANGE THIS TABLE.
var algorithmTable = [AlgorithmCount]Algorithm{
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Amplifier}, {Op3}, {Op4}, {Op5, Op6}}},                             // 1
	{[NumOperators][]Output{{Amplifier}, {Op1, Op2}, {Amplifier}, {Op3}, {Op4}, {Op5}}},                             // 2
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Op2}, {Amplifier}, {Op4}, {Op5, Op6}}},                             // 3
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Op2}, {Amplifier}, {Op4}, {Op5, Amplifier}}},                       // 4
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Amplifier}, {Op3}, {Amplifier}, {Op5, Op6}}},                       // 5
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Amplifier}, {Op3}, {Amplifier}, {Op5, Amplifier}}},                 // 6
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Amplifier}, {Op3}, {Op3}, {Op5, Op6}}},                             // 7
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Amplifier}, {Op3, Op4}, {Op3}, {Op5}}},                             // 8
	{[NumOperators][]Output{{Amplifier}, {Op1, Op2}, {Amplifier}, {Op3}, {Op3}, {Op5}}},                             // 9
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Op2, Op3}, {Amplifier}, {Op4}, {Op4}}},                             // 10
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Op2}, {Amplifier}, {Op4}, {Op4, Op6}}},                             // 11
	{[NumOperators][]Output{{Amplifier}, {Op1, Op2}, {Amplifier}, {Op3}, {Op3}, {Op3}}},                             // 12
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Amplifier}, {Op3}, {Op3}, {Op3, Op6}}},                             // 13
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Amplifier}, {Op3}, {Op4}, {Op4, Op6}}},                             // 14
	{[NumOperators][]Output{{Amplifier}, {Op1, Op2}, {Amplifier}, {Op3}, {Op4}, {Op4}}},                             // 15
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Op1}, {Op3}, {Op1}, {Op5, Op6}}},                                   // 16
	{[NumOperators][]Output{{Amplifier}, {Op1, Op2}, {Op1}, {Op3}, {Op1}, {Op5}}},                                   // 17
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Op1, Op3}, {Op1}, {Op4}, {Op5}}},                                   // 18
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Op2}, {Amplifier}, {Amplifier}, {Op4, Op5, Op6}}},                  // 19
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Op1, Op2, Op3}, {Amplifier}, {Op4}, {Op4}}},                  // 20
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Op1, Op2, Op3}, {Amplifier}, {Amplifier}, {Op4, Op5}}},       // 21
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Amplifier}, {Amplifier}, {Amplifier}, {Op3, Op4, Op5, Op6}}},       // 22
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Op2}, {Amplifier}, {Amplifier}, {Op4, Op5, Op6}}},            // 23
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Amplifier}, {Amplifier}, {Amplifier}, {Op3, Op4, Op5, Op6}}}, // 24
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Amplifier}, {Amplifier}, {Amplifier}, {Op4, Op5, Op6}}},      // 25
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Op2}, {Amplifier}, {Op4}, {Op4, Op6}}},                       // 26
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Op2, Op3}, {Amplifier}, {Op4}, {Op4}}},                       // 27
	{[NumOperators][]Output{{Amplifier}, {Op1}, {Amplifier}, {Op3}, {Op4, Op5}, {Amplifier}}},                       // 28
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Amplifier}, {Op3}, {Amplifier}, {Op5, Op6}}},                 // 29
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Amplifier}, {Op3}, {Op4, Op5}, {Amplifier}}},                 // 30
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Amplifier}, {Amplifier}, {Amplifier}, {Op5, Op6}}},           // 31
	{[NumOperators][]Output{{Amplifier}, {Amplifier}, {Amplifier}, {Amplifier}, {Amplifier}, {Amplifier, Op6}}},     // 32
}
