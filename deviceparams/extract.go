package deviceparams

import "math"

// GateLengthEntry is the duration extracted for one gate instance.
// LengthNS is in nanoseconds and is nil when the report carries no
// usable gate_length for the gate.
type GateLengthEntry struct {
	Gate     string
	Qubits   []int
	LengthNS *float64
}

// GateErrorEntry is the error rate extracted for one gate instance.
// Error is a unitless probability and is nil when the report carries
// no usable gate_error for the gate.
type GateErrorEntry struct {
	Gate   string
	Qubits []int
	Error  *float64
}

// GateParamEntry combines the duration and error rate of one gate
// instance.
type GateParamEntry struct {
	Gate     string
	Qubits   []int
	LengthNS *float64
	Error    *float64
}

// ThermalRelaxationEntry holds the relaxation constants of one qubit.
// T1 and T2 are in microseconds, Freq in gigahertz. A constant the
// backend does not report is +Inf: no known decay, dephasing, or
// frequency constraint, which is not the same as a field being
// omitted.
type ThermalRelaxationEntry struct {
	T1   float64
	T2   float64
	Freq float64
}

// GateLengthValues returns the duration of every gate in the report,
// in nanoseconds, in report order. Durations declared in another time
// unit are rescaled; unrecognized or missing units leave the value
// untouched.
func GateLengthValues(p *Properties) []GateLengthEntry {
	entries := make([]GateLengthEntry, 0, len(p.Gates))

	for _, g := range p.Gates {
		entries = append(entries, GateLengthEntry{
			Gate:     g.Gate,
			Qubits:   g.Qubits,
			LengthNS: gateLength(g),
		})
	}

	return entries
}

// GateErrorValues returns the error rate of every gate in the report,
// in report order. Error rates are unitless and never rescaled.
func GateErrorValues(p *Properties) []GateErrorEntry {
	entries := make([]GateErrorEntry, 0, len(p.Gates))

	for _, g := range p.Gates {
		entries = append(entries, GateErrorEntry{
			Gate:   g.Gate,
			Qubits: g.Qubits,
			Error:  gateError(g),
		})
	}

	return entries
}

// GateParamValues returns the duration and error rate of every gate in
// the report in a single pass, in report order.
func GateParamValues(p *Properties) []GateParamEntry {
	entries := make([]GateParamEntry, 0, len(p.Gates))

	for _, g := range p.Gates {
		entries = append(entries, GateParamEntry{
			Gate:     g.Gate,
			Qubits:   g.Qubits,
			LengthNS: gateLength(g),
			Error:    gateError(g),
		})
	}

	return entries
}

// ReadoutErrorValues returns the readout error of each qubit, indexed
// by qubit position. Qubits without a usable readout_error get nil.
func ReadoutErrorValues(p *Properties) []*float64 {
	values := make([]*float64, 0, len(p.Qubits))

	for _, qubit := range p.Qubits {
		var value *float64
		if param := findParameter(qubit, "readout_error"); param != nil {
			value = param.Value
		}
		values = append(values, value)
	}

	return values
}

// ThermalRelaxationValues returns (T1, T2, frequency) for each qubit,
// indexed by qubit position. T1 and T2 are converted to microseconds
// and frequency to gigahertz; anything not reported defaults to +Inf.
//
// T2 cannot exceed 2*T1 for a physical noise channel. Backends
// occasionally report such values, so T2 is truncated to 2*T1 here.
// The truncation also runs over the +Inf defaults, so a qubit with a
// known T1 and no reported T2 ends up with T2 = 2*T1.
func ThermalRelaxationValues(p *Properties) []ThermalRelaxationEntry {
	entries := make([]ThermalRelaxationEntry, 0, len(p.Qubits))

	for _, qubit := range p.Qubits {
		entry := ThermalRelaxationEntry{
			T1:   scaledValue(findParameter(qubit, "T1"), MicrosecondUnits),
			T2:   scaledValue(findParameter(qubit, "T2"), MicrosecondUnits),
			Freq: scaledValue(findParameter(qubit, "frequency"), GigahertzUnits),
		}

		entry.T2 = math.Min(2*entry.T1, entry.T2)

		entries = append(entries, entry)
	}

	return entries
}

func gateLength(g Gate) *float64 {
	param := findParameter(g.Parameters, "gate_length")
	if param == nil || param.Value == nil {
		return nil
	}

	length := *param.Value * NanosecondUnits.ScaleOf(param.Unit)

	return &length
}

func gateError(g Gate) *float64 {
	param := findParameter(g.Parameters, "gate_error")
	if param == nil {
		return nil
	}

	return param.Value
}

// scaledValue converts a parameter's value into the table's target
// unit, or +Inf when the parameter is absent or valueless.
func scaledValue(param *Parameter, units UnitTable) float64 {
	if param == nil || param.Value == nil {
		return math.Inf(1)
	}

	return *param.Value * units.ScaleOf(param.Unit)
}

// findParameter scans a parameter list in order and returns the first
// entry with the given name, or nil. Lists may carry zero, one, or
// duplicate entries per name; only the first match is ever used.
func findParameter(params []Parameter, name string) *Parameter {
	for i := range params {
		if params[i].Name == name {
			return &params[i]
		}
	}

	return nil
}
