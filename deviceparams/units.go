// Package deviceparams extracts calibration parameters from the
// properties report of a quantum hardware backend, normalizing values
// to fixed physical units.
package deviceparams

// UnitTable maps unit labels to the scale factor that converts a value
// carrying that label into the table's target unit.
type UnitTable map[string]float64

// ScaleOf returns the scale factor for a unit label. Labels that are
// not in the table, including the empty label, scale by 1: a value
// with an unrecognized unit is taken to already be in the target unit.
func (t UnitTable) ScaleOf(unit string) float64 {
	if s, ok := t[unit]; ok {
		return s
	}
	return 1
}

// MicrosecondUnits converts time values to microseconds.
var MicrosecondUnits = UnitTable{
	"s":  1e6,
	"ms": 1e3,
	"µs": 1,
	"us": 1,
	"ns": 1e-3,
}

// NanosecondUnits converts time values to nanoseconds.
var NanosecondUnits = UnitTable{
	"s":  1e9,
	"ms": 1e6,
	"µs": 1e3,
	"us": 1e3,
	"ns": 1,
}

// GigahertzUnits converts frequency values to gigahertz.
var GigahertzUnits = UnitTable{
	"Hz":  1e-9,
	"KHz": 1e-6,
	"MHz": 1e-3,
	"GHz": 1,
	"THz": 1e3,
}
