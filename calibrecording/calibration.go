package calibrecording

import (
	"strconv"
	"strings"

	"github.com/sarchlab/qcal/deviceparams"
)

// GateParamRow is one gate's calibration in the gate_params table.
// LengthKnown and ErrorKnown distinguish a reported zero from a value
// the backend did not report; the columns themselves stay primitive.
type GateParamRow struct {
	Gate        string
	Qubits      string
	LengthNS    float64
	LengthKnown bool
	Error       float64
	ErrorKnown  bool
}

// ReadoutErrorRow is one qubit's readout error in the readout_errors
// table.
type ReadoutErrorRow struct {
	Qubit      int
	Error      float64
	ErrorKnown bool
}

// ThermalRelaxationRow is one qubit's relaxation constants in the
// thermal_relaxation table. Unreported constants are stored as +Inf,
// the same sentinel the extractor returns.
type ThermalRelaxationRow struct {
	Qubit   int
	T1Us    float64
	T2Us    float64
	FreqGHz float64
}

// RecordCalibration extracts all calibration parameters from a report
// and writes them into the recorder's gate_params, readout_errors, and
// thermal_relaxation tables.
func RecordCalibration(rec DataRecorder, p *deviceparams.Properties) {
	rec.CreateTable("gate_params", GateParamRow{})
	rec.CreateTable("readout_errors", ReadoutErrorRow{})
	rec.CreateTable("thermal_relaxation", ThermalRelaxationRow{})

	for _, entry := range deviceparams.GateParamValues(p) {
		row := GateParamRow{
			Gate:   entry.Gate,
			Qubits: joinQubits(entry.Qubits),
		}

		if entry.LengthNS != nil {
			row.LengthNS = *entry.LengthNS
			row.LengthKnown = true
		}

		if entry.Error != nil {
			row.Error = *entry.Error
			row.ErrorKnown = true
		}

		rec.InsertData("gate_params", row)
	}

	for qubit, err := range deviceparams.ReadoutErrorValues(p) {
		row := ReadoutErrorRow{Qubit: qubit}

		if err != nil {
			row.Error = *err
			row.ErrorKnown = true
		}

		rec.InsertData("readout_errors", row)
	}

	for qubit, entry := range deviceparams.ThermalRelaxationValues(p) {
		rec.InsertData("thermal_relaxation", ThermalRelaxationRow{
			Qubit:   qubit,
			T1Us:    entry.T1,
			T2Us:    entry.T2,
			FreqGHz: entry.Freq,
		})
	}

	rec.Flush()
}

func joinQubits(qubits []int) string {
	parts := make([]string, 0, len(qubits))
	for _, q := range qubits {
		parts = append(parts, strconv.Itoa(q))
	}

	return strings.Join(parts, ",")
}
