package deviceparams

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func value(v float64) *float64 {
	return &v
}

var _ = Describe("GateLengthValues", func() {
	It("should convert millisecond durations to nanoseconds", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "cx", Qubits: []int{0, 1}, Parameters: []Parameter{
				{Name: "gate_length", Unit: "ms", Value: value(0.5)},
			}},
		}}

		entries := GateLengthValues(p)

		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Gate).To(Equal("cx"))
		Expect(entries[0].Qubits).To(Equal([]int{0, 1}))
		Expect(*entries[0].LengthNS).To(BeNumerically("==", 0.5*1e6))
	})

	It("should keep nanosecond durations unchanged", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "x", Qubits: []int{0}, Parameters: []Parameter{
				{Name: "gate_length", Unit: "ns", Value: value(35.5)},
			}},
		}}

		entries := GateLengthValues(p)

		Expect(*entries[0].LengthNS).To(BeNumerically("==", 35.5))
	})

	It("should keep unitless durations unchanged", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "x", Qubits: []int{0}, Parameters: []Parameter{
				{Name: "gate_length", Value: value(120)},
			}},
		}}

		entries := GateLengthValues(p)

		Expect(*entries[0].LengthNS).To(BeNumerically("==", 120))
	})

	It("should keep durations with unknown units unchanged", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "x", Qubits: []int{0}, Parameters: []Parameter{
				{Name: "gate_length", Unit: "furlongs", Value: value(120)},
			}},
		}}

		entries := GateLengthValues(p)

		Expect(*entries[0].LengthNS).To(BeNumerically("==", 120))
	})

	It("should report no duration when gate_length is absent", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "x", Qubits: []int{0}, Parameters: []Parameter{
				{Name: "gate_error", Value: value(0.001)},
			}},
		}}

		entries := GateLengthValues(p)

		Expect(entries[0].LengthNS).To(BeNil())
	})

	It("should report no duration when gate_length has no value", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "x", Qubits: []int{0}, Parameters: []Parameter{
				{Name: "gate_length", Unit: "ns"},
			}},
		}}

		entries := GateLengthValues(p)

		Expect(entries[0].LengthNS).To(BeNil())
	})

	It("should use the first entry when gate_length is duplicated", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "x", Qubits: []int{0}, Parameters: []Parameter{
				{Name: "gate_length", Unit: "ns", Value: value(10)},
				{Name: "gate_length", Unit: "ns", Value: value(99)},
			}},
		}}

		entries := GateLengthValues(p)

		Expect(*entries[0].LengthNS).To(BeNumerically("==", 10))
	})

	It("should preserve report order and duplicate gates", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "x", Qubits: []int{1}},
			{Gate: "x", Qubits: []int{0}},
			{Gate: "x", Qubits: []int{1}},
		}}

		entries := GateLengthValues(p)

		Expect(entries).To(HaveLen(3))
		Expect(entries[0].Qubits).To(Equal([]int{1}))
		Expect(entries[1].Qubits).To(Equal([]int{0}))
		Expect(entries[2].Qubits).To(Equal([]int{1}))
	})
})

var _ = Describe("GateErrorValues", func() {
	It("should return error rates verbatim without scaling", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "cx", Qubits: []int{0, 1}, Parameters: []Parameter{
				{Name: "gate_error", Unit: "ms", Value: value(0.0125)},
			}},
		}}

		entries := GateErrorValues(p)

		Expect(*entries[0].Error).To(BeNumerically("==", 0.0125))
	})

	It("should report no error when gate_error is absent", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "cx", Qubits: []int{0, 1}, Parameters: []Parameter{
				{Name: "gate_length", Unit: "ns", Value: value(300)},
			}},
		}}

		entries := GateErrorValues(p)

		Expect(entries[0].Error).To(BeNil())
	})

	It("should report no error when gate_error has no value", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "cx", Qubits: []int{0, 1}, Parameters: []Parameter{
				{Name: "gate_error"},
			}},
		}}

		entries := GateErrorValues(p)

		Expect(entries[0].Error).To(BeNil())
	})
})

var _ = Describe("GateParamValues", func() {
	It("should combine length and error extraction per gate", func() {
		p := &Properties{Gates: []Gate{
			{Gate: "cx", Qubits: []int{0, 1}, Parameters: []Parameter{
				{Name: "gate_length", Unit: "us", Value: value(0.3)},
				{Name: "gate_error", Value: value(0.01)},
			}},
			{Gate: "x", Qubits: []int{0}, Parameters: []Parameter{
				{Name: "gate_error", Value: value(0.001)},
			}},
			{Gate: "id", Qubits: []int{1}},
		}}

		combined := GateParamValues(p)
		lengths := GateLengthValues(p)
		errors := GateErrorValues(p)

		Expect(combined).To(HaveLen(3))
		for i, entry := range combined {
			Expect(entry.Gate).To(Equal(lengths[i].Gate))
			Expect(entry.Qubits).To(Equal(lengths[i].Qubits))
			Expect(entry.LengthNS).To(Equal(lengths[i].LengthNS))
			Expect(entry.Error).To(Equal(errors[i].Error))
		}
	})
})

var _ = Describe("ReadoutErrorValues", func() {
	It("should return one value per qubit in qubit order", func() {
		p := &Properties{Qubits: [][]Parameter{
			{{Name: "readout_error", Value: value(0.02)}},
			{{Name: "T1", Unit: "µs", Value: value(80)}},
			{{Name: "readout_error", Value: value(0.05)}},
		}}

		values := ReadoutErrorValues(p)

		Expect(values).To(HaveLen(3))
		Expect(*values[0]).To(BeNumerically("==", 0.02))
		Expect(values[1]).To(BeNil())
		Expect(*values[2]).To(BeNumerically("==", 0.05))
	})

	It("should treat a valueless readout_error as absent", func() {
		p := &Properties{Qubits: [][]Parameter{
			{{Name: "readout_error"}},
		}}

		values := ReadoutErrorValues(p)

		Expect(values[0]).To(BeNil())
	})
})

var _ = Describe("ThermalRelaxationValues", func() {
	It("should default everything to +Inf on an empty qubit", func() {
		p := &Properties{Qubits: [][]Parameter{{}}}

		entries := ThermalRelaxationValues(p)

		Expect(entries).To(HaveLen(1))
		Expect(math.IsInf(entries[0].T1, 1)).To(BeTrue())
		Expect(math.IsInf(entries[0].T2, 1)).To(BeTrue())
		Expect(math.IsInf(entries[0].Freq, 1)).To(BeTrue())
	})

	It("should convert T1 and T2 to microseconds", func() {
		p := &Properties{Qubits: [][]Parameter{
			{
				{Name: "T1", Unit: "ms", Value: value(0.09)},
				{Name: "T2", Unit: "ns", Value: value(70000)},
			},
		}}

		entries := ThermalRelaxationValues(p)

		Expect(entries[0].T1).To(BeNumerically("~", 90, 1e-9))
		Expect(entries[0].T2).To(BeNumerically("~", 70, 1e-9))
	})

	It("should convert frequency to gigahertz", func() {
		p := &Properties{Qubits: [][]Parameter{
			{{Name: "frequency", Unit: "MHz", Value: value(5000)}},
		}}

		entries := ThermalRelaxationValues(p)

		Expect(entries[0].Freq).To(BeNumerically("~", 5.0, 1e-12))
	})

	It("should truncate T2 to 2*T1", func() {
		p := &Properties{Qubits: [][]Parameter{
			{
				{Name: "T1", Unit: "µs", Value: value(100)},
				{Name: "T2", Unit: "µs", Value: value(250)},
			},
		}}

		entries := ThermalRelaxationValues(p)

		Expect(entries[0].T1).To(BeNumerically("==", 100))
		Expect(entries[0].T2).To(BeNumerically("==", 200))
	})

	It("should keep T2 when it is within 2*T1", func() {
		p := &Properties{Qubits: [][]Parameter{
			{
				{Name: "T1", Unit: "µs", Value: value(100)},
				{Name: "T2", Unit: "µs", Value: value(150)},
			},
		}}

		entries := ThermalRelaxationValues(p)

		Expect(entries[0].T2).To(BeNumerically("==", 150))
	})

	It("should derive T2 from T1 when T2 is not reported", func() {
		p := &Properties{Qubits: [][]Parameter{
			{{Name: "T1", Unit: "us", Value: value(50)}},
		}}

		entries := ThermalRelaxationValues(p)

		Expect(entries[0].T1).To(BeNumerically("==", 50))
		Expect(entries[0].T2).To(BeNumerically("==", 100))
		Expect(math.IsInf(entries[0].Freq, 1)).To(BeTrue())
	})

	It("should keep T2 finite when T1 is not reported", func() {
		p := &Properties{Qubits: [][]Parameter{
			{{Name: "T2", Unit: "µs", Value: value(70)}},
		}}

		entries := ThermalRelaxationValues(p)

		Expect(math.IsInf(entries[0].T1, 1)).To(BeTrue())
		Expect(entries[0].T2).To(BeNumerically("==", 70))
	})

	It("should pass values with unknown units through unscaled", func() {
		p := &Properties{Qubits: [][]Parameter{
			{
				{Name: "T1", Unit: "furlongs", Value: value(60)},
				{Name: "frequency", Value: value(4.97)},
			},
		}}

		entries := ThermalRelaxationValues(p)

		Expect(entries[0].T1).To(BeNumerically("==", 60))
		Expect(entries[0].Freq).To(BeNumerically("==", 4.97))
	})
})
