package deviceparams

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Parameter is one named calibration attribute reported by a backend.
// Value is nil when the backend reports the parameter without a
// number, which is treated the same as not reporting it at all. Unit
// may be empty, meaning the value is already in the unit the caller
// asks for.
type Parameter struct {
	Name  string   `json:"name"`
	Date  string   `json:"date,omitempty"`
	Unit  string   `json:"unit,omitempty"`
	Value *float64 `json:"value,omitempty"`
}

// Gate describes the calibration of one gate instance. The same gate
// name may appear multiple times, once per qubit group it is tuned on,
// and a report may legitimately carry duplicate entries.
type Gate struct {
	Gate       string      `json:"gate"`
	Qubits     []int       `json:"qubits"`
	Parameters []Parameter `json:"parameters"`
}

// Properties is the device-properties report of one backend. Qubits
// holds one parameter list per qubit, in qubit-index order. The report
// is a read-only snapshot; nothing in this package mutates it.
type Properties struct {
	BackendName    string        `json:"backend_name,omitempty"`
	BackendVersion string        `json:"backend_version,omitempty"`
	LastUpdateDate string        `json:"last_update_date,omitempty"`
	Qubits         [][]Parameter `json:"qubits"`
	Gates          []Gate        `json:"gates"`
}

// ParseProperties decodes a device-properties report from its JSON
// wire format.
func ParseProperties(r io.Reader) (*Properties, error) {
	p := &Properties{}

	dec := json.NewDecoder(r)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("decoding properties report: %w", err)
	}

	return p, nil
}

// LoadProperties reads and decodes a device-properties report from a
// JSON file.
func LoadProperties(path string) (*Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseProperties(f)
}

// Provider supplies device-properties reports. Implementations may
// read files, query a hardware vendor's API, or replay recorded
// snapshots.
type Provider interface {
	Properties() (*Properties, error)
}

// FileProvider is a Provider that loads the report from a JSON file on
// every call.
type FileProvider struct {
	Path string
}

// Properties loads the report from the provider's file.
func (p FileProvider) Properties() (*Properties, error) {
	return LoadProperties(p.Path)
}
