// Package inspection serves the calibration of a quantum backend over
// HTTP, for debugging properties reports and the values extracted from
// them.
package inspection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/sarchlab/qcal/deviceparams"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// Inspector turns a device-properties provider into a web server that
// exposes the raw report and the extracted calibration parameters.
type Inspector struct {
	provider   deviceparams.Provider
	portNumber int
}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// WithPortNumber sets the port number of the inspection server.
func (i *Inspector) WithPortNumber(portNumber int) *Inspector {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the inspection server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	i.portNumber = portNumber

	return i
}

// RegisterProvider registers the properties provider to serve from.
func (i *Inspector) RegisterProvider(p deviceparams.Provider) {
	i.provider = p
}

// Router builds the HTTP routes of the inspection server.
func (i *Inspector) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/properties", i.serveProperties)
	r.HandleFunc("/api/gates", i.serveGates)
	r.HandleFunc("/api/readout", i.serveReadout)
	r.HandleFunc("/api/relaxation", i.serveRelaxation)
	r.HandleFunc("/api/inspect", i.inspectReport)
	r.HandleFunc("/api/resource", i.listResources)
	r.HandleFunc("/api/profile", i.collectProfile)

	return r
}

// StartServer starts the inspection server and returns the port it
// listens on.
func (i *Inspector) StartServer() int {
	actualPort := ":0"
	if i.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(i.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	port := listener.Addr().(*net.TCPAddr).Port
	fmt.Fprintf(os.Stderr,
		"Inspecting calibration with http://localhost:%d\n", port)

	go func() {
		err = http.Serve(listener, i.Router())
		dieOnErr(err)
	}()

	return port
}

func (i *Inspector) properties(w http.ResponseWriter) *deviceparams.Properties {
	p, err := i.provider.Properties()
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprintf(w, "Error: %s", err)
		return nil
	}

	return p
}

func (i *Inspector) serveProperties(w http.ResponseWriter, _ *http.Request) {
	p := i.properties(w)
	if p == nil {
		return
	}

	writeJSON(w, p)
}

type gateRsp struct {
	Gate     string   `json:"gate"`
	Qubits   []int    `json:"qubits"`
	LengthNS *float64 `json:"length_ns"`
	Error    *float64 `json:"error"`
}

func (i *Inspector) serveGates(w http.ResponseWriter, _ *http.Request) {
	p := i.properties(w)
	if p == nil {
		return
	}

	entries := deviceparams.GateParamValues(p)
	rsp := make([]gateRsp, 0, len(entries))
	for _, e := range entries {
		rsp = append(rsp, gateRsp{
			Gate:     e.Gate,
			Qubits:   e.Qubits,
			LengthNS: e.LengthNS,
			Error:    e.Error,
		})
	}

	writeJSON(w, rsp)
}

type readoutRsp struct {
	Qubit int      `json:"qubit"`
	Error *float64 `json:"error"`
}

func (i *Inspector) serveReadout(w http.ResponseWriter, _ *http.Request) {
	p := i.properties(w)
	if p == nil {
		return
	}

	values := deviceparams.ReadoutErrorValues(p)
	rsp := make([]readoutRsp, 0, len(values))
	for qubit, err := range values {
		rsp = append(rsp, readoutRsp{Qubit: qubit, Error: err})
	}

	writeJSON(w, rsp)
}

// relaxationRsp reports unbounded constants as null. JSON has no
// encoding for +Inf.
type relaxationRsp struct {
	Qubit   int      `json:"qubit"`
	T1Us    *float64 `json:"t1_us"`
	T2Us    *float64 `json:"t2_us"`
	FreqGHz *float64 `json:"freq_ghz"`
}

func (i *Inspector) serveRelaxation(w http.ResponseWriter, _ *http.Request) {
	p := i.properties(w)
	if p == nil {
		return
	}

	entries := deviceparams.ThermalRelaxationValues(p)
	rsp := make([]relaxationRsp, 0, len(entries))
	for qubit, e := range entries {
		rsp = append(rsp, relaxationRsp{
			Qubit:   qubit,
			T1Us:    finiteOrNil(e.T1),
			T2Us:    finiteOrNil(e.T2),
			FreqGHz: finiteOrNil(e.Freq),
		})
	}

	writeJSON(w, rsp)
}

func (i *Inspector) inspectReport(w http.ResponseWriter, _ *http.Request) {
	p := i.properties(w)
	if p == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(p)
	serializer.SetMaxDepth(3)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (i *Inspector) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memoryInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	})
}

func (i *Inspector) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) {
		return nil
	}

	return &v
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
