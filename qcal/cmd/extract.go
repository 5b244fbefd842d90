package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/qcal/calibrecording"
	"github.com/sarchlab/qcal/deviceparams"
)

var extractCmd = &cobra.Command{
	Use:   "extract [properties.json]",
	Short: "Extract calibration parameters from a properties report.",
	Long: "`extract` reads a device-properties report from a JSON file " +
		"and prints the extracted gate and qubit calibration. With --db, " +
		"the extracted values are also recorded into a SQLite database.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := deviceparams.LoadProperties(args[0])
		if err != nil {
			log.Fatalf("Error loading properties report: %v", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			printJSON(p)
		} else {
			printTables(p)
		}

		dbName, _ := cmd.Flags().GetString("db")
		if dbName == "" {
			dbName = os.Getenv("QCAL_DB")
		}
		if dbName != "" {
			recorder := calibrecording.New(dbName)
			calibrecording.RecordCalibration(recorder, p)
		}

		atexit.Exit(0)
	},
}

func init() {
	extractCmd.Flags().Bool("json", false,
		"print extracted values as JSON instead of tables")
	extractCmd.Flags().String("db", "",
		"record extracted values into this SQLite database "+
			"(default from QCAL_DB)")
	rootCmd.AddCommand(extractCmd)
}

func printTables(p *deviceparams.Properties) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "GATE\tQUBITS\tLENGTH (ns)\tERROR")
	for _, e := range deviceparams.GateParamValues(p) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Gate, formatQubits(e.Qubits),
			formatOptional(e.LengthNS), formatOptional(e.Error))
	}
	fmt.Fprintln(w)

	readout := deviceparams.ReadoutErrorValues(p)
	relaxation := deviceparams.ThermalRelaxationValues(p)

	fmt.Fprintln(w, "QUBIT\tT1 (µs)\tT2 (µs)\tFREQ (GHz)\tREADOUT ERROR")
	for qubit, e := range relaxation {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			qubit,
			formatFloat(e.T1), formatFloat(e.T2), formatFloat(e.Freq),
			formatOptional(readout[qubit]))
	}

	w.Flush()
}

type gateOut struct {
	Gate     string   `json:"gate"`
	Qubits   []int    `json:"qubits"`
	LengthNS *float64 `json:"length_ns"`
	Error    *float64 `json:"error"`
}

// relaxationOut reports unbounded constants as null, since JSON cannot
// encode +Inf.
type relaxationOut struct {
	Qubit   int      `json:"qubit"`
	T1Us    *float64 `json:"t1_us"`
	T2Us    *float64 `json:"t2_us"`
	FreqGHz *float64 `json:"freq_ghz"`
}

func printJSON(p *deviceparams.Properties) {
	gates := []gateOut{}
	for _, e := range deviceparams.GateParamValues(p) {
		gates = append(gates, gateOut{
			Gate:     e.Gate,
			Qubits:   e.Qubits,
			LengthNS: e.LengthNS,
			Error:    e.Error,
		})
	}

	relaxation := []relaxationOut{}
	for qubit, e := range deviceparams.ThermalRelaxationValues(p) {
		relaxation = append(relaxation, relaxationOut{
			Qubit:   qubit,
			T1Us:    finiteOrNil(e.T1),
			T2Us:    finiteOrNil(e.T2),
			FreqGHz: finiteOrNil(e.Freq),
		})
	}

	out := struct {
		Gates      []gateOut       `json:"gates"`
		Readout    []*float64      `json:"readout_errors"`
		Relaxation []relaxationOut `json:"thermal_relaxation"`
	}{
		Gates:      gates,
		Readout:    deviceparams.ReadoutErrorValues(p),
		Relaxation: relaxation,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Error encoding output: %v", err)
	}
}

func formatQubits(qubits []int) string {
	parts := make([]string, 0, len(qubits))
	for _, q := range qubits {
		parts = append(parts, strconv.Itoa(q))
	}

	return strings.Join(parts, ",")
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}

	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) {
		return nil
	}

	return &v
}
