// qcal extracts calibration parameters from quantum backend
// properties reports.
package main

import "github.com/sarchlab/qcal/qcal/cmd"

func main() {
	cmd.Execute()
}
