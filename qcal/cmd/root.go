// Package cmd provides the command-line interface for qcal.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "qcal",
	Short: "qcal extracts gate and qubit calibration parameters from " +
		"quantum backend properties reports.",
	Long: `qcal reads the device-properties report of a quantum hardware ` +
		`backend and extracts gate errors, gate durations, readout errors, ` +
		`relaxation times, and qubit frequencies, normalized to fixed ` +
		`physical units. Extracted values can be printed, recorded into a ` +
		`SQLite database, or served over HTTP for inspection.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can provide QCAL_PORT and QCAL_DB defaults. Missing
	// files are fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
